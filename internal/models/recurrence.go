package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RecurrenceOriginManual   = "manual"
	RecurrenceOriginDetected = "detected"
)

var (
	ErrRecurrenceAccountRequired = errors.New("recurrence account is required")
	ErrRecurrenceBasisRequired   = errors.New("recurrence basis date is required")
	ErrRecurrenceEndBeforeBasis  = errors.New("recurrence end date must not be before basis date")
	ErrInvalidRecurrenceOrigin   = errors.New("invalid recurrence origin")
)

// Recurrence declares that an account/vendor/category combination repeats
// on a frequency starting from BasisDate. Suggestions and confirmed schedules
// share this type; Origin records where it came from.
type Recurrence struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Account              string          `gorm:"type:varchar(255);not null;index" json:"account"`
	Vendor               string          `gorm:"type:varchar(255);not null;default:''" json:"vendor"`
	Category             string          `gorm:"type:varchar(255);not null" json:"category"`
	SubCategory          *string         `gorm:"type:varchar(255)" json:"sub_category,omitempty"`
	Amount               decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency             string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	BasisDate            time.Time       `gorm:"type:date;not null" json:"basis_date"`
	Frequency            Frequency       `gorm:"type:varchar(16);not null" json:"frequency"`
	EndDate              *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	Origin               string          `gorm:"type:varchar(16);not null;default:'manual'" json:"origin"`
	LastMaterializedDate *time.Time      `gorm:"type:date" json:"last_materialized_date,omitempty"`
	CreatedAt            time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Recurrence
func (r *Recurrence) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.Origin == "" {
		r.Origin = RecurrenceOriginManual
	}

	r.normalizeDates()
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for Recurrence
func (r *Recurrence) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	r.normalizeDates()
	return r.Validate()
}

// Validate validates the recurrence fields
func (r *Recurrence) Validate() error {
	if strings.TrimSpace(r.Account) == "" {
		return ErrRecurrenceAccountRequired
	}

	if strings.TrimSpace(r.Category) == "" {
		return ErrTransactionCategoryMissing
	}

	if r.BasisDate.IsZero() {
		return ErrRecurrenceBasisRequired
	}

	if err := r.Frequency.Validate(); err != nil {
		return err
	}

	if !IsValidCurrency(r.Currency) {
		return ErrInvalidCurrency
	}

	if r.EndDate != nil && IsAfter(r.BasisDate, *r.EndDate) {
		return ErrRecurrenceEndBeforeBasis
	}

	if r.Origin != RecurrenceOriginManual && r.Origin != RecurrenceOriginDetected {
		return ErrInvalidRecurrenceOrigin
	}

	return nil
}

// HasEndedBy reports whether the recurrence produces nothing on or after date
func (r *Recurrence) HasEndedBy(date time.Time) bool {
	return r.EndDate != nil && IsAfter(date, *r.EndDate)
}

// End stops the recurrence after the given date
func (r *Recurrence) End(date time.Time) error {
	end := DateOf(date)
	if IsAfter(r.BasisDate, end) {
		return ErrRecurrenceEndBeforeBasis
	}
	r.EndDate = &end
	return nil
}

// Matches compares vendor, account and category ignoring case and surrounding whitespace.
// Amount is left out so bills with varying amounts still match.
func (r *Recurrence) Matches(vendor, account, category string) bool {
	return equalFoldTrimmed(r.Vendor, vendor) &&
		equalFoldTrimmed(r.Account, account) &&
		equalFoldTrimmed(r.Category, category)
}

// OccurrenceAt builds the occurrence of this recurrence on date
func (r *Recurrence) OccurrenceAt(date time.Time) Occurrence {
	return Occurrence{
		RecurrenceID: r.ID,
		Date:         DateOf(date),
		Amount:       r.Amount,
		Currency:     r.Currency,
		Account:      r.Account,
		Vendor:       r.Vendor,
		Category:     r.Category,
		SubCategory:  r.SubCategory,
	}
}

// TableName specifies the table name for Recurrence
func (r *Recurrence) TableName() string {
	return "recurrences"
}

func (r *Recurrence) normalizeDates() {
	r.BasisDate = DateOf(r.BasisDate)
	if r.EndDate != nil {
		end := DateOf(*r.EndDate)
		r.EndDate = &end
	}
	if r.LastMaterializedDate != nil {
		last := DateOf(*r.LastMaterializedDate)
		r.LastMaterializedDate = &last
	}
}

func equalFoldTrimmed(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
