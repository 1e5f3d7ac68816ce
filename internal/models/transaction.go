package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionAccountRequired = errors.New("transaction account is required")
	ErrTransactionDateRequired    = errors.New("transaction date is required")
	ErrTransactionCategoryMissing = errors.New("transaction category is required")
	ErrZeroAmount                 = errors.New("transaction amount must not be zero")
	ErrInvalidCurrency            = errors.New("currency must be a 3-letter ISO code")
)

// Transaction is a single ledger entry. Negative amounts are outflows.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date         time.Time       `gorm:"type:date;not null;index" json:"date"`
	Account      string          `gorm:"type:varchar(255);not null;index" json:"account"`
	Vendor       string          `gorm:"type:varchar(255);not null;default:''" json:"vendor"`
	Category     string          `gorm:"type:varchar(255);not null" json:"category"`
	SubCategory  *string         `gorm:"type:varchar(255)" json:"sub_category,omitempty"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Remarks      *string         `gorm:"type:text" json:"remarks,omitempty"`
	RecurrenceID *uuid.UUID      `gorm:"type:uuid;index" json:"recurrence_id,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	t.Date = DateOf(t.Date)
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Account) == "" {
		return ErrTransactionAccountRequired
	}

	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrTransactionCategoryMissing
	}

	if t.Amount.IsZero() {
		return ErrZeroAmount
	}

	if !IsValidCurrency(t.Currency) {
		return ErrInvalidCurrency
	}

	return nil
}

// IsMaterialized reports whether the transaction was produced from a recurrence
func (t *Transaction) IsMaterialized() bool {
	return t.RecurrenceID != nil
}

// TableName specifies the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidCurrency checks for a three letter alphabetic code
func IsValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// StringValue dereferences an optional string
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
