package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Occurrence is one dated instance implied by a recurrence. It is not persisted;
// callers decide whether to turn it into a Transaction.
type Occurrence struct {
	RecurrenceID uuid.UUID       `json:"recurrence_id"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Account      string          `json:"account"`
	Vendor       string          `json:"vendor"`
	Category     string          `json:"category"`
	SubCategory  *string         `json:"sub_category,omitempty"`
}

// ToTransaction materializes the occurrence as a ledger transaction
func (o Occurrence) ToTransaction() *Transaction {
	recurrenceID := o.RecurrenceID
	return &Transaction{
		Date:         o.Date,
		Account:      o.Account,
		Vendor:       o.Vendor,
		Category:     o.Category,
		SubCategory:  o.SubCategory,
		Amount:       o.Amount,
		Currency:     o.Currency,
		RecurrenceID: &recurrenceID,
	}
}
