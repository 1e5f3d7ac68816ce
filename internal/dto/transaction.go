package dto

import (
	"fmt"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents the request payload for recording a ledger transaction
type CreateTransactionRequest struct {
	Date        string  `json:"date" validate:"required,date"`
	Account     string  `json:"account" validate:"required,max=100"`
	Vendor      string  `json:"vendor" validate:"max=255"`
	Category    string  `json:"category" validate:"required,max=100"`
	SubCategory *string `json:"sub_category,omitempty" validate:"omitempty,max=100"`
	Amount      string  `json:"amount" validate:"required,nonzero_amount"`
	Currency    string  `json:"currency" validate:"required,currency"`
	Remarks     *string `json:"remarks,omitempty"`
}

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	Date         string     `json:"date"`
	Account      string     `json:"account"`
	Vendor       string     `json:"vendor"`
	Category     string     `json:"category"`
	SubCategory  *string    `json:"sub_category,omitempty"`
	Amount       string     `json:"amount"`
	Currency     string     `json:"currency"`
	Remarks      *string    `json:"remarks,omitempty"`
	RecurrenceID *uuid.UUID `json:"recurrence_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PaginationInfo contains offset pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"has_more"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// NewTransactionResponse converts a transaction model to its API representation
func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		Date:         tx.Date.Format(models.DateLayout),
		Account:      tx.Account,
		Vendor:       tx.Vendor,
		Category:     tx.Category,
		SubCategory:  tx.SubCategory,
		Amount:       tx.Amount.StringFixed(2),
		Currency:     tx.Currency,
		Remarks:      tx.Remarks,
		RecurrenceID: tx.RecurrenceID,
		CreatedAt:    tx.CreatedAt,
	}
}

// NewTransactionResponses converts a slice of transaction models
func NewTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		result = append(result, NewTransactionResponse(&transactions[i]))
	}
	return result
}

// ToModel converts the request into a transaction. Fields are assumed validated.
func (r *CreateTransactionRequest) ToModel() (*models.Transaction, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return nil, err
	}

	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		Date:        date,
		Account:     r.Account,
		Vendor:      r.Vendor,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Amount:      amount,
		Currency:    r.Currency,
		Remarks:     r.Remarks,
	}, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return amount, nil
}
