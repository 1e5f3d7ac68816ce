package models

import (
	"time"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	Account   string
	Vendor    string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// RecurrenceFilters contains filtering options for recurrence queries
type RecurrenceFilters struct {
	Account  string
	ActiveOn *time.Time
	Origin   string
}
