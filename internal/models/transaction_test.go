package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid outflow",
			transaction: Transaction{
				Date:     date(2024, 4, 1),
				Account:  "Checking",
				Vendor:   "Netflix",
				Category: "Entertainment",
				Amount:   decimal.NewFromFloat(-15.99),
				Currency: "USD",
			},
		},
		{
			name: "valid inflow without vendor",
			transaction: Transaction{
				Date:     date(2024, 4, 1),
				Account:  "Checking",
				Category: "Income",
				Amount:   decimal.NewFromInt(2500),
				Currency: "eur",
			},
		},
		{
			name: "missing account",
			transaction: Transaction{
				Date:     date(2024, 4, 1),
				Category: "Income",
				Amount:   decimal.NewFromInt(1),
				Currency: "USD",
			},
			wantErr: ErrTransactionAccountRequired,
		},
		{
			name: "missing date",
			transaction: Transaction{
				Account:  "Checking",
				Category: "Income",
				Amount:   decimal.NewFromInt(1),
				Currency: "USD",
			},
			wantErr: ErrTransactionDateRequired,
		},
		{
			name: "missing category",
			transaction: Transaction{
				Date:     date(2024, 4, 1),
				Account:  "Checking",
				Amount:   decimal.NewFromInt(1),
				Currency: "USD",
			},
			wantErr: ErrTransactionCategoryMissing,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				Date:     date(2024, 4, 1),
				Account:  "Checking",
				Category: "Income",
				Currency: "USD",
			},
			wantErr: ErrZeroAmount,
		},
		{
			name: "bad currency",
			transaction: Transaction{
				Date:     date(2024, 4, 1),
				Account:  "Checking",
				Category: "Income",
				Amount:   decimal.NewFromInt(1),
				Currency: "US1",
			},
			wantErr: ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOccurrence_ToTransaction(t *testing.T) {
	sub := "Streaming"
	recurrenceID := uuid.New()
	occurrence := Occurrence{
		RecurrenceID: recurrenceID,
		Date:         date(2024, 6, 1),
		Amount:       decimal.NewFromFloat(-9.99),
		Currency:     "USD",
		Account:      "Checking",
		Vendor:       "Netflix",
		Category:     "Entertainment",
		SubCategory:  &sub,
	}

	tx := occurrence.ToTransaction()

	require.NotNil(t, tx.RecurrenceID)
	assert.Equal(t, recurrenceID, *tx.RecurrenceID)
	assert.True(t, tx.IsMaterialized())
	assert.True(t, tx.Date.Equal(occurrence.Date))
	assert.True(t, tx.Amount.Equal(occurrence.Amount))
	assert.Equal(t, "Streaming", StringValue(tx.SubCategory))
	assert.NoError(t, tx.Validate())
}

func TestClassifyTrust(t *testing.T) {
	tests := []struct {
		category string
		want     TrustTier
	}{
		{category: "Utilities", want: TrustTierHigh},
		{category: "Bills & Fees", want: TrustTierHigh},
		{category: "HOUSING", want: TrustTierHigh},
		{category: "Investment income", want: TrustTierHigh},
		{category: "Transfer", want: TrustTierHigh},
		{category: "Groceries", want: TrustTierLow},
		{category: "Fast Food", want: TrustTierLow},
		{category: "Dining Out", want: TrustTierLow},
		{category: "Online Shopping", want: TrustTierLow},
		{category: "Entertainment", want: TrustTierDefault},
		{category: "", want: TrustTierDefault},
		{category: "Food bills", want: TrustTierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTrust(tt.category, HighTrustKeywords, LowTrustKeywords))
		})
	}
}
