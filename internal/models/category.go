package models

import "strings"

// TrustTier controls how much amount variation a recurring pattern may show
type TrustTier string

const (
	TrustTierHigh    TrustTier = "high"
	TrustTierDefault TrustTier = "default"
	TrustTierLow     TrustTier = "low"
)

// Categories whose amounts legitimately vary between periods
var HighTrustKeywords = []string{
	"housing",
	"mortgage",
	"bill",
	"utilit",
	"investment",
	"income",
	"salary",
	"transfer",
}

// Categories dominated by incidental repeat purchases
var LowTrustKeywords = []string{
	"shopping",
	"food",
	"grocer",
	"dining",
}

// ClassifyTrust maps a free-text category onto a trust tier by keyword.
// High-trust keywords win when a category matches both lists.
func ClassifyTrust(category string, high, low []string) TrustTier {
	for _, keyword := range high {
		if containsIgnoreCase(category, keyword) {
			return TrustTierHigh
		}
	}
	for _, keyword := range low {
		if containsIgnoreCase(category, keyword) {
			return TrustTierLow
		}
	}
	return TrustTierDefault
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Ledger categories used by generated history
const (
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHousing        = "Housing"
	CategoryHealthcare     = "Healthcare"
	CategoryIncome         = "Income"
)

// VendorInfo describes a counterparty the generator can draw from
type VendorInfo struct {
	Name     string
	Category string
}
