package services

import (
	"math/rand"
	"sort"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	vendorPool []models.VendorInfo
	rng        *rand.Rand
	currency   string
}

const (
	biWeeklyDays     = 14
	maxBillDay       = 28
	billVariance     = 0.15
	maxDailyPurchase = 3
)

type subscriptionPlan struct {
	vendor models.VendorInfo
	amount float64
	day    int
}

var subscriptionPlans = []subscriptionPlan{
	{vendor: models.VendorInfo{Name: "Netflix", Category: models.CategoryEntertainment}, amount: 15.49, day: 15},
	{vendor: models.VendorInfo{Name: "Spotify", Category: models.CategoryEntertainment}, amount: 10.99, day: 3},
	{vendor: models.VendorInfo{Name: "City Gym", Category: models.CategoryHealthcare}, amount: 39.00, day: 1},
	{vendor: models.VendorInfo{Name: "Landlord LLC", Category: models.CategoryHousing}, amount: 1450.00, day: 1},
}

var billVendors = []models.VendorInfo{
	{Name: "Electric Company", Category: models.CategoryBillsUtilities},
	{Name: "Internet Provider", Category: models.CategoryBillsUtilities},
	{Name: "Water Department", Category: models.CategoryBillsUtilities},
}

// NewTransactionGenerator creates a generator; equal seeds produce equal history
func NewTransactionGenerator(seed int64, currency string) TransactionGeneratorInterface {
	if currency == "" {
		currency = "USD"
	}
	return &transactionGenerator{
		vendorPool: initializeVendorPool(),
		rng:        rand.New(rand.NewSource(seed)),
		currency:   currency,
	}
}

// initializeVendorPool creates the pool of incidental purchase vendors
func initializeVendorPool() []models.VendorInfo {
	return []models.VendorInfo{
		{Name: "Kroger", Category: models.CategoryGroceries},
		{Name: "Whole Foods Market", Category: models.CategoryGroceries},
		{Name: "Trader Joe's", Category: models.CategoryGroceries},
		{Name: "Costco Wholesale", Category: models.CategoryGroceries},

		{Name: "Starbucks", Category: models.CategoryDining},
		{Name: "Chipotle Mexican Grill", Category: models.CategoryDining},
		{Name: "Panera Bread", Category: models.CategoryDining},
		{Name: "Five Guys", Category: models.CategoryDining},

		{Name: "Uber", Category: models.CategoryTransportation},
		{Name: "Shell", Category: models.CategoryTransportation},
		{Name: "Metro Transit", Category: models.CategoryTransportation},

		{Name: "Amazon.com", Category: models.CategoryShopping},
		{Name: "Best Buy", Category: models.CategoryShopping},
		{Name: "IKEA", Category: models.CategoryShopping},

		{Name: "CVS Pharmacy", Category: models.CategoryHealthcare},
		{Name: "AMC Theaters", Category: models.CategoryEntertainment},
	}
}

func (g *transactionGenerator) GetVendorPool() []models.VendorInfo {
	return g.vendorPool
}

// GenerateHistory combines every generator and returns the result oldest first
func (g *transactionGenerator) GenerateHistory(account string, startDate, endDate time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)
	transactions = append(transactions, g.GenerateSubscriptions(account, startDate, endDate)...)
	transactions = append(transactions, g.GenerateBills(account, startDate, endDate)...)
	transactions = append(transactions, g.GenerateSalary(account, startDate, endDate)...)
	transactions = append(transactions, g.GenerateDailyPurchases(account, startDate, endDate)...)

	sortTransactionsByDate(transactions)
	return transactions
}

// GenerateSubscriptions emits fixed-amount monthly charges on a fixed day
func (g *transactionGenerator) GenerateSubscriptions(account string, startDate, endDate time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)
	start, end := models.DateOf(startDate), models.DateOf(endDate)

	for _, plan := range subscriptionPlans {
		for month := firstOfMonth(start); !month.After(end); month = month.AddDate(0, 1, 0) {
			date := month.AddDate(0, 0, plan.day-1)
			if date.Before(start) || date.After(end) {
				continue
			}
			transactions = append(transactions, g.newTransaction(account, date, plan.vendor, decimal.NewFromFloat(-plan.amount)))
		}
	}

	return transactions
}

// GenerateBills emits monthly utility bills whose amount varies around a base
func (g *transactionGenerator) GenerateBills(account string, startDate, endDate time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)
	start, end := models.DateOf(startDate), models.DateOf(endDate)

	for _, vendor := range billVendors {
		base := 50 + g.rng.Float64()*150
		day := 1 + g.rng.Intn(maxBillDay)

		for month := firstOfMonth(start); !month.After(end); month = month.AddDate(0, 1, 0) {
			date := month.AddDate(0, 0, day-1)
			if date.Before(start) || date.After(end) {
				continue
			}
			variance := 1 + (g.rng.Float64()*2-1)*billVariance
			amount := decimal.NewFromFloat(-base * variance).Round(2)
			transactions = append(transactions, g.newTransaction(account, date, vendor, amount))
		}
	}

	return transactions
}

// GenerateSalary emits bi-weekly salary deposits
func (g *transactionGenerator) GenerateSalary(account string, startDate, endDate time.Time) []*models.Transaction {
	salaryAmounts := []float64{2500.00, 3000.00, 3500.00, 4000.00, 4500.00}
	amount := decimal.NewFromFloat(salaryAmounts[g.rng.Intn(len(salaryAmounts))])
	employer := models.VendorInfo{Name: "ACME Corporation", Category: models.CategoryIncome}

	transactions := make([]*models.Transaction, 0)
	end := models.DateOf(endDate)

	for date := models.DateOf(startDate).AddDate(0, 0, biWeeklyDays); !date.After(end); date = date.AddDate(0, 0, biWeeklyDays) {
		transactions = append(transactions, g.newTransaction(account, date, employer, amount))
	}

	return transactions
}

// GenerateDailyPurchases emits zero to a few incidental purchases per day
func (g *transactionGenerator) GenerateDailyPurchases(account string, startDate, endDate time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)
	end := models.DateOf(endDate)

	for date := models.DateOf(startDate); !date.After(end); date = date.AddDate(0, 0, 1) {
		purchases := g.rng.Intn(maxDailyPurchase + 1)
		for i := 0; i < purchases; i++ {
			vendor := g.vendorPool[g.rng.Intn(len(g.vendorPool))]
			amount := g.generateAmount(vendor.Category).Neg()
			transactions = append(transactions, g.newTransaction(account, date, vendor, amount))
		}
	}

	return transactions
}

func (g *transactionGenerator) generateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.getAmountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *transactionGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryGroceries:      {15.00, 250.00},
		models.CategoryDining:         {8.00, 120.00},
		models.CategoryTransportation: {10.00, 80.00},
		models.CategoryShopping:       {25.00, 450.00},
		models.CategoryEntertainment:  {10.00, 60.00},
		models.CategoryHealthcare:     {20.00, 300.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

func (g *transactionGenerator) newTransaction(account string, date time.Time, vendor models.VendorInfo, amount decimal.Decimal) *models.Transaction {
	return &models.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Account:  account,
		Vendor:   vendor.Name,
		Category: vendor.Category,
		Amount:   amount,
		Currency: g.currency,
	}
}

func firstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func sortTransactionsByDate(transactions []*models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
}
