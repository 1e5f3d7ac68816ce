package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/repositories"
	"recurrence-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.TransactionGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
		now:             time.Now,
	}
}

// SeedHistory generates realistic ledger history so pattern detection has something to find
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - account: Account name (default: Checking)
//   - days: Number of days of history to generate (default: 180, max: 730)
//
// Success Response: 201 Created
//   - transactions_created: Number of transactions created
//   - start_date, end_date: Generated range
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) SeedHistory(c echo.Context) error {
	account := c.QueryParam("account")
	if account == "" {
		account = "Checking"
	}

	days := getIntParam(c, "days", 180)
	if days < 1 {
		days = 1
	}
	if days > 730 {
		days = 730
	}

	endDate := models.DateOf(h.now())
	startDate := endDate.AddDate(0, 0, -days)

	generated := h.generator.GenerateHistory(account, startDate, endDate)
	transactions := make([]models.Transaction, 0, len(generated))
	for _, tx := range generated {
		transactions = append(transactions, *tx)
	}

	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	slog.Info("development history seeded",
		"account", account,
		"transactions", len(transactions),
		"client_ip", getClientIP(c))

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":              "test data generated successfully",
		"account":              account,
		"transactions_created": len(transactions),
		"start_date":           startDate.Format(models.DateLayout),
		"end_date":             endDate.Format(models.DateLayout),
	})
}
