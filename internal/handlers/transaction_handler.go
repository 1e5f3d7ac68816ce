package handlers

import (
	"errors"
	"net/http"

	"recurrence-ledger/internal/dto"
	apierrors "recurrence-ledger/internal/errors"
	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// TransactionHandler handles ledger transaction HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// RecordTransaction records a ledger transaction
// POST /api/v1/transactions
func (h *TransactionHandler) RecordTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	transaction, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	if err := h.transactionService.RecordTransaction(transaction); err != nil {
		switch {
		case errors.Is(err, models.ErrZeroAmount):
			return SendError(c, apierrors.TransactionInvalidAmount)
		case isTransactionValidationError(err):
			return SendError(c, apierrors.TransactionValidationFailed, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// GetTransaction retrieves a transaction by ID
// GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// ListTransactions lists transactions newest first
// GET /api/v1/transactions?account=&vendor=&category=&start_date=&end_date=&limit=&offset=
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionService.ListTransactions(filters)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWindow) {
			return SendError(c, apierrors.RecurrenceInvalidWindow)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.NewTransactionResponses(transactions),
		Pagination: dto.PaginationInfo{
			HasMore: int64(filters.Offset+len(transactions)) < total,
			Limit:   filters.Limit,
			Offset:  filters.Offset,
			Total:   total,
		},
	})
}

// parseTransactionFilters parses and validates transaction filter parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Account:  c.QueryParam("account"),
		Vendor:   c.QueryParam("vendor"),
		Category: c.QueryParam("category"),
		Limit:    getIntParam(c, "limit", defaultPageLimit),
		Offset:   getIntParam(c, "offset", 0),
	}

	if filters.Limit < 1 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	var err error
	if filters.StartDate, err = getDateParam(c, "start_date"); err != nil {
		return filters, err
	}
	if filters.EndDate, err = getDateParam(c, "end_date"); err != nil {
		return filters, err
	}

	return filters, nil
}

func isTransactionValidationError(err error) bool {
	return errors.Is(err, models.ErrTransactionAccountRequired) ||
		errors.Is(err, models.ErrTransactionDateRequired) ||
		errors.Is(err, models.ErrTransactionCategoryMissing) ||
		errors.Is(err, models.ErrInvalidCurrency)
}
