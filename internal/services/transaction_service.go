package services

import (
	"errors"
	"fmt"
	"log/slog"

	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionNil      = errors.New("transaction cannot be nil")
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates the ledger transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// RecordTransaction validates and stores a transaction
func (s *transactionService) RecordTransaction(transaction *models.Transaction) error {
	if transaction == nil {
		return ErrTransactionNil
	}

	if err := transaction.Validate(); err != nil {
		s.metrics.IncrementCounter(MetricTransactionRecorded, map[string]string{"source": "manual", "status": "invalid"})
		return err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		s.metrics.IncrementCounter(MetricTransactionRecorded, map[string]string{"source": "manual", "status": "failed"})
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	s.metrics.IncrementCounter(MetricTransactionRecorded, map[string]string{"source": "manual", "status": "success"})
	s.logger.Debug("transaction recorded",
		"transaction_id", transaction.ID,
		"account", transaction.Account,
		"date", transaction.Date.Format(models.DateLayout))

	return nil
}

func (s *transactionService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListTransactions returns one page of matching transactions and the total match count
func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.StartDate != nil && filters.EndDate != nil && models.IsAfter(*filters.StartDate, *filters.EndDate) {
		return nil, 0, ErrInvalidWindow
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}
