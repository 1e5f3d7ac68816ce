package repositories

import (
	"errors"
	"fmt"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateOccurrence = errors.New("occurrence already materialized")
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction.
// A second row for the same recurrence and date is reported as ErrDuplicateOccurrence.
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && transaction.RecurrenceID != nil {
			return fmt.Errorf("%w: %v", ErrDuplicateOccurrence, err)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetWithFilters retrieves transactions with multiple filters, newest first
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.Account != "" {
		query = query.Where("account = ?", filters.Account)
	}
	if filters.Vendor != "" {
		query = query.Where("LOWER(vendor) LIKE LOWER(?)", "%"+filters.Vendor+"%")
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", models.DateOf(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", models.DateOf(*filters.EndDate))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	query = query.Order("date DESC").Order("created_at DESC")
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByDateRange retrieves transactions within a date range
func (r *transactionRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("date >= ? AND date <= ?", models.DateOf(startDate), models.DateOf(endDate)).
		Order("date ASC").
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// ExistsForRecurrence checks for a materialized occurrence of a recurrence on a given date
func (r *transactionRepository) ExistsForRecurrence(recurrenceID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("recurrence_id = ? AND date = ?", recurrenceID, models.DateOf(date)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check materialized transaction: %w", err)
	}
	return count > 0, nil
}
