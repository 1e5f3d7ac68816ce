package repositories

import (
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)

	// GetByDateRange returns every transaction dated within [startDate, endDate], oldest first
	GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)

	// ExistsForRecurrence reports whether an occurrence was already materialized on date
	ExistsForRecurrence(recurrenceID uuid.UUID, date time.Time) (bool, error)
}

// RecurrenceRepositoryInterface defines the contract for recurrence repository operations
type RecurrenceRepositoryInterface interface {
	Create(recurrence *models.Recurrence) error
	GetByID(id uuid.UUID) (*models.Recurrence, error)
	GetAll(filters models.RecurrenceFilters) ([]models.Recurrence, error)
	Update(recurrence *models.Recurrence) error
	UpdateLastMaterialized(id uuid.UUID, date time.Time) error
	Delete(id uuid.UUID) error
}
