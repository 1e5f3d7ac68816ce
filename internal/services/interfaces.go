package services

import (
	"context"
	"iter"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
)

// OccurrenceProjectorInterface turns a recurrence into dated occurrences
type OccurrenceProjectorInterface interface {
	// Occurrences lazily yields every occurrence of r within [start, end]
	Occurrences(r *models.Recurrence, start, end time.Time) iter.Seq2[models.Occurrence, error]

	// Project collects the occurrences of r within [start, end]
	Project(r *models.Recurrence, start, end time.Time) ([]models.Occurrence, error)

	// NextAfter returns the first occurrence strictly after reference, nil when the recurrence has ended
	NextAfter(r *models.Recurrence, reference time.Time) (*models.Occurrence, error)
}

// PatternDetectorInterface infers recurring patterns from transaction history
type PatternDetectorInterface interface {
	Detect(transactions []models.Transaction, existing []models.Recurrence, now time.Time) []models.Recurrence
	Evaluate(transactions []models.Transaction, existing []models.Recurrence, now time.Time) *DetectionReport
}

// TransactionServiceInterface defines ledger transaction operations
type TransactionServiceInterface interface {
	RecordTransaction(transaction *models.Transaction) error
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// RecurrenceServiceInterface defines recurrence management and projection operations
type RecurrenceServiceInterface interface {
	CreateRecurrence(recurrence *models.Recurrence) error
	GetRecurrence(id uuid.UUID) (*models.Recurrence, error)
	ListRecurrences(filters models.RecurrenceFilters) ([]models.Recurrence, error)
	UpdateRecurrence(recurrence *models.Recurrence) error
	EndRecurrence(id uuid.UUID, endDate time.Time) (*models.Recurrence, error)
	DeleteRecurrence(id uuid.UUID) error

	// ProjectRecurrence projects one stored recurrence over a window
	ProjectRecurrence(id uuid.UUID, start, end time.Time) (*ProjectionResult, error)

	// NextOccurrence returns the next occurrence of a stored recurrence after the reference date
	NextOccurrence(id uuid.UUID, after time.Time) (*models.Occurrence, error)

	// SuggestRecurrences runs the pattern detector over stored history
	SuggestRecurrences(now time.Time) (*DetectionReport, error)

	// UpcomingOccurrences projects every stored recurrence over a window
	UpcomingOccurrences(ctx context.Context, start, end time.Time) (*CalendarResult, error)
}

// RecurringProcessorInterface materializes overdue occurrences into transactions
type RecurringProcessorInterface interface {
	ProcessDueOccurrences(ctx context.Context, now time.Time) (*CatchUpResult, error)
}

// OccurrencePublisherInterface announces materialized occurrences to other systems
type OccurrencePublisherInterface interface {
	PublishOccurrenceMaterialized(ctx context.Context, transaction *models.Transaction) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TransactionGeneratorInterface generates realistic ledger history for development
type TransactionGeneratorInterface interface {
	GenerateHistory(account string, startDate, endDate time.Time) []*models.Transaction
	GenerateSubscriptions(account string, startDate, endDate time.Time) []*models.Transaction
	GenerateBills(account string, startDate, endDate time.Time) []*models.Transaction
	GenerateSalary(account string, startDate, endDate time.Time) []*models.Transaction
	GenerateDailyPurchases(account string, startDate, endDate time.Time) []*models.Transaction
	GetVendorPool() []models.VendorInfo
}
