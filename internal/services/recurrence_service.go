package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/repositories"

	"github.com/google/uuid"
)

const DefaultCalendarMaxDays = 731

var (
	ErrRecurrenceNotFound    = errors.New("recurrence not found")
	ErrRecurrenceNil         = errors.New("recurrence cannot be nil")
	ErrCalendarWindowTooWide = errors.New("calendar window is too wide")
)

// ProjectionResult is the projection of one recurrence over a window
type ProjectionResult struct {
	Recurrence  *models.Recurrence
	Occurrences []models.Occurrence
	// Truncated is set when the iteration ceiling stopped projection early
	Truncated bool
}

// RecurrenceFailure pairs a recurrence with the error that stopped its projection
type RecurrenceFailure struct {
	RecurrenceID uuid.UUID
	Err          error
}

// CalendarResult merges the occurrences of every stored recurrence in a window, ordered by date
type CalendarResult struct {
	Occurrences []models.Occurrence
	Truncated   []uuid.UUID
	Failed      []RecurrenceFailure
}

type RecurrenceServiceConfig struct {
	// DetectionWindowDays is how much history SuggestRecurrences loads
	DetectionWindowDays int
	CalendarMaxDays     int
}

type recurrenceService struct {
	recurrenceRepo  repositories.RecurrenceRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	projector       OccurrenceProjectorInterface
	detector        PatternDetectorInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	config          RecurrenceServiceConfig
}

// NewRecurrenceService creates the recurrence service
func NewRecurrenceService(
	recurrenceRepo repositories.RecurrenceRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	projector OccurrenceProjectorInterface,
	detector PatternDetectorInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	config RecurrenceServiceConfig,
) RecurrenceServiceInterface {
	if config.DetectionWindowDays <= 0 {
		config.DetectionWindowDays = DefaultDetectionWindowDays
	}
	if config.CalendarMaxDays <= 0 {
		config.CalendarMaxDays = DefaultCalendarMaxDays
	}

	return &recurrenceService{
		recurrenceRepo:  recurrenceRepo,
		transactionRepo: transactionRepo,
		projector:       projector,
		detector:        detector,
		metrics:         metrics,
		logger:          logger,
		config:          config,
	}
}

func (s *recurrenceService) CreateRecurrence(recurrence *models.Recurrence) error {
	if recurrence == nil {
		return ErrRecurrenceNil
	}

	if recurrence.Origin == "" {
		recurrence.Origin = models.RecurrenceOriginManual
	}

	if err := recurrence.Validate(); err != nil {
		return err
	}

	if err := s.recurrenceRepo.Create(recurrence); err != nil {
		return fmt.Errorf("failed to create recurrence: %w", err)
	}

	s.metrics.IncrementCounter(MetricRecurrenceChanged, map[string]string{"action": "created", "origin": recurrence.Origin})
	s.logger.Info("recurrence created",
		"recurrence_id", recurrence.ID,
		"vendor", recurrence.Vendor,
		"frequency", recurrence.Frequency.String(),
		"origin", recurrence.Origin)

	return nil
}

func (s *recurrenceService) GetRecurrence(id uuid.UUID) (*models.Recurrence, error) {
	recurrence, err := s.recurrenceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecurrenceNotFound) {
			return nil, ErrRecurrenceNotFound
		}
		return nil, fmt.Errorf("failed to get recurrence: %w", err)
	}
	return recurrence, nil
}

func (s *recurrenceService) ListRecurrences(filters models.RecurrenceFilters) ([]models.Recurrence, error) {
	recurrences, err := s.recurrenceRepo.GetAll(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurrences: %w", err)
	}
	return recurrences, nil
}

// UpdateRecurrence replaces the editable fields of a stored recurrence.
// Creation time and origin are carried over when left empty.
func (s *recurrenceService) UpdateRecurrence(recurrence *models.Recurrence) error {
	if recurrence == nil {
		return ErrRecurrenceNil
	}

	existing, err := s.GetRecurrence(recurrence.ID)
	if err != nil {
		return err
	}

	recurrence.CreatedAt = existing.CreatedAt
	if recurrence.Origin == "" {
		recurrence.Origin = existing.Origin
	}
	// a new cadence restarts catch-up from the basis date; existing ledger rows are skipped
	sameCadence := models.IsSameDay(recurrence.BasisDate, existing.BasisDate) && recurrence.Frequency == existing.Frequency
	if recurrence.LastMaterializedDate == nil && sameCadence {
		recurrence.LastMaterializedDate = existing.LastMaterializedDate
	}

	if err := recurrence.Validate(); err != nil {
		return err
	}

	if err := s.recurrenceRepo.Update(recurrence); err != nil {
		if errors.Is(err, repositories.ErrRecurrenceNotFound) {
			return ErrRecurrenceNotFound
		}
		return fmt.Errorf("failed to update recurrence: %w", err)
	}

	s.metrics.IncrementCounter(MetricRecurrenceChanged, map[string]string{"action": "updated", "origin": recurrence.Origin})
	return nil
}

// EndRecurrence sets the last date on which the recurrence may produce an occurrence
func (s *recurrenceService) EndRecurrence(id uuid.UUID, endDate time.Time) (*models.Recurrence, error) {
	recurrence, err := s.GetRecurrence(id)
	if err != nil {
		return nil, err
	}

	if err := recurrence.End(endDate); err != nil {
		return nil, err
	}

	if err := s.recurrenceRepo.Update(recurrence); err != nil {
		return nil, fmt.Errorf("failed to end recurrence: %w", err)
	}

	s.metrics.IncrementCounter(MetricRecurrenceChanged, map[string]string{"action": "ended", "origin": recurrence.Origin})
	s.logger.Info("recurrence ended", "recurrence_id", id, "end_date", recurrence.EndDate.Format(models.DateLayout))

	return recurrence, nil
}

func (s *recurrenceService) DeleteRecurrence(id uuid.UUID) error {
	if err := s.recurrenceRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrRecurrenceNotFound) {
			return ErrRecurrenceNotFound
		}
		return fmt.Errorf("failed to delete recurrence: %w", err)
	}

	s.metrics.IncrementCounter(MetricRecurrenceChanged, map[string]string{"action": "deleted"})
	return nil
}

// ProjectRecurrence projects a stored recurrence over [start, end].
// Hitting the iteration ceiling is reported through Truncated with the partial result.
func (s *recurrenceService) ProjectRecurrence(id uuid.UUID, start, end time.Time) (*ProjectionResult, error) {
	recurrence, err := s.GetRecurrence(id)
	if err != nil {
		return nil, err
	}

	occurrences, err := s.projector.Project(recurrence, start, end)
	result := &ProjectionResult{Recurrence: recurrence, Occurrences: occurrences}

	if err != nil {
		if !errors.Is(err, ErrProjectionTruncated) {
			return nil, err
		}
		result.Truncated = true
		s.metrics.IncrementCounter(MetricProjectionTruncated, nil)
		s.logger.Warn("projection truncated", "recurrence_id", id, "error", err)
	}

	return result, nil
}

func (s *recurrenceService) NextOccurrence(id uuid.UUID, after time.Time) (*models.Occurrence, error) {
	recurrence, err := s.GetRecurrence(id)
	if err != nil {
		return nil, err
	}

	occurrence, err := s.projector.NextAfter(recurrence, after)
	if err != nil {
		if errors.Is(err, ErrProjectionTruncated) {
			s.metrics.IncrementCounter(MetricProjectionTruncated, nil)
		}
		return nil, err
	}

	return occurrence, nil
}

// SuggestRecurrences runs the detector over the trailing history window ending at now
func (s *recurrenceService) SuggestRecurrences(now time.Time) (*DetectionReport, error) {
	started := time.Now()
	today := models.DateOf(now)

	transactions, err := s.transactionRepo.GetByDateRange(today.AddDate(0, 0, -s.config.DetectionWindowDays), today)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history: %w", err)
	}

	// ended recurrences stay in the known set so their history is not suggested again
	existing, err := s.recurrenceRepo.GetAll(models.RecurrenceFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load recurrences: %w", err)
	}

	report := s.detector.Evaluate(transactions, existing, now)

	for _, outcome := range report.Outcomes {
		s.metrics.IncrementCounter(MetricDetectionGroup, map[string]string{"reason": string(outcome.Reason)})
		if outcome.Err != nil {
			s.logger.Error("pattern detection failed for group",
				"signature", outcome.Signature.String(),
				"size", outcome.Size,
				"error", outcome.Err)
		}
	}

	s.metrics.RecordGauge(MetricDetectionSuggestions, float64(len(report.Suggestions)), nil)
	s.metrics.RecordProcessingTime(MetricDetectionDuration, time.Since(started))
	s.logger.Info("pattern detection complete",
		"transactions", len(transactions),
		"groups", len(report.Outcomes),
		"suggestions", len(report.Suggestions))

	return report, nil
}

// UpcomingOccurrences projects every recurrence active in [start, end].
// One recurrence failing or truncating does not stop the others.
func (s *recurrenceService) UpcomingOccurrences(ctx context.Context, start, end time.Time) (*CalendarResult, error) {
	started := time.Now()
	windowStart, windowEnd := models.DateOf(start), models.DateOf(end)

	if windowStart.After(windowEnd) {
		return nil, ErrInvalidWindow
	}
	if models.DaysBetween(windowStart, windowEnd) > s.config.CalendarMaxDays {
		return nil, fmt.Errorf("%w: %d days exceeds %d", ErrCalendarWindowTooWide,
			models.DaysBetween(windowStart, windowEnd), s.config.CalendarMaxDays)
	}

	recurrences, err := s.recurrenceRepo.GetAll(models.RecurrenceFilters{ActiveOn: &windowStart})
	if err != nil {
		return nil, fmt.Errorf("failed to load recurrences: %w", err)
	}

	result := &CalendarResult{
		Occurrences: make([]models.Occurrence, 0),
		Truncated:   make([]uuid.UUID, 0),
		Failed:      make([]RecurrenceFailure, 0),
	}

	for i := range recurrences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		recurrence := &recurrences[i]
		occurrences, err := s.projector.Project(recurrence, windowStart, windowEnd)
		result.Occurrences = append(result.Occurrences, occurrences...)

		switch {
		case err == nil:
		case errors.Is(err, ErrProjectionTruncated):
			result.Truncated = append(result.Truncated, recurrence.ID)
			s.metrics.IncrementCounter(MetricProjectionTruncated, nil)
			s.logger.WarnContext(ctx, "calendar projection truncated", "recurrence_id", recurrence.ID, "error", err)
		default:
			result.Failed = append(result.Failed, RecurrenceFailure{RecurrenceID: recurrence.ID, Err: err})
			s.logger.ErrorContext(ctx, "calendar projection failed", "recurrence_id", recurrence.ID, "error", err)
		}
	}

	sortOccurrences(result.Occurrences)
	s.metrics.RecordProcessingTime(MetricCalendarDuration, time.Since(started))

	return result, nil
}

func sortOccurrences(occurrences []models.Occurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		if !occurrences[i].Date.Equal(occurrences[j].Date) {
			return occurrences[i].Date.Before(occurrences[j].Date)
		}
		if occurrences[i].Vendor != occurrences[j].Vendor {
			return occurrences[i].Vendor < occurrences[j].Vendor
		}
		return occurrences[i].RecurrenceID.String() < occurrences[j].RecurrenceID.String()
	})
}
