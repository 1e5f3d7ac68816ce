package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/repositories"
)

// CatchUpResult summarizes one catch-up run
type CatchUpResult struct {
	Recurrences  int
	Created      int
	Skipped      int
	Failed       int
	Truncated    int
	Transactions []models.Transaction
}

// RecurringProcessor writes overdue occurrences of stored recurrences into the ledger
type RecurringProcessor struct {
	recurrenceRepo  repositories.RecurrenceRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	projector       OccurrenceProjectorInterface
	publisher       OccurrencePublisherInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewRecurringProcessor creates a processor. A nil publisher disables event publishing.
func NewRecurringProcessor(
	recurrenceRepo repositories.RecurrenceRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	projector OccurrenceProjectorInterface,
	publisher OccurrencePublisherInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RecurringProcessorInterface {
	return &RecurringProcessor{
		recurrenceRepo:  recurrenceRepo,
		transactionRepo: transactionRepo,
		projector:       projector,
		publisher:       publisher,
		metrics:         metrics,
		logger:          logger,
	}
}

// ProcessDueOccurrences materializes every occurrence dated on or before now that is not yet in the ledger.
// Running it twice for the same day creates nothing the second time.
func (p *RecurringProcessor) ProcessDueOccurrences(ctx context.Context, now time.Time) (*CatchUpResult, error) {
	started := time.Now()
	today := models.DateOf(now)

	recurrences, err := p.recurrenceRepo.GetAll(models.RecurrenceFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to get recurrences: %w", err)
	}

	result := &CatchUpResult{
		Recurrences:  len(recurrences),
		Transactions: make([]models.Transaction, 0),
	}
	p.metrics.RecordGauge(MetricActiveRecurrenceCount, float64(len(recurrences)), nil)

	for i := range recurrences {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		p.catchUp(ctx, &recurrences[i], today, result)
	}

	p.metrics.RecordProcessingTime(MetricCatchUpDuration, time.Since(started))
	p.logger.InfoContext(ctx, "recurring catch-up complete",
		"date", today.Format(models.DateLayout),
		"recurrences", result.Recurrences,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"truncated", result.Truncated)

	return result, nil
}

func (p *RecurringProcessor) catchUp(ctx context.Context, recurrence *models.Recurrence, today time.Time, result *CatchUpResult) {
	// resume from the last written occurrence so the skip phase stays short
	cursor := *recurrence
	start := models.DateOf(recurrence.BasisDate)
	if recurrence.LastMaterializedDate != nil {
		cursor.BasisDate = models.DateOf(*recurrence.LastMaterializedDate)
		start = cursor.BasisDate.AddDate(0, 0, 1)
	}

	if start.After(today) || recurrence.HasEndedBy(start) {
		return
	}

	occurrences, projectionErr := p.projector.Project(&cursor, start, today)

	var lastDone *time.Time
	for _, occurrence := range occurrences {
		created, err := p.materialize(ctx, occurrence, result)
		if err != nil {
			result.Failed++
			p.metrics.IncrementCounter(MetricCatchUpOccurrence, map[string]string{"status": "failed"})
			p.logger.ErrorContext(ctx, "failed to materialize occurrence",
				"recurrence_id", recurrence.ID,
				"date", occurrence.Date.Format(models.DateLayout),
				"error", err)
			break
		}

		if created {
			result.Created++
			p.metrics.IncrementCounter(MetricCatchUpOccurrence, map[string]string{"status": "created"})
		} else {
			result.Skipped++
			p.metrics.IncrementCounter(MetricCatchUpOccurrence, map[string]string{"status": "skipped"})
		}

		date := occurrence.Date
		lastDone = &date
	}

	if lastDone != nil {
		if err := p.recurrenceRepo.UpdateLastMaterialized(recurrence.ID, *lastDone); err != nil {
			p.logger.ErrorContext(ctx, "failed to update last materialized date",
				"recurrence_id", recurrence.ID,
				"error", err)
		}
	}

	switch {
	case projectionErr == nil:
	case errors.Is(projectionErr, ErrProjectionTruncated):
		result.Truncated++
		p.metrics.IncrementCounter(MetricProjectionTruncated, nil)
		p.logger.WarnContext(ctx, "catch-up stopped at iteration ceiling, resuming next run",
			"recurrence_id", recurrence.ID,
			"error", projectionErr)
	default:
		result.Failed++
		p.logger.ErrorContext(ctx, "failed to project recurrence",
			"recurrence_id", recurrence.ID,
			"error", projectionErr)
	}
}

// materialize writes one occurrence unless the ledger already holds it.
// Losing an insert race to a concurrent run counts as already held.
func (p *RecurringProcessor) materialize(ctx context.Context, occurrence models.Occurrence, result *CatchUpResult) (bool, error) {
	exists, err := p.transactionRepo.ExistsForRecurrence(occurrence.RecurrenceID, occurrence.Date)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	transaction := occurrence.ToTransaction()
	if err := p.transactionRepo.Create(transaction); err != nil {
		if errors.Is(err, repositories.ErrDuplicateOccurrence) {
			return false, nil
		}
		return false, err
	}
	result.Transactions = append(result.Transactions, *transaction)
	p.metrics.IncrementCounter(MetricTransactionRecorded, map[string]string{"source": "recurrence", "status": "success"})

	if p.publisher != nil {
		if err := p.publisher.PublishOccurrenceMaterialized(ctx, transaction); err != nil {
			p.metrics.IncrementCounter(MetricEventPublishFailed, nil)
			p.logger.WarnContext(ctx, "failed to publish occurrence event",
				"recurrence_id", occurrence.RecurrenceID,
				"transaction_id", transaction.ID,
				"error", err)
		}
	}

	return true, nil
}
