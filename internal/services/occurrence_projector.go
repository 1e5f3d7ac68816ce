package services

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"recurrence-ledger/internal/models"
)

const (
	DefaultMaxProjectionSteps = 1000
)

var (
	ErrProjectionTruncated = errors.New("projection truncated at iteration ceiling")
	ErrInvalidWindow       = errors.New("window start must not be after window end")
)

type occurrenceProjector struct {
	maxSteps int
}

// NewOccurrenceProjector creates a projector bounded to maxSteps advances per phase.
// A non-positive maxSteps falls back to DefaultMaxProjectionSteps.
func NewOccurrenceProjector(maxSteps int) OccurrenceProjectorInterface {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxProjectionSteps
	}
	return &occurrenceProjector{maxSteps: maxSteps}
}

// Occurrences lazily yields the occurrences of r inside [start, end].
// If projection stops early the last pair carries the error and a zero occurrence.
func (p *occurrenceProjector) Occurrences(r *models.Recurrence, start, end time.Time) iter.Seq2[models.Occurrence, error] {
	return func(yield func(models.Occurrence, error) bool) {
		windowStart := models.DateOf(start)
		windowEnd := models.DateOf(end)

		if windowStart.After(windowEnd) {
			yield(models.Occurrence{}, fmt.Errorf("%w: %s > %s", ErrInvalidWindow,
				windowStart.Format(models.DateLayout), windowEnd.Format(models.DateLayout)))
			return
		}

		cursor, err := p.firstOnOrAfter(r, windowStart)
		if err != nil {
			yield(models.Occurrence{}, err)
			return
		}

		for emitted := 0; ; emitted++ {
			if cursor.After(windowEnd) || r.HasEndedBy(cursor) {
				return
			}

			if emitted >= p.maxSteps {
				yield(models.Occurrence{}, p.truncated(r))
				return
			}

			if !yield(r.OccurrenceAt(cursor), nil) {
				return
			}

			cursor, err = r.Frequency.Advance(cursor)
			if err != nil {
				yield(models.Occurrence{}, err)
				return
			}
		}
	}
}

// Project collects Occurrences. On error the occurrences produced so far are returned with it.
func (p *occurrenceProjector) Project(r *models.Recurrence, start, end time.Time) ([]models.Occurrence, error) {
	occurrences := make([]models.Occurrence, 0)

	for occurrence, err := range p.Occurrences(r, start, end) {
		if err != nil {
			return occurrences, err
		}
		occurrences = append(occurrences, occurrence)
	}

	return occurrences, nil
}

// NextAfter returns the first occurrence strictly after reference, or nil when the recurrence has ended
func (p *occurrenceProjector) NextAfter(r *models.Recurrence, reference time.Time) (*models.Occurrence, error) {
	target := models.DateOf(reference).AddDate(0, 0, 1)
	if r.HasEndedBy(target) {
		return nil, nil
	}

	cursor, err := p.firstOnOrAfter(r, target)
	if err != nil {
		return nil, err
	}

	if r.HasEndedBy(cursor) {
		return nil, nil
	}

	occurrence := r.OccurrenceAt(cursor)
	return &occurrence, nil
}

// firstOnOrAfter walks forward from the basis date until it reaches target
func (p *occurrenceProjector) firstOnOrAfter(r *models.Recurrence, target time.Time) (time.Time, error) {
	if err := r.Frequency.Validate(); err != nil {
		return time.Time{}, err
	}

	cursor := models.DateOf(r.BasisDate)
	for steps := 0; cursor.Before(target); steps++ {
		if steps >= p.maxSteps {
			return cursor, p.truncated(r)
		}

		next, err := r.Frequency.Advance(cursor)
		if err != nil {
			return cursor, err
		}
		cursor = next
	}

	return cursor, nil
}

func (p *occurrenceProjector) truncated(r *models.Recurrence) error {
	return fmt.Errorf("%w: recurrence %s (%s) after %d steps", ErrProjectionTruncated, r.ID, r.Frequency, p.maxSteps)
}
