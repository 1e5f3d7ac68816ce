package dto

import (
	"math"
	"time"

	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/services"

	"github.com/google/uuid"
)

// Recurrence Request DTOs

// RecurrenceRequest represents the payload for creating or replacing a recurrence.
// Accepting a suggestion posts it back with origin "detected".
type RecurrenceRequest struct {
	Account     string  `json:"account" validate:"required,max=100"`
	Vendor      string  `json:"vendor" validate:"max=255"`
	Category    string  `json:"category" validate:"required,max=100"`
	SubCategory *string `json:"sub_category,omitempty" validate:"omitempty,max=100"`
	Amount      string  `json:"amount" validate:"required,nonzero_amount"`
	Currency    string  `json:"currency" validate:"required,currency"`
	BasisDate   string  `json:"basis_date" validate:"required,date"`
	Frequency   string  `json:"frequency" validate:"required,frequency"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,date"`
	Origin      string  `json:"origin,omitempty" validate:"omitempty,origin"`
}

// EndRecurrenceRequest represents the payload for ending a recurrence
type EndRecurrenceRequest struct {
	EndDate string `json:"end_date" validate:"required,date"`
}

// Recurrence Response DTOs

// RecurrenceResponse represents a recurrence in API responses
type RecurrenceResponse struct {
	ID                   uuid.UUID `json:"id"`
	Account              string    `json:"account"`
	Vendor               string    `json:"vendor"`
	Category             string    `json:"category"`
	SubCategory          *string   `json:"sub_category,omitempty"`
	Amount               string    `json:"amount"`
	Currency             string    `json:"currency"`
	BasisDate            string    `json:"basis_date"`
	Frequency            string    `json:"frequency"`
	EndDate              *string   `json:"end_date,omitempty"`
	Origin               string    `json:"origin"`
	LastMaterializedDate *string   `json:"last_materialized_date,omitempty"`
	CreatedAt            time.Time `json:"created_at,omitempty"`
	UpdatedAt            time.Time `json:"updated_at,omitempty"`
}

// OccurrenceResponse represents one projected occurrence
type OccurrenceResponse struct {
	RecurrenceID uuid.UUID `json:"recurrence_id"`
	Date         string    `json:"date"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Account      string    `json:"account"`
	Vendor       string    `json:"vendor"`
	Category     string    `json:"category"`
	SubCategory  *string   `json:"sub_category,omitempty"`
}

// ProjectionResponse is the projection of one recurrence over a window
type ProjectionResponse struct {
	Recurrence  RecurrenceResponse   `json:"recurrence"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Truncated   bool                 `json:"truncated"`
}

// NextOccurrenceResponse holds the next occurrence, or none when the recurrence has ended
type NextOccurrenceResponse struct {
	Occurrence *OccurrenceResponse `json:"occurrence"`
	Ended      bool                `json:"ended"`
}

// GroupOutcomeResponse explains how one group of similar transactions was judged
type GroupOutcomeResponse struct {
	Vendor      string   `json:"vendor"`
	Account     string   `json:"account"`
	Category    string   `json:"category"`
	SubCategory string   `json:"sub_category,omitempty"`
	Size        int      `json:"size"`
	Reason      string   `json:"reason"`
	MeanGapDays *float64 `json:"mean_gap_days,omitempty"`
	CV          *float64 `json:"cv,omitempty"`
	TrustTier   string   `json:"trust_tier,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// SuggestionsResponse is the result of one detection pass
type SuggestionsResponse struct {
	Suggestions []RecurrenceResponse   `json:"suggestions"`
	Outcomes    []GroupOutcomeResponse `json:"outcomes"`
}

// ProjectionFailure names a recurrence whose projection failed
type ProjectionFailure struct {
	RecurrenceID uuid.UUID `json:"recurrence_id"`
	Error        string    `json:"error"`
}

// CalendarResponse merges the occurrences of every recurrence in a window
type CalendarResponse struct {
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Truncated   []uuid.UUID          `json:"truncated"`
	Failed      []ProjectionFailure  `json:"failed"`
}

// CatchUpResponse summarizes a catch-up run
type CatchUpResponse struct {
	Date         string                `json:"date"`
	Recurrences  int                   `json:"recurrences"`
	Created      int                   `json:"created"`
	Skipped      int                   `json:"skipped"`
	Failed       int                   `json:"failed"`
	Truncated    int                   `json:"truncated"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToModel converts the request into a recurrence. Fields are assumed validated.
func (r *RecurrenceRequest) ToModel() (*models.Recurrence, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return nil, err
	}

	basisDate, err := models.ParseDate(r.BasisDate)
	if err != nil {
		return nil, err
	}

	frequency, err := models.ParseFrequency(r.Frequency)
	if err != nil {
		return nil, err
	}

	recurrence := &models.Recurrence{
		Account:     r.Account,
		Vendor:      r.Vendor,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Amount:      amount,
		Currency:    r.Currency,
		BasisDate:   basisDate,
		Frequency:   frequency,
		Origin:      r.Origin,
	}

	if r.EndDate != nil {
		endDate, err := models.ParseDate(*r.EndDate)
		if err != nil {
			return nil, err
		}
		recurrence.EndDate = &endDate
	}

	return recurrence, nil
}

// NewRecurrenceResponse converts a recurrence model to its API representation
func NewRecurrenceResponse(r *models.Recurrence) RecurrenceResponse {
	return RecurrenceResponse{
		ID:                   r.ID,
		Account:              r.Account,
		Vendor:               r.Vendor,
		Category:             r.Category,
		SubCategory:          r.SubCategory,
		Amount:               r.Amount.StringFixed(2),
		Currency:             r.Currency,
		BasisDate:            r.BasisDate.Format(models.DateLayout),
		Frequency:            r.Frequency.String(),
		EndDate:              formatOptionalDate(r.EndDate),
		Origin:               r.Origin,
		LastMaterializedDate: formatOptionalDate(r.LastMaterializedDate),
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// NewRecurrenceResponses converts a slice of recurrence models
func NewRecurrenceResponses(recurrences []models.Recurrence) []RecurrenceResponse {
	result := make([]RecurrenceResponse, 0, len(recurrences))
	for i := range recurrences {
		result = append(result, NewRecurrenceResponse(&recurrences[i]))
	}
	return result
}

// NewOccurrenceResponse converts an occurrence to its API representation
func NewOccurrenceResponse(o models.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		RecurrenceID: o.RecurrenceID,
		Date:         o.Date.Format(models.DateLayout),
		Amount:       o.Amount.StringFixed(2),
		Currency:     o.Currency,
		Account:      o.Account,
		Vendor:       o.Vendor,
		Category:     o.Category,
		SubCategory:  o.SubCategory,
	}
}

// NewOccurrenceResponses converts a slice of occurrences
func NewOccurrenceResponses(occurrences []models.Occurrence) []OccurrenceResponse {
	result := make([]OccurrenceResponse, 0, len(occurrences))
	for _, o := range occurrences {
		result = append(result, NewOccurrenceResponse(o))
	}
	return result
}

// NewProjectionResponse converts a projection result
func NewProjectionResponse(result *services.ProjectionResult) ProjectionResponse {
	return ProjectionResponse{
		Recurrence:  NewRecurrenceResponse(result.Recurrence),
		Occurrences: NewOccurrenceResponses(result.Occurrences),
		Truncated:   result.Truncated,
	}
}

// NewSuggestionsResponse converts a detection report
func NewSuggestionsResponse(report *services.DetectionReport) SuggestionsResponse {
	outcomes := make([]GroupOutcomeResponse, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		response := GroupOutcomeResponse{
			Vendor:      outcome.Signature.Vendor,
			Account:     outcome.Signature.Account,
			Category:    outcome.Signature.Category,
			SubCategory: outcome.Signature.SubCategory,
			Size:        outcome.Size,
			Reason:      string(outcome.Reason),
			MeanGapDays: finiteOrNil(outcome.MeanGapDays),
			CV:          finiteOrNil(outcome.CV),
			TrustTier:   string(outcome.TrustTier),
		}
		if outcome.Err != nil {
			response.Error = outcome.Err.Error()
		}
		outcomes = append(outcomes, response)
	}

	return SuggestionsResponse{
		Suggestions: NewRecurrenceResponses(report.Suggestions),
		Outcomes:    outcomes,
	}
}

// NewCalendarResponse converts a calendar result for the requested window
func NewCalendarResponse(start, end time.Time, result *services.CalendarResult) CalendarResponse {
	failed := make([]ProjectionFailure, 0, len(result.Failed))
	for _, failure := range result.Failed {
		failed = append(failed, ProjectionFailure{RecurrenceID: failure.RecurrenceID, Error: failure.Err.Error()})
	}

	return CalendarResponse{
		StartDate:   start.Format(models.DateLayout),
		EndDate:     end.Format(models.DateLayout),
		Occurrences: NewOccurrenceResponses(result.Occurrences),
		Truncated:   result.Truncated,
		Failed:      failed,
	}
}

// NewCatchUpResponse converts a catch-up result
func NewCatchUpResponse(date time.Time, result *services.CatchUpResult) CatchUpResponse {
	return CatchUpResponse{
		Date:         date.Format(models.DateLayout),
		Recurrences:  result.Recurrences,
		Created:      result.Created,
		Skipped:      result.Skipped,
		Failed:       result.Failed,
		Truncated:    result.Truncated,
		Transactions: NewTransactionResponses(result.Transactions),
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(models.DateLayout)
	return &formatted
}

// finiteOrNil drops values JSON cannot encode, such as the infinite CV of a zero-mean group
func finiteOrNil(value float64) *float64 {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return nil
	}
	return &value
}
