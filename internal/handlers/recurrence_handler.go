package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"recurrence-ledger/internal/dto"
	apierrors "recurrence-ledger/internal/errors"
	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RecurrenceHandler handles recurrence, projection and detection HTTP requests
type RecurrenceHandler struct {
	recurrenceService services.RecurrenceServiceInterface
	processor         services.RecurringProcessorInterface
	now               func() time.Time
}

// NewRecurrenceHandler creates a new recurrence handler
func NewRecurrenceHandler(
	recurrenceService services.RecurrenceServiceInterface,
	processor services.RecurringProcessorInterface,
) *RecurrenceHandler {
	return &RecurrenceHandler{
		recurrenceService: recurrenceService,
		processor:         processor,
		now:               time.Now,
	}
}

// CreateRecurrence creates a manual recurrence or accepts a suggested one
// POST /api/v1/recurrences
func (h *RecurrenceHandler) CreateRecurrence(c echo.Context) error {
	var req dto.RecurrenceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	recurrence, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	if err := h.recurrenceService.CreateRecurrence(recurrence); err != nil {
		return sendRecurrenceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewRecurrenceResponse(recurrence))
}

// ListRecurrences lists stored recurrences
// GET /api/v1/recurrences?account=&origin=&active_on=
func (h *RecurrenceHandler) ListRecurrences(c echo.Context) error {
	activeOn, err := getDateParam(c, "active_on")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	recurrences, err := h.recurrenceService.ListRecurrences(models.RecurrenceFilters{
		Account:  c.QueryParam("account"),
		Origin:   c.QueryParam("origin"),
		ActiveOn: activeOn,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecurrenceResponses(recurrences))
}

// GetRecurrence retrieves a recurrence by ID
// GET /api/v1/recurrences/:id
func (h *RecurrenceHandler) GetRecurrence(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
	}

	recurrence, err := h.recurrenceService.GetRecurrence(id)
	if err != nil {
		return sendRecurrenceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecurrenceResponse(recurrence))
}

// UpdateRecurrence replaces the editable fields of a recurrence
// PUT /api/v1/recurrences/:id
func (h *RecurrenceHandler) UpdateRecurrence(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
	}

	var req dto.RecurrenceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	recurrence, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	recurrence.ID = id

	if err := h.recurrenceService.UpdateRecurrence(recurrence); err != nil {
		return sendRecurrenceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecurrenceResponse(recurrence))
}

// EndRecurrence sets the last date a recurrence may produce an occurrence
// POST /api/v1/recurrences/:id/end
func (h *RecurrenceHandler) EndRecurrence(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
	}

	var req dto.EndRecurrenceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	endDate, err := models.ParseDate(req.EndDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	recurrence, err := h.recurrenceService.EndRecurrence(id, endDate)
	if err != nil {
		return sendRecurrenceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecurrenceResponse(recurrence))
}

// DeleteRecurrence removes a recurrence. Materialized transactions stay in the ledger.
// DELETE /api/v1/recurrences/:id
func (h *RecurrenceHandler) DeleteRecurrence(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
	}

	if err := h.recurrenceService.DeleteRecurrence(id); err != nil {
		return sendRecurrenceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ProjectRecurrence lists the occurrences of one recurrence inside a window
// GET /api/v1/recurrences/:id/occurrences?start_date=&end_date=
func (h *RecurrenceHandler) ProjectRecurrence(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	result, err := h.recurrenceService.ProjectRecurrence(id, start, end)
	if err != nil {
		return sendRecurrenceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewProjectionResponse(result))
}

// NextOccurrence returns the first occurrence strictly after a reference date
// GET /api/v1/recurrences/:id/next?after=
func (h *RecurrenceHandler) NextOccurrence(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
	}

	after, err := getDateParam(c, "after")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}
	reference := models.DateOf(h.now())
	if after != nil {
		reference = *after
	}

	occurrence, err := h.recurrenceService.NextOccurrence(id, reference)
	if err != nil {
		return sendRecurrenceError(c, err)
	}

	response := dto.NextOccurrenceResponse{Ended: occurrence == nil}
	if occurrence != nil {
		next := dto.NewOccurrenceResponse(*occurrence)
		response.Occurrence = &next
	}

	return c.JSON(http.StatusOK, response)
}

// SuggestRecurrences runs pattern detection over stored history
// GET /api/v1/recurrences/suggestions
func (h *RecurrenceHandler) SuggestRecurrences(c echo.Context) error {
	report, err := h.recurrenceService.SuggestRecurrences(h.now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuggestionsResponse(report))
}

// UpcomingOccurrences merges the occurrences of every recurrence in a window
// GET /api/v1/occurrences?start_date=&end_date=
func (h *RecurrenceHandler) UpcomingOccurrences(c echo.Context) error {
	start, end, err := parseWindow(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	result, err := h.recurrenceService.UpcomingOccurrences(c.Request().Context(), start, end)
	if err != nil {
		return sendRecurrenceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCalendarResponse(start, end, result))
}

// CatchUp materializes every overdue occurrence up to today
// POST /api/v1/recurrences/catch-up
func (h *RecurrenceHandler) CatchUp(c echo.Context) error {
	now := h.now()

	result, err := h.processor.ProcessDueOccurrences(c.Request().Context(), now)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails("catch-up interrupted, it resumes on the next run"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCatchUpResponse(models.DateOf(now), result))
}

func parseWindow(c echo.Context) (time.Time, time.Time, error) {
	start, err := getRequiredDateParam(c, "start_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := getRequiredDateParam(c, "end_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// sendRecurrenceError maps service and model errors onto API error codes
func sendRecurrenceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrRecurrenceNotFound):
		return SendError(c, apierrors.RecurrenceNotFound)
	case errors.Is(err, models.ErrUnsupportedFrequency):
		return SendError(c, apierrors.RecurrenceInvalidFrequency, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidWindow):
		return SendError(c, apierrors.RecurrenceInvalidWindow)
	case errors.Is(err, services.ErrCalendarWindowTooWide):
		return SendError(c, apierrors.RecurrenceWindowTooWide, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrRecurrenceEndBeforeBasis):
		return SendError(c, apierrors.RecurrenceEndBeforeBasis)
	case errors.Is(err, services.ErrProjectionTruncated):
		return SendError(c, apierrors.RecurrenceProjectionLimit, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrRecurrenceAccountRequired),
		errors.Is(err, models.ErrRecurrenceBasisRequired),
		errors.Is(err, models.ErrTransactionCategoryMissing),
		errors.Is(err, models.ErrInvalidCurrency),
		errors.Is(err, models.ErrInvalidRecurrenceOrigin):
		return SendError(c, apierrors.RecurrenceValidationFailed, apierrors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
