package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"recurrence-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.RecurrenceNotFound)
//    - Window errors: SendError(c, errors.RecurrenceInvalidWindow)
//    - Business rule violations: SendError(c, errors.RecurrenceEndBeforeBasis)
//
// 2. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Database errors from repositories
//    - Service layer internal errors
//    - Unexpected errors that should not expose internal details to client
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports request validation failures field by field
func SendValidationError(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			details = append(details, fmt.Sprintf("%s: failed %s validation", fieldErr.Field(), fieldErr.Tag()))
		}
		return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(details, getTraceID(c)))
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}
