package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"recurrence-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiPanicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_api_panics_total",
		Help: "Total number of recovered handler panics by route",
	},
	[]string{"endpoint"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response.
// The panic is counted per route in both the panic and API error counters.
// A response the handler already started is left as is.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				recordPanic(c, r)
			}()

			return next(c)
		}
	}
}

func recordPanic(c echo.Context, recovered interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}
	route := c.Path()
	committed := c.Response().Committed

	slog.ErrorContext(c.Request().Context(), "handler panicked",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", recovered),
		"stack_trace", string(debug.Stack()),
		"route", route,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"response_committed", committed,
	)

	apiPanicsTotal.WithLabelValues(route).Inc()
	apiErrorsTotal.WithLabelValues(string(errors.SystemInternalError), route, fmt.Sprintf("%d", http.StatusInternalServerError)).Inc()

	if committed {
		return
	}

	if err := c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID)); err != nil {
		slog.Error("failed to send panic response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
