package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recurrence-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite drives the middleware through a router so route labels are set
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Use(RequestID(), PanicRecovery())
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func counterValue(s *suite.Suite, counter prometheus.Counter) float64 {
	metric := &dto.Metric{}
	s.Require().NoError(counter.Write(metric))
	return metric.GetCounter().GetValue()
}

func (s *PanicRecoveryTestSuite) serve(path, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesSystemError() {
	route := "/api/v1/recurrences/:id/project"
	s.echo.GET(route, func(c echo.Context) error {
		panic("projection exploded")
	})

	panicsBefore := counterValue(&s.Suite, apiPanicsTotal.WithLabelValues(route))
	errorsBefore := counterValue(&s.Suite, apiErrorsTotal.WithLabelValues("SYSTEM_001", route, "500"))

	rec := s.serve("/api/v1/recurrences/42/project", "trace-project-42")

	s.Equal(http.StatusInternalServerError, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("trace-project-42", body.Error.TraceID)
	s.NotContains(rec.Body.String(), "projection exploded")

	s.Equal(panicsBefore+1, counterValue(&s.Suite, apiPanicsTotal.WithLabelValues(route)))
	s.Equal(errorsBefore+1, counterValue(&s.Suite, apiErrorsTotal.WithLabelValues("SYSTEM_001", route, "500")))
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsKept() {
	route := "/api/v1/transactions"
	s.echo.GET(route, func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusAccepted)
		_, _ = c.Response().Write([]byte(`{"partial":`))
		panic("stream broke")
	})

	panicsBefore := counterValue(&s.Suite, apiPanicsTotal.WithLabelValues(route))

	rec := s.serve(route, "")

	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal(`{"partial":`, rec.Body.String())
	s.Equal(panicsBefore+1, counterValue(&s.Suite, apiPanicsTotal.WithLabelValues(route)))
}

func (s *PanicRecoveryTestSuite) TestUnknownTraceWithoutRequestID() {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("no trace")
	})
	s.NotPanics(func() { _ = handler(c) })

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("unknown", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestHandlerWithoutPanicPassesThrough() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	rec := s.serve("/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"healthy"}`, rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicValues() {
	route := "/api/v1/recurrences/suggestions"
	var value interface{}
	s.echo.GET(route, func(c echo.Context) error {
		panic(value)
	})

	for name, v := range map[string]interface{}{
		"string": "bad state",
		"error":  http.ErrAbortHandler,
		"int":    42,
		"nil":    nil,
	} {
		s.Run(name, func() {
			value = v
			rec := s.serve(route, "")
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
