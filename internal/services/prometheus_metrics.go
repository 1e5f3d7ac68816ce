package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricTransactionRecorded   = "transaction.recorded"
	MetricRecurrenceChanged     = "recurrence.changed"
	MetricProjectionTruncated   = "projection.truncated"
	MetricDetectionGroup        = "detection.group"
	MetricCatchUpOccurrence     = "catch_up.occurrence"
	MetricEventPublishFailed    = "event.publish.failed"
	MetricDetectionDuration     = "detection.run"
	MetricCalendarDuration      = "projection.calendar"
	MetricCatchUpDuration       = "catch_up.run"
	MetricDetectionSuggestions  = "detection.suggestions"
	MetricActiveRecurrenceCount = "recurrences.active"
)

type PrometheusMetrics struct {
	transactionsRecorded  *prometheus.CounterVec
	recurrenceChanges     *prometheus.CounterVec
	projectionsTruncated  prometheus.Counter
	detectionGroups       *prometheus.CounterVec
	catchUpOccurrences    *prometheus.CounterVec
	publishFailures       prometheus.Counter
	detectionDuration     prometheus.Histogram
	calendarDuration      prometheus.Histogram
	catchUpDuration       prometheus.Histogram
	detectionSuggestions  prometheus.Gauge
	activeRecurrenceCount prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_recorded_total",
				Help: "Total number of ledger transactions recorded",
			},
			[]string{"source", "status"},
		),
		recurrenceChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_recurrence_changes_total",
				Help: "Total number of recurrence lifecycle changes",
			},
			[]string{"action", "origin"},
		),
		projectionsTruncated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_projections_truncated_total",
				Help: "Total number of projections stopped at the iteration ceiling",
			},
		),
		detectionGroups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_detection_groups_total",
				Help: "Signature groups evaluated by the pattern detector by outcome",
			},
			[]string{"reason"},
		),
		catchUpOccurrences: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_catch_up_occurrences_total",
				Help: "Occurrences handled by the catch-up processor",
			},
			[]string{"status"},
		),
		publishFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_event_publish_failures_total",
				Help: "Total number of occurrence events that failed to publish",
			},
		),
		detectionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_detection_duration_milliseconds",
				Help:    "Pattern detection duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		calendarDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_calendar_projection_duration_milliseconds",
				Help:    "Calendar projection duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		catchUpDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_catch_up_duration_seconds",
				Help:    "Catch-up run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		detectionSuggestions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_detection_suggestions",
				Help: "Number of suggestions produced by the latest detection run",
			},
		),
		activeRecurrenceCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_active_recurrences",
				Help: "Number of recurrences considered by the latest catch-up run",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionRecorded:
		m.transactionsRecorded.WithLabelValues(tags["source"], tags["status"]).Inc()
	case MetricRecurrenceChanged:
		m.recurrenceChanges.WithLabelValues(tags["action"], tags["origin"]).Inc()
	case MetricProjectionTruncated:
		m.projectionsTruncated.Inc()
	case MetricDetectionGroup:
		if reason := tags["reason"]; reason != "" {
			m.detectionGroups.WithLabelValues(reason).Inc()
		}
	case MetricCatchUpOccurrence:
		if status := tags["status"]; status != "" {
			m.catchUpOccurrences.WithLabelValues(status).Inc()
		}
	case MetricEventPublishFailed:
		m.publishFailures.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricDetectionDuration:
		m.detectionDuration.Observe(float64(duration.Milliseconds()))
	case MetricCalendarDuration:
		m.calendarDuration.Observe(float64(duration.Milliseconds()))
	case MetricCatchUpDuration:
		m.catchUpDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDetectionSuggestions:
		m.detectionSuggestions.Set(value)
	case MetricActiveRecurrenceCount:
		m.activeRecurrenceCount.Set(value)
	}
}
