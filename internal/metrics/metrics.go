package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ask pipeline metrics
	AskRequestsTotal   *prometheus.CounterVec
	AskDurationSeconds *prometheus.HistogramVec
	IntentsTotal       *prometheus.CounterVec

	// Fallback metrics
	FallbackRequestsTotal   *prometheus.CounterVec
	FallbackDurationSeconds *prometheus.HistogramVec

	// Knowledge store metrics
	KnowledgeLoadsTotal *prometheus.CounterVec
	KnowledgeRecords    *prometheus.GaugeVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Ask pipeline metrics
		AskRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "askuenr_ask_requests_total",
				Help: "Total number of answered questions by source and origin",
			},
			[]string{"source", "origin"}, // source: JSON, Gemini, Fallback; origin: IT_DEPT_JSON, STAFF_JSON, GUIDE_JSON, none
		),

		AskDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "askuenr_ask_duration_seconds",
				Help:    "Ask pipeline duration in seconds by source",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30}, // local hits are sub-ms, fallback up to 30s
			},
			[]string{"source"},
		),

		IntentsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "askuenr_intents_total",
				Help: "Total number of classified questions by intent type",
			},
			[]string{"type"},
		),

		// Fallback metrics
		FallbackRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "askuenr_fallback_requests_total",
				Help: "Total number of generative fallback calls by provider and status",
			},
			[]string{"provider", "status"}, // status: success, error, timeout, too_short
		),

		FallbackDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "askuenr_fallback_duration_seconds",
				Help:    "Generative fallback call duration in seconds by provider",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30}, // Matches 30s default timeout
			},
			[]string{"provider"},
		),

		// Knowledge store metrics
		KnowledgeLoadsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "askuenr_knowledge_loads_total",
				Help: "Total number of knowledge document loads by document and status",
			},
			[]string{"document", "status"}, // status: success, missing, malformed
		),

		KnowledgeRecords: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "askuenr_knowledge_records",
				Help: "Number of records held per knowledge document",
			},
			[]string{"document"},
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "askuenr_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"}, // error_type: validation, rate_limit, internal
		),

		// Rate limiter metrics
		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "askuenr_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: ask
		),
	}

	return m
}

// RecordAsk records a completed ask pipeline run
func (m *Metrics) RecordAsk(source, origin string, duration float64) {
	if m == nil {
		return
	}
	if origin == "" {
		origin = "none"
	}
	m.AskRequestsTotal.WithLabelValues(source, origin).Inc()
	m.AskDurationSeconds.WithLabelValues(source).Observe(duration)
}

// RecordIntent records a classified question
func (m *Metrics) RecordIntent(intentType string) {
	if m == nil {
		return
	}
	m.IntentsTotal.WithLabelValues(intentType).Inc()
}

// RecordFallback records a generative fallback call with status
func (m *Metrics) RecordFallback(provider, status string, duration float64) {
	if m == nil {
		return
	}
	m.FallbackRequestsTotal.WithLabelValues(provider, status).Inc()
	m.FallbackDurationSeconds.WithLabelValues(provider).Observe(duration)
}

// RecordKnowledgeLoad records a knowledge document load and its record count
func (m *Metrics) RecordKnowledgeLoad(document, status string, records int) {
	if m == nil {
		return
	}
	m.KnowledgeLoadsTotal.WithLabelValues(document, status).Inc()
	m.KnowledgeRecords.WithLabelValues(document).Set(float64(records))
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, module string) {
	if m == nil {
		return
	}
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	if m == nil {
		return
	}
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}
