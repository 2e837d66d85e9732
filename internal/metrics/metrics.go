// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SourceFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_source_fetches_total",
			Help: "Source fetches by source type and result",
		},
		[]string{"source_type", "result"},
	)

	IngestedItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_ingested_items_total",
			Help: "Fetched items by source type and outcome (inserted, updated, skipped, error)",
		},
		[]string{"source_type", "outcome"},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_status_transitions_total",
			Help: "Article status transitions by action and result",
		},
		[]string{"action", "result"},
	)

	PostAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_post_attempts_total",
			Help: "Social post attempts by platform and result",
		},
		[]string{"platform", "result"},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_llm_requests_total",
			Help: "LLM requests by task and result",
		},
		[]string{"task", "result"},
	)

	LLMDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_llm_request_duration_seconds",
			Help:    "LLM request latency by task",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"task"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "newsdesk_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_http_requests_total",
			Help: "HTTP requests by route pattern, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	SchedulerRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_scheduler_runs_total",
			Help: "Scheduled job runs by job and result",
		},
		[]string{"job", "result"},
	)
)

// Result maps an error to the result label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
