package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeDisabled = "disabled"
	OutcomeEmpty    = "empty"
)

var (
	ExternalCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claty_external_calls_total",
			Help: "Total number of calls to external services by outcome",
		},
		[]string{"service", "outcome"},
	)

	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "claty_external_call_duration_seconds",
			Help:    "Duration of calls to external services in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claty_search_requests_total",
			Help: "Total number of answered searches by persona",
		},
		[]string{"persona", "special"},
	)

	TrendFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "claty_trend_fallbacks_total",
			Help: "Total number of trend requests served from the fallback list",
		},
	)
)

// ObserveCall records one external call that started at start.
func ObserveCall(service, outcome string, start time.Time) {
	ExternalCalls.WithLabelValues(service, outcome).Inc()
	ExternalCallDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
}
