package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_requests_total",
			Help: "Total number of audit requests served, by result source",
		},
		[]string{"source"}, // cache | provider
	)

	AuditFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_failures_total",
			Help: "Total number of audit requests that failed",
		},
		[]string{"reason"}, // not_found | provider | internal
	)

	AuditDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "audit_duration_seconds",
			Help: "End-to-end duration of audit requests in seconds",
		},
	)

	AutocompleteRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "autocomplete_requests_total",
			Help: "Total number of autocomplete requests forwarded to the provider",
		},
	)
)
