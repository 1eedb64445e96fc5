// Package metrics registers the Prometheus instruments for the lookup
// engine. Everything registers on the default registry and is exposed by
// the delivery layer's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shelfscan/backend/internal/domain"
)

var (
	// LookupsTotal counts end-to-end barcode lookups by final outcome.
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfscan_lookups_total",
			Help: "Barcode lookups by final outcome (found, not_found).",
		},
		[]string{"outcome"},
	)

	// LookupDuration observes end-to-end lookup latency.
	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shelfscan_lookup_duration_seconds",
			Help:    "End-to-end barcode lookup latency.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ProviderRequests counts provider calls by provider and outcome.
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfscan_provider_requests_total",
			Help: "Provider lookups by provider and tri-state outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// CacheEvents counts gateway probe results during the cache pass.
	CacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfscan_cache_events_total",
			Help: "Cache probe results (hit, negative_hit, miss).",
		},
		[]string{"event"},
	)
)

// OutcomeLabel maps a tri-state provider outcome to its metric label.
func OutcomeLabel(status domain.OutcomeStatus) string {
	switch status {
	case domain.OutcomeFound:
		return "found"
	case domain.OutcomeNotFound:
		return "not_found"
	default:
		return "error"
	}
}
