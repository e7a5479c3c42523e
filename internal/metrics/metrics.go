package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics tracks vehicle lookups. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Lookups        *prometheus.CounterVec
	LookupDuration prometheus.Histogram
	CacheResults   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vehicle_query_lookups_total",
			Help: "Vehicle lookups by outcome",
		}, []string{"outcome"}),

		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "vehicle_query_lookup_duration_seconds",
			Help:    "Duration of vehicle lookups including fines and ownership history",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vehicle_query_cache_results_total",
			Help: "Query cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss"
	}
}

func (m *Metrics) IncrementLookup(outcome string) {
	if m != nil {
		m.Lookups.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveLookup(d time.Duration) {
	if m != nil {
		m.LookupDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) RecordCacheHit() {
	if m != nil {
		m.CacheResults.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) RecordCacheMiss() {
	if m != nil {
		m.CacheResults.WithLabelValues("miss").Inc()
	}
}
