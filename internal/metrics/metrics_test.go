package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordLookups(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementLookup(OutcomeFound)
	m.IncrementLookup(OutcomeFound)
	m.IncrementLookup(OutcomeInvalid)
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.RecordCacheMiss()
	m.ObserveLookup(20 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LookupDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementLookup(OutcomeError)
		m.ObserveLookup(time.Second)
		m.RecordCacheHit()
		m.RecordCacheMiss()
	})
}
