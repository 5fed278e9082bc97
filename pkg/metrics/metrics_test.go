package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestServiceMetrics(t *testing.T) {
	m := NewWithRegistry("pricing", prometheus.NewRegistry())
	s := m.ForService("pricing")

	s.ObserveQuote("standard", "large")
	s.ObserveQuote("standard", "large")
	s.ObserveCancellation(0.5)
	s.ObserveCache(true)
	s.ObserveCache(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.QuotesTotal.WithLabelValues("pricing", "standard", "large")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("pricing", "0.5")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheRequestsTotal.WithLabelValues("pricing", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheRequestsTotal.WithLabelValues("pricing", "miss")))
}

func TestServiceMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	s := m.ForService("pricing")

	assert.NotPanics(t, func() {
		s.ObserveQuote("budget", "small")
		s.ObserveCancellation(1)
		s.ObserveCache(true)
	})
}

func TestObserveHTTP(t *testing.T) {
	m := NewWithRegistry("pricing", prometheus.NewRegistry())

	m.ObserveHTTP("pricing", "POST", "/api/v1/quotes", 200, 10*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("pricing", "POST", "/api/v1/quotes", "200")))
}
