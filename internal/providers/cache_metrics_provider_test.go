package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingMetrics struct {
	hits   int
	misses int
}

func (m *countingMetrics) IncRequestsTotal(_, _ string, _ int)              {}
func (m *countingMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *countingMetrics) IncCacheHits()                                    { m.hits++ }
func (m *countingMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *countingMetrics) IncChecks(_ string)                               {}
func (m *countingMetrics) IncFingerprintSaves()                             {}
func (m *countingMetrics) IncNotifications(_ string)                        {}

func TestMetricsCacheProvider_CountsHitsAndMisses(t *testing.T) {
	metrics := &countingMetrics{}
	inner := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &cacheTestLogger{})
	c := &MetricsCacheProvider{inner: inner, metrics: metrics}

	_, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, metrics.misses)

	c.Set("k", []byte("v"))
	_, ok = c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 1, metrics.hits)
}

func TestNewInstrumentedCacheProvider_DisabledSkipsWrapping(t *testing.T) {
	c := NewInstrumentedCacheProvider(cacheConfig(false, 1, time.Second), &cacheTestLogger{}, &countingMetrics{})
	assert.IsType(t, &noopCache{}, c)
}

func TestNewInstrumentedCacheProvider_EnabledWraps(t *testing.T) {
	c := NewInstrumentedCacheProvider(cacheConfig(true, 1, time.Second), &cacheTestLogger{}, &countingMetrics{})
	assert.IsType(t, &MetricsCacheProvider{}, c)
}
