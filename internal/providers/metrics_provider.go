package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bguard/internal/structures"
)

// StoreStats is the slice of the store the metrics provider observes.
type StoreStats interface {
	Len() int
}

type MetricsProviderInterface interface {
	IncRequestsTotal(method, endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncChecks(decision string)
	IncFingerprintSaves()
	IncNotifications(action string)
}

type MetricsProvider struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	checksTotal       *prometheus.CounterVec
	fingerprintSaves  prometheus.Counter
	notificationsSent *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(method, endpoint string, status int) {
	m.requestsTotal.WithLabelValues(method, endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncChecks(decision string) {
	m.checksTotal.WithLabelValues(decision).Inc()
}

func (m *MetricsProvider) IncFingerprintSaves() {
	m.fingerprintSaves.Inc()
}

func (m *MetricsProvider) IncNotifications(action string) {
	m.notificationsSent.WithLabelValues(action).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, stats StoreStats) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guard_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "guard_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guard_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guard_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		checksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guard_checks_total",
			Help: "Mount check sequences by decision",
		}, []string{"decision"}),

		fingerprintSaves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guard_fingerprint_saves_total",
			Help: "Total number of persisted fingerprint refreshes",
		}),

		notificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guard_notifications_total",
			Help: "Host webhook notifications by action",
		}, []string{"action"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "guard_store_keys",
		Help: "Current number of keys in the persistent store",
	}, func() float64 {
		return float64(stats.Len())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_, _ string, _ int)              {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncChecks(_ string)                               {}
func (n *noopMetrics) IncFingerprintSaves()                             {}
func (n *noopMetrics) IncNotifications(_ string)                        {}
