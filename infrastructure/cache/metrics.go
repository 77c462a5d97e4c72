package cache

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the cache layer. A nil *Metrics
// is valid and records nothing, so tests can construct caches without a
// registry.
type Metrics struct {
	Hits          *prometheus.CounterVec
	Misses        *prometheus.CounterVec
	Invalidations *prometheus.CounterVec
	FetchErrors   prometheus.Counter
	DecodeErrors  prometheus.Counter
}

// NewMetrics creates and registers the cache collectors on the given registry.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Cache reads served from the store",
			},
			[]string{"prefix"},
		),
		Misses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Cache reads that fell through to the fetcher",
			},
			[]string{"prefix"},
		),
		Invalidations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_invalidations_total",
				Help:      "Entries deleted by the invalidation orchestrator",
			},
			[]string{"scope"},
		),
		FetchErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_fetch_errors_total",
				Help:      "Fetcher failures surfaced to callers",
			},
		),
		DecodeErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_decode_errors_total",
				Help:      "Stored entries that could not be decoded and were dropped",
			},
		),
	}

	reg.MustRegister(m.Hits, m.Misses, m.Invalidations, m.FetchErrors, m.DecodeErrors)
	return m
}

func (m *Metrics) hit(key string) {
	if m != nil {
		m.Hits.WithLabelValues(keyPrefix(key)).Inc()
	}
}

func (m *Metrics) miss(key string) {
	if m != nil {
		m.Misses.WithLabelValues(keyPrefix(key)).Inc()
	}
}

func (m *Metrics) invalidated(scope string, count int64) {
	if m != nil && count > 0 {
		m.Invalidations.WithLabelValues(scope).Add(float64(count))
	}
}

func (m *Metrics) fetchError() {
	if m != nil {
		m.FetchErrors.Inc()
	}
}

func (m *Metrics) decodeError() {
	if m != nil {
		m.DecodeErrors.Inc()
	}
}

// keyPrefix extracts the domain prefix from a key for metric labels, keeping
// label cardinality bounded by the known prefix set.
func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
