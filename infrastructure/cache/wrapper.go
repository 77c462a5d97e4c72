package cache

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Cache bundles a Store with the TTL policy table and observability hooks.
// Query handlers compose WithCache or Refresh around their repository calls;
// they never talk to the Store directly.
type Cache struct {
	store   Store
	ttl     TTLTable
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures optional Cache collaborators.
type Option func(*Cache)

// WithMetrics attaches Prometheus collectors to the cache.
func WithMetrics(m *Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

// New creates a Cache over the given store. The TTL table may come from
// DefaultTTLTable or from configuration overrides.
func New(store Store, ttl TTLTable, logger *zap.Logger, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the underlying store for the invalidator and health checks.
func (c *Cache) Store() Store {
	return c.store
}

// Fetcher computes the authoritative value on a cache miss, typically a
// database query.
type Fetcher[T any] func(ctx context.Context) (T, error)

// WithCache is the read-through path: serve the decoded entry on a hit,
// otherwise fetch, store, and return. Fetcher errors propagate unchanged and
// nothing is written on failure. An entry that fails to decode is dropped and
// recomputed as if it were a miss.
//
// There is no per-key coalescing: concurrent misses on the same key may each
// invoke the fetcher. Fetchers are idempotent reads, so the duplicate work is
// accepted rather than paying for cross-request locking.
func WithCache[T any](ctx context.Context, c *Cache, key string, d Duration, fetch Fetcher[T]) (T, error) {
	if data, ok := c.store.Get(ctx, key); ok {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			c.metrics.hit(key)
			return value, nil
		}
		// Undecodable entries are poison for every future read of this key.
		c.metrics.decodeError()
		c.logger.Warn("dropping undecodable cache entry", zap.String("key", key))
		c.store.Delete(ctx, key)
	}
	c.metrics.miss(key)
	return fetchAndStore(ctx, c, key, d, fetch)
}

// Refresh is the forced-refresh path: always fetch, overwrite the stored
// entry, and return. Callers use it when a request explicitly asks for fresh
// data while still wanting the result cached for subsequent reads.
func Refresh[T any](ctx context.Context, c *Cache, key string, d Duration, fetch Fetcher[T]) (T, error) {
	return fetchAndStore(ctx, c, key, d, fetch)
}

func fetchAndStore[T any](ctx context.Context, c *Cache, key string, d Duration, fetch Fetcher[T]) (T, error) {
	value, err := fetch(ctx)
	if err != nil {
		var zero T
		c.metrics.fetchError()
		return zero, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		// The caller still gets its value; only the cache write is skipped.
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return value, nil
	}
	c.store.Set(ctx, key, data, c.ttl.Resolve(d))
	return value, nil
}
