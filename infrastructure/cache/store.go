package cache

import (
	"context"
	"time"
)

// Store is the minimal key-value surface the cache layer needs. Implementations
// absorb their own failures: a broken backend reports misses and zero deletes
// (with a logged warning) instead of returning errors, so the cache can be
// removed or disabled without changing any behavior except latency.
//
// Implementations must be safe for concurrent use; the only shared state is the
// backend connection handle itself.
type Store interface {
	// Get returns the stored value for key, or (nil, false) when absent.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key with the given TTL. Returns false when the
	// value could not be stored.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool

	// Delete removes the given keys and returns how many existed.
	Delete(ctx context.Context, keys ...string) int64

	// DeleteByPattern removes every key matching the glob pattern and returns
	// how many were removed.
	DeleteByPattern(ctx context.Context, pattern string) int64

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}
