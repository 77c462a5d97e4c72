package cache

import (
	"context"
	"time"
)

// NullStore is the disabled-cache strategy: every read is a permanent miss and
// every write a no-op, so callers always recompute from the source of truth.
// It is selected once at construction when caching is turned off; call sites
// never branch on configuration.
type NullStore struct{}

// NewNullStore creates a no-op store.
func NewNullStore() *NullStore {
	return &NullStore{}
}

func (s *NullStore) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

func (s *NullStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	return false
}

func (s *NullStore) Delete(ctx context.Context, keys ...string) int64 {
	return 0
}

func (s *NullStore) DeleteByPattern(ctx context.Context, pattern string) int64 {
	return 0
}

func (s *NullStore) Ping(ctx context.Context) error {
	return nil
}

func (s *NullStore) Close() error {
	return nil
}
