package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

// MemoryStore is a mutex-guarded in-process store for local development and
// tests. It honors TTLs and glob pattern deletes but shares nothing across
// processes.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	stop  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory store with a background sweep that
// evicts expired entries once a minute.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]memoryItem),
		stop:  make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok || time.Now().After(item.expiresAt) {
		return nil, false
	}
	// Copy so callers cannot mutate the stored entry.
	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, true
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memoryItem{
		value:     stored,
		expiresAt: time.Now().Add(ttl),
	}
	return true
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, key := range keys {
		if _, ok := s.items[key]; ok {
			delete(s.items, key)
			deleted++
		}
	}
	return deleted
}

func (s *MemoryStore) DeleteByPattern(ctx context.Context, pattern string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for key := range s.items {
		if matched, err := path.Match(pattern, key); err == nil && matched {
			delete(s.items, key)
			deleted++
		}
	}
	return deleted
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

// Size returns the number of live entries, for tests and stats.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			for key, item := range s.items {
				if now.After(item.expiresAt) {
					delete(s.items, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
