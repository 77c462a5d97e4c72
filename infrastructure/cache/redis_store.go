package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// scanBatchSize bounds how many keys a single SCAN/DEL round trip handles
// during pattern invalidation.
const scanBatchSize = 100

// RedisStore is the production Store backed by a shared Redis client. Every
// Redis failure is absorbed here: logged as a warning and reported to callers
// as a miss or zero-delete, never as an error. A circuit breaker wraps the
// round trips so a dead Redis degrades to instant misses instead of paying a
// connect timeout on every request.
type RedisStore struct {
	client  *redis.Client
	prefix  string
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewRedisStore creates a store over an existing Redis client. All keys are
// namespaced under prefix (e.g. "opsboard:") so several deployments can share
// one Redis.
func NewRedisStore(client *redis.Client, prefix string, logger *zap.Logger) *RedisStore {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis-cache",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("cache circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &RedisStore{
		client:  client,
		prefix:  prefix,
		breaker: breaker,
		logger:  logger,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	result, err := s.breaker.Execute(func() (any, error) {
		data, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		s.warn("cache get failed", key, err)
		return nil, false
	}
	data, ok := result.([]byte)
	if !ok || data == nil {
		return nil, false
	}
	return data, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	_, err := s.breaker.Execute(func() (any, error) {
		return nil, s.client.Set(ctx, s.fullKey(key), value, ttl).Err()
	})
	if err != nil {
		s.warn("cache set failed", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) int64 {
	if len(keys) == 0 {
		return 0
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = s.fullKey(key)
	}

	result, err := s.breaker.Execute(func() (any, error) {
		return s.client.Del(ctx, full...).Result()
	})
	if err != nil {
		s.warn("cache delete failed", keys[0], err)
		return 0
	}
	deleted, _ := result.(int64)
	return deleted
}

// DeleteByPattern walks the keyspace with SCAN and deletes matches in batches.
// SCAN never blocks Redis the way KEYS would, at the cost of missing keys
// created mid-scan; invalidation is best-effort so that is acceptable.
func (s *RedisStore) DeleteByPattern(ctx context.Context, pattern string) int64 {
	result, err := s.breaker.Execute(func() (any, error) {
		var deleted int64
		var cursor uint64
		match := s.fullKey(pattern)
		for {
			keys, next, err := s.client.Scan(ctx, cursor, match, scanBatchSize).Result()
			if err != nil {
				return deleted, err
			}
			if len(keys) > 0 {
				n, err := s.client.Del(ctx, keys...).Result()
				deleted += n
				if err != nil {
					return deleted, err
				}
			}
			cursor = next
			if cursor == 0 {
				return deleted, nil
			}
		}
	})
	if err != nil {
		s.warn("cache pattern delete failed", pattern, err)
		return 0
	}
	deleted, _ := result.(int64)
	return deleted
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) fullKey(key string) string {
	return s.prefix + key
}

func (s *RedisStore) warn(msg, key string, err error) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		// The breaker already logged its state change; per-operation noise
		// would flood the log while Redis is down.
		return
	}
	s.logger.Warn(msg, zap.String("key", key), zap.Error(err))
}
