package di

import (
	"context"

	"opsboard-backend/application/ports"
	"opsboard-backend/application/queries/handlers"
	"opsboard-backend/application/services"
	"opsboard-backend/infrastructure/cache"
	"opsboard-backend/infrastructure/config"
	"opsboard-backend/infrastructure/persistence/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	return zapCfg.Build()
}

// ProvidePgxPool creates the shared PostgreSQL connection pool
func ProvidePgxPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, cfg.DatabaseURL)
}

// ProvideRegistry creates the Prometheus registry with the standard runtime
// collectors
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideCacheMetrics creates the cache collectors, or nil when metrics are
// disabled
func ProvideCacheMetrics(cfg *config.Config, reg *prometheus.Registry) *cache.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	return cache.NewMetrics("opsboard", reg)
}

// ProvideTTLTable builds the TTL policy table, applying any configured
// per-class overrides on top of the defaults
func ProvideTTLTable(cfg *config.Config) cache.TTLTable {
	table := cache.DefaultTTLTable()
	if ttl := cfg.TTLOverride(cfg.CacheTTLShort); ttl > 0 {
		table[cache.Short] = ttl
	}
	if ttl := cfg.TTLOverride(cfg.CacheTTLMedium); ttl > 0 {
		table[cache.Medium] = ttl
	}
	if ttl := cfg.TTLOverride(cfg.CacheTTLLong); ttl > 0 {
		table[cache.Long] = ttl
	}
	if ttl := cfg.TTLOverride(cfg.CacheTTLVeryLong); ttl > 0 {
		table[cache.VeryLong] = ttl
	}
	return table
}

// ProvideStore selects the cache backend once at startup. Disabled caching
// yields the null store, so nothing downstream ever branches on configuration.
func ProvideStore(cfg *config.Config, logger *zap.Logger) cache.Store {
	if !cfg.CacheEnabled {
		logger.Info("caching disabled, using null store")
		return cache.NewNullStore()
	}

	if cfg.CacheBackend == "memory" {
		logger.Info("using in-memory cache store")
		return cache.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	logger.Info("using redis cache store", zap.String("addr", cfg.RedisAddr))
	return cache.NewRedisStore(client, cfg.CacheKeyPrefix, logger)
}

// ProvideCache creates the read-through cache wrapper
func ProvideCache(store cache.Store, ttl cache.TTLTable, logger *zap.Logger, metrics *cache.Metrics) *cache.Cache {
	return cache.New(store, ttl, logger, cache.WithMetrics(metrics))
}

// ProvideInvalidator creates the cache invalidation orchestrator
func ProvideInvalidator(store cache.Store, logger *zap.Logger, metrics *cache.Metrics) *cache.Invalidator {
	return cache.NewInvalidator(store, logger, metrics)
}

// ProvideUserRepository creates the user repository
func ProvideUserRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.UserRepository {
	return postgres.NewUserRepository(pool, logger)
}

// ProvideGroupRepository creates the group repository
func ProvideGroupRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.GroupRepository {
	return postgres.NewGroupRepository(pool, logger)
}

// ProvideNotificationRepository creates the notification repository
func ProvideNotificationRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.NotificationRepository {
	return postgres.NewNotificationRepository(pool, logger)
}

// ProvideDashboardRepository creates the dashboard repository
func ProvideDashboardRepository(pool *pgxpool.Pool, logger *zap.Logger) ports.DashboardRepository {
	return postgres.NewDashboardRepository(pool, logger)
}

// ProvideUserQueries creates the user query handler
func ProvideUserQueries(users ports.UserRepository, c *cache.Cache, logger *zap.Logger) *handlers.UserQueries {
	return handlers.NewUserQueries(users, c, logger)
}

// ProvideGroupQueries creates the group query handler
func ProvideGroupQueries(groups ports.GroupRepository, c *cache.Cache, logger *zap.Logger) *handlers.GroupQueries {
	return handlers.NewGroupQueries(groups, c, logger)
}

// ProvideDashboardQueries creates the dashboard query handler
func ProvideDashboardQueries(dashboard ports.DashboardRepository, c *cache.Cache, logger *zap.Logger) *handlers.DashboardQueries {
	return handlers.NewDashboardQueries(dashboard, c, logger)
}

// ProvideNotificationQueries creates the notification query handler
func ProvideNotificationQueries(notifications ports.NotificationRepository, c *cache.Cache, logger *zap.Logger) *handlers.NotificationQueries {
	return handlers.NewNotificationQueries(notifications, c, logger)
}

// ProvideUserService creates the user mutation service
func ProvideUserService(users ports.UserRepository, invalidator *cache.Invalidator, logger *zap.Logger) *services.UserService {
	return services.NewUserService(users, invalidator, logger)
}

// ProvideGroupService creates the group mutation service
func ProvideGroupService(groups ports.GroupRepository, invalidator *cache.Invalidator, logger *zap.Logger) *services.GroupService {
	return services.NewGroupService(groups, invalidator, logger)
}

// ProvideNotificationService creates the notification mutation service
func ProvideNotificationService(notifications ports.NotificationRepository, invalidator *cache.Invalidator, logger *zap.Logger) *services.NotificationService {
	return services.NewNotificationService(notifications, invalidator, logger)
}
