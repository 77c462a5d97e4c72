package handlers

import (
	"context"

	"opsboard-backend/application/ports"
	"opsboard-backend/application/queries"
	"opsboard-backend/domain/core/entities"
	"opsboard-backend/infrastructure/cache"

	"go.uber.org/zap"
)

// DashboardQueries serves the dashboard aggregates through the cache layer.
// The stats query fans out over several tables, which is exactly the kind of
// read the cache exists for.
type DashboardQueries struct {
	dashboard ports.DashboardRepository
	cache     *cache.Cache
	logger    *zap.Logger
}

// NewDashboardQueries creates the dashboard query handler.
func NewDashboardQueries(dashboard ports.DashboardRepository, c *cache.Cache, logger *zap.Logger) *DashboardQueries {
	return &DashboardQueries{
		dashboard: dashboard,
		cache:     c,
		logger:    logger,
	}
}

// Stats returns the aggregate counters.
func (h *DashboardQueries) Stats(ctx context.Context, q queries.GetDashboardStatsQuery) (*entities.DashboardStats, error) {
	key := cache.DashboardKey("stats")
	fetch := func(ctx context.Context) (*entities.DashboardStats, error) {
		return h.dashboard.Stats(ctx)
	}

	if q.Refresh {
		return cache.Refresh(ctx, h.cache, key, cache.Short, fetch)
	}
	return cache.WithCache(ctx, h.cache, key, cache.Short, fetch)
}
