package handlers

import (
	"context"

	"opsboard-backend/application/ports"
	"opsboard-backend/application/queries"
	"opsboard-backend/domain/core/entities"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"go.uber.org/zap"
)

// GroupQueries serves group reads through the cache layer.
type GroupQueries struct {
	groups ports.GroupRepository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewGroupQueries creates the group query handler.
func NewGroupQueries(groups ports.GroupRepository, c *cache.Cache, logger *zap.Logger) *GroupQueries {
	return &GroupQueries{
		groups: groups,
		cache:  c,
		logger: logger,
	}
}

// Get returns one group with its permission set.
func (h *GroupQueries) Get(ctx context.Context, q queries.GetGroupQuery) (*entities.Group, error) {
	if err := q.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	key := cache.GroupKey(q.GroupID)
	fetch := func(ctx context.Context) (*entities.Group, error) {
		return h.groups.GetByID(ctx, q.GroupID)
	}

	if q.Refresh {
		return cache.Refresh(ctx, h.cache, key, cache.Medium, fetch)
	}
	return cache.WithCache(ctx, h.cache, key, cache.Medium, fetch)
}

// List returns all groups. Groups change rarely, so the listing uses the long
// duration class.
func (h *GroupQueries) List(ctx context.Context, q queries.ListGroupsQuery) ([]*entities.Group, error) {
	key := cache.GroupsListKey()
	fetch := func(ctx context.Context) ([]*entities.Group, error) {
		return h.groups.List(ctx)
	}

	if q.Refresh {
		return cache.Refresh(ctx, h.cache, key, cache.Long, fetch)
	}
	return cache.WithCache(ctx, h.cache, key, cache.Long, fetch)
}
