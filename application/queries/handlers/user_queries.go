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

// UserQueries serves user reads through the cache layer. Each method picks
// the read-through or forced-refresh path from the query's Refresh flag; the
// repository is only reached on a miss or a refresh.
type UserQueries struct {
	users  ports.UserRepository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewUserQueries creates the user query handler.
func NewUserQueries(users ports.UserRepository, c *cache.Cache, logger *zap.Logger) *UserQueries {
	return &UserQueries{
		users:  users,
		cache:  c,
		logger: logger,
	}
}

// GetProfile returns one user's profile.
func (h *UserQueries) GetProfile(ctx context.Context, q queries.GetUserProfileQuery) (*entities.User, error) {
	if err := q.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	key := cache.UserProfileKey(q.UserID)
	fetch := func(ctx context.Context) (*entities.User, error) {
		return h.users.GetByID(ctx, q.UserID)
	}

	if q.Refresh {
		return cache.Refresh(ctx, h.cache, key, cache.Medium, fetch)
	}
	return cache.WithCache(ctx, h.cache, key, cache.Medium, fetch)
}

// GetPermissions returns the permission codes a user's groups grant.
func (h *UserQueries) GetPermissions(ctx context.Context, q queries.GetUserPermissionsQuery) (*queries.UserPermissionsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	key := cache.UserPermissionsKey(q.UserID)
	fetch := func(ctx context.Context) (*queries.UserPermissionsResult, error) {
		permissions, err := h.users.Permissions(ctx, q.UserID)
		if err != nil {
			return nil, err
		}
		return &queries.UserPermissionsResult{
			UserID:      q.UserID,
			Permissions: permissions,
		}, nil
	}

	if q.Refresh {
		return cache.Refresh(ctx, h.cache, key, cache.Long, fetch)
	}
	return cache.WithCache(ctx, h.cache, key, cache.Long, fetch)
}

// List returns one page of users.
func (h *UserQueries) List(ctx context.Context, q queries.ListUsersQuery) (*queries.ListUsersResult, error) {
	if err := q.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	key := cache.UsersListKey(q.CacheQualifier())
	filter := q.Filter.Normalize()
	fetch := func(ctx context.Context) (*queries.ListUsersResult, error) {
		users, err := h.users.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &queries.ListUsersResult{
			Users:    users,
			Page:     filter.Page,
			PageSize: filter.PageSize,
		}, nil
	}

	if q.Refresh {
		return cache.Refresh(ctx, h.cache, key, cache.Short, fetch)
	}
	return cache.WithCache(ctx, h.cache, key, cache.Short, fetch)
}
