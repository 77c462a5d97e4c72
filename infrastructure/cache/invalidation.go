package cache

import (
	"context"

	"go.uber.org/zap"
)

// Invalidator deletes the keys and key families known to depend on a domain
// entity after it mutates. Services call it after a successful write.
//
// Invalidation is best-effort and idempotent: deleting an absent key is not an
// error, a failed step never stops the remaining steps, and nothing here can
// fail the mutation that triggered it. The worst case is stale data served
// until TTL expiry.
type Invalidator struct {
	store   Store
	logger  *zap.Logger
	metrics *Metrics
}

// NewInvalidator creates an invalidator over the given store. Metrics may be
// nil.
func NewInvalidator(store Store, logger *zap.Logger, metrics *Metrics) *Invalidator {
	return &Invalidator{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// InvalidateUser drops every cache that depends on one user: their profile,
// permissions and notifications exactly, plus the list pages and dashboard
// aggregates they appear in.
func (i *Invalidator) InvalidateUser(ctx context.Context, userID string) {
	deleted := i.store.Delete(ctx,
		UserProfileKey(userID),
		UserPermissionsKey(userID),
	)
	deleted += i.store.DeleteByPattern(ctx, NotificationsPattern(userID))
	deleted += i.store.DeleteByPattern(ctx, UsersListPattern())
	deleted += i.store.DeleteByPattern(ctx, DashboardPattern())

	i.metrics.invalidated("user", deleted)
	i.logger.Debug("invalidated user caches",
		zap.String("userId", userID),
		zap.Int64("deleted", deleted),
	)
}

// InvalidateGroup drops the group's own cache, the groups list, and — because
// group membership defines what users may do — every user's permissions cache
// and the dashboard aggregates.
func (i *Invalidator) InvalidateGroup(ctx context.Context, groupID string) {
	deleted := i.store.Delete(ctx, GroupKey(groupID), GroupsListKey())
	deleted += i.store.DeleteByPattern(ctx, UserPermissionsPattern())
	deleted += i.store.DeleteByPattern(ctx, DashboardPattern())

	i.metrics.invalidated("group", deleted)
	i.logger.Debug("invalidated group caches",
		zap.String("groupId", groupID),
		zap.Int64("deleted", deleted),
	)
}

// InvalidatePermissions drops every user's permissions cache, for changes that
// cannot be attributed to a single group or user.
func (i *Invalidator) InvalidatePermissions(ctx context.Context) {
	deleted := i.store.DeleteByPattern(ctx, UserPermissionsPattern())

	i.metrics.invalidated("permissions", deleted)
	i.logger.Debug("invalidated permission caches", zap.Int64("deleted", deleted))
}

// InvalidateDashboard drops the dashboard aggregates after any mutation that
// feeds them.
func (i *Invalidator) InvalidateDashboard(ctx context.Context) {
	deleted := i.store.DeleteByPattern(ctx, DashboardPattern())

	i.metrics.invalidated("dashboard", deleted)
	i.logger.Debug("invalidated dashboard caches", zap.Int64("deleted", deleted))
}

// InvalidateNotifications drops one user's notification caches.
func (i *Invalidator) InvalidateNotifications(ctx context.Context, userID string) {
	deleted := i.store.DeleteByPattern(ctx, NotificationsPattern(userID))

	i.metrics.invalidated("notifications", deleted)
	i.logger.Debug("invalidated notification caches",
		zap.String("userId", userID),
		zap.Int64("deleted", deleted),
	)
}
