package handlers

import (
	"context"

	"opsboard-backend/application/ports"
	"opsboard-backend/application/queries"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"go.uber.org/zap"
)

// NotificationQueries serves notification reads through the cache layer.
type NotificationQueries struct {
	notifications ports.NotificationRepository
	cache         *cache.Cache
	logger        *zap.Logger
}

// NewNotificationQueries creates the notification query handler.
func NewNotificationQueries(notifications ports.NotificationRepository, c *cache.Cache, logger *zap.Logger) *NotificationQueries {
	return &NotificationQueries{
		notifications: notifications,
		cache:         c,
		logger:        logger,
	}
}

// List returns a user's notifications. The full and unread-only listings are
// distinct cache entries under the same per-user namespace, so one pattern
// delete invalidates both.
func (h *NotificationQueries) List(ctx context.Context, q queries.ListNotificationsQuery) (*queries.ListNotificationsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	qualifier := "all"
	if q.UnreadOnly {
		qualifier = "unread"
	}
	key := cache.NotificationsKey(q.UserID, qualifier)

	fetch := func(ctx context.Context) (*queries.ListNotificationsResult, error) {
		items, err := h.notifications.ListByUser(ctx, q.UserID, q.UnreadOnly)
		if err != nil {
			return nil, err
		}
		unread := 0
		for _, n := range items {
			if !n.Read {
				unread++
			}
		}
		return &queries.ListNotificationsResult{
			Notifications: items,
			Unread:        unread,
		}, nil
	}

	if q.Refresh {
		return cache.Refresh(ctx, h.cache, key, cache.Short, fetch)
	}
	return cache.WithCache(ctx, h.cache, key, cache.Short, fetch)
}
