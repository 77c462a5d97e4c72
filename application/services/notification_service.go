package services

import (
	"context"
	"time"

	"opsboard-backend/application/ports"
	"opsboard-backend/domain/core/entities"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService owns notification mutations.
type NotificationService struct {
	notifications ports.NotificationRepository
	invalidator   *cache.Invalidator
	logger        *zap.Logger
}

// NewNotificationService creates the notification service.
func NewNotificationService(notifications ports.NotificationRepository, invalidator *cache.Invalidator, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		invalidator:   invalidator,
		logger:        logger,
	}
}

// Notify creates a notification for one user. The new row changes both the
// user's listings and the dashboard unread counter, so both caches are
// dropped.
func (s *NotificationService) Notify(ctx context.Context, userID, title, body string) (*entities.Notification, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	notification := &entities.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}

	s.invalidator.InvalidateNotifications(ctx, userID)
	s.invalidator.InvalidateDashboard(ctx)

	s.logger.Info("notification created",
		zap.String("userId", userID),
		zap.String("notificationId", notification.ID),
	)
	return notification, nil
}

// MarkRead flags one notification as read and drops the user's notification
// caches.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if userID == "" {
		return apperrors.NewValidationError("user ID is required")
	}
	if notificationID == "" {
		return apperrors.NewValidationError("notification ID is required")
	}

	if err := s.notifications.MarkRead(ctx, userID, notificationID); err != nil {
		return err
	}

	s.invalidator.InvalidateNotifications(ctx, userID)
	s.invalidator.InvalidateDashboard(ctx)
	return nil
}
