package services

import (
	"context"
	"testing"
	"time"

	"opsboard-backend/domain/core/entities"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *entities.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*entities.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if n := args.Get(0); n != nil {
		return n.([]*entities.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func TestNotifyCreatesAndInvalidates(t *testing.T) {
	invalidator, store := newInvalidatorOverStore(t)
	ctx := context.Background()
	store.Set(ctx, cache.NotificationsKey("u1", "all"), []byte("{}"), time.Minute)
	store.Set(ctx, cache.DashboardKey("stats"), []byte("{}"), time.Minute)

	repo := new(mockNotificationRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Notification")).Return(nil).Once()

	svc := NewNotificationService(repo, invalidator, zap.NewNop())

	notification, err := svc.Notify(ctx, "u1", "Deploy finished", "build 42 is live")
	require.NoError(t, err)
	assert.NotEmpty(t, notification.ID)
	assert.Equal(t, "u1", notification.UserID)
	assert.False(t, notification.Read)

	_, found := store.Get(ctx, cache.NotificationsKey("u1", "all"))
	assert.False(t, found)
	_, found = store.Get(ctx, cache.DashboardKey("stats"))
	assert.False(t, found)
	repo.AssertExpectations(t)
}

func TestNotifyValidation(t *testing.T) {
	invalidator, _ := newInvalidatorOverStore(t)
	repo := new(mockNotificationRepo)
	svc := NewNotificationService(repo, invalidator, zap.NewNop())

	_, err := svc.Notify(context.Background(), "", "title", "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Notify(context.Background(), "u1", "", "")
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMarkReadInvalidatesUserNotifications(t *testing.T) {
	invalidator, store := newInvalidatorOverStore(t)
	ctx := context.Background()
	store.Set(ctx, cache.NotificationsKey("u1", "all"), []byte("{}"), time.Minute)
	store.Set(ctx, cache.NotificationsKey("u1", "unread"), []byte("{}"), time.Minute)
	store.Set(ctx, cache.NotificationsKey("u2", "all"), []byte("{}"), time.Minute)

	repo := new(mockNotificationRepo)
	repo.On("MarkRead", mock.Anything, "u1", "n1").Return(nil).Once()

	svc := NewNotificationService(repo, invalidator, zap.NewNop())
	require.NoError(t, svc.MarkRead(ctx, "u1", "n1"))

	_, found := store.Get(ctx, cache.NotificationsKey("u1", "all"))
	assert.False(t, found)
	_, found = store.Get(ctx, cache.NotificationsKey("u1", "unread"))
	assert.False(t, found)
	_, found = store.Get(ctx, cache.NotificationsKey("u2", "all"))
	assert.True(t, found, "other users' caches must survive")
	repo.AssertExpectations(t)
}

func TestMarkReadNotFoundPropagates(t *testing.T) {
	invalidator, store := newInvalidatorOverStore(t)
	ctx := context.Background()
	store.Set(ctx, cache.NotificationsKey("u1", "all"), []byte("{}"), time.Minute)

	repo := new(mockNotificationRepo)
	repo.On("MarkRead", mock.Anything, "u1", "missing").
		Return(apperrors.NewNotFoundError("notification")).Once()

	svc := NewNotificationService(repo, invalidator, zap.NewNop())
	err := svc.MarkRead(ctx, "u1", "missing")
	assert.True(t, apperrors.IsNotFound(err))

	// Failed writes invalidate nothing.
	_, found := store.Get(ctx, cache.NotificationsKey("u1", "all"))
	assert.True(t, found)
}
