package handlers

import (
	"context"
	"testing"

	"opsboard-backend/application/queries"
	"opsboard-backend/domain/core/entities"

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

func TestListNotificationsCountsUnread(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("ListByUser", mock.Anything, "u1", false).
		Return([]*entities.Notification{
			{ID: "n1", Read: true},
			{ID: "n2", Read: false},
			{ID: "n3", Read: false},
		}, nil).Once()

	h := NewNotificationQueries(repo, newHandlerCache(t), zap.NewNop())

	result, err := h.List(context.Background(), queries.ListNotificationsQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, result.Notifications, 3)
	assert.Equal(t, 2, result.Unread)
	repo.AssertExpectations(t)
}

func TestListNotificationsFullAndUnreadAreSeparateEntries(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("ListByUser", mock.Anything, "u1", false).
		Return([]*entities.Notification{{ID: "n1", Read: true}, {ID: "n2"}}, nil).Once()
	repo.On("ListByUser", mock.Anything, "u1", true).
		Return([]*entities.Notification{{ID: "n2"}}, nil).Once()

	h := NewNotificationQueries(repo, newHandlerCache(t), zap.NewNop())
	ctx := context.Background()

	full, err := h.List(ctx, queries.ListNotificationsQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, full.Notifications, 2)

	unread, err := h.List(ctx, queries.ListNotificationsQuery{UserID: "u1", UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, unread.Notifications, 1)

	// Both shapes now served from cache.
	_, err = h.List(ctx, queries.ListNotificationsQuery{UserID: "u1"})
	require.NoError(t, err)
	_, err = h.List(ctx, queries.ListNotificationsQuery{UserID: "u1", UnreadOnly: true})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
