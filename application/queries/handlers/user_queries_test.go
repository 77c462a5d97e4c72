package handlers

import (
	"context"
	"errors"
	"testing"

	"opsboard-backend/application/ports"
	"opsboard-backend/application/queries"
	"opsboard-backend/domain/core/entities"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, filter ports.ListUsersFilter) ([]*entities.User, error) {
	args := m.Called(ctx, filter)
	if u := args.Get(0); u != nil {
		return u.([]*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Permissions(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func newHandlerCache(t *testing.T) *cache.Cache {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	return cache.New(store, cache.DefaultTTLTable(), zap.NewNop())
}

func TestGetProfileServesSecondReadFromCache(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u1").
		Return(&entities.User{ID: "u1", Name: "Ada"}, nil).Once()

	h := NewUserQueries(repo, newHandlerCache(t), zap.NewNop())
	ctx := context.Background()

	first, err := h.GetProfile(ctx, queries.GetUserProfileQuery{UserID: "u1"})
	require.NoError(t, err)

	second, err := h.GetProfile(ctx, queries.GetUserProfileQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	repo.AssertExpectations(t)
}

func TestGetProfileRefreshBypassesCache(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u1").
		Return(&entities.User{ID: "u1", Name: "Ada"}, nil).Twice()

	h := NewUserQueries(repo, newHandlerCache(t), zap.NewNop())
	ctx := context.Background()

	_, err := h.GetProfile(ctx, queries.GetUserProfileQuery{UserID: "u1"})
	require.NoError(t, err)

	_, err = h.GetProfile(ctx, queries.GetUserProfileQuery{UserID: "u1", Refresh: true})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestGetProfileValidation(t *testing.T) {
	repo := new(mockUserRepo)
	h := NewUserQueries(repo, newHandlerCache(t), zap.NewNop())

	_, err := h.GetProfile(context.Background(), queries.GetUserProfileQuery{})
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetProfileRepositoryErrorPropagates(t *testing.T) {
	boom := apperrors.NewDatabaseError("get user", errors.New("connection refused"))
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u1").Return(nil, boom).Twice()

	h := NewUserQueries(repo, newHandlerCache(t), zap.NewNop())
	ctx := context.Background()

	_, err := h.GetProfile(ctx, queries.GetUserProfileQuery{UserID: "u1"})
	assert.ErrorIs(t, err, boom)

	// The failure was not cached; the next read hits the repository again.
	_, err = h.GetProfile(ctx, queries.GetUserProfileQuery{UserID: "u1"})
	assert.ErrorIs(t, err, boom)
	repo.AssertExpectations(t)
}

func TestListUsersDistinctFiltersDistinctEntries(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("List", mock.Anything, ports.ListUsersFilter{Status: "active", Page: 1, PageSize: 25}).
		Return([]*entities.User{{ID: "u1"}}, nil).Once()
	repo.On("List", mock.Anything, ports.ListUsersFilter{Status: "", Page: 1, PageSize: 25}).
		Return([]*entities.User{{ID: "u1"}, {ID: "u2"}}, nil).Once()

	h := NewUserQueries(repo, newHandlerCache(t), zap.NewNop())
	ctx := context.Background()

	active, err := h.List(ctx, queries.ListUsersQuery{Filter: ports.ListUsersFilter{Status: "active"}})
	require.NoError(t, err)
	assert.Len(t, active.Users, 1)

	all, err := h.List(ctx, queries.ListUsersQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Users, 2)

	// Both listings are now cached under their own qualifier.
	_, err = h.List(ctx, queries.ListUsersQuery{Filter: ports.ListUsersFilter{Status: "active"}})
	require.NoError(t, err)
	_, err = h.List(ctx, queries.ListUsersQuery{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetPermissionsCachesResult(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Permissions", mock.Anything, "u1").
		Return([]string{"users.read", "users.write"}, nil).Once()

	h := NewUserQueries(repo, newHandlerCache(t), zap.NewNop())
	ctx := context.Background()

	first, err := h.GetPermissions(ctx, queries.GetUserPermissionsQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"users.read", "users.write"}, first.Permissions)

	second, err := h.GetPermissions(ctx, queries.GetUserPermissionsQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, first.Permissions, second.Permissions)
	repo.AssertExpectations(t)
}
