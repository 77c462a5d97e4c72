package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opsboard-backend/application/ports"
	queryhandlers "opsboard-backend/application/queries/handlers"
	"opsboard-backend/application/services"
	"opsboard-backend/domain/core/entities"
	"opsboard-backend/infrastructure/cache"
	apperrors "opsboard-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
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

func newUserRouter(t *testing.T, repo ports.UserRepository) http.Handler {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	logger := zap.NewNop()
	c := cache.New(store, cache.DefaultTTLTable(), logger)
	invalidator := cache.NewInvalidator(store, logger, nil)

	handler := NewUserHandler(
		queryhandlers.NewUserQueries(repo, c, logger),
		services.NewUserService(repo, invalidator, logger),
		logger,
	)

	r := chi.NewRouter()
	r.Get("/users/{userID}", handler.GetUser)
	r.Put("/users/{userID}", handler.UpdateUser)
	return r
}

func TestGetUserCachesAcrossRequests(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u1").
		Return(&entities.User{ID: "u1", Name: "Ada"}, nil).Once()

	router := newUserRouter(t, repo)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/u1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var user entities.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Ada", user.Name)
	}
	repo.AssertExpectations(t)
}

func TestGetUserRefreshParamForcesFetch(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u1").
		Return(&entities.User{ID: "u1", Name: "Ada"}, nil).Twice()

	router := newUserRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/u1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/u1?_refresh=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestGetUserNotFound(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "nope").
		Return(nil, apperrors.NewNotFoundError("user"))

	router := newUserRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserValidatesBody(t *testing.T) {
	repo := new(mockUserRepo)
	router := newUserRouter(t, repo)

	body := strings.NewReader(`{"status":"frozen"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/users/u1", body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
