package handlers

import (
	"encoding/json"
	"net/http"

	"opsboard-backend/application/ports"
	"opsboard-backend/application/queries"
	queryhandlers "opsboard-backend/application/queries/handlers"
	"opsboard-backend/application/services"
	"opsboard-backend/pkg/common"
	"opsboard-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userQueries *queryhandlers.UserQueries
	userService *services.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userQueries *queryhandlers.UserQueries,
	userService *services.UserService,
	logger *zap.Logger,
) *UserHandler {
	return &UserHandler{
		userQueries: userQueries,
		userService: userService,
		logger:      logger,
	}
}

// UpdateUserRequest represents the request body for updating a user profile
type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=active suspended deleted"`
}

// GetUser handles GET /users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	query := queries.GetUserProfileQuery{
		UserID:  chi.URLParam(r, "userID"),
		Refresh: refreshRequested(r),
	}

	user, err := h.userQueries.GetProfile(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}

// GetPermissions handles GET /users/{userID}/permissions
func (h *UserHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	query := queries.GetUserPermissionsQuery{
		UserID:  chi.URLParam(r, "userID"),
		Refresh: refreshRequested(r),
	}

	result, err := h.userQueries.GetPermissions(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	pagination := common.ExtractPaginationParams(r)

	query := queries.ListUsersQuery{
		Filter: ports.ListUsersFilter{
			Status:   r.URL.Query().Get("status"),
			Page:     pagination.Page,
			PageSize: pagination.PageSize,
		},
		Refresh: refreshRequested(r),
	}

	result, err := h.userQueries.List(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// UpdateUser handles PUT /users/{userID}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cmd := services.UpdateProfileCommand{
		UserID:    chi.URLParam(r, "userID"),
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Status:    req.Status,
	}

	user, err := h.userService.UpdateProfile(r.Context(), cmd)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}
