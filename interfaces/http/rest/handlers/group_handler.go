package handlers

import (
	"encoding/json"
	"net/http"

	"opsboard-backend/application/queries"
	queryhandlers "opsboard-backend/application/queries/handlers"
	"opsboard-backend/application/services"
	"opsboard-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GroupHandler handles group-related HTTP requests
type GroupHandler struct {
	groupQueries *queryhandlers.GroupQueries
	groupService *services.GroupService
	logger       *zap.Logger
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(
	groupQueries *queryhandlers.GroupQueries,
	groupService *services.GroupService,
	logger *zap.Logger,
) *GroupHandler {
	return &GroupHandler{
		groupQueries: groupQueries,
		groupService: groupService,
		logger:       logger,
	}
}

// UpdatePermissionsRequest represents the request body for replacing a group's
// permission set
type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,dive,min=1,max=100"`
}

// GetGroup handles GET /groups/{groupID}
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	query := queries.GetGroupQuery{
		GroupID: chi.URLParam(r, "groupID"),
		Refresh: refreshRequested(r),
	}

	group, err := h.groupQueries.Get(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, group)
}

// ListGroups handles GET /groups
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	query := queries.ListGroupsQuery{
		Refresh: refreshRequested(r),
	}

	groups, err := h.groupQueries.List(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, groups)
}

// UpdatePermissions handles PUT /groups/{groupID}/permissions
func (h *GroupHandler) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	var req UpdatePermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	groupID := chi.URLParam(r, "groupID")
	if err := h.groupService.UpdatePermissions(r.Context(), groupID, req.Permissions); err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"groupId":     groupID,
		"permissions": req.Permissions,
	})
}
