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

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationQueries *queryhandlers.NotificationQueries
	notificationService *services.NotificationService
	logger              *zap.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(
	notificationQueries *queryhandlers.NotificationQueries,
	notificationService *services.NotificationService,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		notificationQueries: notificationQueries,
		notificationService: notificationService,
		logger:              logger,
	}
}

// CreateNotificationRequest represents the request body for creating a
// notification
type CreateNotificationRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body,omitempty" validate:"omitempty,max=2000"`
}

// CreateNotification handles POST /users/{userID}/notifications
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	notification, err := h.notificationService.Notify(r.Context(), chi.URLParam(r, "userID"), req.Title, req.Body)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, notification)
}

// ListNotifications handles GET /users/{userID}/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	query := queries.ListNotificationsQuery{
		UserID:     chi.URLParam(r, "userID"),
		UnreadOnly: r.URL.Query().Get("unread_only") == "true",
		Refresh:    refreshRequested(r),
	}

	result, err := h.notificationQueries.List(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// MarkRead handles POST /users/{userID}/notifications/{notificationID}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	notificationID := chi.URLParam(r, "notificationID")

	if err := h.notificationService.MarkRead(r.Context(), userID, notificationID); err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
