package handlers

import (
	"net/http"

	"opsboard-backend/application/queries"
	queryhandlers "opsboard-backend/application/queries/handlers"

	"go.uber.org/zap"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardQueries *queryhandlers.DashboardQueries
	logger           *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardQueries *queryhandlers.DashboardQueries, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
		logger:           logger,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	query := queries.GetDashboardStatsQuery{
		Refresh: refreshRequested(r),
	}

	stats, err := h.dashboardQueries.Stats(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, stats)
}
