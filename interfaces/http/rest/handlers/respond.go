package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "opsboard-backend/pkg/errors"

	"go.uber.org/zap"
)

// refreshParam is the request-level signal that bypasses the cache read path.
// The response is still computed and cached; only the lookup is skipped.
const refreshParam = "_refresh"

// refreshRequested reports whether the request asked for fresh data. A bare
// `?_refresh` counts; an explicit false value does not.
func refreshRequested(r *http.Request) bool {
	if !r.URL.Query().Has(refreshParam) {
		return false
	}
	v := r.URL.Query().Get(refreshParam)
	return v != "0" && v != "false"
}

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondAppError maps an application error onto an HTTP response. Unknown
// errors become opaque 500s so internals never leak.
func respondAppError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err))
		}
		respondError(w, logger, status, appErr.Message)
		return
	}
	logger.Error("request failed", zap.Error(err))
	respondError(w, logger, http.StatusInternalServerError, "internal error")
}
