package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-workbench/auth"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

// HealthResponse reports the server status and whether the slot store can
// be read.
type HealthResponse struct {
	Status string `json:"status"`
	Slots  string `json:"slots"`
}

// HealthHandler reads one slot per request.
type HealthHandler struct {
	slots  kvstore.Slots
	logger logger.Logger
}

// NewHealthHandler creates a HealthHandler over slots.
func NewHealthHandler(slots kvstore.Slots, log logger.Logger) *HealthHandler {
	return &HealthHandler{slots: slots, logger: log}
}

// Check responds 200 when the slot store answers, 503 otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	_, err := h.slots.Get(r.Context(), auth.TokenKey)
	if err != nil && !errors.Is(err, kvstore.ErrSlotNotFound) {
		h.logger.Error(r.Context(), "health check failed to read slots", map[string]interface{}{
			"error": err.Error(),
		})
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Slots: "unreachable"})
		return
	}
	respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Slots: "ok"})
}
