package handlers

import (
	"net/http"
	"time"
)

// HealthHandlers serves the liveness endpoint.
type HealthHandlers struct {
	started time.Time
}

// NewHealthHandlers constructs health handlers anchored at the current time.
func NewHealthHandlers() *HealthHandlers {
	return &HealthHandlers{started: time.Now()}
}

// Healthz responds with a simple status payload for monitoring.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(h.started).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
