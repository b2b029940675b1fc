package handler

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	serviceName string
	startedAt   time.Time
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, startedAt: time.Now()}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"service":        h.serviceName,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}
