package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is the probe surface a dependency must expose.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

const readyzTimeout = 5 * time.Second

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db HealthChecker
}

// NewHealthHandler creates a new HealthHandler. A nil db marks the
// database check as not configured instead of failing it.
func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the body of both probe endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz reports that the process is up. No dependency checks, so a
// broken database never gets the process restarted.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz pings the database and reports 503 until it answers, which
// keeps traffic away from a pod that cannot serve a single request.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
	defer cancel()

	checks := map[string]string{}
	status := http.StatusOK

	if h.db == nil {
		checks["postgres"] = "not configured"
	} else if err := h.db.Ping(ctx); err != nil {
		checks["postgres"] = "error: " + err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["postgres"] = "ok"
	}

	body := HealthResponse{Status: "ok", Checks: checks}
	if status != http.StatusOK {
		body.Status = "unhealthy"
	}

	writeJSON(w, status, body)
}
