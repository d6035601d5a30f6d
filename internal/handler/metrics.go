package handler

import (
	"fmt"
	"net/http"

	"github.com/alimenta/alimenta/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "alimenta_logins_total{status=\"success\"} %d\n", snap.LoginSuccesses)
	writeMetric(w, "alimenta_logins_total{status=\"failure\"} %d\n", snap.LoginFailures)
	writeMetric(w, "alimenta_registrations_total %d\n", snap.Registrations)

	writeMetric(w, "alimenta_tokens_rejected_total{reason=\"missing\"} %d\n", snap.TokensRejectedMissing)
	writeMetric(w, "alimenta_tokens_rejected_total{reason=\"expired\"} %d\n", snap.TokensRejectedExpired)
	writeMetric(w, "alimenta_tokens_rejected_total{reason=\"invalid\"} %d\n", snap.TokensRejectedInvalid)

	writeMetric(w, "alimenta_food_lookups_total %d\n", snap.FoodLookups)
	writeMetric(w, "alimenta_food_lookup_duration_seconds_count %d\n", snap.FoodLookupDurationCount)
	writeMetric(w, "alimenta_food_lookup_duration_seconds_sum %.6f\n", float64(snap.FoodLookupDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
