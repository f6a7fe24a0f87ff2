package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/statusboard/pkg/metrics"
)

// MountCounter reports the number of live mounts.
type MountCounter interface {
	MountCount() int
}

// HealthHandler handles liveness and metrics requests.
type HealthHandler struct {
	mounts MountCounter
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(mounts MountCounter) *HealthHandler {
	return &HealthHandler{mounts: mounts}
}

type healthResponse struct {
	Status string `json:"status"`
	Mounts int    `json:"mounts"`
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Mounts: h.mounts.MountCount()})
}

// HandleMetrics handles GET /metrics from the custom registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
