package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/tripmatch-backend/internal/service/reconcile"
)

const checkTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// pipelineState exposes the reconcile pipeline to health checks.
type pipelineState interface {
	Enabled() bool
	LastRun() (reconcile.RunStatus, bool)
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db       dbPinger
	pipeline pipelineState
	version  string
}

// NewHealthHandler creates a HealthHandler. pipeline may be nil.
func NewHealthHandler(db dbPinger, pipeline pipelineState, version string) *HealthHandler {
	return &HealthHandler{db: db, pipeline: pipeline, version: version}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string               `json:"status"`
	Latency string               `json:"latency,omitempty"`
	LastRun *reconcile.RunStatus `json:"lastRun,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component. Only the database decides the HTTP
// status; the pipeline is "disabled" without a classifier and "degraded"
// when its last run failed.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	components := map[string]CompStatus{"database": db}
	if h.pipeline != nil {
		components["reconcile"] = h.pipelineStatus()
	}

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func (h *HealthHandler) pipelineStatus() CompStatus {
	if !h.pipeline.Enabled() {
		return CompStatus{Status: "disabled"}
	}
	last, ok := h.pipeline.LastRun()
	if !ok {
		return CompStatus{Status: "ok"}
	}
	comp := CompStatus{Status: "ok", LastRun: &last}
	if last.Error != "" || last.Result.FailedBuckets > 0 {
		comp.Status = "degraded"
	}
	return comp
}
