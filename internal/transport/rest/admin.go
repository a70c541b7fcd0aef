package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/internal/service/reconcile"
	"github.com/heartmarshall/tripmatch-backend/internal/transport/middleware"
)

type reconcileService interface {
	GetStats(ctx context.Context) (domain.LinkStatusStats, error)
	RunCycle(ctx context.Context) (reconcile.RunResult, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	reconcile reconcileService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(reconcile reconcileService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reconcile: reconcile,
		log:       logger.With("handler", "admin"),
	}
}

// ReconcileStats returns transaction counts per link status.
// GET /admin/reconcile/stats
func (h *AdminHandler) ReconcileStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	stats, err := h.reconcile.GetStats(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "get reconcile stats", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// RunReconcile runs one reconcile cycle synchronously and returns its summary.
// A cycle that reports failed buckets still answers 200; the summary carries the counts.
// POST /admin/reconcile/run
func (h *AdminHandler) RunReconcile(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	result, err := h.reconcile.RunCycle(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "manual reconcile run", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "reconcile run failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return false
	}
	return true
}
