package app

import (
	"net/http"

	"github.com/heartmarshall/tripmatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/tripmatch-backend/internal/transport/rest"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health      *rest.HealthHandler
	Transaction *rest.TransactionHandler
	Admin       *rest.AdminHandler
}

// NewRouter mounts all routes. global wraps every route; overrideLimit wraps
// only the manual override endpoints.
func NewRouter(h Handlers, global middleware.Middleware, overrideLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/transactions/{id}/link", overrideLimit(http.HandlerFunc(h.Transaction.Link)))
	mux.Handle("POST /api/transactions/{id}/dismiss-suggestion", overrideLimit(http.HandlerFunc(h.Transaction.DismissSuggestion)))
	mux.HandleFunc("GET /api/transactions/{id}/overrides", h.Transaction.Overrides)

	mux.HandleFunc("GET /admin/reconcile/stats", h.Admin.ReconcileStats)
	mux.HandleFunc("POST /admin/reconcile/run", h.Admin.RunReconcile)

	return global(mux)
}
