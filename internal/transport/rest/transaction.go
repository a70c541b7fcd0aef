package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/internal/service/txlink"
)

const maxOverrideBody = 16 << 10

// overrideService defines the manual override operations needed by TransactionHandler.
type overrideService interface {
	LinkTransaction(ctx context.Context, in txlink.LinkInput) error
	DismissSuggestion(ctx context.Context, transactionID string) error
	ListOverrides(ctx context.Context, transactionID string, limit int) ([]domain.AuditRecord, error)
}

// TransactionHandler serves the manual override endpoints.
type TransactionHandler struct {
	svc overrideService
	log *slog.Logger
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(svc overrideService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, log: logger.With("handler", "transaction")}
}

type linkRequest struct {
	TripID     string   `json:"tripId"`
	Confidence *float64 `json:"confidence"`
	Reasoning  *string  `json:"reasoning"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Link handles POST /api/transactions/{id}/link.
func (h *TransactionHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxOverrideBody))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.LinkTransaction(r.Context(), txlink.LinkInput{
		TransactionID: r.PathValue("id"),
		TripID:        req.TripID,
		Confidence:    req.Confidence,
		Reasoning:     req.Reasoning,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// DismissSuggestion handles POST /api/transactions/{id}/dismiss-suggestion.
func (h *TransactionHandler) DismissSuggestion(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DismissSuggestion(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

type overrideRecord struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}

type overridesResponse struct {
	Overrides []overrideRecord `json:"overrides"`
}

// Overrides handles GET /api/transactions/{id}/overrides?limit=N.
func (h *TransactionHandler) Overrides(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.svc.ListOverrides(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := overridesResponse{Overrides: make([]overrideRecord, len(records))}
	for i, rec := range records {
		resp.Overrides[i] = overrideRecord{
			ID:        rec.ID.String(),
			Action:    rec.Action.String(),
			Changes:   rec.Changes,
			CreatedAt: rec.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
