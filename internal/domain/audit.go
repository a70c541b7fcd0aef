package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is the kind of manual override recorded in the audit trail.
type AuditAction string

const (
	AuditActionLink              AuditAction = "link"
	AuditActionDismissSuggestion AuditAction = "dismiss_suggestion"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord logs a manual override of a transaction's trip link.
// Changes holds the before/after link state.
type AuditRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TransactionID string
	Action        AuditAction
	Changes       map[string]any
	CreatedAt     time.Time
}

// NewOverrideAudit builds the audit record for an override applied to tx.
func NewOverrideAudit(userID uuid.UUID, tx *Transaction, action AuditAction, u LinkUpdate, now time.Time) AuditRecord {
	before := map[string]any{"linkStatus": tx.LinkStatus.String()}
	if tx.Link != nil {
		before["tripId"] = tx.Link.TripID
	}
	if tx.Suggestion != nil {
		before["suggestedTripId"] = tx.Suggestion.TripID
	}

	after := map[string]any{"linkStatus": u.Status.String()}
	if u.Link != nil {
		after["tripId"] = u.Link.TripID
		after["confidence"] = u.Link.Confidence
	}

	return AuditRecord{
		ID:            uuid.New(),
		UserID:        userID,
		TransactionID: tx.ID,
		Action:        action,
		Changes:       map[string]any{"before": before, "after": after},
		CreatedAt:     now,
	}
}
