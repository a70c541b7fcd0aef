package reconcile

import (
	"fmt"
	"time"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// resolve maps a transaction and its (possibly missing) decision to the state
// to write. trips holds only the catalog offered to the classifier.
func resolve(txID string, d *domain.Decision, trips map[string]*domain.Trip, now time.Time) domain.LinkUpdate {
	if d == nil || d.Kind == domain.DecisionSkip || d.TripID == nil {
		return domain.NewSkippedUpdate(txID, nil)
	}

	trip, ok := trips[*d.TripID]
	if !ok {
		msg := fmt.Sprintf("trip %s not found in candidate set", *d.TripID)
		return domain.NewSkippedUpdate(txID, &msg)
	}

	confidence := domain.ClampConfidence(d.Confidence)
	switch {
	case d.Kind == domain.DecisionLink && confidence >= domain.AutoLinkThreshold:
		return domain.NewLinkedUpdate(txID, trip, confidence, domain.LinkMethodAuto, d.Reasoning, now)
	case d.Kind == domain.DecisionSuggest || confidence >= domain.SuggestThreshold:
		return domain.NewSuggestedUpdate(txID, trip, confidence, d.Reasoning, now)
	}
	return domain.NewSkippedUpdate(txID, nil)
}

// resolveBucket resolves every transaction of a bucket. When the classifier
// returns several decisions for one transaction the first one wins.
func resolveBucket(txs []domain.Transaction, decisions []domain.Decision, trips []domain.Trip, now time.Time) []domain.LinkUpdate {
	byTx := make(map[string]*domain.Decision, len(decisions))
	for i := range decisions {
		if _, seen := byTx[decisions[i].TransactionID]; !seen {
			byTx[decisions[i].TransactionID] = &decisions[i]
		}
	}

	byTrip := make(map[string]*domain.Trip, len(trips))
	for i := range trips {
		byTrip[trips[i].ID] = &trips[i]
	}

	updates := make([]domain.LinkUpdate, len(txs))
	for i, tx := range txs {
		updates[i] = resolve(tx.ID, byTx[tx.ID], byTrip, now)
	}
	return updates
}
