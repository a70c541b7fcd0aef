package domain

import "time"

// DecisionKind is the classifier's verdict for one transaction.
type DecisionKind string

const (
	DecisionLink    DecisionKind = "link"
	DecisionSuggest DecisionKind = "suggest"
	DecisionSkip    DecisionKind = "skip"
)

// ParseDecisionKind maps anything other than exactly "link" or "suggest" to skip.
func ParseDecisionKind(s string) DecisionKind {
	switch DecisionKind(s) {
	case DecisionLink, DecisionSuggest:
		return DecisionKind(s)
	}
	return DecisionSkip
}

// Decision is one parsed classifier result. Confidence is raw (unclamped).
type Decision struct {
	TransactionID string
	Kind          DecisionKind
	TripID        *string
	Confidence    float64
	Reasoning     *string
}

// Confidence thresholds for automatic reconciliation.
const (
	AutoLinkThreshold = 0.8
	SuggestThreshold  = 0.6
)

// LinkUpdate is the full reconciliation state written to one transaction.
// Build it with the New*Update constructors so Link and Suggestion never coexist.
type LinkUpdate struct {
	TransactionID string
	Status        LinkStatus
	Link          *TripLink
	Suggestion    *TripSuggestion
	Error         *string
}

// NewLinkedUpdate links a transaction to trip.
func NewLinkedUpdate(txID string, trip *Trip, confidence float64, method LinkMethod, reasoning *string, now time.Time) LinkUpdate {
	return LinkUpdate{
		TransactionID: txID,
		Status:        LinkStatusLinked,
		Link: &TripLink{
			TripID:          trip.ID,
			TripName:        trip.Name,
			TripDestination: trip.Destination,
			Confidence:      ClampConfidence(confidence),
			Method:          method,
			Reasoning:       reasoning,
			LinkedAt:        now,
		},
	}
}

// NewSuggestedUpdate records a pending suggestion of trip.
func NewSuggestedUpdate(txID string, trip *Trip, confidence float64, reasoning *string, now time.Time) LinkUpdate {
	return LinkUpdate{
		TransactionID: txID,
		Status:        LinkStatusSuggested,
		Suggestion: &TripSuggestion{
			TripID:          trip.ID,
			TripName:        trip.Name,
			TripDestination: trip.Destination,
			Confidence:      ClampConfidence(confidence),
			Reasoning:       reasoning,
			Status:          SuggestionStatusPending,
			SuggestedAt:     now,
		},
	}
}

// NewSkippedUpdate clears link and suggestion. errMsg is optional.
func NewSkippedUpdate(txID string, errMsg *string) LinkUpdate {
	return LinkUpdate{
		TransactionID: txID,
		Status:        LinkStatusSkipped,
		Error:         errMsg,
	}
}

// NewRevertUpdate returns a transaction to pending after a failed attempt.
func NewRevertUpdate(txID string, errMsg string) LinkUpdate {
	return LinkUpdate{
		TransactionID: txID,
		Status:        LinkStatusPending,
		Error:         &errMsg,
	}
}
