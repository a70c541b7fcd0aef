package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LinkStatus is the reconciliation state of a transaction.
type LinkStatus string

const (
	LinkStatusPending    LinkStatus = "pending"
	LinkStatusProcessing LinkStatus = "processing"
	LinkStatusLinked     LinkStatus = "linked"
	LinkStatusSuggested  LinkStatus = "suggested"
	LinkStatusSkipped    LinkStatus = "skipped"
)

func (s LinkStatus) String() string { return string(s) }

// LinkMethod records who created a link.
type LinkMethod string

const (
	LinkMethodAuto   LinkMethod = "auto"
	LinkMethodManual LinkMethod = "manual"
)

// SuggestionStatus is the review state of a suggestion. Only pending is produced here.
type SuggestionStatus string

const SuggestionStatusPending SuggestionStatus = "pending"

// Location is the optional place a transaction happened at.
type Location struct {
	City    string
	Region  string
	Country string
}

// String joins the non-empty parts with ", ". Empty when nothing is known.
func (l Location) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Transaction is a user's financial transaction as seen by the matcher.
// Link and Suggestion are mutually exclusive.
type Transaction struct {
	ID          string
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Merchant    string
	Description string
	PostedAt    time.Time
	Location    Location
	// IsPending marks a provisional (not yet settled) transaction. Unrelated to LinkStatus.
	IsPending  bool
	LinkStatus LinkStatus
	Link       *TripLink
	Suggestion *TripSuggestion
	Error      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TripLink is an accepted association between a transaction and a trip.
type TripLink struct {
	TripID          string
	TripName        string
	TripDestination *string
	Confidence      float64
	Method          LinkMethod
	Reasoning       *string
	LinkedAt        time.Time
}

// TripSuggestion is a proposed association awaiting user review.
type TripSuggestion struct {
	TripID          string
	TripName        string
	TripDestination *string
	Confidence      float64
	Reasoning       *string
	Status          SuggestionStatus
	SuggestedAt     time.Time
}

// LinkStatusStats holds transaction counts by link status.
type LinkStatusStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Linked     int `json:"linked"`
	Suggested  int `json:"suggested"`
	Skipped    int `json:"skipped"`
	Total      int `json:"total"`
}

// ClampConfidence bounds c to [0, 1]. NaN becomes 0.
func ClampConfidence(c float64) float64 {
	switch {
	case math.IsNaN(c), c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}
