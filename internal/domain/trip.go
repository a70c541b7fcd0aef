package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a user's trip. Read-only for reconciliation.
type Trip struct {
	ID          string
	UserID      uuid.UUID
	Name        string
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Currency    string
	CreatedAt   time.Time
}

// HasDateRange returns true if both start and end dates are set.
// Only such trips are offered to the classifier.
func (t *Trip) HasDateRange() bool {
	return t.StartDate != nil && t.EndDate != nil
}
