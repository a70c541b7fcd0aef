package reconcile

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// loadCatalog returns the user's most recent trips that have both dates.
func (s *Service) loadCatalog(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	recent, err := s.trips.ListRecent(ctx, userID, s.cfg.TripCatalogLimit)
	if err != nil {
		return nil, err
	}

	eligible := make([]domain.Trip, 0, len(recent))
	for _, t := range recent {
		if t.HasDateRange() {
			eligible = append(eligible, t)
		}
	}
	return eligible, nil
}
