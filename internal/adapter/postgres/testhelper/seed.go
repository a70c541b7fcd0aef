package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func ptr[T any](v T) *T { return &v }

// SeedTrip creates a dated trip for userID. Options may override any field
// before insert (e.g. clear dates or shift CreatedAt).
func SeedTrip(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...func(*domain.Trip)) domain.Trip {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	trip := domain.Trip{
		ID:          "trip-" + suffix,
		UserID:      userID,
		Name:        "Trip " + suffix,
		Destination: ptr("Lisbon"),
		StartDate:   &start,
		EndDate:     &end,
		Currency:    "EUR",
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(&trip)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO trips (id, user_id, name, destination, start_date, end_date, currency, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		trip.ID, trip.UserID, trip.Name, trip.Destination, trip.StartDate, trip.EndDate, trip.Currency, trip.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrip insert: %v", err)
	}

	return trip
}

// SeedTransaction creates a settled, pending-reconciliation transaction for userID.
func SeedTransaction(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...func(*domain.Transaction)) domain.Transaction {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	tx := domain.Transaction{
		ID:          "tx-" + suffix,
		UserID:      userID,
		Amount:      decimal.RequireFromString("-42.50"),
		Currency:    "EUR",
		Merchant:    "Cafe " + suffix,
		Description: "coffee",
		PostedAt:    now,
		Location:    domain.Location{City: "Lisbon", Country: "PT"},
		LinkStatus:  domain.LinkStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&tx)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO transactions (id, user_id, amount, currency, merchant, description, posted_at,
		                           city, region, country, is_pending, link_status, error, created_at, updated_at)
		 VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13, $14, $15)`,
		tx.ID, tx.UserID, tx.Amount.String(), tx.Currency, tx.Merchant, tx.Description, tx.PostedAt,
		tx.Location.City, tx.Location.Region, tx.Location.Country, tx.IsPending, string(tx.LinkStatus), tx.Error,
		tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTransaction insert: %v", err)
	}

	return tx
}
