// Package trip implements read access to user trips using PostgreSQL.
package trip

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

var columns = []string{"id", "user_id", "name", "destination", "start_date", "end_date", "currency", "created_at"}

// Repo provides trip reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new trip repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a trip owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, tripID string) (*domain.Trip, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("trips").
		Where(squirrel.Eq{"id": tripID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get trip: %w", err)
	}

	t, err := scanTrip(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "trip", tripID)
	}
	return t, nil
}

// ListRecent returns up to limit of the user's trips, newest first.
// Trips without dates are included; callers filter them.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Trip, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("trips").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list trips: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trips: %w", err)
	}

	return trips, nil
}

func scanTrip(row pgx.Row) (*domain.Trip, error) {
	var (
		t           domain.Trip
		destination pgtype.Text
		start, end  pgtype.Date
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &destination, &start, &end, &t.Currency, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Destination = postgres.TextToPtr(destination)
	t.StartDate = postgres.DateToPtr(start)
	t.EndDate = postgres.DateToPtr(end)
	return &t, nil
}
