// Package lease implements a named, expiring mutual-exclusion record in
// PostgreSQL so that overlapping reconciliation runs skip instead of racing.
package lease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// Repo provides lease persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lease repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// An expired lease, or one already held by owner, is taken over.
const acquireSQL = `
INSERT INTO reconcile_leases (name, owner, acquired_at, expires_at)
VALUES ($1, $2, now(), now() + make_interval(secs => $3))
ON CONFLICT (name) DO UPDATE
SET owner = EXCLUDED.owner, acquired_at = EXCLUDED.acquired_at, expires_at = EXCLUDED.expires_at
WHERE reconcile_leases.expires_at < now() OR reconcile_leases.owner = EXCLUDED.owner
RETURNING owner`

// Acquire takes the lease for ttl. Returns domain.ErrLeaseHeld if another
// owner holds an unexpired lease.
func (r *Repo) Acquire(ctx context.Context, name, owner string, ttl time.Duration) error {
	var got string
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, acquireSQL, name, owner, ttl.Seconds()).
		Scan(&got)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lease %s: %w", name, domain.ErrLeaseHeld)
	}
	if err != nil {
		return postgres.MapError(err, "lease", name)
	}
	return nil
}

const releaseSQL = `DELETE FROM reconcile_leases WHERE name = $1 AND owner = $2`

// Release drops the lease if owner still holds it. Releasing a lease that
// has been taken over or already dropped is not an error.
func (r *Repo) Release(ctx context.Context, name, owner string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, releaseSQL, name, owner); err != nil {
		return postgres.MapError(err, "lease", name)
	}
	return nil
}
