// Package audit implements the append-only override audit trail using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

var columns = []string{"id", "user_id", "transaction_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record. Runs inside the caller's transaction when
// ctx carries one.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	changes, err := json.Marshal(record.Changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert("override_audit").
		Columns(columns...).
		Values(record.ID, record.UserID, record.TransactionID, record.Action.String(), changes, record.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit_record: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_record", record.ID.String())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByTransaction returns the override history of a transaction, newest
// first, limited to limit records.
func (r *Repo) ListByTransaction(ctx context.Context, transactionID string, limit int) ([]domain.AuditRecord, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("override_audit").
		Where(squirrel.Eq{"transaction_id": transactionID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec     domain.AuditRecord
		action  string
		changes []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.TransactionID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("scan audit_record: %w", err)
	}
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		rec.Changes = make(map[string]any)
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}
