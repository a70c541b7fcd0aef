// Package transaction implements transaction persistence for reconciliation
// using PostgreSQL.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

const entity = "transaction"

var columns = []string{
	"id", "user_id", "amount::text", "currency", "merchant", "description", "posted_at",
	"city", "region", "country", "is_pending", "link_status", "link", "suggestion", "error",
	"created_at", "updated_at",
}

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a transaction by primary key regardless of owner.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get transaction: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return tx, nil
}

// ListCandidates returns up to limit settled transactions awaiting
// reconciliation, most recently posted first. When staleBefore is non-nil,
// transactions left in processing since before that instant are included too.
func (r *Repo) ListCandidates(ctx context.Context, limit int, staleBefore *time.Time) ([]domain.Transaction, error) {
	eligible := squirrel.Or{squirrel.Eq{"link_status": string(domain.LinkStatusPending)}}
	if staleBefore != nil {
		eligible = append(eligible, squirrel.And{
			squirrel.Eq{"link_status": string(domain.LinkStatusProcessing)},
			squirrel.Lt{"updated_at": *staleBefore},
		})
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From("transactions").
		Where(squirrel.Eq{"is_pending": false}).
		Where(eligible).
		OrderBy("posted_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list candidates: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidate transactions: %w", err)
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate transaction: %w", err)
		}
		result = append(result, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidate transactions: %w", err)
	}

	return result, nil
}

// CountByLinkStatus returns transaction counts grouped by link status.
func (r *Repo) CountByLinkStatus(ctx context.Context) (domain.LinkStatusStats, error) {
	var stats domain.LinkStatusStats

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT link_status, count(*) FROM transactions GROUP BY link_status`)
	if err != nil {
		return stats, fmt.Errorf("count transactions by link status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return stats, fmt.Errorf("scan link status count: %w", err)
		}
		switch domain.LinkStatus(status) {
		case domain.LinkStatusPending:
			stats.Pending = count
		case domain.LinkStatusProcessing:
			stats.Processing = count
		case domain.LinkStatusLinked:
			stats.Linked = count
		case domain.LinkStatusSuggested:
			stats.Suggested = count
		case domain.LinkStatusSkipped:
			stats.Skipped = count
		}
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("iterate link status counts: %w", err)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const markProcessingSQL = `
UPDATE transactions
SET link_status = 'processing', error = NULL, updated_at = $2
WHERE id = ANY($1) AND link_status IN ('pending', 'processing')
RETURNING id`

// MarkProcessing claims ids for a run in a single statement and clears any
// previous error. Rows that left pending or processing since they were
// listed, for example through a manual override, are not touched. Returns
// the ids actually claimed.
func (r *Repo) MarkProcessing(ctx context.Context, ids []string, now time.Time) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, markProcessingSQL, ids, now)
	if err != nil {
		return nil, fmt.Errorf("mark transactions processing: %w", err)
	}
	claimed, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("mark transactions processing: %w", err)
	}

	return claimed, nil
}

const applyUpdateSQL = `
UPDATE transactions
SET link_status = $2, link = $3::jsonb, suggestion = $4::jsonb, error = $5, updated_at = $6
WHERE id = $1`

// ApplyUpdates writes every update as one pipelined batch. Run it inside
// TxManager.RunInTx for all-or-nothing semantics.
func (r *Repo) ApplyUpdates(ctx context.Context, updates []domain.LinkUpdate, now time.Time) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		args, err := updateArgs(u, now)
		if err != nil {
			return err
		}
		batch.Queue(applyUpdateSQL, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	for _, u := range updates {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, entity, u.TransactionID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s %s: %w", entity, u.TransactionID, domain.ErrNotFound)
		}
	}

	return nil
}

// ApplyUpdate writes a single update.
func (r *Repo) ApplyUpdate(ctx context.Context, u domain.LinkUpdate, now time.Time) error {
	args, err := updateArgs(u, now)
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, applyUpdateSQL, args...)
	if err != nil {
		return postgres.MapError(err, entity, u.TransactionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, u.TransactionID, domain.ErrNotFound)
	}

	return nil
}

func updateArgs(u domain.LinkUpdate, now time.Time) ([]any, error) {
	link, err := encodeLink(u.Link)
	if err != nil {
		return nil, fmt.Errorf("%s %s: encode link: %w", entity, u.TransactionID, err)
	}
	suggestion, err := encodeSuggestion(u.Suggestion)
	if err != nil {
		return nil, fmt.Errorf("%s %s: encode suggestion: %w", entity, u.TransactionID, err)
	}

	return []any{
		u.TransactionID,
		string(u.Status),
		link,
		suggestion,
		postgres.PtrToText(u.Error),
		now,
	}, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx                    domain.Transaction
		amount                string
		city, region, country pgtype.Text
		status                string
		link, suggestion      []byte
		errMsg                pgtype.Text
		userID                uuid.UUID
	)

	err := row.Scan(
		&tx.ID, &userID, &amount, &tx.Currency, &tx.Merchant, &tx.Description, &tx.PostedAt,
		&city, &region, &country, &tx.IsPending, &status, &link, &suggestion, &errMsg,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.UserID = userID
	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	tx.Location = domain.Location{City: city.String, Region: region.String, Country: country.String}
	tx.LinkStatus = domain.LinkStatus(status)
	tx.Error = postgres.TextToPtr(errMsg)

	if tx.Link, err = decodeLink(link); err != nil {
		return nil, fmt.Errorf("decode link: %w", err)
	}
	if tx.Suggestion, err = decodeSuggestion(suggestion); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}

	return &tx, nil
}
