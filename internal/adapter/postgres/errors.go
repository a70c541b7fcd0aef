package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeSerialization       = "40001"
	codeDeadlock            = "40P01"
	codeLockNotAvailable    = "55P03"
)

var pgCodeErrors = map[string]error{
	codeUniqueViolation:     domain.ErrAlreadyExists,
	codeForeignKeyViolation: domain.ErrNotFound,
	codeCheckViolation:      domain.ErrValidation,
	codeSerialization:       domain.ErrConflict,
	codeDeadlock:            domain.ErrConflict,
	codeLockNotAvailable:    domain.ErrConflict,
}

// MapError wraps err with the entity and id and translates pgx errors into
// domain errors. Context errors and unknown codes are wrapped unchanged.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, id, translate(err))
}

func translate(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			return mapped
		}
	}
	return err
}
