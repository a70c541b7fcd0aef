package txlink

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/pkg/ctxutil"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ListOverrides returns the manual override history of the caller's
// transaction, newest first. A zero limit means DefaultHistoryLimit.
func (s *Service) ListOverrides(ctx context.Context, transactionID string, limit int) ([]domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if transactionID == "" {
		return nil, domain.NewValidationError("transactionId", "required")
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxHistoryLimit))
	}

	if _, err := s.ownedTransaction(ctx, userID, transactionID); err != nil {
		return nil, fmt.Errorf("txlink.ListOverrides: %w", err)
	}

	records, err := s.audit.ListByTransaction(ctx, transactionID, limit)
	if err != nil {
		return nil, fmt.Errorf("txlink.ListOverrides: %w", err)
	}
	return records, nil
}
