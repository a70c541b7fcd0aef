package txlink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/pkg/ctxutil"
)

// LinkTransaction links the caller's transaction to one of the caller's trips.
// Any suggestion and previous error are cleared. Confidence defaults to 1 and
// is clamped to [0, 1].
func (s *Service) LinkTransaction(ctx context.Context, in LinkInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return err
	}

	tx, err := s.ownedTransaction(ctx, userID, in.TransactionID)
	if err != nil {
		return fmt.Errorf("txlink.LinkTransaction: %w", err)
	}

	trip, err := s.trips.GetByID(ctx, userID, in.TripID)
	if err != nil {
		return fmt.Errorf("txlink.LinkTransaction: get trip: %w", err)
	}

	confidence := 1.0
	if in.Confidence != nil {
		confidence = *in.Confidence
	}

	now := s.now()
	update := domain.NewLinkedUpdate(tx.ID, trip, confidence, domain.LinkMethodManual, in.Reasoning, now)
	if err := s.apply(ctx, userID, tx, domain.AuditActionLink, update, now); err != nil {
		return fmt.Errorf("txlink.LinkTransaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction linked manually",
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", tx.ID),
		slog.String("trip_id", trip.ID),
	)

	return nil
}

// DismissSuggestion marks the caller's transaction as skipped and clears its
// suggestion. Dismissing twice is not an error.
func (s *Service) DismissSuggestion(ctx context.Context, transactionID string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if transactionID == "" {
		return domain.NewValidationError("transactionId", "required")
	}

	tx, err := s.ownedTransaction(ctx, userID, transactionID)
	if err != nil {
		return fmt.Errorf("txlink.DismissSuggestion: %w", err)
	}

	if err := s.apply(ctx, userID, tx, domain.AuditActionDismissSuggestion, domain.NewSkippedUpdate(tx.ID, nil), s.now()); err != nil {
		return fmt.Errorf("txlink.DismissSuggestion: %w", err)
	}

	s.log.InfoContext(ctx, "suggestion dismissed",
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", tx.ID),
	)

	return nil
}

func (s *Service) ownedTransaction(ctx context.Context, userID uuid.UUID, id string) (*domain.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if tx.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return tx, nil
}
