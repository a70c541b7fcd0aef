// Package txlink implements the manual override operations on a
// transaction's trip link.
package txlink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// transactionRepo defines the transaction operations needed by txlink service.
type transactionRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ApplyUpdate(ctx context.Context, u domain.LinkUpdate, now time.Time) error
}

// tripRepo defines the trip lookup needed by txlink service.
type tripRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID, tripID string) (*domain.Trip, error)
}

// auditStore appends to and reads the override audit trail.
type auditStore interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByTransaction(ctx context.Context, transactionID string, limit int) ([]domain.AuditRecord, error)
}

// txManager runs a function inside a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements manual link and dismiss operations.
type Service struct {
	log          *slog.Logger
	transactions transactionRepo
	trips        tripRepo
	audit        auditStore
	tx           txManager
	now          func() time.Time
}

// NewService creates a new txlink service instance.
func NewService(
	logger *slog.Logger,
	transactions transactionRepo,
	trips tripRepo,
	audit auditStore,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "txlink"),
		transactions: transactions,
		trips:        trips,
		audit:        audit,
		tx:           tx,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// apply writes the update and its audit record atomically.
func (s *Service) apply(ctx context.Context, userID uuid.UUID, tx *domain.Transaction, action domain.AuditAction, u domain.LinkUpdate, now time.Time) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.transactions.ApplyUpdate(ctx, u, now); err != nil {
			return err
		}
		if err := s.audit.Log(ctx, domain.NewOverrideAudit(userID, tx, action, u, now)); err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		return nil
	})
}
