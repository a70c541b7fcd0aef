package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres/lease"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres/transaction"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres/trip"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/tripmatch-backend/internal/config"
	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/internal/prompt"
	"github.com/heartmarshall/tripmatch-backend/internal/provider"
	"github.com/heartmarshall/tripmatch-backend/internal/service/reconcile"
)

type classifier interface {
	Classify(ctx context.Context, req provider.ClassifyRequest) (string, error)
}

// NewReconcileService wires the reconcile service over pool. Without a
// classifier credential the service is built disabled.
func NewReconcileService(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*reconcile.Service, error) {
	tmpl, err := prompt.Load(cfg.Classifier.PromptPath)
	if err != nil {
		return nil, fmt.Errorf("load prompt: %w", err)
	}

	cls, err := newClassifier(ctx, cfg.Classifier, logger)
	switch {
	case errors.Is(err, domain.ErrClassifierDisabled):
		logger.WarnContext(ctx, "reconcile pipeline disabled", slog.String("reason", err.Error()))
	case err != nil:
		return nil, fmt.Errorf("build classifier: %w", err)
	}

	svcCfg := reconcile.Config{
		GlobalCap:            cfg.Reconcile.GlobalCap,
		PerUserCap:           cfg.Reconcile.PerUserCap,
		TripCatalogLimit:     cfg.Reconcile.TripCatalogLimit,
		MaxParallelBuckets:   cfg.Reconcile.MaxParallelBuckets,
		LeaseTTL:             cfg.Reconcile.LeaseTTL,
		StaleProcessingAfter: cfg.Reconcile.StaleProcessingAfter,
		ClassifierTimeout:    cfg.Classifier.Timeout,
		Model:                cfg.Classifier.Model,
	}

	return reconcile.NewService(
		logger,
		transaction.New(pool),
		trip.New(pool),
		lease.New(pool),
		postgres.NewTxManager(pool),
		cls,
		tmpl,
		svcCfg,
	), nil
}

// newClassifier returns domain.ErrClassifierDisabled when no credential is
// configured.
func newClassifier(ctx context.Context, cfg config.ClassifierConfig, logger *slog.Logger) (classifier, error) {
	if !cfg.Configured() {
		return nil, domain.ErrClassifierDisabled
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		c, err := gemini.NewClassifier(ctx, cfg.APIKey, "", logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return anthropic.NewClassifier(cfg.APIKey, logger), nil
	}
}
