// Command reconcile runs a single reconcile cycle and exits. It is intended
// for deployments that drive the cadence from an external cron job instead
// of the server's scheduler.
//
// Exit codes: 0 = success (including disabled or lease held), 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/app"
	"github.com/heartmarshall/tripmatch-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Reconcile.LeaseTTL)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := app.NewReconcileService(ctx, cfg, pool, logger)
	if err != nil {
		logger.Error("build reconcile service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result, err := svc.RunCycle(ctx)
	if err != nil {
		logger.Error("reconcile cycle failed",
			slog.String("error", err.Error()),
			slog.Int("failed_buckets", result.FailedBuckets),
		)
		os.Exit(1)
	}

	logger.Info("reconcile cycle completed",
		slog.Bool("disabled", result.Disabled),
		slog.Bool("lease_held", result.LeaseHeld),
		slog.Int("selected", result.Selected),
		slog.Int("failed_buckets", result.FailedBuckets),
	)
}
