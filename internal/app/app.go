package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres/transaction"
	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres/trip"
	"github.com/heartmarshall/tripmatch-backend/internal/auth"
	"github.com/heartmarshall/tripmatch-backend/internal/config"
	"github.com/heartmarshall/tripmatch-backend/internal/service/txlink"
	"github.com/heartmarshall/tripmatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/tripmatch-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, starts the reconcile scheduler and serves HTTP until ctx is
// cancelled, then shuts everything down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("reconcile_enabled", cfg.Reconcile.Enabled),
		slog.Bool("classifier_configured", cfg.Classifier.Configured()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reconcileSvc, err := NewReconcileService(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	txlinkSvc := txlink.NewService(
		logger,
		transaction.New(pool),
		trip.New(pool),
		audit.New(pool),
		postgres.NewTxManager(pool),
	)

	tokens := auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.ClockSkew)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := NewRouter(
		Handlers{
			Health:      rest.NewHealthHandler(pool, reconcileSvc, Version),
			Transaction: rest.NewTransactionHandler(txlinkSvc, logger),
			Admin:       rest.NewAdminHandler(reconcileSvc, logger),
		},
		middleware.Chain(
			middleware.RequestID(),
			middleware.Unless(middleware.IsHealthCheck, middleware.Logger(logger)),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(tokens),
		),
		limiter.Limit(cfg.Server.OverrideRateLimit),
	)

	var scheduler *Scheduler
	if cfg.Reconcile.Enabled {
		scheduler, err = NewScheduler(cfg.Reconcile, reconcileSvc, cfg.Reconcile.LeaseTTL, logger)
		if err != nil {
			return err
		}
		scheduler.Start()
		if cfg.Reconcile.RunOnStart {
			go scheduler.RunNow(ctx)
		}
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	logger.Info("server stopped")
	return nil
}
