package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/tripmatch-backend/internal/config"
	"github.com/heartmarshall/tripmatch-backend/internal/service/reconcile"
)

type cycleRunner interface {
	RunCycle(ctx context.Context) (reconcile.RunResult, error)
}

// Scheduler triggers reconcile cycles on a cron schedule. Overlapping ticks
// in one process are skipped; the lease guards against other processes.
type Scheduler struct {
	cron    *cron.Cron
	runner  cycleRunner
	timeout time.Duration
	log     *slog.Logger
}

// NewScheduler registers runner on cfg.Schedule in cfg.Timezone. Each tick
// gets a deadline of timeout.
func NewScheduler(cfg config.ReconcileConfig, runner cycleRunner, timeout time.Duration, logger *slog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler: load timezone %q: %w", cfg.Timezone, err)
	}

	log := logger.With("component", "scheduler")
	cronLog := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelWarn))

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		runner:  runner,
		timeout: timeout,
		log:     log,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.tick); err != nil {
		return nil, fmt.Errorf("scheduler: add reconcile job %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// Start begins firing ticks in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop stops new ticks and waits for a running one until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out with a cycle still running")
	}
}

// RunNow performs one cycle synchronously, as a tick would.
func (s *Scheduler) RunNow(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.runner.RunCycle(ctx); err != nil {
		s.log.ErrorContext(ctx, "reconcile cycle failed", slog.String("error", err.Error()))
	}
}

func (s *Scheduler) tick() {
	s.RunNow(context.Background())
}
