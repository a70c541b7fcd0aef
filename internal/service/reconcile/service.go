// Package reconcile matches users' transactions to their trips with a
// generative classifier and records links, suggestions and skips.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/internal/prompt"
	"github.com/heartmarshall/tripmatch-backend/internal/provider"
)

type transactionRepo interface {
	ListCandidates(ctx context.Context, limit int, staleBefore *time.Time) ([]domain.Transaction, error)
	MarkProcessing(ctx context.Context, ids []string, now time.Time) ([]string, error)
	ApplyUpdates(ctx context.Context, updates []domain.LinkUpdate, now time.Time) error
	CountByLinkStatus(ctx context.Context) (domain.LinkStatusStats, error)
}

type tripRepo interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Trip, error)
}

type leaseRepo interface {
	Acquire(ctx context.Context, name, owner string, ttl time.Duration) error
	Release(ctx context.Context, name, owner string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type classifier interface {
	Classify(ctx context.Context, req provider.ClassifyRequest) (string, error)
}

// LeaseName identifies the run lease shared by all workers.
const LeaseName = "reconcile"

// Config holds tunables for a reconciliation run.
type Config struct {
	GlobalCap            int
	PerUserCap           int
	TripCatalogLimit     int
	MaxParallelBuckets   int
	LeaseTTL             time.Duration
	StaleProcessingAfter time.Duration
	ClassifierTimeout    time.Duration
	// Model overrides the model named by the prompt template.
	Model string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		GlobalCap:            60,
		PerUserCap:           12,
		TripCatalogLimit:     25,
		MaxParallelBuckets:   4,
		LeaseTTL:             10 * time.Minute,
		StaleProcessingAfter: time.Hour,
		ClassifierTimeout:    time.Minute,
	}
}

// Service runs reconciliation cycles.
type Service struct {
	log          *slog.Logger
	transactions transactionRepo
	trips        tripRepo
	leases       leaseRepo
	tx           txManager
	classifier   classifier
	template     *prompt.Template
	cfg          Config
	owner        string
	now          func() time.Time

	mu      sync.Mutex
	lastRun *RunStatus
}

// RunStatus describes the most recent cycle run by this process.
type RunStatus struct {
	StartedAt time.Time `json:"startedAt"`
	Result    RunResult `json:"result"`
	Error     string    `json:"error,omitempty"`
}

// NewService creates a reconcile service. A nil classifier disables runs:
// RunCycle then logs and returns without touching the store.
func NewService(
	log *slog.Logger,
	transactions transactionRepo,
	trips tripRepo,
	leases leaseRepo,
	tx txManager,
	classifier classifier,
	template *prompt.Template,
	cfg Config,
) *Service {
	return &Service{
		log:          log.With("service", "reconcile"),
		transactions: transactions,
		trips:        trips,
		leases:       leases,
		tx:           tx,
		classifier:   classifier,
		template:     template,
		cfg:          cfg,
		owner:        leaseOwner(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Enabled reports whether a classifier is configured.
func (s *Service) Enabled() bool {
	return s.classifier != nil
}

// LastRun returns the most recent cycle of this process, if any ran.
func (s *Service) LastRun() (RunStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRun == nil {
		return RunStatus{}, false
	}
	return *s.lastRun, true
}

func (s *Service) recordRun(start time.Time, result RunResult, err error) {
	st := RunStatus{StartedAt: start, Result: result}
	if err != nil {
		st.Error = err.Error()
	}
	s.mu.Lock()
	s.lastRun = &st
	s.mu.Unlock()
}

// GetStats returns transaction counts by link status.
func (s *Service) GetStats(ctx context.Context) (domain.LinkStatusStats, error) {
	stats, err := s.transactions.CountByLinkStatus(ctx)
	if err != nil {
		return stats, fmt.Errorf("count by link status: %w", err)
	}
	return stats, nil
}

func leaseOwner() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "worker"
	}
	return host + "-" + uuid.NewString()[:8]
}
