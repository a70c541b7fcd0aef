package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/internal/provider"
)

// RunResult summarizes one reconciliation cycle.
type RunResult struct {
	Disabled      bool `json:"disabled"`
	LeaseHeld     bool `json:"leaseHeld"`
	Selected      int  `json:"selected"`
	Reclaimed     int  `json:"reclaimed"`
	Deferred      int  `json:"deferred"`
	Buckets       int  `json:"buckets"`
	Linked        int  `json:"linked"`
	Suggested     int  `json:"suggested"`
	Skipped       int  `json:"skipped"`
	FailedBuckets int  `json:"failedBuckets"`
}

func (r *RunResult) add(updates []domain.LinkUpdate) {
	for _, u := range updates {
		switch u.Status {
		case domain.LinkStatusLinked:
			r.Linked++
		case domain.LinkStatusSuggested:
			r.Suggested++
		case domain.LinkStatusSkipped:
			r.Skipped++
		}
	}
}

// RunCycle performs one reconciliation pass: select candidates, mark them
// processing, then classify and write each user bucket independently.
//
// A bucket failure reverts only that bucket to pending and is not returned as
// an error. The returned error reports store failures outside bucket
// processing and buckets whose revert could not be written.
func (s *Service) RunCycle(ctx context.Context) (RunResult, error) {
	start := s.now()
	result, err := s.runCycle(ctx)
	s.recordRun(start, result, err)
	return result, err
}

func (s *Service) runCycle(ctx context.Context) (RunResult, error) {
	var result RunResult

	if s.classifier == nil {
		s.log.InfoContext(ctx, "reconcile disabled: classifier credential not configured")
		result.Disabled = true
		return result, nil
	}

	if err := s.leases.Acquire(ctx, LeaseName, s.owner, s.cfg.LeaseTTL); err != nil {
		if errors.Is(err, domain.ErrLeaseHeld) {
			s.log.InfoContext(ctx, "reconcile skipped: previous run still active")
			result.LeaseHeld = true
			return result, nil
		}
		return result, fmt.Errorf("acquire lease: %w", err)
	}
	defer s.releaseLease(ctx)

	start := s.now()

	var staleBefore *time.Time
	if s.cfg.StaleProcessingAfter > 0 {
		t := start.Add(-s.cfg.StaleProcessingAfter)
		staleBefore = &t
	}

	candidates, err := s.transactions.ListCandidates(ctx, s.cfg.GlobalCap, staleBefore)
	if err != nil {
		return result, fmt.Errorf("list candidates: %w", err)
	}
	if len(candidates) == 0 {
		s.log.DebugContext(ctx, "reconcile: no candidates")
		return result, nil
	}

	buckets, deferred := partition(candidates, s.cfg.PerUserCap)
	result.Deferred = deferred

	var ids []string
	for _, b := range buckets {
		ids = append(ids, b.ids()...)
	}

	claimed, err := s.transactions.MarkProcessing(ctx, ids, start)
	if err != nil {
		return result, fmt.Errorf("mark processing: %w", err)
	}
	if lost := len(ids) - len(claimed); lost > 0 {
		s.log.InfoContext(ctx, "reconcile: candidates changed before claim", slog.Int("count", lost))
	}

	buckets = retain(buckets, claimed)
	result.Buckets = len(buckets)
	for _, b := range buckets {
		result.Selected += len(b.transactions)
		for _, tx := range b.transactions {
			if tx.LinkStatus == domain.LinkStatusProcessing {
				result.Reclaimed++
			}
		}
	}

	var (
		mu       sync.Mutex
		failures []error
	)

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.MaxParallelBuckets)
	for _, b := range buckets {
		g.Go(func() error {
			updates, err := s.processBucket(ctx, b)
			var revertErr error
			if err != nil {
				revertErr = s.revertBucket(ctx, b, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.FailedBuckets++
				if revertErr != nil {
					failures = append(failures, revertErr)
				}
				return nil
			}
			result.add(updates)
			return nil
		})
	}
	_ = g.Wait()

	s.log.InfoContext(ctx, "reconcile run finished",
		slog.Int("selected", result.Selected),
		slog.Int("reclaimed", result.Reclaimed),
		slog.Int("deferred", result.Deferred),
		slog.Int("buckets", result.Buckets),
		slog.Int("linked", result.Linked),
		slog.Int("suggested", result.Suggested),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed_buckets", result.FailedBuckets),
		slog.Duration("duration", s.now().Sub(start)),
	)

	return result, errors.Join(failures...)
}

// processBucket runs catalog, classification, resolution and the batch write
// for one user. Any error leaves the bucket unwritten.
func (s *Service) processBucket(ctx context.Context, b bucket) ([]domain.LinkUpdate, error) {
	trips, err := s.loadCatalog(ctx, b.userID)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	now := s.now()

	var updates []domain.LinkUpdate
	if len(trips) == 0 {
		msg := domain.ErrNoEligibleTrips.Error()
		updates = make([]domain.LinkUpdate, len(b.transactions))
		for i, tx := range b.transactions {
			updates[i] = domain.NewSkippedUpdate(tx.ID, &msg)
		}
	} else {
		text, err := s.classify(ctx, trips, b.transactions)
		if err != nil {
			return nil, err
		}

		decisions, err := parseDecisions(text)
		if err != nil {
			s.log.WarnContext(ctx, "unusable classifier response, skipping bucket transactions",
				slog.String("user_id", b.userID.String()),
				slog.String("error", err.Error()),
			)
		}
		updates = resolveBucket(b.transactions, decisions, trips, now)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.transactions.ApplyUpdates(ctx, updates, now)
	})
	if err != nil {
		return nil, fmt.Errorf("write results: %w", err)
	}

	s.log.DebugContext(ctx, "bucket reconciled",
		slog.String("user_id", b.userID.String()),
		slog.Int("bucket_size", len(b.transactions)),
		slog.Int("trips", len(trips)),
	)

	return updates, nil
}

func (s *Service) classify(ctx context.Context, trips []domain.Trip, txs []domain.Transaction) (string, error) {
	model := s.cfg.Model
	if model == "" {
		model = s.template.Model
	}

	req := provider.ClassifyRequest{
		Model:           model,
		Temperature:     s.template.Temperature,
		MaxOutputTokens: s.template.MaxOutputTokens,
		Prompt:          s.template.Render(tripBlock(trips), transactionBlock(txs)),
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.ClassifierTimeout)
	defer cancel()

	text, err := s.classifier.Classify(callCtx, req)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}
	return text, nil
}

// revertBucket returns every transaction of b to pending with cause as error.
func (s *Service) revertBucket(ctx context.Context, b bucket, cause error) error {
	s.log.WarnContext(ctx, "bucket failed, reverting to pending",
		slog.String("user_id", b.userID.String()),
		slog.Int("bucket_size", len(b.transactions)),
		slog.String("error", cause.Error()),
	)

	updates := make([]domain.LinkUpdate, len(b.transactions))
	for i, tx := range b.transactions {
		updates[i] = domain.NewRevertUpdate(tx.ID, cause.Error())
	}

	// The run context may already be done when the bucket failed on it.
	ctx = context.WithoutCancel(ctx)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.transactions.ApplyUpdates(ctx, updates, s.now())
	})
	if err != nil {
		s.log.ErrorContext(ctx, "revert bucket",
			slog.String("user_id", b.userID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("revert bucket for user %s: %w", b.userID, err)
	}
	return nil
}

func (s *Service) releaseLease(ctx context.Context) {
	if err := s.leases.Release(context.WithoutCancel(ctx), LeaseName, s.owner); err != nil {
		s.log.WarnContext(ctx, "release lease", slog.String("error", err.Error()))
	}
}
