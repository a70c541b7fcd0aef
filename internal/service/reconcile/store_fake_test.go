package reconcile

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// fakeStore is an in-memory transaction, trip and tx-manager implementation.
type fakeStore struct {
	mu      sync.Mutex
	txs     map[string]*domain.Transaction
	trips   map[uuid.UUID][]domain.Trip
	marked  [][]string
	batches [][]domain.LinkUpdate

	listErr  error
	markErr  error
	// beforeMark runs between listing and claiming, with the lock held.
	beforeMark func(txs map[string]*domain.Transaction)
	tripsErr error
	// applyErr, when set, may reject a batch before anything is written.
	applyErr func(updates []domain.LinkUpdate) error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		txs:   make(map[string]*domain.Transaction),
		trips: make(map[uuid.UUID][]domain.Trip),
	}
}

func (f *fakeStore) addTx(tx domain.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tx.LinkStatus == "" {
		tx.LinkStatus = domain.LinkStatusPending
	}
	f.txs[tx.ID] = &tx
}

// addTrips stores trips newest first, as the repository returns them.
func (f *fakeStore) addTrips(userID uuid.UUID, trips ...domain.Trip) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trips[userID] = append(f.trips[userID], trips...)
}

func (f *fakeStore) get(id string) domain.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.txs[id]
}

func (f *fakeStore) ListCandidates(_ context.Context, limit int, staleBefore *time.Time) ([]domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []domain.Transaction
	for _, tx := range f.txs {
		if tx.IsPending {
			continue
		}
		stale := staleBefore != nil && tx.LinkStatus == domain.LinkStatusProcessing && tx.UpdatedAt.Before(*staleBefore)
		if tx.LinkStatus == domain.LinkStatusPending || stale {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PostedAt.Equal(out[j].PostedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) MarkProcessing(_ context.Context, ids []string, now time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return nil, f.markErr
	}
	if f.beforeMark != nil {
		f.beforeMark(f.txs)
	}
	var claimed []string
	for _, id := range ids {
		tx := f.txs[id]
		if tx.LinkStatus != domain.LinkStatusPending && tx.LinkStatus != domain.LinkStatusProcessing {
			continue
		}
		tx.LinkStatus = domain.LinkStatusProcessing
		tx.Error = nil
		tx.UpdatedAt = now
		claimed = append(claimed, id)
	}
	f.marked = append(f.marked, claimed)
	return claimed, nil
}

func (f *fakeStore) ApplyUpdates(_ context.Context, updates []domain.LinkUpdate, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		if err := f.applyErr(updates); err != nil {
			return err
		}
	}
	for _, u := range updates {
		tx := f.txs[u.TransactionID]
		tx.LinkStatus = u.Status
		tx.Link = u.Link
		tx.Suggestion = u.Suggestion
		tx.Error = u.Error
		tx.UpdatedAt = now
	}
	f.batches = append(f.batches, updates)
	return nil
}

func (f *fakeStore) CountByLinkStatus(_ context.Context) (domain.LinkStatusStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var s domain.LinkStatusStats
	for _, tx := range f.txs {
		switch tx.LinkStatus {
		case domain.LinkStatusPending:
			s.Pending++
		case domain.LinkStatusProcessing:
			s.Processing++
		case domain.LinkStatusLinked:
			s.Linked++
		case domain.LinkStatusSuggested:
			s.Suggested++
		case domain.LinkStatusSkipped:
			s.Skipped++
		}
		s.Total++
	}
	return s, nil
}

func (f *fakeStore) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]domain.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tripsErr != nil {
		return nil, f.tripsErr
	}
	trips := append([]domain.Trip(nil), f.trips[userID]...)
	if len(trips) > limit {
		trips = trips[:limit]
	}
	return trips, nil
}

func (f *fakeStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
