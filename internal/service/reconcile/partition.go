package reconcile

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// bucket is one user's share of a run. Buckets never share state.
type bucket struct {
	userID       uuid.UUID
	transactions []domain.Transaction
}

func (b bucket) ids() []string {
	ids := make([]string, len(b.transactions))
	for i, tx := range b.transactions {
		ids[i] = tx.ID
	}
	return ids
}

// partition groups candidates by user in first-seen order and keeps at most
// perUserCap per user. Candidates beyond the cap are counted as deferred and
// stay untouched for a later run.
func partition(candidates []domain.Transaction, perUserCap int) (buckets []bucket, deferred int) {
	index := make(map[uuid.UUID]int)
	for _, tx := range candidates {
		i, ok := index[tx.UserID]
		if !ok {
			i = len(buckets)
			index[tx.UserID] = i
			buckets = append(buckets, bucket{userID: tx.UserID})
		}
		if len(buckets[i].transactions) >= perUserCap {
			deferred++
			continue
		}
		buckets[i].transactions = append(buckets[i].transactions, tx)
	}
	return buckets, deferred
}

// retain keeps only the transactions whose ids are in keep and drops buckets
// left empty.
func retain(buckets []bucket, keep []string) []bucket {
	set := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		set[id] = struct{}{}
	}

	out := buckets[:0]
	for _, b := range buckets {
		txs := b.transactions[:0]
		for _, tx := range b.transactions {
			if _, ok := set[tx.ID]; ok {
				txs = append(txs, tx)
			}
		}
		if len(txs) > 0 {
			out = append(out, bucket{userID: b.userID, transactions: txs})
		}
	}
	return out
}
