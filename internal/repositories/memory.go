package repositories

import (
	"context"
	"sync"

	"finflow/internal/models"
)

// MemoryRepository keeps per-user transaction slices in memory. Appends are
// serialized by a single mutex; reads copy the slice under a read lock so a
// query never observes a partially written record. State lives for the
// process lifetime only.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]models.Transaction
	seen   map[string]struct{}
	seq    uint64
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byUser: make(map[string][]models.Transaction),
		seen:   make(map[string]struct{}),
	}
}

// Append adds a record for the user. The store assigns the insertion
// sequence used by queries as a deterministic sort tie-break.
func (r *MemoryRepository) Append(ctx context.Context, userID string, txn *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[txn.ID]; ok {
		return ErrDuplicateID
	}
	r.seen[txn.ID] = struct{}{}

	r.seq++
	txn.Seq = r.seq
	txn.UserID = userID
	r.byUser[userID] = append(r.byUser[userID], *txn)
	return nil
}

// ListAll returns a snapshot of the user's records in insertion order.
func (r *MemoryRepository) ListAll(ctx context.Context, userID string) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.byUser[userID]
	out := make([]models.Transaction, len(records))
	copy(out, records)
	return out, nil
}
