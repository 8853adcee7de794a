package journal

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepository keeps the journal in process memory. It is the only
// implementation shipped here: the journal exists for observability of a
// single-process checkout, not as a durable store.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []*Entry
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save appends a copy of the entry. Safe for concurrent use.
func (r *MemoryRepository) Save(ctx context.Context, entry *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

// Latest returns the most recent entry for a checkout id.
func (r *MemoryRepository) Latest(ctx context.Context, checkoutID string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].CheckoutID == checkoutID {
			cp := *r.entries[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("journal: checkout %q not found", checkoutID)
}

// All returns every entry in append order.
func (r *MemoryRepository) All() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}
	return out
}

// History returns every entry for a checkout id in append order.
func (r *MemoryRepository) History(ctx context.Context, checkoutID string) []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Entry
	for _, e := range r.entries {
		if e.CheckoutID == checkoutID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}
