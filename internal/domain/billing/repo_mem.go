package billing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hms/hms/internal/store"
)

// MemRepo is the in-memory bill collection.
type MemRepo struct {
	mu    sync.RWMutex
	seq   *store.Sequence
	items []*Bill
}

func NewMemRepo(seq *store.Sequence) *MemRepo {
	return &MemRepo{seq: seq}
}

func (r *MemRepo) Create(_ context.Context, b *Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = r.seq.Next()
	}
	b.CreatedAt = time.Now()
	r.items = append(r.items, b)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.items {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("bill %s not found", id)
}

func (r *MemRepo) List(_ context.Context, limit, offset int) ([]*Bill, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := len(r.items)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	page := make([]*Bill, end-offset)
	copy(page, r.items[offset:end])
	return page, total, nil
}
