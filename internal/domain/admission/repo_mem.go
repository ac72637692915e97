package admission

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hms/hms/internal/store"
)

// MemRepo is the in-memory admission collection.
type MemRepo struct {
	mu    sync.RWMutex
	seq   *store.Sequence
	items []*Admission
}

func NewMemRepo(seq *store.Sequence) *MemRepo {
	return &MemRepo{seq: seq}
}

func (r *MemRepo) Create(_ context.Context, a *Admission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = r.seq.Next()
	}
	a.CreatedAt = time.Now()
	r.items = append(r.items, a)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Admission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("admission %s not found", id)
}

func (r *MemRepo) List(_ context.Context, limit, offset int) ([]*Admission, int, error) {
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
	page := make([]*Admission, end-offset)
	copy(page, r.items[offset:end])
	return page, total, nil
}
