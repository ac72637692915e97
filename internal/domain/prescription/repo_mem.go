package prescription

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hms/hms/internal/store"
)

// MemRepo is the in-memory prescription collection.
type MemRepo struct {
	mu    sync.RWMutex
	seq   *store.Sequence
	items []*Prescription
}

func NewMemRepo(seq *store.Sequence) *MemRepo {
	return &MemRepo{seq: seq}
}

func (r *MemRepo) Create(_ context.Context, p *Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = r.seq.Next()
	}
	p.CreatedAt = time.Now()
	r.items = append(r.items, p)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("prescription %s not found", id)
}

func (r *MemRepo) List(_ context.Context, limit, offset int) ([]*Prescription, int, error) {
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
	page := make([]*Prescription, end-offset)
	copy(page, r.items[offset:end])
	return page, total, nil
}
