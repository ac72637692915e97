package staff

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hms/hms/internal/store"
)

// MemRepo is the in-memory staff collection.
type MemRepo struct {
	mu    sync.RWMutex
	seq   *store.Sequence
	items []*Member
}

func NewMemRepo(seq *store.Sequence) *MemRepo {
	return &MemRepo{seq: seq}
}

func (r *MemRepo) Create(_ context.Context, m *Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = r.seq.Next()
	}
	m.CreatedAt = time.Now()
	r.items = append(r.items, m)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("staff member %s not found", id)
}

func (r *MemRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemRepo) List(_ context.Context, limit, offset int) ([]*Member, int, error) {
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
	page := make([]*Member, end-offset)
	copy(page, r.items[offset:end])
	return page, total, nil
}
