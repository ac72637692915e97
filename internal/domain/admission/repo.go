package admission

import "context"

type Repository interface {
	Create(ctx context.Context, a *Admission) error
	GetByID(ctx context.Context, id string) (*Admission, error)
	List(ctx context.Context, limit, offset int) ([]*Admission, int, error)
}

// ReferenceChecker answers existence checks against another entity
// collection. The patient and staff services both satisfy it, which keeps
// this package free of imports on theirs.
type ReferenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
