package billing

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id string) (*Bill, error)
	List(ctx context.Context, limit, offset int) ([]*Bill, int, error)
}

// ReferenceChecker answers patient existence checks without importing the
// patient package.
type ReferenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
