package patient

import "context"

// Repository is the patient collection. There are no update or delete
// operations; records are only ever created and read.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}
