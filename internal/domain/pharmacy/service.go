package pharmacy

import (
	"context"
	"fmt"
	"strings"
)

// CreateInput carries the pharmacy registration fields.
type CreateInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Service struct {
	pharmacies Repository
}

func NewService(pharmacies Repository) *Service {
	return &Service{pharmacies: pharmacies}
}

func (s *Service) Register(ctx context.Context, in CreateInput) (*Pharmacy, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	p := &Pharmacy{
		Name:     name,
		Location: strings.TrimSpace(in.Location),
	}
	if err := s.pharmacies.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Pharmacy, error) {
	return s.pharmacies.GetByID(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.pharmacies.Exists(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Pharmacy, int, error) {
	return s.pharmacies.List(ctx, limit, offset)
}
