package staff

import (
	"context"
	"fmt"
	"strings"
)

// CreateInput carries the staff registration form fields.
type CreateInput struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

type Service struct {
	members Repository
}

func NewService(members Repository) *Service {
	return &Service{members: members}
}

// Register validates the form input and appends a new staff record.
func (s *Service) Register(ctx context.Context, in CreateInput) (*Member, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	m := &Member{
		Name:           name,
		Role:           strings.TrimSpace(in.Role),
		Specialization: strings.TrimSpace(in.Specialization),
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Member, error) {
	return s.members.GetByID(ctx, id)
}

// Exists backs the staffID foreign-key check in the admission and
// prescription services.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.members.Exists(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Member, int, error) {
	return s.members.List(ctx, limit, offset)
}
