package patient

import (
	"context"
	"fmt"
	"strings"
)

// CreateInput carries the patient registration form fields.
type CreateInput struct {
	Name          string `json:"name"`
	DOB           string `json:"dob"`
	AdmissionDate string `json:"admissionDate"`
}

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// Register validates the form input and appends a new patient record.
func (s *Service) Register(ctx context.Context, in CreateInput) (*Patient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	p := &Patient{
		Name:          name,
		DOB:           strings.TrimSpace(in.DOB),
		AdmissionDate: strings.TrimSpace(in.AdmissionDate),
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// Exists reports whether a patient with the given ID is registered. It backs
// the foreign-key checks in the admission and billing services.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.patients.Exists(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}
