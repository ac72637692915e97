package prescription

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CreateInput carries the prescription form fields. The referenced IDs are
// upper-cased for consistent lookup; existence is not enforced here, only
// admissions and bills carry reference checks.
type CreateInput struct {
	PatientID  string `json:"patientID"`
	StaffID    string `json:"staffID"`
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	PharmacyID string `json:"pharmacyID"`
}

type Service struct {
	prescriptions Repository
	now           func() time.Time
}

func NewService(prescriptions Repository) *Service {
	return &Service{prescriptions: prescriptions, now: time.Now}
}

// Create stamps dateWritten with the current date and appends the record.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Prescription, error) {
	medication := strings.TrimSpace(in.Medication)
	if medication == "" {
		return nil, fmt.Errorf("medication is required")
	}
	p := &Prescription{
		PatientID:   normalizeID(in.PatientID),
		StaffID:     normalizeID(in.StaffID),
		Medication:  medication,
		Dosage:      strings.TrimSpace(in.Dosage),
		PharmacyID:  normalizeID(in.PharmacyID),
		DateWritten: s.now().Format("2006-01-02"),
	}
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Prescription, error) {
	return s.prescriptions.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Prescription, int, error) {
	return s.prescriptions.List(ctx, limit, offset)
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
