package admission

import (
	"context"
	"fmt"
	"strings"
)

// CreateInput carries the admission form fields. PatientID and StaffID are
// foreign keys and are upper-cased before lookup so that hand-typed IDs
// match regardless of case.
type CreateInput struct {
	PatientID     string `json:"patientID"`
	StaffID       string `json:"staffID"`
	RoomNum       string `json:"roomNum"`
	DischargeDate string `json:"dischargeDate"`
}

// ValidationError reports a missing foreign-key reference. The referenced
// entity and the specific ID are kept separate so callers can show the user
// exactly which ID failed.
type ValidationError struct {
	Entity string
	ID     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Entity, e.ID)
}

type Service struct {
	admissions Repository
	patients   ReferenceChecker
	staff      ReferenceChecker
}

func NewService(admissions Repository, patients, staff ReferenceChecker) *Service {
	return &Service{admissions: admissions, patients: patients, staff: staff}
}

// Create validates both foreign keys and appends a new admission. On a
// failed reference check nothing is written and the returned error names the
// missing ID. A blank discharge date is stored as the "N/A" sentinel.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Admission, error) {
	patientID := normalizeID(in.PatientID)
	staffID := normalizeID(in.StaffID)

	ok, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("checking patient %s: %w", patientID, err)
	}
	if !ok {
		return nil, &ValidationError{Entity: "patient", ID: patientID}
	}

	ok, err = s.staff.Exists(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("checking staff %s: %w", staffID, err)
	}
	if !ok {
		return nil, &ValidationError{Entity: "staff member", ID: staffID}
	}

	discharge := strings.TrimSpace(in.DischargeDate)
	if discharge == "" {
		discharge = DischargeNotSet
	}

	a := &Admission{
		PatientID:     patientID,
		StaffID:       staffID,
		RoomNum:       strings.TrimSpace(in.RoomNum),
		DischargeDate: discharge,
	}
	if err := s.admissions.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Admission, error) {
	return s.admissions.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Admission, int, error) {
	return s.admissions.List(ctx, limit, offset)
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
