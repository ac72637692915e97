package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CreateInput carries the billing form fields. TotalAmount arrives as the
// raw form value ("19.5") and is formatted to a currency string on create.
type CreateInput struct {
	PatientID     string `json:"patientID"`
	TotalAmount   string `json:"totalAmount"`
	PaymentStatus string `json:"paymentStatus"`
}

// ValidationError reports a missing patient reference.
type ValidationError struct {
	Entity string
	ID     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Entity, e.ID)
}

type Service struct {
	bills    Repository
	patients ReferenceChecker
	now      func() time.Time
}

func NewService(bills Repository, patients ReferenceChecker) *Service {
	return &Service{bills: bills, patients: patients, now: time.Now}
}

// Create validates the patient reference, formats the amount as a currency
// display string and stamps dateCreated with the current date. On a failed
// reference check nothing is written.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Bill, error) {
	patientID := strings.ToUpper(strings.TrimSpace(in.PatientID))

	ok, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("checking patient %s: %w", patientID, err)
	}
	if !ok {
		return nil, &ValidationError{Entity: "patient", ID: patientID}
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.TotalAmount), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid total amount %q", in.TotalAmount)
	}

	status := strings.TrimSpace(in.PaymentStatus)
	if status == "" {
		status = "Pending"
	}

	b := &Bill{
		PatientID:     patientID,
		TotalAmount:   fmt.Sprintf("$%.2f", amount),
		PaymentStatus: status,
		DateCreated:   s.now().Format("2006-01-02"),
	}
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.bills.List(ctx, limit, offset)
}
