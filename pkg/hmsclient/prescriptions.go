package hmsclient

import (
	"context"
	"time"
)

// Prescription mirrors the server's prescription record. DateWritten is
// stamped by the server on creation.
type Prescription struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientID"`
	StaffID     string    `json:"staffID"`
	Medication  string    `json:"medication"`
	Dosage      string    `json:"dosage"`
	PharmacyID  string    `json:"pharmacyID"`
	DateWritten string    `json:"dateWritten"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PrescriptionParams carries the fields for writing a prescription.
type PrescriptionParams struct {
	PatientID  string `json:"patientID"`
	StaffID    string `json:"staffID"`
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	PharmacyID string `json:"pharmacyID"`
}

type PrescriptionsClient struct {
	c *Client
}

func (p *PrescriptionsClient) Create(ctx context.Context, params PrescriptionParams) (*Prescription, error) {
	var out Prescription
	if err := p.c.backend.Call(ctx, "POST", "/api/hms/prescriptions", p.c.token, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PrescriptionsClient) Get(ctx context.Context, id string) (*Prescription, error) {
	var out Prescription
	if err := p.c.backend.Call(ctx, "GET", "/api/hms/prescriptions/"+id, p.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PrescriptionsClient) List(ctx context.Context, params ListParams) (*List[Prescription], error) {
	var out List[Prescription]
	if err := p.c.backend.Call(ctx, "GET", listPath("/api/hms/prescriptions", params), p.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
