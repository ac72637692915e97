package hmsclient

import (
	"context"
	"time"
)

// Patient mirrors the server's patient record.
type Patient struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DOB           string    `json:"dob"`
	AdmissionDate string    `json:"admissionDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PatientParams carries the fields for registering a patient.
type PatientParams struct {
	Name          string `json:"name"`
	DOB           string `json:"dob"`
	AdmissionDate string `json:"admissionDate"`
}

type PatientsClient struct {
	c *Client
}

func (p *PatientsClient) Create(ctx context.Context, params PatientParams) (*Patient, error) {
	var out Patient
	if err := p.c.backend.Call(ctx, "POST", "/api/hms/patients", p.c.token, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PatientsClient) Get(ctx context.Context, id string) (*Patient, error) {
	var out Patient
	if err := p.c.backend.Call(ctx, "GET", "/api/hms/patients/"+id, p.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PatientsClient) List(ctx context.Context, params ListParams) (*List[Patient], error) {
	var out List[Patient]
	if err := p.c.backend.Call(ctx, "GET", listPath("/api/hms/patients", params), p.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
