package hmsclient

import (
	"context"
	"time"
)

// Admission mirrors the server's admission record. DischargeDate is "N/A"
// until a discharge is recorded.
type Admission struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientID"`
	StaffID       string    `json:"staffID"`
	RoomNum       string    `json:"roomNum"`
	DischargeDate string    `json:"dischargeDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AdmissionParams carries the fields for recording an admission.
type AdmissionParams struct {
	PatientID     string `json:"patientID"`
	StaffID       string `json:"staffID"`
	RoomNum       string `json:"roomNum"`
	DischargeDate string `json:"dischargeDate"`
}

type AdmissionsClient struct {
	c *Client
}

func (a *AdmissionsClient) Create(ctx context.Context, params AdmissionParams) (*Admission, error) {
	var out Admission
	if err := a.c.backend.Call(ctx, "POST", "/api/hms/admissions", a.c.token, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdmissionsClient) Get(ctx context.Context, id string) (*Admission, error) {
	var out Admission
	if err := a.c.backend.Call(ctx, "GET", "/api/hms/admissions/"+id, a.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdmissionsClient) List(ctx context.Context, params ListParams) (*List[Admission], error) {
	var out List[Admission]
	if err := a.c.backend.Call(ctx, "GET", listPath("/api/hms/admissions", params), a.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
