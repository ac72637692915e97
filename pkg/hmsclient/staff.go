package hmsclient

import (
	"context"
	"time"
)

// StaffMember mirrors the server's staff record.
type StaffMember struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StaffParams carries the fields for registering a staff member.
type StaffParams struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

type StaffClient struct {
	c *Client
}

func (s *StaffClient) Create(ctx context.Context, params StaffParams) (*StaffMember, error) {
	var out StaffMember
	if err := s.c.backend.Call(ctx, "POST", "/api/hms/staff", s.c.token, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StaffClient) Get(ctx context.Context, id string) (*StaffMember, error) {
	var out StaffMember
	if err := s.c.backend.Call(ctx, "GET", "/api/hms/staff/"+id, s.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StaffClient) List(ctx context.Context, params ListParams) (*List[StaffMember], error) {
	var out List[StaffMember]
	if err := s.c.backend.Call(ctx, "GET", listPath("/api/hms/staff", params), s.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
