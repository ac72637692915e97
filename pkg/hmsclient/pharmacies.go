package hmsclient

import (
	"context"
	"time"
)

// Pharmacy mirrors the server's pharmacy record.
type Pharmacy struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// PharmacyParams carries the fields for registering a pharmacy.
type PharmacyParams struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type PharmaciesClient struct {
	c *Client
}

func (p *PharmaciesClient) Create(ctx context.Context, params PharmacyParams) (*Pharmacy, error) {
	var out Pharmacy
	if err := p.c.backend.Call(ctx, "POST", "/api/hms/pharmacies", p.c.token, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PharmaciesClient) Get(ctx context.Context, id string) (*Pharmacy, error) {
	var out Pharmacy
	if err := p.c.backend.Call(ctx, "GET", "/api/hms/pharmacies/"+id, p.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PharmaciesClient) List(ctx context.Context, params ListParams) (*List[Pharmacy], error) {
	var out List[Pharmacy]
	if err := p.c.backend.Call(ctx, "GET", listPath("/api/hms/pharmacies", params), p.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
