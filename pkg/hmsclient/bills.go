package hmsclient

import (
	"context"
	"time"
)

// Bill mirrors the server's bill record. TotalAmount is a formatted dollar
// string like "$150.00".
type Bill struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientID"`
	TotalAmount   string    `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus"`
	DateCreated   string    `json:"dateCreated"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BillParams carries the fields for creating a bill. TotalAmount is a plain
// decimal string; the server normalizes it to a dollar amount.
type BillParams struct {
	PatientID     string `json:"patientID"`
	TotalAmount   string `json:"totalAmount"`
	PaymentStatus string `json:"paymentStatus"`
}

type BillsClient struct {
	c *Client
}

func (b *BillsClient) Create(ctx context.Context, params BillParams) (*Bill, error) {
	var out Bill
	if err := b.c.backend.Call(ctx, "POST", "/api/hms/bills", b.c.token, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BillsClient) Get(ctx context.Context, id string) (*Bill, error) {
	var out Bill
	if err := b.c.backend.Call(ctx, "GET", "/api/hms/bills/"+id, b.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BillsClient) List(ctx context.Context, params ListParams) (*List[Bill], error) {
	var out List[Bill]
	if err := b.c.backend.Call(ctx, "GET", listPath("/api/hms/bills", params), b.c.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
