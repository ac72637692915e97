package hmsclient

import "fmt"

// List is the paginated collection envelope returned by every list endpoint.
type List[T any] struct {
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// ListParams narrows a list call to a page. The zero value requests the
// server defaults.
type ListParams struct {
	Limit  int
	Offset int
}

// Client talks to one HMS server. The bearer token captured by Login is
// shared by every sub-client; SetToken restores a previously persisted
// session.
type Client struct {
	backend Backend
	token   string

	Auth          *AuthClient
	Patients      *PatientsClient
	Staff         *StaffClient
	Admissions    *AdmissionsClient
	Prescriptions *PrescriptionsClient
	Bills         *BillsClient
	Pharmacies    *PharmaciesClient
}

// New returns a client for the server at baseURL.
func New(baseURL string) *Client {
	return NewWithBackend(NewBackend(baseURL))
}

// NewWithBackend returns a client using a caller-supplied backend. Tests use
// this to substitute a mock transport.
func NewWithBackend(backend Backend) *Client {
	c := &Client{backend: backend}
	c.Auth = &AuthClient{c: c}
	c.Patients = &PatientsClient{c: c}
	c.Staff = &StaffClient{c: c}
	c.Admissions = &AdmissionsClient{c: c}
	c.Prescriptions = &PrescriptionsClient{c: c}
	c.Bills = &BillsClient{c: c}
	c.Pharmacies = &PharmaciesClient{c: c}
	return c
}

// SetToken installs a bearer token obtained from an earlier login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty when not logged in.
func (c *Client) Token() string {
	return c.token
}

func listPath(base string, p ListParams) string {
	switch {
	case p.Limit > 0 && p.Offset > 0:
		return fmt.Sprintf("%s?limit=%d&offset=%d", base, p.Limit, p.Offset)
	case p.Limit > 0:
		return fmt.Sprintf("%s?limit=%d", base, p.Limit)
	case p.Offset > 0:
		return fmt.Sprintf("%s?offset=%d", base, p.Offset)
	}
	return base
}
