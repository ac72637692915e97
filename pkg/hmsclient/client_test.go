package hmsclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_InstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hms/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "admin" || body["password"] != "password123" {
			t.Errorf("unexpected credentials: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"token":    "tok-123",
			"username": "admin",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	session, err := client.Auth.Login(context.Background(), "admin", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.Token != "tok-123" {
		t.Errorf("expected token tok-123, got %s", session.Token)
	}
	if client.Token() != "tok-123" {
		t.Errorf("expected client token to be installed, got %q", client.Token())
	}

	client.Auth.Logout()
	if client.Token() != "" {
		t.Error("expected token cleared after logout")
	}
}

func TestCall_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}, "total": 0})
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("tok-123")
	if _, err := client.Patients.List(context.Background(), ListParams{}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
}

func TestCall_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid or expired token"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("stale")
	_, err := client.Patients.List(context.Background(), ListParams{})
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestCall_ErrorMessageExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "patient P9999 does not exist"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Admissions.Create(context.Background(), AdmissionParams{PatientID: "P9999"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", apiErr.Status)
	}
	if apiErr.Message != "patient P9999 does not exist" {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
}

func TestCall_ErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Patients.Get(context.Background(), "P1001")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "HTTP error! Status: 502" {
		t.Errorf("unexpected fallback message: %q", apiErr.Message)
	}
}

func TestCall_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL)
	p, err := client.Patients.Get(context.Background(), "P1001")
	if err != nil {
		t.Fatalf("expected no error for 204, got %v", err)
	}
	if p == nil || p.ID != "" {
		t.Errorf("expected zero-value patient for 204, got %+v", p)
	}
}

func TestCreatePatient_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hms/patients" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var params PatientParams
		json.NewDecoder(r.Body).Decode(&params)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Patient{
			ID:            "P1001",
			Name:          params.Name,
			DOB:           params.DOB,
			AdmissionDate: params.AdmissionDate,
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	p, err := client.Patients.Create(context.Background(), PatientParams{
		Name:          "Jane Doe",
		DOB:           "1990-04-12",
		AdmissionDate: "2024-06-01",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.ID != "P1001" {
		t.Errorf("expected ID P1001, got %s", p.ID)
	}
	if p.Name != "Jane Doe" {
		t.Errorf("expected name Jane Doe, got %s", p.Name)
	}
}

func TestList_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("expected limit=5, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []Pharmacy{
				{ID: "PH6001", Name: "City Central Pharmacy"},
				{ID: "PH6002", Name: "Bayview Pharmacy"},
			},
			"total":    2,
			"limit":    5,
			"offset":   0,
			"has_more": false,
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	list, err := client.Pharmacies.List(context.Background(), ListParams{Limit: 5})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.Total != 2 || len(list.Data) != 2 {
		t.Fatalf("unexpected envelope: total=%d len=%d", list.Total, len(list.Data))
	}
	if list.Data[0].ID != "PH6001" {
		t.Errorf("unexpected first pharmacy: %+v", list.Data[0])
	}
}

func TestListPath(t *testing.T) {
	tests := []struct {
		params ListParams
		want   string
	}{
		{ListParams{}, "/api/hms/bills"},
		{ListParams{Limit: 10}, "/api/hms/bills?limit=10"},
		{ListParams{Offset: 20}, "/api/hms/bills?offset=20"},
		{ListParams{Limit: 10, Offset: 20}, "/api/hms/bills?limit=10&offset=20"},
	}
	for _, tt := range tests {
		if got := listPath("/api/hms/bills", tt.params); got != tt.want {
			t.Errorf("listPath(%+v) = %q, want %q", tt.params, got, tt.want)
		}
	}
}
