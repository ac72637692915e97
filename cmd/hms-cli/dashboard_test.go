package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hms/hms/internal/dashboard"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/pkg/hmsclient"
)

// listServer serves a fixed list envelope for every collection.
func listServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestClientSections_PatientLoaderMatchesRowProjection(t *testing.T) {
	srv := listServer(t, `{"data":[{"id":"P1001","name":"Jane Doe","dob":"1990-01-01","admissionDate":"2024-05-02"}],"total":1,"limit":20,"offset":0,"has_more":false}`)
	defer srv.Close()

	sections := clientSections(hmsclient.New(srv.URL))

	var load dashboard.Loader
	for _, s := range sections {
		if s.ID == "patient" {
			load = s.Load
		}
	}
	if load == nil {
		t.Fatal("no patient section")
	}

	rows, err := load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	want := (&patient.Patient{
		ID: "P1001", Name: "Jane Doe", DOB: "1990-01-01", AdmissionDate: "2024-05-02",
	}).ToRow()
	for key, val := range want {
		if rows[0][key] != val {
			t.Errorf("row[%q] = %q, want %q", key, rows[0][key], val)
		}
	}
}

func TestClientSections_EmptyListPlaceholderIsCapitalized(t *testing.T) {
	srv := listServer(t, `{"data":[],"total":0,"limit":20,"offset":0,"has_more":false}`)
	defer srv.Close()

	d, err := dashboard.New(clientSections(hmsclient.New(srv.URL))...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := d.Markup("patient"); !strings.Contains(got, "No Patient records found.") {
		t.Errorf("patient markup = %q, want the capitalized placeholder", got)
	}
	if got := d.Markup("pharmacy"); !strings.Contains(got, "No Pharmacy records found.") {
		t.Errorf("pharmacy markup = %q, want the capitalized placeholder", got)
	}
}
