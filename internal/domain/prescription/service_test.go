package prescription

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/internal/store"
)

func newTestService() *Service {
	return NewService(NewMemRepo(store.NewSequence("R", 4000)))
}

func TestCreate_AllocatesPrefixedIDs(t *testing.T) {
	svc := newTestService()

	p, err := svc.Create(context.Background(), CreateInput{
		PatientID: "P1001", StaffID: "S2001", Medication: "Amoxicillin", Dosage: "500mg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "R4001" {
		t.Errorf("prescription ID = %q, want R4001", p.ID)
	}
}

func TestCreate_StampsDateWritten(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC) }

	p, err := svc.Create(context.Background(), CreateInput{Medication: "Ibuprofen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DateWritten != "2024-06-15" {
		t.Errorf("dateWritten = %q, want 2024-06-15 (date only)", p.DateWritten)
	}
}

func TestCreate_UppercasesReferenceIDs(t *testing.T) {
	svc := newTestService()

	p, _ := svc.Create(context.Background(), CreateInput{
		PatientID: "p1001", StaffID: " s2001 ", PharmacyID: "ph6001", Medication: "Aspirin",
	})
	if p.PatientID != "P1001" || p.StaffID != "S2001" || p.PharmacyID != "PH6001" {
		t.Errorf("reference IDs not normalized: %q / %q / %q", p.PatientID, p.StaffID, p.PharmacyID)
	}
}

func TestCreate_RequiresMedication(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Create(context.Background(), CreateInput{PatientID: "P1001"}); err == nil {
		t.Error("expected error for missing medication")
	}
}
