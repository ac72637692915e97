package render

import (
	"strings"
	"testing"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "Id"},
		{"name", "Name"},
		{"dob", "Dob"},
		{"admissionDate", "Admission Date"},
		{"paymentStatus", "Payment Status"},
		{"patientID", "Patient ID"},
		{"dischargeDate", "Discharge Date"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Humanize(tt.in); got != tt.want {
			t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestList_EmptyPlaceholder(t *testing.T) {
	got := List(nil, []Field{Plain("id")}, "Patient")
	want := "<li>No Patient records found.</li>"
	if got != want {
		t.Errorf("List(empty) = %q, want %q", got, want)
	}
}

func TestList_ProjectsFieldsInOrder(t *testing.T) {
	records := []Record{{"id": "P1001", "name": "Jane", "dob": "1990-01-01"}}
	fields := []Field{Plain("id"), Plain("name"), Date("dob")}

	got := List(records, fields, "Patient")

	for _, want := range []string{
		"<strong>Id:</strong> P1001",
		"<strong>Name:</strong> Jane",
		"<strong>Dob:</strong> January 1, 1990",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("List output missing %q; got %q", want, got)
		}
	}
	if idx := strings.Index(got, "Id:"); idx > strings.Index(got, "Name:") {
		t.Error("fields not projected in descriptor order")
	}
}

func TestList_MultipleRecords(t *testing.T) {
	records := []Record{
		{"id": "S2001", "name": "Dr. Smith"},
		{"id": "S2002", "name": "Dr. Jones"},
	}
	got := List(records, []Field{Plain("id"), Plain("name")}, "Staff")
	if n := strings.Count(got, "<li>"); n != 2 {
		t.Errorf("expected 2 list items, got %d", n)
	}
}

func TestList_EscapesValues(t *testing.T) {
	records := []Record{{"name": `<script>alert("x")</script>`}}
	got := List(records, []Field{Plain("name")}, "Patient")
	if strings.Contains(got, "<script>") {
		t.Errorf("unescaped markup in output: %q", got)
	}
}

func TestFormatDate_SentinelPassthrough(t *testing.T) {
	if got := FormatDate("N/A"); got != "N/A" {
		t.Errorf("FormatDate(N/A) = %q, want N/A", got)
	}
	if got := FormatDate(""); got != "" {
		t.Errorf("FormatDate(empty) = %q, want empty", got)
	}
}

func TestPharmacyOptions_SentinelFirst(t *testing.T) {
	got := PharmacyOptions([]Option{
		{ID: "PH6001", Name: "City Central Pharmacy"},
		{ID: "PH6002", Name: "Bayview Pharmacy"},
	})
	if !strings.HasPrefix(got, `<option value="">Select Pharmacy</option>`) {
		t.Errorf("options do not start with the blank sentinel: %q", got)
	}
	if !strings.Contains(got, `value="PH6001"`) || !strings.Contains(got, `value="PH6002"`) {
		t.Errorf("missing pharmacy options: %q", got)
	}
	if n := strings.Count(got, "<option"); n != 3 {
		t.Errorf("expected 3 options, got %d", n)
	}
}

func TestPharmacyOptions_EmptyStillHasSentinel(t *testing.T) {
	got := PharmacyOptions(nil)
	if got != `<option value="">Select Pharmacy</option>` {
		t.Errorf("PharmacyOptions(nil) = %q", got)
	}
}
