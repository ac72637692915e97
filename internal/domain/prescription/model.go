package prescription

import (
	"time"

	"github.com/hms/hms/internal/render"
)

// Prescription records a medication order ("R4001" IDs). DateWritten is
// stamped at creation time, date only.
type Prescription struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientID"`
	StaffID     string    `json:"staffID"`
	Medication  string    `json:"medication"`
	Dosage      string    `json:"dosage"`
	PharmacyID  string    `json:"pharmacyID"`
	DateWritten string    `json:"dateWritten"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Prescription) ToRow() render.Record {
	return render.Record{
		"id":          p.ID,
		"patientID":   p.PatientID,
		"staffID":     p.StaffID,
		"medication":  p.Medication,
		"dosage":      p.Dosage,
		"pharmacyID":  p.PharmacyID,
		"dateWritten": p.DateWritten,
	}
}

// Fields is the ordered display descriptor for prescription lists.
func Fields() []render.Field {
	return []render.Field{
		render.Plain("id"),
		render.Plain("patientID"),
		render.Plain("medication"),
		render.Plain("dosage"),
		render.Plain("pharmacyID"),
		render.Date("dateWritten"),
	}
}
