package patient

import (
	"time"

	"github.com/hms/hms/internal/render"
)

// Patient is a registered patient record. The ID is the prefixed business
// identifier ("P1001"); records are immutable after creation.
type Patient struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DOB           string    `json:"dob"`
	AdmissionDate string    `json:"admissionDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToRow projects the patient into a flat record for the rendering layer.
func (p *Patient) ToRow() render.Record {
	return render.Record{
		"id":            p.ID,
		"name":          p.Name,
		"dob":           p.DOB,
		"admissionDate": p.AdmissionDate,
	}
}

// Fields is the ordered display descriptor for patient lists.
func Fields() []render.Field {
	return []render.Field{
		render.Plain("id"),
		render.Plain("name"),
		render.Date("dob"),
		render.Date("admissionDate"),
	}
}
