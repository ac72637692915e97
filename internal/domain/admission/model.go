package admission

import (
	"time"

	"github.com/hms/hms/internal/render"
)

// DischargeNotSet is the sentinel stored when no discharge date is given;
// admissions are never edited, so it is also never replaced.
const DischargeNotSet = "N/A"

// Admission links a patient to a staff member and a room ("A3001" IDs).
type Admission struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientID"`
	StaffID       string    `json:"staffID"`
	RoomNum       string    `json:"roomNum"`
	DischargeDate string    `json:"dischargeDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a *Admission) ToRow() render.Record {
	return render.Record{
		"id":            a.ID,
		"patientID":     a.PatientID,
		"staffID":       a.StaffID,
		"roomNum":       a.RoomNum,
		"dischargeDate": a.DischargeDate,
	}
}

// Fields is the ordered display descriptor for admission lists.
func Fields() []render.Field {
	return []render.Field{
		render.Plain("id"),
		render.Plain("patientID"),
		render.Plain("staffID"),
		render.Plain("roomNum"),
		render.Date("dischargeDate"),
	}
}
