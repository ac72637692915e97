package billing

import (
	"time"

	"github.com/hms/hms/internal/render"
)

// Bill is an invoice raised against a patient ("B5001" IDs). TotalAmount is
// stored in display form ("$19.50"); once formatted the value is a string
// and no further arithmetic is done on it.
type Bill struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientID"`
	TotalAmount   string    `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus"`
	DateCreated   string    `json:"dateCreated"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (b *Bill) ToRow() render.Record {
	return render.Record{
		"id":            b.ID,
		"patientID":     b.PatientID,
		"totalAmount":   b.TotalAmount,
		"paymentStatus": b.PaymentStatus,
		"dateCreated":   b.DateCreated,
	}
}

// Fields is the ordered display descriptor for bill lists.
func Fields() []render.Field {
	return []render.Field{
		render.Plain("id"),
		render.Plain("patientID"),
		render.Currency("totalAmount"),
		render.Plain("paymentStatus"),
		render.Date("dateCreated"),
	}
}
