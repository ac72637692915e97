package pharmacy

import (
	"time"

	"github.com/hms/hms/internal/render"
)

// Pharmacy is a dispensing location ("PH6001" IDs). Two are seeded at
// startup so prescriptions always have a dropdown to draw from.
type Pharmacy struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Pharmacy) ToRow() render.Record {
	return render.Record{
		"id":       p.ID,
		"name":     p.Name,
		"location": p.Location,
	}
}

// ToOption projects the pharmacy into a dropdown option.
func (p *Pharmacy) ToOption() render.Option {
	return render.Option{ID: p.ID, Name: p.Name}
}

// Fields is the ordered display descriptor for pharmacy lists.
func Fields() []render.Field {
	return []render.Field{
		render.Plain("id"),
		render.Plain("name"),
		render.Plain("location"),
	}
}
