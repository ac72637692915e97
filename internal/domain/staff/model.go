package staff

import (
	"time"

	"github.com/hms/hms/internal/render"
)

// Member is a hospital staff record ("S2001" IDs).
type Member struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (m *Member) ToRow() render.Record {
	return render.Record{
		"id":             m.ID,
		"name":           m.Name,
		"role":           m.Role,
		"specialization": m.Specialization,
	}
}

// Fields is the ordered display descriptor for staff lists.
func Fields() []render.Field {
	return []render.Field{
		render.Plain("id"),
		render.Plain("name"),
		render.Plain("role"),
		render.Plain("specialization"),
	}
}
