package catalog

// Read models owned by the upstream marketplace core. Fetched once at wizard
// entry and immutable for the lifetime of a booking session.

type Professional struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"display_name"`
	ActivityName string `json:"activity_name"`
	City         string `json:"city"`
	AvatarURL    string `json:"avatar_url"`
}

type Prestation struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active"`
}

// FindActive returns the prestation with the given id when it is offered and
// active. Inactive prestations are never selectable.
func FindActive(prestations []Prestation, id int64) (Prestation, bool) {
	for _, p := range prestations {
		if p.ID == id && p.Active {
			return p, true
		}
	}
	return Prestation{}, false
}
