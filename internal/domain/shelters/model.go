package shelters

import "time"

// Shelter es el perfil de una cuenta con rol shelter. ID = user id del refugio.
type Shelter struct {
	ID    string
	Name  string
	Email string

	// Ubicación opcional; sin ella el refugio no participa en la búsqueda del más cercano.
	Latitude  *float64
	Longitude *float64

	Verified   bool
	VerifiedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Shelter) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}
