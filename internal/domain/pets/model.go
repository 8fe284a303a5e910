package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Status de disponibilidad. Solo pasa a adopted junto con la aprobación de la adopción.
// @Enum available, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

// Pet es el perfil publicado por un refugio.
type Pet struct {
	ID        string
	ShelterID string

	Name    string
	Species Species
	Breed   string
	Sex     Sex

	ImageURL string
	Notes    string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ParseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return Species(s), true
	default:
		return "", false
	}
}

func ParseSex(s string) Sex {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s)
	default:
		return SexUnknown
	}
}
