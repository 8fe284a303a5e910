package adoptions

import (
	"context"
	"time"

	"pet-adoption-welfare/internal/domain/pets"
)

type Repository interface {
	// Create puede devolver ErrDuplicateApplication si el store tiene índice único.
	Create(ctx context.Context, a Adoption) error
	Update(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	ListByUser(ctx context.Context, userID string) ([]Adoption, error)
	ListByUserAndPet(ctx context.Context, userID, petID string) ([]Adoption, error)
	// ListByShelter devuelve las adopciones de mascotas del refugio.
	ListByShelter(ctx context.Context, shelterID string) ([]Adoption, error)
}

// Vistas mínimas que necesita la unidad de trabajo de approve.
type AdoptionWriter interface {
	GetByID(ctx context.Context, id string) (Adoption, error)
	Update(ctx context.Context, a Adoption) error
}

type PetStatusWriter interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	SetStatus(ctx context.Context, id string, status pets.Status, at time.Time) error
}

type TxStores struct {
	Adoptions AdoptionWriter
	Pets      PetStatusWriter
}

// TxRunner ejecuta fn como una sola unidad: si fn devuelve error no queda
// ninguna escritura visible.
type TxRunner interface {
	InTx(ctx context.Context, fn func(TxStores) error) error
}

// PetLookup evita depender de *pets.Service completo.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}
