package shelters

import "context"

type Repository interface {
	// Upsert crea o reemplaza el perfil (no toca Verified/VerifiedAt de uno existente).
	Upsert(ctx context.Context, s Shelter) error
	GetByID(ctx context.Context, id string) (Shelter, error)
	Update(ctx context.Context, s Shelter) error
	ListVerified(ctx context.Context) ([]Shelter, error)
}
