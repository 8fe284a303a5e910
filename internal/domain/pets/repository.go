package pets

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListAvailable(ctx context.Context) ([]Pet, error)
	ListByShelter(ctx context.Context, shelterID string) ([]Pet, error)

	// SetStatus devuelve ErrNotFound si la mascota no existe.
	SetStatus(ctx context.Context, id string, status Status, at time.Time) error
}
