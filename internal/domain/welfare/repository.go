package welfare

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, id string) (Entry, error)

	// Recent: más nuevas primero, como mucho limit.
	Recent(ctx context.Context, adoptionID string, limit int) ([]Entry, error)
	// ListSince: entradas con created_at > since, más nuevas primero.
	ListSince(ctx context.Context, adoptionID string, since time.Time) ([]Entry, error)

	// MarkRisk es el update posterior al insert cuando el sentinel marca la entrada.
	MarkRisk(ctx context.Context, id, reason string) error
	UpdateResponse(ctx context.Context, id string, status Status, text *string, respondedAt *time.Time) error

	// ListFlaggedByShelter: entradas marcadas de mascotas del refugio, más nuevas primero.
	ListFlaggedByShelter(ctx context.Context, shelterID string) ([]Alert, error)
}
