package distress

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) error
	Update(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	// List: más nuevos primero; status vacío = todos.
	List(ctx context.Context, status Status) ([]Report, error)
}
