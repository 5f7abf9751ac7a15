package birds

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b Bird) error
	Update(ctx context.Context, b Bird) error
	GetByID(ctx context.Context, id string) (Bird, error)
	List(ctx context.Context) ([]Bird, error)

	// IncrementLikes hace likes = likes + 1 de forma atómica en el storage
	// (UPDATE ... RETURNING en Postgres, write lock en memoria) para no
	// perder incrementos bajo requests concurrentes.
	IncrementLikes(ctx context.Context, id string, now time.Time) (Bird, error)
}
