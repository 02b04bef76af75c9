package race

import "context"

// Repository exposes read-only calendar access.
type Repository interface {
	GetByID(ctx context.Context, id string) (Race, bool, error)
	List(ctx context.Context) ([]Race, error)
}
