package driver

import "context"

// Repository exposes read-only roster access. List returns drivers in roster
// sort order; standings tie-breaking depends on that ordering being stable.
type Repository interface {
	GetByID(ctx context.Context, id string) (Driver, bool, error)
	List(ctx context.Context) ([]Driver, error)
}
