package identity

import "context"

// Repository exposes read-only account access.
type Repository interface {
	GetByID(ctx context.Context, id string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
}
