package team

import "context"

// Repository exposes read-only constructor access.
type Repository interface {
	GetByID(ctx context.Context, id string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
}
