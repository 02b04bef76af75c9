package memory

import (
	"context"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/identity"
)

type UserRepository struct {
	mu     sync.RWMutex
	items  map[string]identity.User
	orders []string
}

func NewUserRepository(users []identity.User) *UserRepository {
	items := make(map[string]identity.User, len(users))
	orders := make([]string, 0, len(users))

	for _, u := range users {
		items[u.ID] = u
		orders = append(orders, u.ID)
	}

	return &UserRepository{
		items:  items,
		orders: orders,
	}
}

func (r *UserRepository) GetByID(_ context.Context, id string) (identity.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return identity.User{}, false, nil
	}

	return u, true, nil
}

func (r *UserRepository) List(_ context.Context) ([]identity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]identity.User, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}
