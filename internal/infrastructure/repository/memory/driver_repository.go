package memory

import (
	"context"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
)

type DriverRepository struct {
	mu     sync.RWMutex
	items  map[string]driver.Driver
	orders []string
}

func NewDriverRepository(drivers []driver.Driver) *DriverRepository {
	items := make(map[string]driver.Driver, len(drivers))
	orders := make([]string, 0, len(drivers))

	for _, d := range drivers {
		items[d.ID] = cloneDriver(d)
		orders = append(orders, d.ID)
	}

	return &DriverRepository{
		items:  items,
		orders: orders,
	}
}

func (r *DriverRepository) GetByID(_ context.Context, id string) (driver.Driver, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[id]
	if !ok {
		return driver.Driver{}, false, nil
	}

	return cloneDriver(d), true, nil
}

func (r *DriverRepository) List(_ context.Context) ([]driver.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]driver.Driver, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneDriver(r.items[id]))
	}

	return out, nil
}

func cloneDriver(d driver.Driver) driver.Driver {
	copied := d
	if d.TeamID != nil {
		teamID := *d.TeamID
		copied.TeamID = &teamID
	}
	return copied
}
