package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

type RaceRepository struct {
	mu     sync.RWMutex
	items  map[string]race.Race
	orders []string
}

func NewRaceRepository(races []race.Race) *RaceRepository {
	items := make(map[string]race.Race, len(races))
	orders := make([]string, 0, len(races))

	for _, rc := range races {
		items[rc.ID] = cloneRace(rc)
		orders = append(orders, rc.ID)
	}

	return &RaceRepository{
		items:  items,
		orders: orders,
	}
}

func (r *RaceRepository) GetByID(_ context.Context, id string) (race.Race, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rc, ok := r.items[id]
	if !ok {
		return race.Race{}, false, nil
	}

	return cloneRace(rc), true, nil
}

func (r *RaceRepository) List(_ context.Context) ([]race.Race, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]race.Race, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneRace(r.items[id]))
	}

	return out, nil
}

func cloneRace(rc race.Race) race.Race {
	copied := rc
	copied.Sessions = make(map[race.SessionKind]time.Time, len(rc.Sessions))
	for kind, start := range rc.Sessions {
		copied.Sessions[kind] = start
	}
	return copied
}
