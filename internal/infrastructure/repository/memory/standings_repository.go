package memory

import (
	"context"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/standings"
)

type StandingsRepository struct {
	mu      sync.RWMutex
	drivers map[int][]standings.DriverStanding
	teams   map[int][]standings.TeamStanding
}

func NewStandingsRepository() *StandingsRepository {
	return &StandingsRepository{
		drivers: make(map[int][]standings.DriverStanding),
		teams:   make(map[int][]standings.TeamStanding),
	}
}

func (r *StandingsRepository) ListDrivers(_ context.Context, season int) ([]standings.DriverStanding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]standings.DriverStanding(nil), r.drivers[season]...), nil
}

func (r *StandingsRepository) ListTeams(_ context.Context, season int) ([]standings.TeamStanding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]standings.TeamStanding(nil), r.teams[season]...), nil
}

func (r *StandingsRepository) Replace(_ context.Context, season int, drivers []standings.DriverStanding, teams []standings.TeamStanding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drivers[season] = append([]standings.DriverStanding(nil), drivers...)
	r.teams[season] = append([]standings.TeamStanding(nil), teams...)
	return nil
}
