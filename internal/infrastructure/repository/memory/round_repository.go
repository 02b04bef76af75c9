package memory

import (
	"context"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
)

type RoundRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.RoundState
}

func NewRoundRepository() *RoundRepository {
	return &RoundRepository{items: make(map[string]prediction.RoundState)}
}

func (r *RoundRepository) Get(_ context.Context, raceID string, kind race.SessionKind) (prediction.RoundState, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.items[roundKey(raceID, kind)]
	if !ok {
		return prediction.RoundState{}, false, nil
	}

	return state, true, nil
}

func (r *RoundRepository) Upsert(_ context.Context, state prediction.RoundState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[roundKey(state.RaceID, state.Session)] = state
	return nil
}

func (r *RoundRepository) Delete(_ context.Context, raceID string, kind race.SessionKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, roundKey(raceID, kind))
	return nil
}

func roundKey(raceID string, kind race.SessionKind) string {
	return raceID + "::" + string(kind)
}
