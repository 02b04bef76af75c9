package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
)

type ResultRepository struct {
	mu    sync.RWMutex
	items map[string]result.SessionResult
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{items: make(map[string]result.SessionResult)}
}

func (r *ResultRepository) Get(_ context.Context, raceID string, kind race.SessionKind) (result.SessionResult, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessionResult, ok := r.items[resultKey(raceID, kind)]
	if !ok {
		return result.SessionResult{}, false, nil
	}

	return cloneSessionResult(sessionResult), true, nil
}

func (r *ResultRepository) List(_ context.Context) ([]result.SessionResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]result.SessionResult, 0, len(keys))
	for _, key := range keys {
		out = append(out, cloneSessionResult(r.items[key]))
	}

	return out, nil
}

func (r *ResultRepository) Upsert(_ context.Context, sessionResult result.SessionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[resultKey(sessionResult.RaceID, sessionResult.Session)] = cloneSessionResult(sessionResult)
	return nil
}

func (r *ResultRepository) Delete(_ context.Context, raceID string, kind race.SessionKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, resultKey(raceID, kind))
	return nil
}

func resultKey(raceID string, kind race.SessionKind) string {
	return raceID + "::" + string(kind)
}

func cloneSessionResult(s result.SessionResult) result.SessionResult {
	copied := s
	copied.Entries = append([]result.Entry(nil), s.Entries...)
	return copied
}
