package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
)

type BetRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.UserBet
}

func NewBetRepository() *BetRepository {
	return &BetRepository{items: make(map[string]prediction.UserBet)}
}

func (r *BetRepository) Get(_ context.Context, userID, raceID string, kind race.SessionKind, season int) (prediction.UserBet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bet, ok := r.items[betKey(userID, raceID, kind, season)]
	if !ok {
		return prediction.UserBet{}, false, nil
	}

	return cloneBet(bet), true, nil
}

func (r *BetRepository) ListBySeason(_ context.Context, season int) ([]prediction.UserBet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.items))
	for key, bet := range r.items {
		if bet.Season == season {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make([]prediction.UserBet, 0, len(keys))
	for _, key := range keys {
		out = append(out, cloneBet(r.items[key]))
	}

	return out, nil
}

func (r *BetRepository) Upsert(_ context.Context, bet prediction.UserBet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[betKey(bet.UserID, bet.RaceID, bet.Session, bet.Season)] = cloneBet(bet)
	return nil
}

func betKey(userID, raceID string, kind race.SessionKind, season int) string {
	return userID + "::" + raceID + "::" + string(kind) + "::" + strconv.Itoa(season)
}

func cloneBet(b prediction.UserBet) prediction.UserBet {
	copied := b
	copied.DriverIDs = append([]string(nil), b.DriverIDs...)
	return copied
}
