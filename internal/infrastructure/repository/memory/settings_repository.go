package memory

import (
	"context"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
)

type SettingsRepository struct {
	mu    sync.RWMutex
	items map[int]prediction.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{items: make(map[int]prediction.Settings)}
}

func (r *SettingsRepository) Get(_ context.Context, season int) (prediction.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.items[season]
	if !ok {
		return prediction.Settings{}, false, nil
	}

	return cloneSettings(settings), true, nil
}

func (r *SettingsRepository) Upsert(_ context.Context, settings prediction.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[settings.Season] = cloneSettings(settings)
	return nil
}

func cloneSettings(s prediction.Settings) prediction.Settings {
	copied := s
	copied.RacePoints = append([]int(nil), s.RacePoints...)
	copied.QualiPoints = append([]int(nil), s.QualiPoints...)
	return copied
}
