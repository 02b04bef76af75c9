package usecase

import (
	"context"
	"fmt"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

// SettingsService owns the season scoring configuration. Reads fall back to
// the shipped defaults when nothing has been stored yet, so the game is
// playable before an administrator ever touches the settings page.
type SettingsService struct {
	settingsRepo prediction.SettingsRepository
	season       int
	logger       *logging.Logger
}

func NewSettingsService(
	settingsRepo prediction.SettingsRepository,
	season int,
	logger *logging.Logger,
) *SettingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SettingsService{
		settingsRepo: settingsRepo,
		season:       season,
		logger:       logger,
	}
}

// Get returns the active settings, falling back to defaults.
func (s *SettingsService) Get(ctx context.Context) (prediction.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.Get")
	defer span.End()

	stored, exists, err := s.settingsRepo.Get(ctx, s.season)
	if err != nil {
		return prediction.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	if !exists {
		return prediction.DefaultSettings(s.season), nil
	}
	return stored, nil
}

// Update replaces the stored settings after validation. An invalid
// configuration is rejected and the previous settings stay in force.
func (s *SettingsService) Update(ctx context.Context, settings prediction.Settings) (prediction.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.Update")
	defer span.End()

	settings.Season = s.season
	if err := settings.Validate(); err != nil {
		return prediction.Settings{}, fmt.Errorf("%w: %s", ErrInvalidConfiguration, err)
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return prediction.Settings{}, fmt.Errorf("upsert settings: %w", err)
	}

	s.logger.InfoContext(ctx, "scoring settings updated",
		"season", settings.Season,
		"race_slots", len(settings.RacePoints),
		"quali_slots", len(settings.QualiPoints),
	)
	return settings, nil
}

// EnsureDefaults writes the default settings if none exist. Called at startup
// so the settings row is visible to administrators from day one.
func (s *SettingsService) EnsureDefaults(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.EnsureDefaults")
	defer span.End()

	_, exists, err := s.settingsRepo.Get(ctx, s.season)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.settingsRepo.Upsert(ctx, prediction.DefaultSettings(s.season)); err != nil {
		return fmt.Errorf("seed default settings: %w", err)
	}
	return nil
}
