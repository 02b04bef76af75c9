package usecase

import (
	"errors"
	"testing"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

func TestSettingsService_Get_FallsBackToDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewSettingsRepository(), testSeason, logging.NewNop())

	settings, err := service.Get(t.Context())
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}

	defaults := prediction.DefaultSettings(testSeason)
	if len(settings.RacePoints) != len(defaults.RacePoints) || settings.ParticipationPoint != defaults.ParticipationPoint {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSettingsService_Update_RejectsInvalidConfiguration(t *testing.T) {
	repo := memory.NewSettingsRepository()
	service := NewSettingsService(repo, testSeason, logging.NewNop())

	stored, err := service.Update(t.Context(), prediction.Settings{
		RacePoints:         []int{12, 9, 7},
		QualiPoints:        []int{3, 2, 1},
		ParticipationPoint: 2,
	})
	if err != nil {
		t.Fatalf("valid update failed: %v", err)
	}
	if stored.Season != testSeason {
		t.Fatalf("update must pin the active season, got %+v", stored)
	}

	_, err = service.Update(t.Context(), prediction.Settings{
		RacePoints:         nil,
		QualiPoints:        []int{3, 2, 1},
		ParticipationPoint: 2,
	})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}

	// The bad update must not have clobbered the stored settings.
	current, err := service.Get(t.Context())
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	if len(current.RacePoints) != 3 || current.RacePoints[0] != 12 {
		t.Fatalf("rejected update leaked into storage: %+v", current)
	}
}

func TestSettingsService_EnsureDefaults(t *testing.T) {
	repo := memory.NewSettingsRepository()
	service := NewSettingsService(repo, testSeason, logging.NewNop())

	if err := service.EnsureDefaults(t.Context()); err != nil {
		t.Fatalf("ensure defaults failed: %v", err)
	}
	if _, exists, err := repo.Get(t.Context(), testSeason); err != nil || !exists {
		t.Fatalf("expected stored defaults, exists=%v err=%v", exists, err)
	}

	// Tuned settings survive a second ensure.
	if _, err := service.Update(t.Context(), prediction.Settings{
		RacePoints:         []int{20, 15},
		QualiPoints:        []int{5},
		ParticipationPoint: 0,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := service.EnsureDefaults(t.Context()); err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}
	current, err := service.Get(t.Context())
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	if len(current.RacePoints) != 2 || current.RacePoints[0] != 20 {
		t.Fatalf("ensure defaults overwrote tuned settings: %+v", current)
	}
}
