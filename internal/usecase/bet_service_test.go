package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

func newBetFixture(now time.Time) (*BetService, *RoundService) {
	raceRepo := memory.NewRaceRepository(memory.SeedRaces())
	rounds := NewRoundService(raceRepo, memory.NewRoundRepository(), logging.NewNop())
	rounds.now = func() time.Time { return now }

	settings := NewSettingsService(memory.NewSettingsRepository(), testSeason, logging.NewNop())
	service := NewBetService(
		memory.NewBetRepository(),
		memory.NewDriverRepository(memory.SeedDrivers()),
		rounds,
		settings,
		testSeason,
		logging.NewNop(),
	)
	service.now = func() time.Time { return now }
	return service, rounds
}

func TestBetService_Submit_ThenReplace(t *testing.T) {
	now := melbourneQualifyingStart.Add(-2 * time.Hour)
	service, _ := newBetFixture(now)

	first, err := service.Submit(t.Context(), SubmitBetInput{
		UserID:    "user-1",
		RaceID:    memory.RaceIDMelbourne,
		Session:   race.SessionQualifying,
		DriverIDs: []string{"lando-norris", "max-verstappen", "charles-leclerc"},
	})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if first.Season != testSeason || !first.SubmittedAt.Equal(now.UTC()) {
		t.Fatalf("unexpected stored bet: %+v", first)
	}

	second, err := service.Submit(t.Context(), SubmitBetInput{
		UserID:    "user-1",
		RaceID:    memory.RaceIDMelbourne,
		Session:   race.SessionQualifying,
		DriverIDs: []string{"max-verstappen", "lando-norris"},
	})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	stored, exists, err := service.Get(t.Context(), "user-1", memory.RaceIDMelbourne, race.SessionQualifying)
	if err != nil {
		t.Fatalf("get bet failed: %v", err)
	}
	if !exists {
		t.Fatal("expected stored bet")
	}
	if len(stored.DriverIDs) != len(second.DriverIDs) || stored.DriverIDs[0] != "max-verstappen" {
		t.Fatalf("expected replacement to win, got %+v", stored)
	}
}

func TestBetService_Submit_ClosedWindow(t *testing.T) {
	service, _ := newBetFixture(melbourneQualifyingStart.Add(time.Minute))

	_, err := service.Submit(t.Context(), SubmitBetInput{
		UserID:    "user-1",
		RaceID:    memory.RaceIDMelbourne,
		Session:   race.SessionQualifying,
		DriverIDs: []string{"lando-norris"},
	})
	if !errors.Is(err, ErrBettingClosed) {
		t.Fatalf("expected ErrBettingClosed, got %v", err)
	}
}

func TestBetService_Submit_ManualOpenAcceptsLateBet(t *testing.T) {
	service, rounds := newBetFixture(melbourneQualifyingStart.Add(time.Hour))

	if err := rounds.SetStatus(t.Context(), memory.RaceIDMelbourne, race.SessionQualifying, prediction.RoundOpen); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	if _, err := service.Submit(t.Context(), SubmitBetInput{
		UserID:    "user-1",
		RaceID:    memory.RaceIDMelbourne,
		Session:   race.SessionQualifying,
		DriverIDs: []string{"lando-norris"},
	}); err != nil {
		t.Fatalf("expected manual open to accept the bet, got %v", err)
	}
}

func TestBetService_Submit_Validation(t *testing.T) {
	now := melbourneQualifyingStart.Add(-2 * time.Hour)

	cases := []struct {
		name      string
		driverIDs []string
		want      error
	}{
		{
			name:      "too many slots for qualifying table",
			driverIDs: []string{"lando-norris", "max-verstappen", "charles-leclerc", "lewis-hamilton", "george-russell", "fernando-alonso"},
			want:      ErrInvalidInput,
		},
		{
			name:      "duplicate driver",
			driverIDs: []string{"lando-norris", "lando-norris"},
			want:      ErrInvalidInput,
		},
		{
			name:      "empty prediction",
			driverIDs: nil,
			want:      ErrInvalidInput,
		},
		{
			name:      "unknown driver",
			driverIDs: []string{"juan-fangio"},
			want:      ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newBetFixture(now)
			_, err := service.Submit(t.Context(), SubmitBetInput{
				UserID:    "user-1",
				RaceID:    memory.RaceIDMelbourne,
				Session:   race.SessionQualifying,
				DriverIDs: tc.driverIDs,
			})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
