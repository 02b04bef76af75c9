package usecase

import (
	"errors"
	"testing"

	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/domain/standings"
	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

const testSeason = 2026

func newResultFixture() (*ResultService, *memory.ResultRepository, *memory.StandingsRepository) {
	resultRepo := memory.NewResultRepository()
	standingsRepo := memory.NewStandingsRepository()
	standingsService := NewStandingsService(
		resultRepo,
		memory.NewDriverRepository(memory.SeedDrivers()),
		memory.NewTeamRepository(memory.SeedTeams()),
		standingsRepo,
	)
	service := NewResultService(
		memory.NewRaceRepository(memory.SeedRaces()),
		resultRepo,
		standingsService,
		testSeason,
		logging.NewNop(),
	)
	return service, resultRepo, standingsRepo
}

func raceEntries() []result.Entry {
	return []result.Entry{
		{DriverID: "lando-norris", TeamID: memory.TeamIDMcLaren, Position: "1", Points: 25},
		{DriverID: "max-verstappen", TeamID: memory.TeamIDRedBull, Position: "2", Points: 18},
		{DriverID: "oscar-piastri", TeamID: memory.TeamIDMcLaren, Position: "3", Points: 15},
	}
}

func TestResultService_Save_RecomputesStandings(t *testing.T) {
	service, _, _ := newResultFixture()

	updated, err := service.Save(t.Context(), SaveSessionResultInput{
		RaceID:  memory.RaceIDMelbourne,
		Session: race.SessionRace,
		Entries: raceEntries(),
	})
	if err != nil {
		t.Fatalf("save result failed: %v", err)
	}

	if len(updated.Drivers) == 0 {
		t.Fatal("expected driver standings after save")
	}
	top := updated.Drivers[0]
	if top.DriverID != "lando-norris" || top.Points != 25 || top.Rank != 1 {
		t.Fatalf("unexpected leader: %+v", top)
	}
	if top.Trend != standings.TrendSame {
		t.Fatalf("first recompute should trend same, got %s", top.Trend)
	}

	var mclaren standings.TeamStanding
	for _, row := range updated.Teams {
		if row.TeamID == memory.TeamIDMcLaren {
			mclaren = row
		}
	}
	if mclaren.Points != 40 || mclaren.Rank != 1 {
		t.Fatalf("unexpected constructor leader: %+v", mclaren)
	}
}

func TestResultService_Save_IsIdempotent(t *testing.T) {
	service, resultRepo, _ := newResultFixture()

	input := SaveSessionResultInput{
		RaceID:  memory.RaceIDMelbourne,
		Session: race.SessionRace,
		Entries: raceEntries(),
	}
	first, err := service.Save(t.Context(), input)
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := service.Save(t.Context(), input)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if len(first.Drivers) != len(second.Drivers) {
		t.Fatalf("driver standings length changed: %d vs %d", len(first.Drivers), len(second.Drivers))
	}
	for idx := range first.Drivers {
		if first.Drivers[idx] != second.Drivers[idx] {
			t.Fatalf("standings row %d changed on replay: %+v vs %+v", idx, first.Drivers[idx], second.Drivers[idx])
		}
	}

	stored, err := resultRepo.List(t.Context())
	if err != nil {
		t.Fatalf("list results failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected one stored result, got %d", len(stored))
	}
}

func TestResultService_Save_RejectsUnresolvedDriver(t *testing.T) {
	service, _, _ := newResultFixture()

	_, err := service.Save(t.Context(), SaveSessionResultInput{
		RaceID:  memory.RaceIDMelbourne,
		Session: race.SessionRace,
		Entries: []result.Entry{
			{DriverID: "lando-norris", Position: "1", Points: 25},
			{DriverID: "", Position: "2"},
		},
	})
	if !errors.Is(err, ErrUnresolvedDriver) {
		t.Fatalf("expected ErrUnresolvedDriver, got %v", err)
	}
}

func TestResultService_Save_Validation(t *testing.T) {
	service, _, _ := newResultFixture()

	cases := []struct {
		name  string
		input SaveSessionResultInput
		want  error
	}{
		{
			name: "unknown race",
			input: SaveSessionResultInput{
				RaceID:  "monaco-1950",
				Session: race.SessionRace,
				Entries: raceEntries(),
			},
			want: ErrNotFound,
		},
		{
			name: "session not on calendar",
			input: SaveSessionResultInput{
				RaceID:  memory.RaceIDMelbourne,
				Session: race.SessionSprint,
				Entries: raceEntries(),
			},
			want: ErrInvalidInput,
		},
		{
			name: "bad distance tier",
			input: SaveSessionResultInput{
				RaceID:      memory.RaceIDMelbourne,
				Session:     race.SessionRace,
				Entries:     raceEntries(),
				DistancePct: 40,
			},
			want: ErrInvalidInput,
		},
		{
			name: "distance on qualifying",
			input: SaveSessionResultInput{
				RaceID:      memory.RaceIDMelbourne,
				Session:     race.SessionQualifying,
				Entries:     raceEntries(),
				DistancePct: 50,
			},
			want: ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Save(t.Context(), tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestResultService_Delete_RemovesPoints(t *testing.T) {
	service, _, standingsRepo := newResultFixture()

	if _, err := service.Save(t.Context(), SaveSessionResultInput{
		RaceID:  memory.RaceIDMelbourne,
		Session: race.SessionRace,
		Entries: raceEntries(),
	}); err != nil {
		t.Fatalf("save result failed: %v", err)
	}

	updated, err := service.Delete(t.Context(), memory.RaceIDMelbourne, race.SessionRace)
	if err != nil {
		t.Fatalf("delete result failed: %v", err)
	}
	for _, row := range updated.Drivers {
		if row.Points != 0 {
			t.Fatalf("expected zeroed standings after delete, got %+v", row)
		}
	}

	stored, err := standingsRepo.ListDrivers(t.Context(), testSeason)
	if err != nil {
		t.Fatalf("list driver standings failed: %v", err)
	}
	if len(stored) == 0 {
		t.Fatal("expected standings rows to persist after delete")
	}
}
