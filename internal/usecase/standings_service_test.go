package usecase

import (
	"testing"

	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/domain/standings"
	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
)

func TestStandingsService_Recompute_TrendsAcrossRounds(t *testing.T) {
	resultRepo := memory.NewResultRepository()
	service := NewStandingsService(
		resultRepo,
		memory.NewDriverRepository(memory.SeedDrivers()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewStandingsRepository(),
	)

	if err := resultRepo.Upsert(t.Context(), result.SessionResult{
		RaceID:  memory.RaceIDMelbourne,
		Session: race.SessionRace,
		Entries: []result.Entry{
			{DriverID: "max-verstappen", TeamID: memory.TeamIDRedBull, Position: "1", Points: 25},
			{DriverID: "lando-norris", TeamID: memory.TeamIDMcLaren, Position: "2", Points: 18},
		},
	}); err != nil {
		t.Fatalf("seed round one result: %v", err)
	}
	first, err := service.Recompute(t.Context(), testSeason)
	if err != nil {
		t.Fatalf("first recompute failed: %v", err)
	}
	if first.Drivers[0].DriverID != "max-verstappen" {
		t.Fatalf("expected verstappen leading round one, got %s", first.Drivers[0].DriverID)
	}

	if err := resultRepo.Upsert(t.Context(), result.SessionResult{
		RaceID:  memory.RaceIDSuzuka,
		Session: race.SessionRace,
		Entries: []result.Entry{
			{DriverID: "lando-norris", TeamID: memory.TeamIDMcLaren, Position: "1", Points: 25},
			{DriverID: "max-verstappen", TeamID: memory.TeamIDRedBull, Position: "4", Points: 12},
		},
	}); err != nil {
		t.Fatalf("seed round two result: %v", err)
	}
	second, err := service.Recompute(t.Context(), testSeason)
	if err != nil {
		t.Fatalf("second recompute failed: %v", err)
	}

	byDriver := make(map[string]standings.DriverStanding, len(second.Drivers))
	for _, row := range second.Drivers {
		byDriver[row.DriverID] = row
	}

	norris := byDriver["lando-norris"]
	if norris.Points != 43 || norris.Rank != 1 || norris.Trend != standings.TrendUp {
		t.Fatalf("unexpected norris row: %+v", norris)
	}
	verstappen := byDriver["max-verstappen"]
	if verstappen.Points != 37 || verstappen.Rank != 2 || verstappen.Trend != standings.TrendDown {
		t.Fatalf("unexpected verstappen row: %+v", verstappen)
	}
}

func TestStandingsService_Recompute_IgnoresNonChampionshipSessions(t *testing.T) {
	resultRepo := memory.NewResultRepository()
	service := NewStandingsService(
		resultRepo,
		memory.NewDriverRepository(memory.SeedDrivers()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewStandingsRepository(),
	)

	if err := resultRepo.Upsert(t.Context(), result.SessionResult{
		RaceID:  memory.RaceIDMelbourne,
		Session: race.SessionQualifying,
		Entries: []result.Entry{
			{DriverID: "lando-norris", TeamID: memory.TeamIDMcLaren, Position: "1", Points: 25},
		},
	}); err != nil {
		t.Fatalf("seed qualifying result: %v", err)
	}

	computed, err := service.Recompute(t.Context(), testSeason)
	if err != nil {
		t.Fatalf("recompute failed: %v", err)
	}
	for _, row := range computed.Drivers {
		if row.Points != 0 {
			t.Fatalf("qualifying must not award championship points: %+v", row)
		}
	}
}
