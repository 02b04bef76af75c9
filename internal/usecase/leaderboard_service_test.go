package usecase

import (
	"testing"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
	"github.com/pitlanehq/pitwall/internal/platform/id"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

type leaderboardFixture struct {
	service    *LeaderboardService
	betRepo    *memory.BetRepository
	resultRepo *memory.ResultRepository
	bonus      *BonusService
}

func newLeaderboardFixture(t *testing.T) leaderboardFixture {
	t.Helper()

	betRepo := memory.NewBetRepository()
	resultRepo := memory.NewResultRepository()
	bonusRepo := memory.NewBonusRepository()
	settings := NewSettingsService(memory.NewSettingsRepository(), testSeason, logging.NewNop())
	bonus := NewBonusService(bonusRepo, id.NewRandomGenerator(), testSeason, logging.NewNop())
	bonus.now = func() time.Time { return time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC) }

	service := NewLeaderboardService(
		memory.NewUserRepository(memory.SeedUsers()),
		betRepo,
		resultRepo,
		settings,
		bonus,
		testSeason,
		logging.NewNop(),
	)
	return leaderboardFixture{service: service, betRepo: betRepo, resultRepo: resultRepo, bonus: bonus}
}

func (f leaderboardFixture) placeBet(t *testing.T, userID string, driverIDs []string) {
	t.Helper()

	if err := f.betRepo.Upsert(t.Context(), prediction.UserBet{
		UserID:    userID,
		Season:    testSeason,
		RaceID:    memory.RaceIDMelbourne,
		Session:   race.SessionQualifying,
		DriverIDs: driverIDs,
	}); err != nil {
		t.Fatalf("seed bet failed: %v", err)
	}
}

func qualifyingResult() result.SessionResult {
	return result.SessionResult{
		RaceID:  memory.RaceIDMelbourne,
		Session: race.SessionQualifying,
		Entries: []result.Entry{
			{DriverID: "lando-norris", Position: "1"},
			{DriverID: "max-verstappen", Position: "2"},
			{DriverID: "charles-leclerc", Position: "3"},
			{DriverID: "lewis-hamilton", Position: "4"},
			{DriverID: "george-russell", Position: "5"},
			{DriverID: "fernando-alonso", Position: "6"},
		},
	}
}

func TestLeaderboardService_Build_RanksBetAndBonusPoints(t *testing.T) {
	f := newLeaderboardFixture(t)

	if err := f.resultRepo.Upsert(t.Context(), qualifyingResult()); err != nil {
		t.Fatalf("seed result failed: %v", err)
	}
	// Exact top two with the default qualifying table: 5 + 4.
	f.placeBet(t, "user-1", []string{"lando-norris", "max-verstappen"})
	// Same drivers swapped: both in range but no exact slot, 1 + 1.
	f.placeBet(t, "user-2", []string{"max-verstappen", "lando-norris"})

	if err := f.bonus.EnsureSeasonQuestions(t.Context()); err != nil {
		t.Fatalf("seed bonus questions failed: %v", err)
	}
	if _, err := f.bonus.SubmitAnswer(t.Context(), "user-2", "bq-driver-2026", "Lando Norris"); err != nil {
		t.Fatalf("submit bonus answer failed: %v", err)
	}
	if _, err := f.bonus.Grade(t.Context(), "bq-driver-2026", "Lando Norris"); err != nil {
		t.Fatalf("grade failed: %v", err)
	}

	entries, err := f.service.Build(t.Context())
	if err != nil {
		t.Fatalf("build leaderboard failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected one row per user, got %d", len(entries))
	}

	// Bonus points lift user-2 past user-1's session score.
	if entries[0].UserID != "user-2" || entries[0].Points != 12 || entries[0].BonusPoints != 10 || entries[0].Rank != 1 {
		t.Fatalf("unexpected leader: %+v", entries[0])
	}
	if entries[1].UserID != "user-1" || entries[1].Points != 9 || entries[1].Wins != 1 || entries[1].Rank != 2 {
		t.Fatalf("unexpected runner-up: %+v", entries[1])
	}
	if entries[0].Wins != 0 {
		t.Fatalf("session win belongs to the top scorer only: %+v", entries[0])
	}
}

func TestLeaderboardService_Build_TiesKeepUserOrder(t *testing.T) {
	f := newLeaderboardFixture(t)

	entries, err := f.service.Build(t.Context())
	if err != nil {
		t.Fatalf("build leaderboard failed: %v", err)
	}

	// No bets, no bonus: everyone ties on zero in seed-user order.
	wantOrder := []string{"user-admin", "user-1", "user-2", "user-3"}
	for idx, want := range wantOrder {
		row := entries[idx]
		if row.UserID != want || row.Points != 0 || row.Rank != idx+1 {
			t.Fatalf("unexpected row %d: %+v", idx, row)
		}
	}
}

func TestLeaderboardService_Build_SharedBestSplitsTheWin(t *testing.T) {
	f := newLeaderboardFixture(t)

	if err := f.resultRepo.Upsert(t.Context(), qualifyingResult()); err != nil {
		t.Fatalf("seed result failed: %v", err)
	}
	raceResult := qualifyingResult()
	raceResult.Session = race.SessionRace
	if err := f.resultRepo.Upsert(t.Context(), raceResult); err != nil {
		t.Fatalf("seed race result failed: %v", err)
	}

	// Identical top-scoring qualifying bets: the session best is shared.
	f.placeBet(t, "user-1", []string{"lando-norris", "max-verstappen"})
	f.placeBet(t, "user-2", []string{"lando-norris", "max-verstappen"})
	// A race bet on a driver absent from the classification scores zero, so
	// that window's best is zero and nobody wins it.
	if err := f.betRepo.Upsert(t.Context(), prediction.UserBet{
		UserID:    "user-3",
		Season:    testSeason,
		RaceID:    memory.RaceIDMelbourne,
		Session:   race.SessionRace,
		DriverIDs: []string{"oscar-piastri"},
	}); err != nil {
		t.Fatalf("seed race bet failed: %v", err)
	}

	entries, err := f.service.Build(t.Context())
	if err != nil {
		t.Fatalf("build leaderboard failed: %v", err)
	}

	byUser := make(map[string]LeaderboardEntry, len(entries))
	for _, row := range entries {
		byUser[row.UserID] = row
	}

	// Both top scorers carry the qualifying win.
	if byUser["user-1"].Wins != 1 || byUser["user-2"].Wins != 1 {
		t.Fatalf("shared best must credit every top scorer: user-1=%+v user-2=%+v",
			byUser["user-1"], byUser["user-2"])
	}
	// The zero-best race window credits nobody, the wrong bet included.
	if byUser["user-3"].Points != 0 || byUser["user-3"].Wins != 0 {
		t.Fatalf("zero-best window must produce no winner: %+v", byUser["user-3"])
	}
}

func TestLeaderboardService_Build_PendingResultScoresZero(t *testing.T) {
	f := newLeaderboardFixture(t)

	// Bet placed, result not in yet.
	f.placeBet(t, "user-1", []string{"lando-norris", "max-verstappen"})

	entries, err := f.service.Build(t.Context())
	if err != nil {
		t.Fatalf("build leaderboard failed: %v", err)
	}
	for _, row := range entries {
		if row.Points != 0 || row.Wins != 0 {
			t.Fatalf("pending window must not score: %+v", row)
		}
	}
}
