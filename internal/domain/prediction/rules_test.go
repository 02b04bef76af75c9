package prediction

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
)

func sessionResultOf(kind race.SessionKind, driverIDs ...string) result.SessionResult {
	entries := make([]result.Entry, 0, len(driverIDs))
	for i, id := range driverIDs {
		entries = append(entries, result.Entry{DriverID: id, Position: strconv.Itoa(i + 1)})
	}
	return result.SessionResult{RaceID: "r1", Session: kind, Entries: entries}
}

func TestScoreBet_ExactAndParticipation(t *testing.T) {
	t.Parallel()

	settings := Settings{
		Season:             2026,
		RacePoints:         []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1},
		QualiPoints:        []int{5, 4, 3, 2, 1},
		ParticipationPoint: 1,
	}

	bet := UserBet{
		UserID:    "u1",
		Season:    2026,
		RaceID:    "r1",
		Session:   race.SessionRace,
		DriverIDs: []string{"D2", "D1", "D3"},
	}

	// D2 and D1 are swapped (participation each), D3 sits exactly on P3.
	got := ScoreBet(bet, sessionResultOf(race.SessionRace, "D1", "D2", "D3"), settings)
	if got != 17 {
		t.Fatalf("unexpected score: got=%d want=17", got)
	}
}

func TestScoreBet_QualifyingOutsideScoredRange(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings(2026)
	bet := UserBet{
		UserID:    "u1",
		Season:    2026,
		RaceID:    "r1",
		Session:   race.SessionQualifying,
		DriverIDs: []string{"D9"},
	}

	got := ScoreBet(bet, sessionResultOf(race.SessionQualifying, "D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9"), settings)
	if got != 0 {
		t.Fatalf("driver outside top-5 must score 0, got=%d", got)
	}
}

func TestScoreBet_MissingOrEmptyResult(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings(2026)
	bet := UserBet{UserID: "u1", Session: race.SessionRace, DriverIDs: []string{"D1"}}

	if got := ScoreBet(bet, result.SessionResult{}, settings); got != 0 {
		t.Fatalf("empty result must score 0, got=%d", got)
	}
}

func TestScoreBet_NonNumericPositionsSortLast(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings(2026)
	sessionResult := result.SessionResult{
		RaceID:  "r1",
		Session: race.SessionRace,
		Entries: []result.Entry{
			{DriverID: "D-dnf", Position: "DNF"},
			{DriverID: "D1", Position: "1"},
			{DriverID: "D2", Position: "2"},
		},
	}

	bet := UserBet{UserID: "u1", Session: race.SessionRace, DriverIDs: []string{"D1", "D2"}}
	want := settings.RacePoints[0] + settings.RacePoints[1]
	if got := ScoreBet(bet, sessionResult, settings); got != want {
		t.Fatalf("unexpected score: got=%d want=%d", got, want)
	}
}

func TestScoreBet_SlotsBeyondTableIgnored(t *testing.T) {
	t.Parallel()

	settings := Settings{
		Season:             2026,
		RacePoints:         []int{3, 2},
		QualiPoints:        []int{1},
		ParticipationPoint: 1,
	}

	bet := UserBet{
		UserID:    "u1",
		Session:   race.SessionRace,
		DriverIDs: []string{"D1", "D2", "D3", "D4"},
	}

	// Only the first two slots are scorable; D3/D4 predictions are ignored.
	if got := ScoreBet(bet, sessionResultOf(race.SessionRace, "D1", "D2", "D3", "D4"), settings); got != 5 {
		t.Fatalf("unexpected score: got=%d want=5", got)
	}
}

func TestBettingClosed(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		status   RoundStatus
		hasState bool
		deadline time.Time
		want     bool
	}{
		{"no state, deadline ahead", "", false, future, false},
		{"no state, deadline passed", "", false, past, true},
		{"no state, exactly at deadline", "", false, now, false},
		{"forced open past deadline", RoundOpen, true, past, false},
		{"locked before deadline", RoundLocked, true, future, true},
		{"settled before deadline", RoundSettled, true, future, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := BettingClosed(tc.status, tc.hasState, tc.deadline, now); got != tc.want {
				t.Fatalf("BettingClosed: got=%t want=%t", got, tc.want)
			}
		})
	}
}

func TestGradeAnswer(t *testing.T) {
	t.Parallel()

	question := BonusQuestion{ID: "q1", Points: 10, CorrectAnswer: " Max Verstappen "}

	if got := GradeAnswer(question, "max verstappen"); got != 10 {
		t.Fatalf("case-insensitive match must award points, got=%d", got)
	}
	if got := GradeAnswer(question, "Lando Norris"); got != 0 {
		t.Fatalf("wrong answer must award 0, got=%d", got)
	}

	ungraded := BonusQuestion{ID: "q2", Points: 10}
	if got := GradeAnswer(ungraded, "anything"); got != 0 {
		t.Fatalf("ungraded question must award 0, got=%d", got)
	}
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	valid := DefaultSettings(2026)
	if err := valid.Validate(); err != nil {
		t.Fatalf("default settings must validate: %v", err)
	}

	empty := valid
	empty.RacePoints = nil
	if err := empty.Validate(); !errors.Is(err, ErrEmptyPointsTable) {
		t.Fatalf("empty table: got err=%v want ErrEmptyPointsTable", err)
	}

	negative := DefaultSettings(2026)
	negative.QualiPoints = []int{5, -1}
	if err := negative.Validate(); !errors.Is(err, ErrNegativePointsValue) {
		t.Fatalf("negative value: got err=%v want ErrNegativePointsValue", err)
	}
}

func TestValidateBetDrivers(t *testing.T) {
	t.Parallel()

	table := []int{5, 4, 3, 2, 1}

	if err := ValidateBetDrivers([]string{"D1", "D2"}, table); err != nil {
		t.Fatalf("valid drivers rejected: %v", err)
	}
	if err := ValidateBetDrivers(nil, table); !errors.Is(err, ErrNoDrivers) {
		t.Fatalf("empty list: got err=%v want ErrNoDrivers", err)
	}
	if err := ValidateBetDrivers([]string{"1", "2", "3", "4", "5", "6"}, table); !errors.Is(err, ErrTooManySlots) {
		t.Fatalf("oversized list: got err=%v want ErrTooManySlots", err)
	}
	if err := ValidateBetDrivers([]string{"D1", "D1"}, table); !errors.Is(err, ErrDuplicateDriver) {
		t.Fatalf("duplicate: got err=%v want ErrDuplicateDriver", err)
	}
}
