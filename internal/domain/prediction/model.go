package prediction

import (
	"strings"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

// RoundStatus is the administrator override for one betting window.
type RoundStatus string

const (
	RoundOpen    RoundStatus = "open"
	RoundLocked  RoundStatus = "locked"
	RoundSettled RoundStatus = "settled"
)

func ParseRoundStatus(value string) (RoundStatus, bool) {
	switch RoundStatus(strings.TrimSpace(value)) {
	case RoundOpen:
		return RoundOpen, true
	case RoundLocked:
		return RoundLocked, true
	case RoundSettled:
		return RoundSettled, true
	default:
		return "", false
	}
}

// RoundState pins a betting window to a manual status. Absence of a state
// means the window follows the session's time-based deadline.
type RoundState struct {
	RaceID  string
	Session race.SessionKind
	Status  RoundStatus
}

// UserBet is one user's ordered finishing prediction for a session. Keyed by
// (user, race, session, season); a later submit replaces the earlier one.
type UserBet struct {
	UserID      string
	Season      int
	RaceID      string
	Session     race.SessionKind
	DriverIDs   []string
	SubmittedAt time.Time
}

// BonusQuestion is a season-wide free-text prediction. CorrectAnswer stays
// empty until an administrator grades the question; setting it makes every
// stored answer scorable retroactively.
type BonusQuestion struct {
	ID            string
	Season        int
	Question      string
	Points        int
	Deadline      time.Time
	CorrectAnswer string
}

func (q BonusQuestion) Graded() bool {
	return strings.TrimSpace(q.CorrectAnswer) != ""
}

// BonusAnswer is one user's answer to a bonus question. At most one per
// (user, question); later writes replace earlier ones.
type BonusAnswer struct {
	UserID     string
	QuestionID string
	Answer     string
}

// Settings is the season-wide scoring configuration of the prediction game.
type Settings struct {
	Season             int
	RacePoints         []int
	QualiPoints        []int
	ParticipationPoint int
}

// DefaultSettings mirrors the values the game ships with before an
// administrator tunes them.
func DefaultSettings(season int) Settings {
	return Settings{
		Season:             season,
		RacePoints:         []int{10, 8, 6, 5, 4, 3, 2, 1},
		QualiPoints:        []int{5, 4, 3, 2, 1},
		ParticipationPoint: 1,
	}
}

// TableFor picks the points table governing bets on one session kind.
func (s Settings) TableFor(kind race.SessionKind) []int {
	if kind == race.SessionRace || kind == race.SessionSprint {
		return s.RacePoints
	}
	return s.QualiPoints
}
