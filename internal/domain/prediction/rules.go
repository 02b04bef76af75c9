package prediction

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/result"
)

var (
	ErrEmptyPointsTable    = errors.New("points table must not be empty")
	ErrNegativePointsValue = errors.New("points table values must not be negative")
	ErrTooManySlots        = errors.New("predicted drivers exceed points table length")
	ErrDuplicateDriver     = errors.New("duplicate driver in prediction")
	ErrNoDrivers           = errors.New("prediction needs at least one driver")
)

// Validate rejects configurations that would make scoring undefined. On
// rejection the caller keeps the previous settings.
func (s Settings) Validate() error {
	for name, table := range map[string][]int{"race": s.RacePoints, "qualifying": s.QualiPoints} {
		if len(table) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyPointsTable, name)
		}
		for _, value := range table {
			if value < 0 {
				return fmt.Errorf("%w: %s", ErrNegativePointsValue, name)
			}
		}
	}
	if s.ParticipationPoint < 0 {
		return fmt.Errorf("%w: participation", ErrNegativePointsValue)
	}
	return nil
}

// ValidateBetDrivers enforces the per-session slot limit and rejects
// duplicate picks before a bet is written.
func ValidateBetDrivers(driverIDs []string, table []int) error {
	if len(driverIDs) == 0 {
		return ErrNoDrivers
	}
	if len(driverIDs) > len(table) {
		return fmt.Errorf("%w: got %d, table holds %d", ErrTooManySlots, len(driverIDs), len(table))
	}
	seen := make(map[string]struct{}, len(driverIDs))
	for _, id := range driverIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateDriver, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// BettingClosed decides whether a window accepts bets. A manual status always
// wins over the clock: locked/settled force the window shut, open forces it
// open even past the deadline. With no manual state the deadline rules;
// hasState=false means "no RoundState row". now must be sampled once by the
// caller so both comparisons see the same clock.
func BettingClosed(status RoundStatus, hasState bool, deadline, now time.Time) bool {
	if hasState {
		switch status {
		case RoundLocked, RoundSettled:
			return true
		case RoundOpen:
			return false
		}
	}
	return now.After(deadline)
}

// ScoreBet scores an ordered prediction against the actual classification.
// Entries sort ascending by numeric position with classification codes last;
// a predicted driver in exactly the right slot earns that slot's table value,
// one anywhere else inside the scored range earns the flat participation
// point. A missing or empty result scores zero.
func ScoreBet(bet UserBet, sessionResult result.SessionResult, settings Settings) int {
	if len(sessionResult.Entries) == 0 {
		return 0
	}

	sorted := make([]result.Entry, len(sessionResult.Entries))
	copy(sorted, sessionResult.Entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortablePosition(sorted[i]) < sortablePosition(sorted[j])
	})

	table := settings.TableFor(bet.Session)
	maxSlots := len(table)

	topIDs := make(map[string]struct{}, maxSlots)
	for i := 0; i < maxSlots && i < len(sorted); i++ {
		topIDs[sorted[i].DriverID] = struct{}{}
	}

	total := 0
	for slot, predicted := range bet.DriverIDs {
		if slot >= maxSlots {
			break
		}
		if slot < len(sorted) && sorted[slot].DriverID == predicted {
			total += table[slot]
			continue
		}
		if _, inRange := topIDs[predicted]; inRange {
			total += settings.ParticipationPoint
		}
	}
	return total
}

const unclassifiedSortPosition = 999

func sortablePosition(entry result.Entry) int {
	pos, ok := entry.NumericPosition()
	if !ok {
		return unclassifiedSortPosition
	}
	return pos
}

// GradeAnswer compares a free-text answer against the graded correct answer,
// case-insensitively and ignoring surrounding whitespace. Ungraded questions
// never award points.
func GradeAnswer(question BonusQuestion, answer string) int {
	if !question.Graded() {
		return 0
	}
	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(question.CorrectAnswer)) {
		return question.Points
	}
	return 0
}
