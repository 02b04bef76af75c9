package result

import (
	"strconv"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

// DistancePct is the completed share of the scheduled race distance. Only the
// values below are representable; anything else is rejected on write.
type DistancePct int

const (
	DistanceQuarter DistancePct = 25
	DistanceHalf    DistancePct = 50
	DistanceThree   DistancePct = 75
	DistanceFull    DistancePct = 100
)

func ParseDistancePct(value int) (DistancePct, bool) {
	switch DistancePct(value) {
	case DistanceQuarter, DistanceHalf, DistanceThree, DistanceFull:
		return DistancePct(value), true
	default:
		return 0, false
	}
}

// Entry is one competitor's outcome in a session. Position stays a string so
// classification codes (DNF, DNS, DSQ) survive ingestion untouched. TeamID is
// a snapshot taken at result time; mid-season transfers do not rewrite it.
type Entry struct {
	DriverID string
	TeamID   string
	Position string
	Time     string
	Laps     int
	Points   int
	Grid     int
	Q1       string
	Q2       string
	Q3       string
}

// NumericPosition parses the classified position. Non-numeric codes report
// ok=false.
func (e Entry) NumericPosition() (int, bool) {
	pos, err := strconv.Atoi(e.Position)
	if err != nil || pos <= 0 {
		return 0, false
	}
	return pos, true
}

// SessionResult is the full classification of one session. At most one exists
// per (race, session kind); saving again replaces it whole.
type SessionResult struct {
	RaceID      string
	Session     race.SessionKind
	Entries     []Entry
	DistancePct DistancePct
}
