package standings

import "strings"

// Trend compares an entry's new rank against its previously stored rank.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

// CompareRanks derives the trend for a recomputation. A previous rank of zero
// means no prior standings existed, which reads as unchanged.
func CompareRanks(previous, current int) Trend {
	if previous <= 0 || previous == current {
		return TrendSame
	}
	if current < previous {
		return TrendUp
	}
	return TrendDown
}

// DriverStanding is one championship table row. Derived state: every
// recomputation rebuilds it from the full result history.
type DriverStanding struct {
	DriverID string
	Season   int
	Points   int
	Rank     int
	Trend    Trend
}

// TeamStanding is one constructors' table row. Points accumulate against the
// team snapshotted on each result entry, not the driver's current team.
type TeamStanding struct {
	TeamID string
	Season int
	Points int
	Rank   int
	Trend  Trend
}

func (t Trend) Valid() bool {
	switch Trend(strings.TrimSpace(string(t))) {
	case TrendUp, TrendDown, TrendSame:
		return true
	default:
		return false
	}
}
