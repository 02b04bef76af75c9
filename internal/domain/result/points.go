package result

import (
	"strconv"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

// Championship points tables. The reduced tables implement the graduated
// partial-points rule for shortened races, keyed by distance tier.
var (
	racePointsTable   = []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}
	sprintPointsTable = []int{8, 7, 6, 5, 4, 3, 2, 1}

	reducedUnderQuarter = []int{6, 4, 3, 2, 1}
	reducedUnderHalf    = []int{13, 10, 8, 6, 5, 4, 3, 2, 1}
	reducedUnderThree   = []int{19, 14, 12, 10, 8, 6, 4, 3, 2, 1}
)

// Points awards championship points for a classified position. Non-numeric
// positions (DNF, DNS, ...) and positions beyond the applicable table score
// zero. Practice and qualifying kinds never award points here. distancePct is
// the completed share of the scheduled race distance; tier bounds are strict
// less-than, so a race stopped at exactly 75% still pays the full table.
func Points(position string, kind race.SessionKind, distancePct int) int {
	pos, err := strconv.Atoi(position)
	if err != nil || pos <= 0 {
		return 0
	}

	switch kind {
	case race.SessionSprint:
		return tablePoints(sprintPointsTable, pos)
	case race.SessionRace:
		if distancePct < 100 {
			switch {
			case distancePct < 25:
				return tablePoints(reducedUnderQuarter, pos)
			case distancePct < 50:
				return tablePoints(reducedUnderHalf, pos)
			case distancePct < 75:
				return tablePoints(reducedUnderThree, pos)
			}
		}
		return tablePoints(racePointsTable, pos)
	default:
		return 0
	}
}

func tablePoints(table []int, pos int) int {
	if pos > len(table) {
		return 0
	}
	return table[pos-1]
}
