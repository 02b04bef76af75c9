package result

import (
	"strconv"
	"testing"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

func TestPoints_FullRaceTable(t *testing.T) {
	t.Parallel()

	want := []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}
	for pos := 1; pos <= len(want); pos++ {
		got := Points(strconv.Itoa(pos), race.SessionRace, 100)
		if got != want[pos-1] {
			t.Fatalf("race position %d: got=%d want=%d", pos, got, want[pos-1])
		}
	}

	for _, pos := range []int{11, 12, 20, 99} {
		if got := Points(strconv.Itoa(pos), race.SessionRace, 100); got != 0 {
			t.Fatalf("race position %d beyond table: got=%d want=0", pos, got)
		}
	}
}

func TestPoints_SprintTable(t *testing.T) {
	t.Parallel()

	want := []int{8, 7, 6, 5, 4, 3, 2, 1}
	for pos := 1; pos <= len(want); pos++ {
		if got := Points(strconv.Itoa(pos), race.SessionSprint, 100); got != want[pos-1] {
			t.Fatalf("sprint position %d: got=%d want=%d", pos, got, want[pos-1])
		}
	}
	if got := Points("9", race.SessionSprint, 100); got != 0 {
		t.Fatalf("sprint position 9: got=%d want=0", got)
	}
}

func TestPoints_NonNumericPositions(t *testing.T) {
	t.Parallel()

	kinds := []race.SessionKind{race.SessionRace, race.SessionSprint, race.SessionQualifying, race.SessionFP1}
	for _, kind := range kinds {
		for _, pos := range []string{"DNF", "DNS", "DSQ", "", "-", "0"} {
			if got := Points(pos, kind, 100); got != 0 {
				t.Fatalf("kind=%s position=%q: got=%d want=0", kind, pos, got)
			}
		}
	}
}

func TestPoints_ReducedDistanceTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		position    string
		distancePct int
		want        int
	}{
		{"under quarter winner", "1", 20, 6},
		{"under quarter sixth scores nothing", "6", 20, 0},
		{"tier 25-49 position 9", "9", 40, 1},
		{"tier 25-49 position 10", "10", 40, 0},
		{"tier 50-74 winner", "1", 60, 19},
		{"tier 50-74 position 10", "10", 60, 2},
		{"tier 75-99 falls back to full table", "1", 80, 25},
		{"exact quarter boundary uses 25-49 tier", "1", 25, 13},
		{"exact half boundary uses 50-74 tier", "1", 50, 19},
		{"exact three-quarter boundary pays full", "1", 75, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Points(tc.position, race.SessionRace, tc.distancePct); got != tc.want {
				t.Fatalf("position=%s pct=%d: got=%d want=%d", tc.position, tc.distancePct, got, tc.want)
			}
		})
	}
}

func TestPoints_QualifyingNeverAwards(t *testing.T) {
	t.Parallel()

	for pos := 1; pos <= 10; pos++ {
		if got := Points(strconv.Itoa(pos), race.SessionQualifying, 100); got != 0 {
			t.Fatalf("qualifying position %d: got=%d want=0", pos, got)
		}
	}
}

func TestParseDistancePct(t *testing.T) {
	t.Parallel()

	for _, valid := range []int{25, 50, 75, 100} {
		if _, ok := ParseDistancePct(valid); !ok {
			t.Fatalf("expected %d to be a valid distance percentage", valid)
		}
	}
	for _, invalid := range []int{0, 10, 40, 99, 101, -25} {
		if _, ok := ParseDistancePct(invalid); ok {
			t.Fatalf("expected %d to be rejected", invalid)
		}
	}
}

