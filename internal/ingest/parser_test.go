package ingest

import (
	"errors"
	"testing"
)

const raceTableHTML = `
<div>
<table>
<tr><th>Pos</th><th>No</th><th>Driver</th><th>Car</th><th>Laps</th><th>Time/Retired</th><th>Pts</th></tr>
<tr><td>1</td><td>4</td><td>Lando NorrisNOR</td><td>McLaren Mercedes</td><td>57</td><td>1:30:12.345</td><td>25</td></tr>
<tr><td>2</td><td>1</td><td>Max Verstappen VER</td><td>Red Bull Racing Honda RBPT</td><td>57</td><td>+4.123s</td><td>18</td></tr>
<tr><td>NC</td><td>44</td><td>Lewis HamiltonHAM</td><td>Ferrari</td><td>12</td><td>DNF</td><td>0</td></tr>
</table>
</div>`

const qualifyingTableHTML = `
<table>
<tr><th>Pos</th><th>No</th><th>Driver</th><th>Team</th><th>Q1</th><th>Q2</th><th>Q3</th><th>Laps</th></tr>
<tr><td>1</td><td>16</td><td>Charles LeclercLEC</td><td>Ferrari</td><td>1:27.1</td><td>1:26.4</td><td>1:25.9</td><td>21</td></tr>
<tr><td>2</td><td>81</td><td>Oscar PiastriPIA</td><td>McLaren</td><td>1:27.3</td><td>1:26.6</td><td>1:26.0</td><td>18</td></tr>
</table>`

func TestParseResultTable_RaceTable(t *testing.T) {
	t.Parallel()

	rows, kind, err := ParseResultTable(raceTableHTML)
	if err != nil {
		t.Fatalf("ParseResultTable error: %v", err)
	}
	if kind != TableRace {
		t.Fatalf("unexpected kind: got=%s want=%s", kind, TableRace)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}

	first := rows[0]
	if first.Pos != "1" || first.CarNumber != "4" || first.Laps != "57" || first.Points != "25" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.DriverName != "Lando Norris" {
		t.Fatalf("attached driver code not stripped: got=%q", first.DriverName)
	}
	if rows[1].DriverName != "Max Verstappen" {
		t.Fatalf("detached driver code not stripped: got=%q", rows[1].DriverName)
	}
	if rows[2].Pos != "NC" || rows[2].Time != "DNF" {
		t.Fatalf("unexpected unclassified row: %+v", rows[2])
	}
}

func TestParseResultTable_QualifyingTable(t *testing.T) {
	t.Parallel()

	rows, kind, err := ParseResultTable(qualifyingTableHTML)
	if err != nil {
		t.Fatalf("ParseResultTable error: %v", err)
	}
	if kind != TableQualifying {
		t.Fatalf("unexpected kind: got=%s want=%s", kind, TableQualifying)
	}
	if rows[0].Q3 != "1:25.9" || rows[0].Q1 != "1:27.1" {
		t.Fatalf("unexpected segment times: %+v", rows[0])
	}
	if rows[0].Points != "" {
		t.Fatalf("qualifying table should leave points empty, got=%q", rows[0].Points)
	}
}

func TestParseResultTable_UnmatchedHeadersLeaveFieldsEmpty(t *testing.T) {
	t.Parallel()

	html := `<table>
<tr><th>Pos</th><th>Driver</th></tr>
<tr><td>1</td><td>Norris</td></tr>
</table>`

	rows, _, err := ParseResultTable(html)
	if err != nil {
		t.Fatalf("ParseResultTable error: %v", err)
	}
	row := rows[0]
	if row.TeamName != "" || row.Laps != "" || row.Time != "" || row.CarNumber != "" {
		t.Fatalf("expected unmatched columns to stay empty: %+v", row)
	}
}

func TestParseResultTable_NoTable(t *testing.T) {
	t.Parallel()

	for _, html := range []string{"", "<p>nothing here</p>", "<table><tr><th>Pos</th></tr></table>"} {
		if _, _, err := ParseResultTable(html); !errors.Is(err, ErrNoTable) {
			t.Fatalf("input %q: got err=%v want ErrNoTable", html, err)
		}
	}
}

func TestParseResultTable_SkipsRowsWithoutPositionOrDriver(t *testing.T) {
	t.Parallel()

	html := `<table>
<tr><th>Pos</th><th>Driver</th><th>Laps</th></tr>
<tr><td></td><td></td><td>57</td></tr>
<tr><td>1</td><td>Norris</td><td>57</td></tr>
</table>`

	rows, _, err := ParseResultTable(html)
	if err != nil {
		t.Fatalf("ParseResultTable error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected empty row to be skipped, got %d rows", len(rows))
	}
}
