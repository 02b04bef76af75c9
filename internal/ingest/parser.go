package ingest

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTable reports that the pasted fragment held no recognizable result
// table, or one with no usable rows. Callers surface it as a user-facing
// message rather than a failure.
var ErrNoTable = errors.New("no result table recognized")

// TableKind is the parser's guess at what kind of session the pasted table
// describes, based on its header row.
type TableKind string

const (
	TableQualifying TableKind = "qualifying"
	TableRace       TableKind = "race"
	TablePractice   TableKind = "practice"
	TableGrid       TableKind = "grid"
	TableUnknown    TableKind = "unknown"
)

// ParsedRow is one raw row lifted from the pasted table. Fields whose header
// was not recognized stay empty for every row.
type ParsedRow struct {
	Pos        string
	CarNumber  string
	DriverName string
	TeamName   string
	Laps       string
	Time       string
	Points     string
	Q1         string
	Q2         string
	Q3         string
}

// Sites glue the driver's three-letter code onto the surname ("NorrisNOR") or
// append it detached ("Norris NOR"); both forms are stripped.
var (
	attachedCodeRe = regexp.MustCompile(`([a-z])([A-Z]{3})$`)
	detachedCodeRe = regexp.MustCompile(`\s+[A-Z]{3}$`)
)

// ParseResultTable extracts ordered raw rows from a pasted HTML fragment
// containing one result table. Column meaning is inferred from header text by
// substring match, so the parser tolerates the varying layouts of copied
// official classifications.
func ParseResultTable(html string) ([]ParsedRow, TableKind, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, TableUnknown, ErrNoTable
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, TableUnknown, ErrNoTable
	}

	headers := make([]string, 0)
	table.Find("th").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
	})

	kind := classifyTable(headers)

	headerIdx := func(candidates ...string) int {
		for i, header := range headers {
			for _, candidate := range candidates {
				if strings.Contains(header, candidate) {
					return i
				}
			}
		}
		return -1
	}

	posIdx := headerIdx("pos")
	noIdx := headerIdx("no")
	driverIdx := headerIdx("driver")
	teamIdx := headerIdx("team", "car")
	lapsIdx := headerIdx("laps")
	timeIdx := headerIdx("time", "gap", "retired")
	ptsIdx := headerIdx("pts")
	q1Idx := headerIdx("q1")
	q2Idx := headerIdx("q2")
	q3Idx := headerIdx("q3")

	rows := make([]ParsedRow, 0)
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}

		cellText := func(idx int) string {
			if idx < 0 || idx >= cells.Length() {
				return ""
			}
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		row := ParsedRow{
			Pos:        cellText(posIdx),
			CarNumber:  cellText(noIdx),
			DriverName: stripDriverCode(cellText(driverIdx)),
			TeamName:   cellText(teamIdx),
			Laps:       cellText(lapsIdx),
			Time:       cellText(timeIdx),
			Points:     cellText(ptsIdx),
			Q1:         cellText(q1Idx),
			Q2:         cellText(q2Idx),
			Q3:         cellText(q3Idx),
		}

		if row.Pos == "" && row.DriverName == "" {
			return
		}
		rows = append(rows, row)
	})

	if len(rows) == 0 {
		return nil, kind, ErrNoTable
	}
	return rows, kind, nil
}

func classifyTable(headers []string) TableKind {
	has := func(value string) bool {
		for _, header := range headers {
			if header == value {
				return true
			}
		}
		return false
	}

	switch {
	case has("q1") && has("q2"):
		return TableQualifying
	case has("pts") || has("pts."):
		return TableRace
	case has("time/gap") || has("gap"):
		return TablePractice
	case has("time") && !has("laps"):
		return TableGrid
	default:
		return TableUnknown
	}
}

func stripDriverCode(name string) string {
	name = attachedCodeRe.ReplaceAllString(name, "$1")
	return detachedCodeRe.ReplaceAllString(name, "")
}
