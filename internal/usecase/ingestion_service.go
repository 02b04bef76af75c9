package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/ingest"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

// PreviewEntry pairs one parsed row with the result entry derived from it.
// Unresolved rows keep an empty DriverID and must be corrected before the
// result can be saved.
type PreviewEntry struct {
	Row      ingest.ParsedRow
	Entry    result.Entry
	Resolved bool
}

// IngestionService turns pasted result tables into normalized entries:
// parse, resolve drivers against the roster, derive points.
type IngestionService struct {
	driverRepo driver.Repository
	logger     *logging.Logger
}

func NewIngestionService(driverRepo driver.Repository, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{driverRepo: driverRepo, logger: logger}
}

// Preview runs the full ingestion pipeline without persisting anything.
// ingest.ErrNoTable comes back wrapped in ErrInvalidInput so callers can show
// the "no table recognized" message.
func (s *IngestionService) Preview(ctx context.Context, kind race.SessionKind, html string, distancePct int) ([]PreviewEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Preview")
	defer span.End()

	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("%w: html fragment is required", ErrInvalidInput)
	}

	// An omitted distance means the race ran to completion.
	if distancePct == 0 {
		distancePct = int(result.DistanceFull)
	}
	if _, ok := result.ParseDistancePct(distancePct); !ok {
		return nil, fmt.Errorf("%w: distance pct %d", ErrInvalidInput, distancePct)
	}

	rows, tableKind, err := ingest.ParseResultTable(html)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	roster, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster for ingestion: %w", err)
	}

	out := make([]PreviewEntry, 0, len(rows))
	unresolved := 0
	for _, row := range rows {
		entry := result.Entry{
			Position: row.Pos,
			Time:     row.Time,
			Q1:       row.Q1,
			Q2:       row.Q2,
			Q3:       row.Q3,
		}
		if laps, err := strconv.Atoi(row.Laps); err == nil {
			entry.Laps = laps
		}

		driverID, resolved := ingest.ResolveDriver(row.DriverName, roster)
		if resolved {
			entry.DriverID = driverID
			for _, d := range roster {
				if d.ID == driverID && d.TeamID != nil {
					entry.TeamID = *d.TeamID
					break
				}
			}
		} else {
			unresolved++
		}

		if kind.AwardsChampionshipPoints() {
			entry.Points = result.Points(row.Pos, kind, distancePct)
		}

		out = append(out, PreviewEntry{Row: row, Entry: entry, Resolved: resolved})
	}

	s.logger.InfoContext(ctx, "result table ingested",
		"kind", string(kind),
		"table_kind", string(tableKind),
		"rows", len(out),
		"unresolved", unresolved,
	)
	return out, nil
}
