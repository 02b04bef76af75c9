package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

// ResultService owns session results. A save and the standings recompute it
// triggers are presented to callers as one synchronous unit: the returned
// standings always reflect the result that was just written.
type ResultService struct {
	raceRepo   race.Repository
	resultRepo result.Repository
	standings  *StandingsService
	season     int
	logger     *logging.Logger
}

func NewResultService(
	raceRepo race.Repository,
	resultRepo result.Repository,
	standingsService *StandingsService,
	season int,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResultService{
		raceRepo:   raceRepo,
		resultRepo: resultRepo,
		standings:  standingsService,
		season:     season,
		logger:     logger,
	}
}

type SaveSessionResultInput struct {
	RaceID      string
	Session     race.SessionKind
	Entries     []result.Entry
	DistancePct int
}

// Save validates and stores a full session result, replacing any previous one
// for the same (race, session) key, then recomputes and returns the season
// standings. Entries with an unresolved driver are rejected outright: a row
// without an identity must never become authoritative.
func (s *ResultService) Save(ctx context.Context, input SaveSessionResultInput) (Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Save")
	defer span.End()

	input.RaceID = strings.TrimSpace(input.RaceID)
	if input.RaceID == "" {
		return Standings{}, fmt.Errorf("%w: race_id is required", ErrInvalidInput)
	}
	kind, ok := race.ParseSessionKind(string(input.Session))
	if !ok {
		return Standings{}, fmt.Errorf("%w: unknown session kind %q", ErrInvalidInput, input.Session)
	}
	if len(input.Entries) == 0 {
		return Standings{}, fmt.Errorf("%w: at least one entry is required", ErrInvalidInput)
	}

	raceEvent, exists, err := s.raceRepo.GetByID(ctx, input.RaceID)
	if err != nil {
		return Standings{}, fmt.Errorf("get race for result save: %w", err)
	}
	if !exists {
		return Standings{}, fmt.Errorf("%w: race %s", ErrNotFound, input.RaceID)
	}
	if _, carried := raceEvent.Sessions[kind]; !carried {
		return Standings{}, fmt.Errorf("%w: race %s has no %s session", ErrInvalidInput, input.RaceID, kind)
	}

	for idx, entry := range input.Entries {
		if strings.TrimSpace(entry.DriverID) == "" {
			return Standings{}, fmt.Errorf("%w: entry %d (%q)", ErrUnresolvedDriver, idx, entry.Position)
		}
	}

	distancePct := result.DistanceFull
	if kind == race.SessionRace {
		if input.DistancePct != 0 {
			parsed, valid := result.ParseDistancePct(input.DistancePct)
			if !valid {
				return Standings{}, fmt.Errorf("%w: distance percentage %d", ErrInvalidInput, input.DistancePct)
			}
			distancePct = parsed
		}
	} else if input.DistancePct != 0 && input.DistancePct != int(result.DistanceFull) {
		return Standings{}, fmt.Errorf("%w: distance percentage only applies to race sessions", ErrInvalidInput)
	}

	sessionResult := result.SessionResult{
		RaceID:      input.RaceID,
		Session:     kind,
		Entries:     input.Entries,
		DistancePct: distancePct,
	}
	if err := s.resultRepo.Upsert(ctx, sessionResult); err != nil {
		return Standings{}, fmt.Errorf("upsert session result: %w", err)
	}

	updated, err := s.standings.Recompute(ctx, s.season)
	if err != nil {
		return Standings{}, fmt.Errorf("recompute standings after result save: %w", err)
	}

	s.logger.InfoContext(ctx, "session result saved",
		"race_id", input.RaceID,
		"session", string(kind),
		"entries", len(input.Entries),
		"distance_pct", int(distancePct),
	)
	return updated, nil
}

// Get returns the stored result for one session.
func (s *ResultService) Get(ctx context.Context, raceID string, kind race.SessionKind) (result.SessionResult, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Get")
	defer span.End()

	raceID = strings.TrimSpace(raceID)
	if raceID == "" {
		return result.SessionResult{}, false, fmt.Errorf("%w: race_id is required", ErrInvalidInput)
	}

	sessionResult, exists, err := s.resultRepo.Get(ctx, raceID, kind)
	if err != nil {
		return result.SessionResult{}, false, fmt.Errorf("get session result: %w", err)
	}
	return sessionResult, exists, nil
}

// Delete removes a stored result and recomputes standings without it.
func (s *ResultService) Delete(ctx context.Context, raceID string, kind race.SessionKind) (Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Delete")
	defer span.End()

	if err := s.resultRepo.Delete(ctx, raceID, kind); err != nil {
		return Standings{}, fmt.Errorf("delete session result: %w", err)
	}
	updated, err := s.standings.Recompute(ctx, s.season)
	if err != nil {
		return Standings{}, fmt.Errorf("recompute standings after result delete: %w", err)
	}
	return updated, nil
}
