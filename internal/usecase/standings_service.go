package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/domain/standings"
	"github.com/pitlanehq/pitwall/internal/domain/team"
	"github.com/pitlanehq/pitwall/internal/platform/resilience"
)

// Standings is the combined championship snapshot returned to callers.
type Standings struct {
	Drivers []standings.DriverStanding
	Teams   []standings.TeamStanding
}

// StandingsService rebuilds driver and team championship tables from the full
// result history. Recomputation is total, never incremental: each run discards
// prior ranks and points, which makes it idempotent and immune to
// partial-update drift.
type StandingsService struct {
	resultRepo    result.Repository
	driverRepo    driver.Repository
	teamRepo      team.Repository
	standingsRepo standings.Repository
	flight        resilience.SingleFlight
}

func NewStandingsService(
	resultRepo result.Repository,
	driverRepo driver.Repository,
	teamRepo team.Repository,
	standingsRepo standings.Repository,
) *StandingsService {
	return &StandingsService{
		resultRepo:    resultRepo,
		driverRepo:    driverRepo,
		teamRepo:      teamRepo,
		standingsRepo: standingsRepo,
	}
}

// Get returns the stored standings without recomputing.
func (s *StandingsService) Get(ctx context.Context, season int) (Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Get")
	defer span.End()

	drivers, err := s.standingsRepo.ListDrivers(ctx, season)
	if err != nil {
		return Standings{}, fmt.Errorf("list driver standings: %w", err)
	}
	teams, err := s.standingsRepo.ListTeams(ctx, season)
	if err != nil {
		return Standings{}, fmt.Errorf("list team standings: %w", err)
	}
	return Standings{Drivers: drivers, Teams: teams}, nil
}

// Recompute rebuilds the season tables from every stored race and sprint
// result and persists them in one replace. Concurrent calls for the same
// season collapse into one run.
func (s *StandingsService) Recompute(ctx context.Context, season int) (Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Recompute")
	defer span.End()

	value, err, _ := s.flight.Do("standings:recompute:"+strconv.Itoa(season), func() (any, error) {
		return s.recomputeOnce(ctx, season)
	})
	if err != nil {
		return Standings{}, err
	}
	return value.(Standings), nil
}

func (s *StandingsService) recomputeOnce(ctx context.Context, season int) (Standings, error) {
	roster, err := s.driverRepo.List(ctx)
	if err != nil {
		return Standings{}, fmt.Errorf("list roster for standings: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return Standings{}, fmt.Errorf("list teams for standings: %w", err)
	}
	sessionResults, err := s.resultRepo.List(ctx)
	if err != nil {
		return Standings{}, fmt.Errorf("list results for standings: %w", err)
	}

	driverPoints := make(map[string]int, len(roster))
	for _, d := range roster {
		driverPoints[d.ID] = 0
	}
	teamPoints := make(map[string]int, len(teams))
	for _, t := range teams {
		teamPoints[t.ID] = 0
	}

	for _, sr := range sessionResults {
		if !sr.Session.AwardsChampionshipPoints() {
			continue
		}
		for _, entry := range sr.Entries {
			// Entries whose driver never resolved stay out of the tables.
			if _, known := driverPoints[entry.DriverID]; known {
				driverPoints[entry.DriverID] += entry.Points
			}
			if _, known := teamPoints[entry.TeamID]; entry.TeamID != "" && known {
				teamPoints[entry.TeamID] += entry.Points
			}
		}
	}

	previousDriverRank, previousTeamRank, err := s.previousRanks(ctx, season)
	if err != nil {
		return Standings{}, err
	}

	driverRows := make([]standings.DriverStanding, 0, len(roster))
	for _, d := range roster {
		driverRows = append(driverRows, standings.DriverStanding{
			DriverID: d.ID,
			Season:   season,
			Points:   driverPoints[d.ID],
		})
	}
	// Point ties keep roster order; no countback rule is defined.
	sort.SliceStable(driverRows, func(i, j int) bool {
		return driverRows[i].Points > driverRows[j].Points
	})
	for idx := range driverRows {
		driverRows[idx].Rank = idx + 1
		driverRows[idx].Trend = standings.CompareRanks(previousDriverRank[driverRows[idx].DriverID], idx+1)
	}

	teamRows := make([]standings.TeamStanding, 0, len(teams))
	for _, t := range teams {
		teamRows = append(teamRows, standings.TeamStanding{
			TeamID: t.ID,
			Season: season,
			Points: teamPoints[t.ID],
		})
	}
	sort.SliceStable(teamRows, func(i, j int) bool {
		return teamRows[i].Points > teamRows[j].Points
	})
	for idx := range teamRows {
		teamRows[idx].Rank = idx + 1
		teamRows[idx].Trend = standings.CompareRanks(previousTeamRank[teamRows[idx].TeamID], idx+1)
	}

	if err := s.standingsRepo.Replace(ctx, season, driverRows, teamRows); err != nil {
		return Standings{}, fmt.Errorf("replace standings: %w", err)
	}
	return Standings{Drivers: driverRows, Teams: teamRows}, nil
}

func (s *StandingsService) previousRanks(ctx context.Context, season int) (map[string]int, map[string]int, error) {
	previousDrivers, err := s.standingsRepo.ListDrivers(ctx, season)
	if err != nil {
		return nil, nil, fmt.Errorf("list previous driver standings: %w", err)
	}
	previousTeams, err := s.standingsRepo.ListTeams(ctx, season)
	if err != nil {
		return nil, nil, fmt.Errorf("list previous team standings: %w", err)
	}

	driverRank := make(map[string]int, len(previousDrivers))
	for _, row := range previousDrivers {
		driverRank[row.DriverID] = row.Rank
	}
	teamRank := make(map[string]int, len(previousTeams))
	for _, row := range previousTeams {
		teamRank[row.TeamID] = row.Rank
	}
	return driverRank, teamRank, nil
}
