package usecase

import (
	"context"
	"fmt"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/team"
)

// ReferenceService serves the read-only constructor data that every client
// needs to render pickers and calendars: drivers, teams and the race schedule.
type ReferenceService struct {
	driverRepo driver.Repository
	teamRepo   team.Repository
	raceRepo   race.Repository
}

func NewReferenceService(
	driverRepo driver.Repository,
	teamRepo team.Repository,
	raceRepo race.Repository,
) *ReferenceService {
	return &ReferenceService{
		driverRepo: driverRepo,
		teamRepo:   teamRepo,
		raceRepo:   raceRepo,
	}
}

func (s *ReferenceService) ListDrivers(ctx context.Context) ([]driver.Driver, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListDrivers")
	defer span.End()

	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return drivers, nil
}

func (s *ReferenceService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *ReferenceService) ListRaces(ctx context.Context) ([]race.Race, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListRaces")
	defer span.End()

	races, err := s.raceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list races: %w", err)
	}
	return races, nil
}

func (s *ReferenceService) GetRace(ctx context.Context, raceID string) (race.Race, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.GetRace")
	defer span.End()

	if raceID == "" {
		return race.Race{}, fmt.Errorf("%w: race id is required", ErrInvalidInput)
	}

	rc, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return race.Race{}, fmt.Errorf("get race %s: %w", raceID, err)
	}
	if !exists {
		return race.Race{}, fmt.Errorf("%w: race %s", ErrNotFound, raceID)
	}
	return rc, nil
}
