package standings

import "context"

// Repository persists computed standings. Replace swaps the whole season
// table in one shot so readers never see a partially updated ranking.
type Repository interface {
	ListDrivers(ctx context.Context, season int) ([]DriverStanding, error)
	ListTeams(ctx context.Context, season int) ([]TeamStanding, error)
	Replace(ctx context.Context, season int, drivers []DriverStanding, teams []TeamStanding) error
}
