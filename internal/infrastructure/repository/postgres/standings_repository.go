package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/domain/standings"
)

type driverStandingTableModel struct {
	DriverID string `db:"driver_id"`
	Season   int    `db:"season"`
	Points   int    `db:"points"`
	Rank     int    `db:"rank"`
	Trend    string `db:"trend"`
}

type teamStandingTableModel struct {
	TeamID string `db:"team_id"`
	Season int    `db:"season"`
	Points int    `db:"points"`
	Rank   int    `db:"rank"`
	Trend  string `db:"trend"`
}

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) ListDrivers(ctx context.Context, season int) ([]standings.DriverStanding, error) {
	const query = `
SELECT driver_id, season, points, rank, trend
FROM driver_standings
WHERE season = $1
ORDER BY rank`

	var rows []driverStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, season); err != nil {
		return nil, fmt.Errorf("list driver standings: %w", err)
	}

	out := make([]standings.DriverStanding, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.DriverStanding{
			DriverID: row.DriverID,
			Season:   row.Season,
			Points:   row.Points,
			Rank:     row.Rank,
			Trend:    standings.Trend(row.Trend),
		})
	}
	return out, nil
}

func (r *StandingsRepository) ListTeams(ctx context.Context, season int) ([]standings.TeamStanding, error) {
	const query = `
SELECT team_id, season, points, rank, trend
FROM team_standings
WHERE season = $1
ORDER BY rank`

	var rows []teamStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, season); err != nil {
		return nil, fmt.Errorf("list team standings: %w", err)
	}

	out := make([]standings.TeamStanding, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.TeamStanding{
			TeamID: row.TeamID,
			Season: row.Season,
			Points: row.Points,
			Rank:   row.Rank,
			Trend:  standings.Trend(row.Trend),
		})
	}
	return out, nil
}

// Replace swaps both season tables in one transaction so a reader never sees
// a half-written ranking.
func (r *StandingsRepository) Replace(ctx context.Context, season int, drivers []standings.DriverStanding, teams []standings.TeamStanding) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for standings replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM driver_standings WHERE season = $1`, season); err != nil {
		return fmt.Errorf("clear driver standings: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM team_standings WHERE season = $1`, season); err != nil {
		return fmt.Errorf("clear team standings: %w", err)
	}

	const insertDriverQuery = `
INSERT INTO driver_standings (driver_id, season, points, rank, trend)
VALUES (:driver_id, :season, :points, :rank, :trend)`

	for _, row := range drivers {
		if _, err := tx.NamedExecContext(ctx, insertDriverQuery, driverStandingTableModel{
			DriverID: row.DriverID,
			Season:   row.Season,
			Points:   row.Points,
			Rank:     row.Rank,
			Trend:    string(row.Trend),
		}); err != nil {
			return fmt.Errorf("insert driver standing: %w", err)
		}
	}

	const insertTeamQuery = `
INSERT INTO team_standings (team_id, season, points, rank, trend)
VALUES (:team_id, :season, :points, :rank, :trend)`

	for _, row := range teams {
		if _, err := tx.NamedExecContext(ctx, insertTeamQuery, teamStandingTableModel{
			TeamID: row.TeamID,
			Season: row.Season,
			Points: row.Points,
			Rank:   row.Rank,
			Trend:  string(row.Trend),
		}); err != nil {
			return fmt.Errorf("insert team standing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit standings replace: %w", err)
	}
	return nil
}
