package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the reference data (teams, roster, calendar, accounts)
// into an empty database. A non-empty teams table means the instance is
// already provisioned and the seed is skipped wholesale.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO teams (id, name, slug, sort_order)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`, t.ID, t.Name, t.Slug, t.SortOrder); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, d := range memory.SeedDrivers() {
		var teamID any
		if d.TeamID != nil {
			teamID = *d.TeamID
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO drivers (id, first_name, last_name, race_number, team_id, slug, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`, d.ID, d.FirstName, d.LastName, d.RaceNumber, teamID, d.Slug, d.SortOrder); err != nil {
			return fmt.Errorf("seed driver %s: %w", d.ID, err)
		}
	}

	for _, rc := range memory.SeedRaces() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO races (id, round, country, city, circuit_name, format)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`, rc.ID, rc.Round, rc.Country, rc.City, rc.CircuitName, string(rc.Format)); err != nil {
			return fmt.Errorf("seed race %s: %w", rc.ID, err)
		}
		for _, kind := range rc.SessionKinds() {
			start, scheduled := rc.SessionStart(kind)
			if !scheduled {
				continue
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO race_sessions (race_id, kind, starts_at)
VALUES ($1, $2, $3)
ON CONFLICT (race_id, kind) DO NOTHING`, rc.ID, string(kind), start); err != nil {
				return fmt.Errorf("seed race session %s/%s: %w", rc.ID, kind, err)
			}
		}
	}

	for _, u := range memory.SeedUsers() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO users (id, username, avatar, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`, u.ID, u.Username, u.Avatar, string(u.Role)); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap seed: %w", err)
	}
	return nil
}
