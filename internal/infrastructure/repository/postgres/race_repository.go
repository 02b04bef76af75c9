package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

type raceTableModel struct {
	ID          string `db:"id"`
	Round       int    `db:"round"`
	Country     string `db:"country"`
	City        string `db:"city"`
	CircuitName string `db:"circuit_name"`
	Format      string `db:"format"`
}

type raceSessionTableModel struct {
	RaceID   string    `db:"race_id"`
	Kind     string    `db:"kind"`
	StartsAt time.Time `db:"starts_at"`
}

type RaceRepository struct {
	db *sqlx.DB
}

func NewRaceRepository(db *sqlx.DB) *RaceRepository {
	return &RaceRepository{db: db}
}

func (r *RaceRepository) GetByID(ctx context.Context, id string) (race.Race, bool, error) {
	const raceQuery = `
SELECT id, round, country, city, circuit_name, format
FROM races
WHERE id = $1`

	var row raceTableModel
	if err := r.db.GetContext(ctx, &row, raceQuery, id); err != nil {
		if isNotFound(err) {
			return race.Race{}, false, nil
		}
		return race.Race{}, false, fmt.Errorf("get race: %w", err)
	}

	const sessionsQuery = `
SELECT race_id, kind, starts_at
FROM race_sessions
WHERE race_id = $1
ORDER BY starts_at`

	var sessionRows []raceSessionTableModel
	if err := r.db.SelectContext(ctx, &sessionRows, sessionsQuery, id); err != nil {
		return race.Race{}, false, fmt.Errorf("list race sessions: %w", err)
	}

	return toRace(row, sessionRows), true, nil
}

func (r *RaceRepository) List(ctx context.Context) ([]race.Race, error) {
	const racesQuery = `
SELECT id, round, country, city, circuit_name, format
FROM races
ORDER BY round`

	var raceRows []raceTableModel
	if err := r.db.SelectContext(ctx, &raceRows, racesQuery); err != nil {
		return nil, fmt.Errorf("list races: %w", err)
	}

	const sessionsQuery = `
SELECT race_id, kind, starts_at
FROM race_sessions
ORDER BY starts_at`

	var sessionRows []raceSessionTableModel
	if err := r.db.SelectContext(ctx, &sessionRows, sessionsQuery); err != nil {
		return nil, fmt.Errorf("list race sessions: %w", err)
	}

	sessionsByRace := make(map[string][]raceSessionTableModel, len(raceRows))
	for _, s := range sessionRows {
		sessionsByRace[s.RaceID] = append(sessionsByRace[s.RaceID], s)
	}

	out := make([]race.Race, 0, len(raceRows))
	for _, row := range raceRows {
		out = append(out, toRace(row, sessionsByRace[row.ID]))
	}
	return out, nil
}

func toRace(row raceTableModel, sessionRows []raceSessionTableModel) race.Race {
	sessions := make(map[race.SessionKind]time.Time, len(sessionRows))
	for _, s := range sessionRows {
		if kind, ok := race.ParseSessionKind(s.Kind); ok {
			sessions[kind] = s.StartsAt
		}
	}

	return race.Race{
		ID:          row.ID,
		Round:       row.Round,
		Country:     row.Country,
		City:        row.City,
		CircuitName: row.CircuitName,
		Format:      race.Format(row.Format),
		Sessions:    sessions,
	}
}
