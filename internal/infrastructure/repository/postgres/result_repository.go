package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
)

// resultEntryJSON is the stored shape of one classification row. Entries live
// as a JSONB document per (race, session): the whole classification is always
// written and read together.
type resultEntryJSON struct {
	DriverID string `json:"driverId"`
	TeamID   string `json:"teamId,omitempty"`
	Position string `json:"position"`
	Time     string `json:"time,omitempty"`
	Laps     int    `json:"laps,omitempty"`
	Points   int    `json:"points,omitempty"`
	Grid     int    `json:"grid,omitempty"`
	Q1       string `json:"q1,omitempty"`
	Q2       string `json:"q2,omitempty"`
	Q3       string `json:"q3,omitempty"`
}

type resultTableModel struct {
	RaceID      string `db:"race_id"`
	Session     string `db:"session"`
	DistancePct int    `db:"distance_pct"`
	Entries     []byte `db:"entries"`
}

func (m resultTableModel) toDomain() (result.SessionResult, error) {
	var entryRows []resultEntryJSON
	if err := sonic.Unmarshal(m.Entries, &entryRows); err != nil {
		return result.SessionResult{}, fmt.Errorf("decode result entries: %w", err)
	}

	entries := make([]result.Entry, 0, len(entryRows))
	for _, e := range entryRows {
		entries = append(entries, result.Entry(e))
	}

	return result.SessionResult{
		RaceID:      m.RaceID,
		Session:     race.SessionKind(m.Session),
		Entries:     entries,
		DistancePct: result.DistancePct(m.DistancePct),
	}, nil
}

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) Get(ctx context.Context, raceID string, kind race.SessionKind) (result.SessionResult, bool, error) {
	const query = `
SELECT race_id, session, distance_pct, entries
FROM session_results
WHERE race_id = $1
  AND session = $2`

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, raceID, string(kind)); err != nil {
		if isNotFound(err) {
			return result.SessionResult{}, false, nil
		}
		return result.SessionResult{}, false, fmt.Errorf("get session result: %w", err)
	}

	sessionResult, err := row.toDomain()
	if err != nil {
		return result.SessionResult{}, false, err
	}
	return sessionResult, true, nil
}

func (r *ResultRepository) List(ctx context.Context) ([]result.SessionResult, error) {
	const query = `
SELECT race_id, session, distance_pct, entries
FROM session_results
ORDER BY race_id, session`

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list session results: %w", err)
	}

	out := make([]result.SessionResult, 0, len(rows))
	for _, row := range rows {
		sessionResult, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, sessionResult)
	}
	return out, nil
}

func (r *ResultRepository) Upsert(ctx context.Context, sessionResult result.SessionResult) error {
	entryRows := make([]resultEntryJSON, 0, len(sessionResult.Entries))
	for _, e := range sessionResult.Entries {
		entryRows = append(entryRows, resultEntryJSON(e))
	}
	encoded, err := sonic.Marshal(entryRows)
	if err != nil {
		return fmt.Errorf("encode result entries: %w", err)
	}

	const query = `
INSERT INTO session_results (race_id, session, distance_pct, entries)
VALUES ($1, $2, $3, $4)
ON CONFLICT (race_id, session)
DO UPDATE SET
    distance_pct = EXCLUDED.distance_pct,
    entries = EXCLUDED.entries,
    updated_at = now()`

	if _, err := r.db.ExecContext(ctx, query, sessionResult.RaceID, string(sessionResult.Session), int(sessionResult.DistancePct), encoded); err != nil {
		return fmt.Errorf("upsert session result: %w", err)
	}
	return nil
}

func (r *ResultRepository) Delete(ctx context.Context, raceID string, kind race.SessionKind) error {
	const query = `
DELETE FROM session_results
WHERE race_id = $1
  AND session = $2`

	if _, err := r.db.ExecContext(ctx, query, raceID, string(kind)); err != nil {
		return fmt.Errorf("delete session result: %w", err)
	}
	return nil
}
