package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
)

type roundTableModel struct {
	RaceID  string `db:"race_id"`
	Session string `db:"session"`
	Status  string `db:"status"`
}

type RoundRepository struct {
	db *sqlx.DB
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

func (r *RoundRepository) Get(ctx context.Context, raceID string, kind race.SessionKind) (prediction.RoundState, bool, error) {
	const query = `
SELECT race_id, session, status
FROM round_states
WHERE race_id = $1
  AND session = $2`

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, raceID, string(kind)); err != nil {
		if isNotFound(err) {
			return prediction.RoundState{}, false, nil
		}
		return prediction.RoundState{}, false, fmt.Errorf("get round state: %w", err)
	}

	return prediction.RoundState{
		RaceID:  row.RaceID,
		Session: race.SessionKind(row.Session),
		Status:  prediction.RoundStatus(row.Status),
	}, true, nil
}

func (r *RoundRepository) Upsert(ctx context.Context, state prediction.RoundState) error {
	const query = `
INSERT INTO round_states (race_id, session, status)
VALUES ($1, $2, $3)
ON CONFLICT (race_id, session)
DO UPDATE SET status = EXCLUDED.status`

	if _, err := r.db.ExecContext(ctx, query, state.RaceID, string(state.Session), string(state.Status)); err != nil {
		return fmt.Errorf("upsert round state: %w", err)
	}
	return nil
}

func (r *RoundRepository) Delete(ctx context.Context, raceID string, kind race.SessionKind) error {
	const query = `
DELETE FROM round_states
WHERE race_id = $1
  AND session = $2`

	if _, err := r.db.ExecContext(ctx, query, raceID, string(kind)); err != nil {
		return fmt.Errorf("delete round state: %w", err)
	}
	return nil
}
