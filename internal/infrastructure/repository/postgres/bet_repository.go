package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
)

type betTableModel struct {
	UserID      string         `db:"user_id"`
	Season      int            `db:"season"`
	RaceID      string         `db:"race_id"`
	Session     string         `db:"session"`
	DriverIDs   pq.StringArray `db:"driver_ids"`
	SubmittedAt time.Time      `db:"submitted_at"`
}

func (m betTableModel) toDomain() prediction.UserBet {
	return prediction.UserBet{
		UserID:      m.UserID,
		Season:      m.Season,
		RaceID:      m.RaceID,
		Session:     race.SessionKind(m.Session),
		DriverIDs:   append([]string(nil), m.DriverIDs...),
		SubmittedAt: m.SubmittedAt,
	}
}

type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

func (r *BetRepository) Get(ctx context.Context, userID, raceID string, kind race.SessionKind, season int) (prediction.UserBet, bool, error) {
	const query = `
SELECT user_id, season, race_id, session, driver_ids, submitted_at
FROM bets
WHERE user_id = $1
  AND race_id = $2
  AND session = $3
  AND season = $4`

	var row betTableModel
	if err := r.db.GetContext(ctx, &row, query, userID, raceID, string(kind), season); err != nil {
		if isNotFound(err) {
			return prediction.UserBet{}, false, nil
		}
		return prediction.UserBet{}, false, fmt.Errorf("get bet: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *BetRepository) ListBySeason(ctx context.Context, season int) ([]prediction.UserBet, error) {
	const query = `
SELECT user_id, season, race_id, session, driver_ids, submitted_at
FROM bets
WHERE season = $1
ORDER BY user_id, race_id, session`

	var rows []betTableModel
	if err := r.db.SelectContext(ctx, &rows, query, season); err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}

	out := make([]prediction.UserBet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *BetRepository) Upsert(ctx context.Context, bet prediction.UserBet) error {
	const query = `
INSERT INTO bets (user_id, season, race_id, session, driver_ids, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, race_id, session, season)
DO UPDATE SET
    driver_ids = EXCLUDED.driver_ids,
    submitted_at = EXCLUDED.submitted_at`

	if _, err := r.db.ExecContext(ctx, query,
		bet.UserID,
		bet.Season,
		bet.RaceID,
		string(bet.Session),
		pq.StringArray(bet.DriverIDs),
		bet.SubmittedAt,
	); err != nil {
		return fmt.Errorf("upsert bet: %w", err)
	}
	return nil
}
