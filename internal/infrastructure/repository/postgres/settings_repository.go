package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
)

type settingsTableModel struct {
	Season             int           `db:"season"`
	RacePoints         pq.Int64Array `db:"race_points"`
	QualiPoints        pq.Int64Array `db:"quali_points"`
	ParticipationPoint int           `db:"participation_point"`
}

func (m settingsTableModel) toDomain() prediction.Settings {
	return prediction.Settings{
		Season:             m.Season,
		RacePoints:         toIntSlice(m.RacePoints),
		QualiPoints:        toIntSlice(m.QualiPoints),
		ParticipationPoint: m.ParticipationPoint,
	}
}

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, season int) (prediction.Settings, bool, error) {
	const query = `
SELECT season, race_points, quali_points, participation_point
FROM game_settings
WHERE season = $1`

	var row settingsTableModel
	if err := r.db.GetContext(ctx, &row, query, season); err != nil {
		if isNotFound(err) {
			return prediction.Settings{}, false, nil
		}
		return prediction.Settings{}, false, fmt.Errorf("get settings: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, settings prediction.Settings) error {
	const query = `
INSERT INTO game_settings (season, race_points, quali_points, participation_point)
VALUES ($1, $2, $3, $4)
ON CONFLICT (season)
DO UPDATE SET
    race_points = EXCLUDED.race_points,
    quali_points = EXCLUDED.quali_points,
    participation_point = EXCLUDED.participation_point`

	if _, err := r.db.ExecContext(ctx, query,
		settings.Season,
		toInt64Array(settings.RacePoints),
		toInt64Array(settings.QualiPoints),
		settings.ParticipationPoint,
	); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func toIntSlice(values pq.Int64Array) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		out = append(out, int(v))
	}
	return out
}

func toInt64Array(values []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(values))
	for _, v := range values {
		out = append(out, int64(v))
	}
	return out
}
