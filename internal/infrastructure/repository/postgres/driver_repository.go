package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
)

type driverTableModel struct {
	ID         string         `db:"id"`
	FirstName  string         `db:"first_name"`
	LastName   string         `db:"last_name"`
	RaceNumber int            `db:"race_number"`
	TeamID     sql.NullString `db:"team_id"`
	Slug       string         `db:"slug"`
	SortOrder  int            `db:"sort_order"`
}

func (m driverTableModel) toDomain() driver.Driver {
	d := driver.Driver{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		RaceNumber: m.RaceNumber,
		Slug:       m.Slug,
		SortOrder:  m.SortOrder,
	}
	if m.TeamID.Valid {
		teamID := m.TeamID.String
		d.TeamID = &teamID
	}
	return d
}

type DriverRepository struct {
	db *sqlx.DB
}

func NewDriverRepository(db *sqlx.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) GetByID(ctx context.Context, id string) (driver.Driver, bool, error) {
	const query = `
SELECT id, first_name, last_name, race_number, team_id, slug, sort_order
FROM drivers
WHERE id = $1`

	var row driverTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return driver.Driver{}, false, nil
		}
		return driver.Driver{}, false, fmt.Errorf("get driver: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *DriverRepository) List(ctx context.Context) ([]driver.Driver, error) {
	const query = `
SELECT id, first_name, last_name, race_number, team_id, slug, sort_order
FROM drivers
ORDER BY sort_order, id`

	var rows []driverTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	out := make([]driver.Driver, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
