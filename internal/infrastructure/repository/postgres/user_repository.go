package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/domain/identity"
)

type userTableModel struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Avatar   string `db:"avatar"`
	Role     string `db:"role"`
}

func (m userTableModel) toDomain() identity.User {
	return identity.User{
		ID:       m.ID,
		Username: m.Username,
		Avatar:   m.Avatar,
		Role:     identity.Role(m.Role),
	}
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (identity.User, bool, error) {
	const query = `
SELECT id, username, avatar, role
FROM users
WHERE id = $1`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return identity.User{}, false, nil
		}
		return identity.User{}, false, fmt.Errorf("get user: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) List(ctx context.Context) ([]identity.User, error) {
	const query = `
SELECT id, username, avatar, role
FROM users
ORDER BY username, id`

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]identity.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
