package postgres

import (
	"database/sql"
	"errors"
)

// isNotFound collapses the driver's no-rows error into the repositories'
// (value, false, nil) miss convention. errors.Is sees through the otelsql
// wrapping.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
