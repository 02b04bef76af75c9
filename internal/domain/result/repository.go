package result

import (
	"context"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

// Repository exposes session-result persistence operations. Upsert replaces
// the whole result set for its (race, session) key.
type Repository interface {
	Get(ctx context.Context, raceID string, kind race.SessionKind) (SessionResult, bool, error)
	List(ctx context.Context) ([]SessionResult, error)
	Upsert(ctx context.Context, sessionResult SessionResult) error
	Delete(ctx context.Context, raceID string, kind race.SessionKind) error
}
