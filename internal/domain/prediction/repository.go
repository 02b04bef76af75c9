package prediction

import (
	"context"

	"github.com/pitlanehq/pitwall/internal/domain/race"
)

// BetRepository persists user bets. Upsert is last-write-wins on the
// (user, race, session, season) key.
type BetRepository interface {
	Get(ctx context.Context, userID, raceID string, kind race.SessionKind, season int) (UserBet, bool, error)
	ListBySeason(ctx context.Context, season int) ([]UserBet, error)
	Upsert(ctx context.Context, bet UserBet) error
}

// RoundRepository persists manual betting-window overrides.
type RoundRepository interface {
	Get(ctx context.Context, raceID string, kind race.SessionKind) (RoundState, bool, error)
	Upsert(ctx context.Context, state RoundState) error
	Delete(ctx context.Context, raceID string, kind race.SessionKind) error
}

// BonusRepository persists bonus questions and their answers.
type BonusRepository interface {
	GetQuestion(ctx context.Context, id string) (BonusQuestion, bool, error)
	ListQuestionsBySeason(ctx context.Context, season int) ([]BonusQuestion, error)
	UpsertQuestion(ctx context.Context, question BonusQuestion) error
	DeleteQuestion(ctx context.Context, id string) error
	GetAnswer(ctx context.Context, userID, questionID string) (BonusAnswer, bool, error)
	ListAnswersByQuestion(ctx context.Context, questionID string) ([]BonusAnswer, error)
	ListAnswersByUser(ctx context.Context, userID string) ([]BonusAnswer, error)
	UpsertAnswer(ctx context.Context, answer BonusAnswer) error
}

// SettingsRepository persists the season scoring configuration.
type SettingsRepository interface {
	Get(ctx context.Context, season int) (Settings, bool, error)
	Upsert(ctx context.Context, settings Settings) error
}
