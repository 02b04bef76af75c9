package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
)

type bonusQuestionTableModel struct {
	ID            string    `db:"id"`
	Season        int       `db:"season"`
	Question      string    `db:"question"`
	Points        int       `db:"points"`
	Deadline      time.Time `db:"deadline"`
	CorrectAnswer string    `db:"correct_answer"`
}

func (m bonusQuestionTableModel) toDomain() prediction.BonusQuestion {
	return prediction.BonusQuestion(m)
}

type bonusAnswerTableModel struct {
	UserID     string `db:"user_id"`
	QuestionID string `db:"question_id"`
	Answer     string `db:"answer"`
}

type BonusRepository struct {
	db *sqlx.DB
}

func NewBonusRepository(db *sqlx.DB) *BonusRepository {
	return &BonusRepository{db: db}
}

func (r *BonusRepository) GetQuestion(ctx context.Context, id string) (prediction.BonusQuestion, bool, error) {
	const query = `
SELECT id, season, question, points, deadline, correct_answer
FROM bonus_questions
WHERE id = $1`

	var row bonusQuestionTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return prediction.BonusQuestion{}, false, nil
		}
		return prediction.BonusQuestion{}, false, fmt.Errorf("get bonus question: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *BonusRepository) ListQuestionsBySeason(ctx context.Context, season int) ([]prediction.BonusQuestion, error) {
	const query = `
SELECT id, season, question, points, deadline, correct_answer
FROM bonus_questions
WHERE season = $1
ORDER BY created_at, id`

	var rows []bonusQuestionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, season); err != nil {
		return nil, fmt.Errorf("list bonus questions: %w", err)
	}

	out := make([]prediction.BonusQuestion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *BonusRepository) UpsertQuestion(ctx context.Context, question prediction.BonusQuestion) error {
	const query = `
INSERT INTO bonus_questions (id, season, question, points, deadline, correct_answer)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id)
DO UPDATE SET
    question = EXCLUDED.question,
    points = EXCLUDED.points,
    deadline = EXCLUDED.deadline,
    correct_answer = EXCLUDED.correct_answer`

	if _, err := r.db.ExecContext(ctx, query,
		question.ID,
		question.Season,
		question.Question,
		question.Points,
		question.Deadline,
		question.CorrectAnswer,
	); err != nil {
		return fmt.Errorf("upsert bonus question: %w", err)
	}
	return nil
}

func (r *BonusRepository) DeleteQuestion(ctx context.Context, id string) error {
	const query = `DELETE FROM bonus_questions WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete bonus question: %w", err)
	}
	return nil
}

func (r *BonusRepository) GetAnswer(ctx context.Context, userID, questionID string) (prediction.BonusAnswer, bool, error) {
	const query = `
SELECT user_id, question_id, answer
FROM bonus_answers
WHERE user_id = $1
  AND question_id = $2`

	var row bonusAnswerTableModel
	if err := r.db.GetContext(ctx, &row, query, userID, questionID); err != nil {
		if isNotFound(err) {
			return prediction.BonusAnswer{}, false, nil
		}
		return prediction.BonusAnswer{}, false, fmt.Errorf("get bonus answer: %w", err)
	}

	return prediction.BonusAnswer(row), true, nil
}

func (r *BonusRepository) ListAnswersByQuestion(ctx context.Context, questionID string) ([]prediction.BonusAnswer, error) {
	const query = `
SELECT user_id, question_id, answer
FROM bonus_answers
WHERE question_id = $1
ORDER BY user_id`

	var rows []bonusAnswerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, questionID); err != nil {
		return nil, fmt.Errorf("list bonus answers: %w", err)
	}

	out := make([]prediction.BonusAnswer, 0, len(rows))
	for _, row := range rows {
		out = append(out, prediction.BonusAnswer(row))
	}
	return out, nil
}

func (r *BonusRepository) ListAnswersByUser(ctx context.Context, userID string) ([]prediction.BonusAnswer, error) {
	const query = `
SELECT user_id, question_id, answer
FROM bonus_answers
WHERE user_id = $1
ORDER BY question_id`

	var rows []bonusAnswerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list bonus answers: %w", err)
	}

	out := make([]prediction.BonusAnswer, 0, len(rows))
	for _, row := range rows {
		out = append(out, prediction.BonusAnswer(row))
	}
	return out, nil
}

func (r *BonusRepository) UpsertAnswer(ctx context.Context, answer prediction.BonusAnswer) error {
	const query = `
INSERT INTO bonus_answers (user_id, question_id, answer)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, question_id)
DO UPDATE SET answer = EXCLUDED.answer`

	if _, err := r.db.ExecContext(ctx, query, answer.UserID, answer.QuestionID, answer.Answer); err != nil {
		return fmt.Errorf("upsert bonus answer: %w", err)
	}
	return nil
}
