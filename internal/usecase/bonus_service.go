package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/platform/id"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

const (
	seasonBonusPoints = 10
	// Season-opening bonus answers lock on March 1st, before the first race.
	seasonBonusDeadlineMonth = time.March
	seasonBonusDeadlineDay   = 1
)

// BonusService owns season-wide bonus questions and their answers. Questions
// are graded once, after the fact; grading retroactively makes every stored
// answer scorable without touching the answers themselves.
type BonusService struct {
	bonusRepo prediction.BonusRepository
	ids       id.Generator
	season    int
	logger    *logging.Logger
	now       func() time.Time
}

func NewBonusService(
	bonusRepo prediction.BonusRepository,
	ids id.Generator,
	season int,
	logger *logging.Logger,
) *BonusService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BonusService{
		bonusRepo: bonusRepo,
		ids:       ids,
		season:    season,
		logger:    logger,
		now:       time.Now,
	}
}

type CreateQuestionInput struct {
	Question string
	Points   int
	Deadline time.Time
}

// CreateQuestion adds a new ungraded bonus question for the season.
func (s *BonusService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (prediction.BonusQuestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.CreateQuestion")
	defer span.End()

	input.Question = strings.TrimSpace(input.Question)
	if input.Question == "" {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: question text is required", ErrInvalidInput)
	}
	if input.Points <= 0 {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: points must be positive", ErrInvalidInput)
	}
	if input.Deadline.IsZero() {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	}

	questionID, err := s.ids.NewID()
	if err != nil {
		return prediction.BonusQuestion{}, fmt.Errorf("generate question id: %w", err)
	}

	question := prediction.BonusQuestion{
		ID:       questionID,
		Season:   s.season,
		Question: input.Question,
		Points:   input.Points,
		Deadline: input.Deadline.UTC(),
	}
	if err := s.bonusRepo.UpsertQuestion(ctx, question); err != nil {
		return prediction.BonusQuestion{}, fmt.Errorf("upsert bonus question: %w", err)
	}

	s.logger.InfoContext(ctx, "bonus question created",
		"question_id", question.ID,
		"points", question.Points,
	)
	return question, nil
}

// UpdateQuestion rewrites an existing question's text, points and deadline.
// The stored correct answer survives the edit, so regrading is only needed
// when the question's meaning actually changed.
func (s *BonusService) UpdateQuestion(ctx context.Context, questionID string, input CreateQuestionInput) (prediction.BonusQuestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.UpdateQuestion")
	defer span.End()

	input.Question = strings.TrimSpace(input.Question)
	if input.Question == "" {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: question text is required", ErrInvalidInput)
	}
	if input.Points <= 0 {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: points must be positive", ErrInvalidInput)
	}
	if input.Deadline.IsZero() {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	}

	question, exists, err := s.bonusRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return prediction.BonusQuestion{}, fmt.Errorf("get bonus question: %w", err)
	}
	if !exists {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: bonus question %s", ErrNotFound, questionID)
	}

	question.Question = input.Question
	question.Points = input.Points
	question.Deadline = input.Deadline.UTC()
	if err := s.bonusRepo.UpsertQuestion(ctx, question); err != nil {
		return prediction.BonusQuestion{}, fmt.Errorf("upsert bonus question: %w", err)
	}

	s.logger.InfoContext(ctx, "bonus question updated", "question_id", question.ID)
	return question, nil
}

// EnsureSeasonQuestions seeds the two standing season questions (drivers' and
// constructors' champion) if they are missing. Existing questions are left
// untouched so grading and edits survive restarts.
func (s *BonusService) EnsureSeasonQuestions(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.EnsureSeasonQuestions")
	defer span.End()

	deadline := time.Date(s.season, seasonBonusDeadlineMonth, seasonBonusDeadlineDay, 0, 0, 0, 0, time.UTC)
	seeds := []prediction.BonusQuestion{
		{
			ID:       fmt.Sprintf("bq-driver-%d", s.season),
			Season:   s.season,
			Question: fmt.Sprintf("Who wins the %d drivers' championship?", s.season),
			Points:   seasonBonusPoints,
			Deadline: deadline,
		},
		{
			ID:       fmt.Sprintf("bq-const-%d", s.season),
			Season:   s.season,
			Question: fmt.Sprintf("Which team wins the %d constructors' championship?", s.season),
			Points:   seasonBonusPoints,
			Deadline: deadline,
		},
	}

	for _, seed := range seeds {
		if _, exists, err := s.bonusRepo.GetQuestion(ctx, seed.ID); err != nil {
			return fmt.Errorf("get bonus question %s: %w", seed.ID, err)
		} else if exists {
			continue
		}
		if err := s.bonusRepo.UpsertQuestion(ctx, seed); err != nil {
			return fmt.Errorf("seed bonus question %s: %w", seed.ID, err)
		}
	}
	return nil
}

// ListQuestions returns the season's questions.
func (s *BonusService) ListQuestions(ctx context.Context) ([]prediction.BonusQuestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.ListQuestions")
	defer span.End()

	questions, err := s.bonusRepo.ListQuestionsBySeason(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("list bonus questions: %w", err)
	}
	return questions, nil
}

// DeleteQuestion removes a question and orphans its answers; stored answers
// for a deleted question simply stop contributing points.
func (s *BonusService) DeleteQuestion(ctx context.Context, questionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.DeleteQuestion")
	defer span.End()

	if err := s.bonusRepo.DeleteQuestion(ctx, questionID); err != nil {
		return fmt.Errorf("delete bonus question: %w", err)
	}
	return nil
}

// SubmitAnswer stores one user's free-text answer, replacing any earlier one.
// Answers are rejected after the question's deadline.
func (s *BonusService) SubmitAnswer(ctx context.Context, userID, questionID, answer string) (prediction.BonusAnswer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.SubmitAnswer")
	defer span.End()

	userID = strings.TrimSpace(userID)
	answer = strings.TrimSpace(answer)
	if userID == "" || answer == "" {
		return prediction.BonusAnswer{}, fmt.Errorf("%w: user_id and answer are required", ErrInvalidInput)
	}

	question, exists, err := s.bonusRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return prediction.BonusAnswer{}, fmt.Errorf("get bonus question: %w", err)
	}
	if !exists {
		return prediction.BonusAnswer{}, fmt.Errorf("%w: bonus question %s", ErrNotFound, questionID)
	}
	if s.now().After(question.Deadline) {
		return prediction.BonusAnswer{}, fmt.Errorf("%w: bonus question %s", ErrBettingClosed, questionID)
	}

	stored := prediction.BonusAnswer{
		UserID:     userID,
		QuestionID: question.ID,
		Answer:     answer,
	}
	if err := s.bonusRepo.UpsertAnswer(ctx, stored); err != nil {
		return prediction.BonusAnswer{}, fmt.Errorf("upsert bonus answer: %w", err)
	}
	return stored, nil
}

// Grade sets the correct answer on a question. Scoring happens at read time,
// so grading (and regrading) applies to every answer already stored.
func (s *BonusService) Grade(ctx context.Context, questionID, correctAnswer string) (prediction.BonusQuestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.Grade")
	defer span.End()

	correctAnswer = strings.TrimSpace(correctAnswer)
	if correctAnswer == "" {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: correct answer is required", ErrInvalidInput)
	}

	question, exists, err := s.bonusRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return prediction.BonusQuestion{}, fmt.Errorf("get bonus question: %w", err)
	}
	if !exists {
		return prediction.BonusQuestion{}, fmt.Errorf("%w: bonus question %s", ErrNotFound, questionID)
	}

	question.CorrectAnswer = correctAnswer
	if err := s.bonusRepo.UpsertQuestion(ctx, question); err != nil {
		return prediction.BonusQuestion{}, fmt.Errorf("upsert graded question: %w", err)
	}

	s.logger.InfoContext(ctx, "bonus question graded", "question_id", question.ID)
	return question, nil
}

// UserPoints totals a user's bonus points across the season's graded
// questions.
func (s *BonusService) UserPoints(ctx context.Context, userID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.UserPoints")
	defer span.End()

	questions, err := s.bonusRepo.ListQuestionsBySeason(ctx, s.season)
	if err != nil {
		return 0, fmt.Errorf("list bonus questions: %w", err)
	}

	total := 0
	for _, question := range questions {
		if !question.Graded() {
			continue
		}
		answer, exists, err := s.bonusRepo.GetAnswer(ctx, userID, question.ID)
		if err != nil {
			return 0, fmt.Errorf("get bonus answer: %w", err)
		}
		if !exists {
			continue
		}
		total += prediction.GradeAnswer(question, answer.Answer)
	}
	return total, nil
}
