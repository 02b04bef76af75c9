package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
)

type BonusRepository struct {
	mu        sync.RWMutex
	questions map[string]prediction.BonusQuestion
	// question insertion order, so season listings stay stable across reads.
	questionOrder []string
	answers       map[string]prediction.BonusAnswer
}

func NewBonusRepository() *BonusRepository {
	return &BonusRepository{
		questions: make(map[string]prediction.BonusQuestion),
		answers:   make(map[string]prediction.BonusAnswer),
	}
}

func (r *BonusRepository) GetQuestion(_ context.Context, id string) (prediction.BonusQuestion, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	question, ok := r.questions[id]
	if !ok {
		return prediction.BonusQuestion{}, false, nil
	}

	return question, true, nil
}

func (r *BonusRepository) ListQuestionsBySeason(_ context.Context, season int) ([]prediction.BonusQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.BonusQuestion, 0, len(r.questionOrder))
	for _, id := range r.questionOrder {
		if question := r.questions[id]; question.Season == season {
			out = append(out, question)
		}
	}

	return out, nil
}

func (r *BonusRepository) UpsertQuestion(_ context.Context, question prediction.BonusQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.questions[question.ID]; !exists {
		r.questionOrder = append(r.questionOrder, question.ID)
	}
	r.questions[question.ID] = question
	return nil
}

func (r *BonusRepository) DeleteQuestion(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.questions, id)
	for idx, stored := range r.questionOrder {
		if stored == id {
			r.questionOrder = append(r.questionOrder[:idx], r.questionOrder[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *BonusRepository) GetAnswer(_ context.Context, userID, questionID string) (prediction.BonusAnswer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	answer, ok := r.answers[answerKey(userID, questionID)]
	if !ok {
		return prediction.BonusAnswer{}, false, nil
	}

	return answer, true, nil
}

func (r *BonusRepository) ListAnswersByQuestion(_ context.Context, questionID string) ([]prediction.BonusAnswer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.BonusAnswer, 0)
	for _, answer := range r.answers {
		if answer.QuestionID == questionID {
			out = append(out, answer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

func (r *BonusRepository) ListAnswersByUser(_ context.Context, userID string) ([]prediction.BonusAnswer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.BonusAnswer, 0)
	for _, answer := range r.answers {
		if answer.UserID == userID {
			out = append(out, answer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })

	return out, nil
}

func (r *BonusRepository) UpsertAnswer(_ context.Context, answer prediction.BonusAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.answers[answerKey(answer.UserID, answer.QuestionID)] = answer
	return nil
}

func answerKey(userID, questionID string) string {
	return userID + "::" + questionID
}
