package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/usecase"
)

type bonusQuestionDTO struct {
	ID       string    `json:"id"`
	Season   int       `json:"season"`
	Question string    `json:"question"`
	Points   int       `json:"points"`
	Deadline time.Time `json:"deadline"`
	Graded   bool      `json:"graded"`
}

type createQuestionRequest struct {
	Question string    `json:"question" validate:"required"`
	Points   int       `json:"points" validate:"required,gt=0"`
	Deadline time.Time `json:"deadline" validate:"required"`
}

type gradeQuestionRequest struct {
	CorrectAnswer string `json:"correctAnswer" validate:"required"`
}

type submitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type bonusAnswerDTO struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// The correct answer stays out of the public DTO until the question is graded;
// before that it is always empty anyway.
func toBonusQuestionDTO(q prediction.BonusQuestion) bonusQuestionDTO {
	return bonusQuestionDTO{
		ID:       q.ID,
		Season:   q.Season,
		Question: q.Question,
		Points:   q.Points,
		Deadline: q.Deadline,
		Graded:   q.Graded(),
	}
}

func (h *Handler) ListBonusQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBonusQuestions")
	defer span.End()

	questions, err := h.bonusService.ListQuestions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list bonus questions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]bonusQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, toBonusQuestionDTO(q))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateBonusQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBonusQuestion")
	defer span.End()

	var req createQuestionRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	question, err := h.bonusService.CreateQuestion(ctx, usecase.CreateQuestionInput{
		Question: req.Question,
		Points:   req.Points,
		Deadline: req.Deadline,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "create bonus question failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toBonusQuestionDTO(question))
}

func (h *Handler) UpdateBonusQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateBonusQuestion")
	defer span.End()

	var req createQuestionRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	question, err := h.bonusService.UpdateQuestion(ctx, r.PathValue("questionID"), usecase.CreateQuestionInput{
		Question: req.Question,
		Points:   req.Points,
		Deadline: req.Deadline,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "update bonus question failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toBonusQuestionDTO(question))
}

func (h *Handler) DeleteBonusQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBonusQuestion")
	defer span.End()

	if err := h.bonusService.DeleteQuestion(ctx, r.PathValue("questionID")); err != nil {
		h.logger.ErrorContext(ctx, "delete bonus question failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) GradeBonusQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GradeBonusQuestion")
	defer span.End()

	var req gradeQuestionRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	question, err := h.bonusService.Grade(ctx, r.PathValue("questionID"), req.CorrectAnswer)
	if err != nil {
		h.logger.ErrorContext(ctx, "grade bonus question failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toBonusQuestionDTO(question))
}

func (h *Handler) SubmitBonusAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitBonusAnswer")
	defer span.End()

	caller, ok := userFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no caller identity", usecase.ErrUnauthorized))
		return
	}

	var req submitAnswerRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	answer, err := h.bonusService.SubmitAnswer(ctx, caller.ID, r.PathValue("questionID"), req.Answer)
	if err != nil {
		h.logger.ErrorContext(ctx, "submit bonus answer failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bonusAnswerDTO{
		QuestionID: answer.QuestionID,
		Answer:     answer.Answer,
	})
}
