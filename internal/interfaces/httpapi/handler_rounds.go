package httpapi

import (
	"net/http"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/usecase"
)

type roundWindowDTO struct {
	RaceID   string    `json:"raceId"`
	Session  string    `json:"session"`
	Status   string    `json:"status"`
	Manual   bool      `json:"manual"`
	Deadline time.Time `json:"deadline"`
	Closed   bool      `json:"closed"`
}

type setRoundStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func toRoundWindowDTO(w usecase.RoundWindow) roundWindowDTO {
	return roundWindowDTO{
		RaceID:   w.RaceID,
		Session:  string(w.Session),
		Status:   string(w.Status),
		Manual:   w.Manual,
		Deadline: w.Deadline,
		Closed:   w.Closed,
	}
}

func (h *Handler) GetRoundWindow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundWindow")
	defer span.End()

	window, err := h.roundService.Window(ctx, r.PathValue("raceID"), race.SessionKind(r.PathValue("session")))
	if err != nil {
		h.logger.ErrorContext(ctx, "get round window failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRoundWindowDTO(window))
}

func (h *Handler) SetRoundStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetRoundStatus")
	defer span.End()

	var req setRoundStatusRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	raceID := r.PathValue("raceID")
	kind := race.SessionKind(r.PathValue("session"))
	if err := h.roundService.SetStatus(ctx, raceID, kind, prediction.RoundStatus(req.Status)); err != nil {
		h.logger.ErrorContext(ctx, "set round status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, err := h.roundService.Window(ctx, raceID, kind)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toRoundWindowDTO(window))
}

func (h *Handler) ClearRoundStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearRoundStatus")
	defer span.End()

	raceID := r.PathValue("raceID")
	kind := race.SessionKind(r.PathValue("session"))
	if err := h.roundService.ClearStatus(ctx, raceID, kind); err != nil {
		h.logger.ErrorContext(ctx, "clear round status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, err := h.roundService.Window(ctx, raceID, kind)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toRoundWindowDTO(window))
}
