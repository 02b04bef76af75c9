package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/usecase"
)

type betDTO struct {
	UserID      string    `json:"userId"`
	Season      int       `json:"season"`
	RaceID      string    `json:"raceId"`
	Session     string    `json:"session"`
	DriverIDs   []string  `json:"driverIds"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type submitBetRequest struct {
	DriverIDs []string `json:"driverIds" validate:"required,min=1"`
}

func toBetDTO(b prediction.UserBet) betDTO {
	return betDTO{
		UserID:      b.UserID,
		Season:      b.Season,
		RaceID:      b.RaceID,
		Session:     string(b.Session),
		DriverIDs:   b.DriverIDs,
		SubmittedAt: b.SubmittedAt,
	}
}

// SubmitBet stores the caller's prediction for one betting window.
func (h *Handler) SubmitBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitBet")
	defer span.End()

	caller, ok := userFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no caller identity", usecase.ErrUnauthorized))
		return
	}

	var req submitBetRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	bet, err := h.betService.Submit(ctx, usecase.SubmitBetInput{
		UserID:    caller.ID,
		RaceID:    r.PathValue("raceID"),
		Session:   race.SessionKind(r.PathValue("session")),
		DriverIDs: req.DriverIDs,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "submit bet failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toBetDTO(bet))
}

// GetMyBet returns the caller's stored prediction for one window.
func (h *Handler) GetMyBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyBet")
	defer span.End()

	caller, ok := userFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no caller identity", usecase.ErrUnauthorized))
		return
	}

	kind, valid := race.ParseSessionKind(r.PathValue("session"))
	if !valid {
		writeError(ctx, w, usecase.ErrInvalidInput)
		return
	}

	bet, exists, err := h.betService.Get(ctx, caller.ID, r.PathValue("raceID"), kind)
	if err != nil {
		h.logger.ErrorContext(ctx, "get bet failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeError(ctx, w, fmt.Errorf("%w: no bet for this window", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toBetDTO(bet))
}
