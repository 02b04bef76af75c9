package httpapi

import (
	"net/http"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
)

type settingsDTO struct {
	Season             int   `json:"season"`
	RacePoints         []int `json:"racePoints"`
	QualiPoints        []int `json:"qualiPoints"`
	ParticipationPoint int   `json:"participationPoint"`
}

type updateSettingsRequest struct {
	RacePoints         []int `json:"racePoints" validate:"required,min=1"`
	QualiPoints        []int `json:"qualiPoints" validate:"required,min=1"`
	ParticipationPoint int   `json:"participationPoint" validate:"gte=0"`
}

func toSettingsDTO(s prediction.Settings) settingsDTO {
	return settingsDTO{
		Season:             s.Season,
		RacePoints:         s.RacePoints,
		QualiPoints:        s.QualiPoints,
		ParticipationPoint: s.ParticipationPoint,
	}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSettings")
	defer span.End()

	settings, err := h.settingsService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSettingsDTO(settings))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSettings")
	defer span.End()

	var req updateSettingsRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.settingsService.Update(ctx, prediction.Settings{
		RacePoints:         req.RacePoints,
		QualiPoints:        req.QualiPoints,
		ParticipationPoint: req.ParticipationPoint,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "update settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSettingsDTO(updated))
}
