package httpapi

import (
	"net/http"

	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/usecase"
)

type resultEntryDTO struct {
	DriverID string `json:"driverId"`
	TeamID   string `json:"teamId,omitempty"`
	Position string `json:"position"`
	Time     string `json:"time,omitempty"`
	Laps     int    `json:"laps,omitempty"`
	Points   int    `json:"points"`
	Grid     int    `json:"grid,omitempty"`
	Q1       string `json:"q1,omitempty"`
	Q2       string `json:"q2,omitempty"`
	Q3       string `json:"q3,omitempty"`
}

type previewRowDTO struct {
	RawPosition   string         `json:"rawPosition"`
	RawDriverName string         `json:"rawDriverName"`
	RawTeamName   string         `json:"rawTeamName,omitempty"`
	Resolved      bool           `json:"resolved"`
	Entry         resultEntryDTO `json:"entry"`
}

type previewRequest struct {
	Session     string `json:"session" validate:"required"`
	HTML        string `json:"html" validate:"required"`
	DistancePct int    `json:"distancePct"`
}

type saveResultRequest struct {
	Entries     []resultEntryDTO `json:"entries" validate:"required,min=1"`
	DistancePct int              `json:"distancePct"`
}

type sessionResultDTO struct {
	RaceID      string           `json:"raceId"`
	Session     string           `json:"session"`
	DistancePct int              `json:"distancePct"`
	Entries     []resultEntryDTO `json:"entries"`
}

func toEntryDTO(e result.Entry) resultEntryDTO {
	return resultEntryDTO(e)
}

func fromEntryDTO(e resultEntryDTO) result.Entry {
	return result.Entry(e)
}

// PreviewResultTable runs the paste-to-entries pipeline without persisting.
func (h *Handler) PreviewResultTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewResultTable")
	defer span.End()

	var req previewRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	kind, ok := race.ParseSessionKind(req.Session)
	if !ok {
		writeError(ctx, w, usecase.ErrInvalidInput)
		return
	}

	previews, err := h.ingestionService.Preview(ctx, kind, req.HTML, req.DistancePct)
	if err != nil {
		h.logger.ErrorContext(ctx, "preview result table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]previewRowDTO, 0, len(previews))
	for _, p := range previews {
		rows = append(rows, previewRowDTO{
			RawPosition:   p.Row.Pos,
			RawDriverName: p.Row.DriverName,
			RawTeamName:   p.Row.TeamName,
			Resolved:      p.Resolved,
			Entry:         toEntryDTO(p.Entry),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, rows)
}

// SaveSessionResult stores a session classification and returns the standings
// recomputed with it.
func (h *Handler) SaveSessionResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveSessionResult")
	defer span.End()

	var req saveResultRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]result.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, fromEntryDTO(e))
	}

	updated, err := h.resultService.Save(ctx, usecase.SaveSessionResultInput{
		RaceID:      r.PathValue("raceID"),
		Session:     race.SessionKind(r.PathValue("session")),
		Entries:     entries,
		DistancePct: req.DistancePct,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "save session result failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toStandingsDTO(updated))
}

func (h *Handler) GetSessionResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSessionResult")
	defer span.End()

	kind, ok := race.ParseSessionKind(r.PathValue("session"))
	if !ok {
		writeError(ctx, w, usecase.ErrInvalidInput)
		return
	}

	sessionResult, exists, err := h.resultService.Get(ctx, r.PathValue("raceID"), kind)
	if err != nil {
		h.logger.ErrorContext(ctx, "get session result failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeError(ctx, w, usecase.ErrNotFound)
		return
	}

	entries := make([]resultEntryDTO, 0, len(sessionResult.Entries))
	for _, e := range sessionResult.Entries {
		entries = append(entries, toEntryDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, sessionResultDTO{
		RaceID:      sessionResult.RaceID,
		Session:     string(sessionResult.Session),
		DistancePct: int(sessionResult.DistancePct),
		Entries:     entries,
	})
}

func (h *Handler) DeleteSessionResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSessionResult")
	defer span.End()

	kind, ok := race.ParseSessionKind(r.PathValue("session"))
	if !ok {
		writeError(ctx, w, usecase.ErrInvalidInput)
		return
	}

	updated, err := h.resultService.Delete(ctx, r.PathValue("raceID"), kind)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete session result failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toStandingsDTO(updated))
}
