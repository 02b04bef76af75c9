package httpapi

import (
	"net/http"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
	"github.com/pitlanehq/pitwall/internal/domain/race"
)

type driverDTO struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	FullName   string  `json:"fullName"`
	RaceNumber int     `json:"raceNumber"`
	TeamID     *string `json:"teamId,omitempty"`
	Slug       string  `json:"slug"`
}

type teamDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type raceSessionDTO struct {
	Kind  string    `json:"kind"`
	Start time.Time `json:"start"`
}

type raceDTO struct {
	ID          string           `json:"id"`
	Round       int              `json:"round"`
	Country     string           `json:"country"`
	City        string           `json:"city"`
	CircuitName string           `json:"circuitName"`
	Format      string           `json:"format"`
	Sessions    []raceSessionDTO `json:"sessions"`
}

func toDriverDTO(d driver.Driver) driverDTO {
	return driverDTO{
		ID:         d.ID,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		FullName:   d.FullName(),
		RaceNumber: d.RaceNumber,
		TeamID:     d.TeamID,
		Slug:       d.Slug,
	}
}

// Sessions come out in weekend order, skipping kinds the weekend does not
// schedule.
func toRaceDTO(rc race.Race) raceDTO {
	sessions := make([]raceSessionDTO, 0, len(rc.Sessions))
	for _, kind := range rc.SessionKinds() {
		start, ok := rc.SessionStart(kind)
		if !ok {
			continue
		}
		sessions = append(sessions, raceSessionDTO{Kind: string(kind), Start: start})
	}
	return raceDTO{
		ID:          rc.ID,
		Round:       rc.Round,
		Country:     rc.Country,
		City:        rc.City,
		CircuitName: rc.CircuitName,
		Format:      string(rc.Format),
		Sessions:    sessions,
	}
}

func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDrivers")
	defer span.End()

	drivers, err := h.referenceService.ListDrivers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list drivers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]driverDTO, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, toDriverDTO(d))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.referenceService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamDTO{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListRaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRaces")
	defer span.End()

	races, err := h.referenceService.ListRaces(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list races failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]raceDTO, 0, len(races))
	for _, rc := range races {
		out = append(out, toRaceDTO(rc))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetRace(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRace")
	defer span.End()

	rc, err := h.referenceService.GetRace(ctx, r.PathValue("raceID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "get race failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRaceDTO(rc))
}
