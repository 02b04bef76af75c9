package httpapi

import (
	"net/http"

	"github.com/pitlanehq/pitwall/internal/usecase"
)

type driverStandingDTO struct {
	DriverID string `json:"driverId"`
	Season   int    `json:"season"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
	Trend    string `json:"trend"`
}

type teamStandingDTO struct {
	TeamID string `json:"teamId"`
	Season int    `json:"season"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
	Trend  string `json:"trend"`
}

type standingsDTO struct {
	Drivers []driverStandingDTO `json:"drivers"`
	Teams   []teamStandingDTO   `json:"teams"`
}

func toStandingsDTO(s usecase.Standings) standingsDTO {
	drivers := make([]driverStandingDTO, 0, len(s.Drivers))
	for _, row := range s.Drivers {
		drivers = append(drivers, driverStandingDTO{
			DriverID: row.DriverID,
			Season:   row.Season,
			Points:   row.Points,
			Rank:     row.Rank,
			Trend:    string(row.Trend),
		})
	}
	teams := make([]teamStandingDTO, 0, len(s.Teams))
	for _, row := range s.Teams {
		teams = append(teams, teamStandingDTO{
			TeamID: row.TeamID,
			Season: row.Season,
			Points: row.Points,
			Rank:   row.Rank,
			Trend:  string(row.Trend),
		})
	}
	return standingsDTO{Drivers: drivers, Teams: teams}
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	current, err := h.standingsService.Get(ctx, h.season)
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toStandingsDTO(current))
}

// RecomputeStandings forces a full rebuild from stored results. Normally the
// rebuild rides along with every result save; this is the manual escape hatch.
func (h *Handler) RecomputeStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeStandings")
	defer span.End()

	updated, err := h.standingsService.Recompute(ctx, h.season)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toStandingsDTO(updated))
}
