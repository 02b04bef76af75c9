package httpapi

import (
	"net/http"

	"github.com/pitlanehq/pitwall/internal/usecase"
)

type leaderboardEntryDTO struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar,omitempty"`
	Points      int    `json:"points"`
	BetPoints   int    `json:"betPoints"`
	BonusPoints int    `json:"bonusPoints"`
	Wins        int    `json:"wins"`
	Rank        int    `json:"rank"`
}

func toLeaderboardEntryDTO(e usecase.LeaderboardEntry) leaderboardEntryDTO {
	return leaderboardEntryDTO{
		UserID:      e.UserID,
		Username:    e.Username,
		Avatar:      e.Avatar,
		Points:      e.Points,
		BetPoints:   e.BetPoints,
		BonusPoints: e.BonusPoints,
		Wins:        e.Wins,
		Rank:        e.Rank,
	}
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	entries, err := h.leaderboardService.Build(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leaderboardEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLeaderboardEntryDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
