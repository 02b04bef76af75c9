package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/pitlanehq/pitwall/internal/usecase"
)

type Handler struct {
	ingestionService   *usecase.IngestionService
	resultService      *usecase.ResultService
	standingsService   *usecase.StandingsService
	roundService       *usecase.RoundService
	betService         *usecase.BetService
	bonusService       *usecase.BonusService
	leaderboardService *usecase.LeaderboardService
	settingsService    *usecase.SettingsService
	referenceService   *usecase.ReferenceService
	season             int
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	ingestionService *usecase.IngestionService,
	resultService *usecase.ResultService,
	standingsService *usecase.StandingsService,
	roundService *usecase.RoundService,
	betService *usecase.BetService,
	bonusService *usecase.BonusService,
	leaderboardService *usecase.LeaderboardService,
	settingsService *usecase.SettingsService,
	referenceService *usecase.ReferenceService,
	season int,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		ingestionService:   ingestionService,
		resultService:      resultService,
		standingsService:   standingsService,
		roundService:       roundService,
		betService:         betService,
		bonusService:       bonusService,
		leaderboardService: leaderboardService,
		settingsService:    settingsService,
		referenceService:   referenceService,
		season:             season,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody unmarshals and validates a request payload in one step. Returned
// errors are already wrapped for mapError.
func (h *Handler) decodeBody(r *http.Request, dst any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err)
	}
	return nil
}
