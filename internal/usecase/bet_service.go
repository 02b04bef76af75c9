package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/driver"
	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

// BetService accepts and stores user predictions. A bet is only writable while
// its window is open; resubmitting replaces the earlier bet wholesale.
type BetService struct {
	betRepo    prediction.BetRepository
	driverRepo driver.Repository
	rounds     *RoundService
	settings   *SettingsService
	season     int
	logger     *logging.Logger
	now        func() time.Time
}

func NewBetService(
	betRepo prediction.BetRepository,
	driverRepo driver.Repository,
	roundService *RoundService,
	settingsService *SettingsService,
	season int,
	logger *logging.Logger,
) *BetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BetService{
		betRepo:    betRepo,
		driverRepo: driverRepo,
		rounds:     roundService,
		settings:   settingsService,
		season:     season,
		logger:     logger,
		now:        time.Now,
	}
}

type SubmitBetInput struct {
	UserID    string
	RaceID    string
	Session   race.SessionKind
	DriverIDs []string
}

// Submit validates and stores one ordered prediction, replacing any earlier
// bet by the same user on the same window.
func (s *BetService) Submit(ctx context.Context, input SubmitBetInput) (prediction.UserBet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Submit")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		return prediction.UserBet{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	kind, ok := race.ParseSessionKind(string(input.Session))
	if !ok {
		return prediction.UserBet{}, fmt.Errorf("%w: unknown session kind %q", ErrInvalidInput, input.Session)
	}

	closed, err := s.rounds.WindowClosed(ctx, input.RaceID, kind)
	if err != nil {
		return prediction.UserBet{}, err
	}
	if closed {
		return prediction.UserBet{}, fmt.Errorf("%w: %s %s", ErrBettingClosed, input.RaceID, kind)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return prediction.UserBet{}, err
	}
	if err := prediction.ValidateBetDrivers(input.DriverIDs, settings.TableFor(kind)); err != nil {
		return prediction.UserBet{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	for _, driverID := range input.DriverIDs {
		if _, exists, err := s.driverRepo.GetByID(ctx, driverID); err != nil {
			return prediction.UserBet{}, fmt.Errorf("get driver %s: %w", driverID, err)
		} else if !exists {
			return prediction.UserBet{}, fmt.Errorf("%w: driver %s", ErrNotFound, driverID)
		}
	}

	bet := prediction.UserBet{
		UserID:      input.UserID,
		Season:      s.season,
		RaceID:      strings.TrimSpace(input.RaceID),
		Session:     kind,
		DriverIDs:   input.DriverIDs,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.betRepo.Upsert(ctx, bet); err != nil {
		return prediction.UserBet{}, fmt.Errorf("upsert bet: %w", err)
	}

	s.logger.InfoContext(ctx, "bet submitted",
		"user_id", bet.UserID,
		"race_id", bet.RaceID,
		"session", string(kind),
		"slots", len(bet.DriverIDs),
	)
	return bet, nil
}

// Get returns one user's stored bet for a window.
func (s *BetService) Get(ctx context.Context, userID, raceID string, kind race.SessionKind) (prediction.UserBet, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	raceID = strings.TrimSpace(raceID)
	if userID == "" || raceID == "" {
		return prediction.UserBet{}, false, fmt.Errorf("%w: user_id and race_id are required", ErrInvalidInput)
	}

	bet, exists, err := s.betRepo.Get(ctx, userID, raceID, kind, s.season)
	if err != nil {
		return prediction.UserBet{}, false, fmt.Errorf("get bet: %w", err)
	}
	return bet, exists, nil
}
