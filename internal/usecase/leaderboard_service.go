package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pitlanehq/pitwall/internal/domain/identity"
	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
	"github.com/pitlanehq/pitwall/internal/platform/resilience"
)

const leaderboardWorkerCount = 8

// LeaderboardEntry is one ranked row of the prediction game table.
type LeaderboardEntry struct {
	UserID      string
	Username    string
	Avatar      string
	Points      int
	BetPoints   int
	BonusPoints int
	Wins        int
	Rank        int
}

// LeaderboardService ranks players by their accumulated bet and bonus points.
// Scoring always runs against current results and settings, so regraded bonus
// questions and corrected session results reprice the table on the next read.
type LeaderboardService struct {
	userRepo   identity.Repository
	betRepo    prediction.BetRepository
	resultRepo result.Repository
	settings   *SettingsService
	bonus      *BonusService
	season     int
	logger     *logging.Logger
	flight     resilience.SingleFlight
}

func NewLeaderboardService(
	userRepo identity.Repository,
	betRepo prediction.BetRepository,
	resultRepo result.Repository,
	settingsService *SettingsService,
	bonusService *BonusService,
	season int,
	logger *logging.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderboardService{
		userRepo:   userRepo,
		betRepo:    betRepo,
		resultRepo: resultRepo,
		settings:   settingsService,
		bonus:      bonusService,
		season:     season,
		logger:     logger,
	}
}

type windowKey struct {
	raceID  string
	session race.SessionKind
}

type userScore struct {
	userID      string
	betPoints   int
	bonusPoints int
	// window scores feed the cross-user win comparison after all workers
	// finish.
	perWindow map[windowKey]int
	err       error
}

// Build computes the full ranked leaderboard. Concurrent callers share one
// computation.
func (s *LeaderboardService) Build(ctx context.Context) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Build")
	defer span.End()

	value, err, _ := s.flight.Do(fmt.Sprintf("leaderboard:%d", s.season), func() (any, error) {
		return s.buildOnce(ctx)
	})
	if err != nil {
		return nil, err
	}
	entries, _ := value.([]LeaderboardEntry)
	return entries, nil
}

func (s *LeaderboardService) buildOnce(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	bets, err := s.betRepo.ListBySeason(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	betsByUser := make(map[string][]prediction.UserBet, len(users))
	windows := make(map[windowKey]struct{})
	for _, bet := range bets {
		betsByUser[bet.UserID] = append(betsByUser[bet.UserID], bet)
		windows[windowKey{raceID: bet.RaceID, session: bet.Session}] = struct{}{}
	}

	resultsByWindow := make(map[windowKey]result.SessionResult, len(windows))
	for key := range windows {
		sessionResult, exists, err := s.resultRepo.Get(ctx, key.raceID, key.session)
		if err != nil {
			return nil, fmt.Errorf("get result %s/%s: %w", key.raceID, key.session, err)
		}
		if exists {
			resultsByWindow[key] = sessionResult
		}
	}

	scores := make(chan userScore, len(users))

	pool, err := ants.NewPool(leaderboardWorkerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, user := range users {
		user := user
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			scores <- s.scoreUser(ctx, user.ID, betsByUser[user.ID], resultsByWindow, settings)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit user to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(scores)

	scored := make(map[string]userScore, len(users))
	for row := range scores {
		if row.err != nil {
			return nil, row.err
		}
		scored[row.userID] = row
	}

	// A session win needs a strictly positive best score; windows nobody
	// scored on produce no winner.
	bestPerWindow := make(map[windowKey]int, len(resultsByWindow))
	for _, row := range scored {
		for key, points := range row.perWindow {
			if points > bestPerWindow[key] {
				bestPerWindow[key] = points
			}
		}
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		row := scored[user.ID]
		wins := 0
		for key, points := range row.perWindow {
			if best := bestPerWindow[key]; best > 0 && points == best {
				wins++
			}
		}
		entries = append(entries, LeaderboardEntry{
			UserID:      user.ID,
			Username:    user.Username,
			Avatar:      user.Avatar,
			Points:      row.betPoints + row.bonusPoints,
			BetPoints:   row.betPoints,
			BonusPoints: row.bonusPoints,
			Wins:        wins,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Wins > entries[j].Wins
	})
	for idx := range entries {
		entries[idx].Rank = idx + 1
	}

	s.logger.InfoContext(ctx, "leaderboard built",
		"season", s.season,
		"players", len(entries),
		"windows", len(resultsByWindow),
	)
	return entries, nil
}

func (s *LeaderboardService) scoreUser(
	ctx context.Context,
	userID string,
	bets []prediction.UserBet,
	resultsByWindow map[windowKey]result.SessionResult,
	settings prediction.Settings,
) userScore {
	row := userScore{userID: userID, perWindow: make(map[windowKey]int, len(bets))}

	for _, bet := range bets {
		key := windowKey{raceID: bet.RaceID, session: bet.Session}
		sessionResult, exists := resultsByWindow[key]
		if !exists {
			continue
		}
		points := prediction.ScoreBet(bet, sessionResult, settings)
		row.perWindow[key] = points
		row.betPoints += points
	}

	bonusPoints, err := s.bonus.UserPoints(ctx, userID)
	if err != nil {
		row.err = fmt.Errorf("bonus points for %s: %w", userID, err)
		return row
	}
	row.bonusPoints = bonusPoints
	return row
}
