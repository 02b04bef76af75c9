package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	crerr "github.com/cockroachdb/errors"

	"github.com/pitlanehq/pitwall/internal/config"
	"github.com/pitlanehq/pitwall/internal/domain/driver"
	"github.com/pitlanehq/pitwall/internal/domain/identity"
	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/domain/result"
	"github.com/pitlanehq/pitwall/internal/domain/standings"
	"github.com/pitlanehq/pitwall/internal/domain/team"
	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/postgres"
	"github.com/pitlanehq/pitwall/internal/interfaces/httpapi"
	idgen "github.com/pitlanehq/pitwall/internal/platform/id"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
	"github.com/pitlanehq/pitwall/internal/usecase"
)

type repositories struct {
	drivers   driver.Repository
	teams     team.Repository
	races     race.Repository
	users     identity.Repository
	results   result.Repository
	bets      prediction.BetRepository
	rounds    prediction.RoundRepository
	bonus     prediction.BonusRepository
	settings  prediction.SettingsRepository
	standings standings.Repository
	close     func() error
}

// NewHTTPServer assembles the full service. The returned closer releases the
// storage backend and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger, appLogger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if appLogger == nil {
		appLogger = logging.Default()
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	standingsSvc := usecase.NewStandingsService(repos.results, repos.drivers, repos.teams, repos.standings)
	resultSvc := usecase.NewResultService(repos.races, repos.results, standingsSvc, cfg.Season, appLogger)
	roundSvc := usecase.NewRoundService(repos.races, repos.rounds, appLogger)
	settingsSvc := usecase.NewSettingsService(repos.settings, cfg.Season, appLogger)
	betSvc := usecase.NewBetService(repos.bets, repos.drivers, roundSvc, settingsSvc, cfg.Season, appLogger)
	bonusSvc := usecase.NewBonusService(repos.bonus, idgen.NewRandomGenerator(), cfg.Season, appLogger)
	leaderboardSvc := usecase.NewLeaderboardService(repos.users, repos.bets, repos.results, settingsSvc, bonusSvc, cfg.Season, appLogger)
	ingestionSvc := usecase.NewIngestionService(repos.drivers, appLogger)
	referenceSvc := usecase.NewReferenceService(repos.drivers, repos.teams, repos.races)

	if err := settingsSvc.EnsureDefaults(ctx); err != nil {
		_ = repos.close()
		return nil, nil, crerr.Wrap(err, "seed default settings")
	}
	if err := bonusSvc.EnsureSeasonQuestions(ctx); err != nil {
		_ = repos.close()
		return nil, nil, crerr.Wrap(err, "seed season bonus questions")
	}

	handler := httpapi.NewHandler(
		ingestionSvc,
		resultSvc,
		standingsSvc,
		roundSvc,
		betSvc,
		bonusSvc,
		leaderboardSvc,
		settingsSvc,
		referenceSvc,
		cfg.Season,
		logger,
	)
	router := httpapi.NewRouter(handler, repos.users, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = repos.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.UseInMemoryStorage() {
		logger.Info("storage backend selected", "backend", "memory")
		return repositories{
			drivers:   memory.NewDriverRepository(memory.SeedDrivers()),
			teams:     memory.NewTeamRepository(memory.SeedTeams()),
			races:     memory.NewRaceRepository(memory.SeedRaces()),
			users:     memory.NewUserRepository(memory.SeedUsers()),
			results:   memory.NewResultRepository(),
			bets:      memory.NewBetRepository(),
			rounds:    memory.NewRoundRepository(),
			bonus:     memory.NewBonusRepository(),
			settings:  memory.NewSettingsRepository(),
			standings: memory.NewStandingsRepository(),
			close:     func() error { return nil },
		}, nil
	}

	logger.Info("storage backend selected", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, crerr.Wrap(err, "bootstrap seed")
	}

	return repositories{
		drivers:   postgres.NewDriverRepository(db),
		teams:     postgres.NewTeamRepository(db),
		races:     postgres.NewRaceRepository(db),
		users:     postgres.NewUserRepository(db),
		results:   postgres.NewResultRepository(db),
		bets:      postgres.NewBetRepository(db),
		rounds:    postgres.NewRoundRepository(db),
		bonus:     postgres.NewBonusRepository(db),
		settings:  postgres.NewSettingsRepository(db),
		standings: postgres.NewStandingsRepository(db),
		close:     db.Close,
	}, nil
}
