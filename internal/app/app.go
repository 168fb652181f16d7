package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/mlbb-fantasy/api/internal/config"
	"github.com/mlbb-fantasy/api/internal/domain/league"
	"github.com/mlbb-fantasy/api/internal/domain/matchweek"
	"github.com/mlbb-fantasy/api/internal/domain/notification"
	"github.com/mlbb-fantasy/api/internal/domain/player"
	"github.com/mlbb-fantasy/api/internal/domain/roster"
	"github.com/mlbb-fantasy/api/internal/domain/user"
	cacherepo "github.com/mlbb-fantasy/api/internal/infrastructure/repository/cache"
	"github.com/mlbb-fantasy/api/internal/infrastructure/repository/memory"
	"github.com/mlbb-fantasy/api/internal/infrastructure/repository/postgres"
	"github.com/mlbb-fantasy/api/internal/interfaces/httpapi"
	platformcache "github.com/mlbb-fantasy/api/internal/platform/cache"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
	"github.com/mlbb-fantasy/api/internal/usecase"
)

type repositories struct {
	players       player.Repository
	rosters       roster.Repository
	users         user.Repository
	leagues       league.Repository
	matchweeks    matchweek.Repository
	notifications notification.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned cleanup releases the database handle
// when one was opened; callers invoke it after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		repos.players = cacherepo.NewPlayerRepository(repos.players, platformcache.NewStore(cfg.CacheTTL))
	}

	gen := idgen.NewRandomGenerator()

	playerSvc := usecase.NewPlayerService(repos.players, gen, logger)
	rosterSvc := usecase.NewRosterService(repos.players, repos.rosters, gen, logger)
	transferSvc := usecase.NewTransferService(repos.players, repos.rosters, gen, logger)
	leaderboardSvc := usecase.NewLeaderboardService(repos.rosters, repos.users, logger)
	leagueSvc := usecase.NewLeagueService(repos.leagues, gen, logger)
	authSvc := usecase.NewAuthService(repos.users, gen, logger)
	pointsSvc := usecase.NewPointsService(repos.rosters, logger)
	matchweekSvc := usecase.NewMatchweekService(repos.matchweeks, gen)
	notificationSvc := usecase.NewNotificationService(repos.notifications, gen)

	handler := httpapi.NewHandler(
		playerSvc,
		rosterSvc,
		transferSvc,
		leaderboardSvc,
		leagueSvc,
		authSvc,
		pointsSvc,
		matchweekSvc,
		notificationSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("storage backend selected", "backend", "memory")
		return repositories{
			players:       memory.NewPlayerRepository(memory.SeedPlayers()),
			rosters:       memory.NewRosterRepository(),
			users:         memory.NewUserRepository(memory.SeedUsers()),
			leagues:       memory.NewLeagueRepository(),
			matchweeks:    memory.NewMatchweekRepository(memory.SeedMatchweeks()),
			notifications: memory.NewNotificationRepository(),
		}, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	logger.Info("storage backend selected", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		players:       postgres.NewPlayerRepository(db),
		rosters:       postgres.NewRosterRepository(db),
		users:         postgres.NewUserRepository(db),
		leagues:       postgres.NewLeagueRepository(db),
		matchweeks:    postgres.NewMatchweekRepository(db),
		notifications: postgres.NewNotificationRepository(db),
	}, db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
