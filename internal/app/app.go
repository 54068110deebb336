package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/mrftt12/Pickem/external/espn"
	"github.com/mrftt12/Pickem/internal/config"
	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/notification"
	"github.com/mrftt12/Pickem/internal/domain/payment"
	"github.com/mrftt12/Pickem/internal/domain/pick"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
	repocache "github.com/mrftt12/Pickem/internal/infrastructure/repository/cache"
	"github.com/mrftt12/Pickem/internal/infrastructure/repository/memory"
	"github.com/mrftt12/Pickem/internal/infrastructure/repository/postgres"
	"github.com/mrftt12/Pickem/internal/interfaces/httpapi"
	basecache "github.com/mrftt12/Pickem/internal/platform/cache"
	"github.com/mrftt12/Pickem/internal/platform/logging"
	"github.com/mrftt12/Pickem/internal/platform/resilience"
	"github.com/mrftt12/Pickem/internal/usecase"
)

// repositories bundles every persistence port the services need, so the
// postgres and in-memory wiring stay interchangeable.
type repositories struct {
	seasons       season.Repository
	weeks         week.Repository
	matchups      matchup.Repository
	picks         pick.Repository
	payments      payment.Repository
	boards        leaderboard.Repository
	notifications notification.Repository
}

// NewHTTPServer wires repositories, services, and the HTTP router into a
// ready-to-run server. When DB_URL is set the service runs against Postgres;
// otherwise it falls back to seeded in-memory repositories for local work.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.seasons = repocache.NewSeasonRepository(repos.seasons, store)
		repos.weeks = repocache.NewWeekRepository(repos.weeks, store)
		repos.matchups = repocache.NewMatchupRepository(repos.matchups, store)
	}

	var provider usecase.ScoreProvider
	if cfg.ESPNEnabled {
		provider = espn.NewClient(espn.ClientConfig{
			BaseURL:    cfg.ESPNBaseURL,
			Timeout:    cfg.ESPNTimeout,
			MaxRetries: cfg.ESPNMaxRetries,
			Logger:     logging.Default(),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ESPNCircuitEnabled,
				FailureThreshold: cfg.ESPNCircuitFailureCount,
				OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
			},
		})
	}

	prizeSvc := usecase.NewPrizeService(repos.payments, repos.boards, repos.notifications, logger)
	scoringSvc := usecase.NewScoringService(repos.weeks, repos.matchups, repos.picks, repos.boards, prizeSvc)
	matchupSvc := usecase.NewMatchupService(repos.matchups, repos.weeks, scoringSvc, logger)

	handler := httpapi.NewHandler(
		usecase.NewSeasonService(repos.seasons, repos.weeks, repos.boards),
		usecase.NewWeekService(repos.weeks, repos.seasons),
		matchupSvc,
		usecase.NewPickService(repos.picks, repos.matchups, repos.weeks),
		usecase.NewPaymentService(repos.payments, repos.weeks, cfg.EntryFeeCents),
		usecase.NewLeaderboardService(repos.boards, repos.weeks, repos.seasons),
		scoringSvc,
		usecase.NewScoreSyncService(provider, cfg.ESPNEnabled, repos.weeks, repos.seasons, matchupSvc, logger),
		usecase.NewJobService(repos.seasons, repos.weeks, scoringSvc, cfg.JobMaxWorkers),
		logger,
	)

	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Warn("DB_URL is empty, using in-memory repositories with seed data")
		return repositories{
			seasons:       memory.NewSeasonRepository(memory.SeedSeasons()),
			weeks:         memory.NewWeekRepository(memory.SeedWeeks()),
			matchups:      memory.NewMatchupRepository(memory.SeedMatchups()),
			picks:         memory.NewPickRepository(nil),
			payments:      memory.NewPaymentRepository(nil),
			boards:        memory.NewLeaderboardRepository(),
			notifications: memory.NewNotificationRepository(),
		}, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect to database: %w", err)
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		return repositories{}, fmt.Errorf("bootstrap seed data: %w", err)
	}

	return repositories{
		seasons:       postgres.NewSeasonRepository(db),
		weeks:         postgres.NewWeekRepository(db),
		matchups:      postgres.NewMatchupRepository(db),
		picks:         postgres.NewPickRepository(db),
		payments:      postgres.NewPaymentRepository(db),
		boards:        postgres.NewLeaderboardRepository(db),
		notifications: postgres.NewNotificationRepository(db),
	}, nil
}
