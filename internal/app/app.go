package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/intramural/tournament-api/internal/config"
	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/participation"
	"github.com/intramural/tournament-api/internal/domain/result"
	"github.com/intramural/tournament-api/internal/domain/sport"
	"github.com/intramural/tournament-api/internal/domain/team"
	"github.com/intramural/tournament-api/internal/infrastructure/repository/memory"
	"github.com/intramural/tournament-api/internal/infrastructure/repository/postgres"
	"github.com/intramural/tournament-api/internal/interfaces/httpapi"
	"github.com/intramural/tournament-api/internal/platform/cache"
	"github.com/intramural/tournament-api/internal/usecase"
)

type repositories struct {
	teams          team.Repository
	participants   participant.Repository
	sports         sport.Repository
	participations participation.Repository
	results        result.Repository
	close          func() error
}

// NewHTTPServer wires repositories, services and the HTTP router into
// a ready-to-run server. The returned cleanup releases storage
// resources and must be called after the server stops.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var rankingCache *cache.Store
	if cfg.RankingCacheEnabled {
		rankingCache = cache.NewStore(cfg.RankingCacheTTL)
	}

	teamSvc := usecase.NewTeamService(repos.teams, repos.participants, rankingCache)
	participantSvc := usecase.NewParticipantService(repos.participants, repos.teams)
	sportSvc := usecase.NewSportService(repos.sports)
	participationSvc := usecase.NewParticipationService(
		repos.participations,
		repos.participants,
		repos.sports,
		cfg.BulkWorkerCount,
	)
	resultSvc := usecase.NewResultService(repos.results, repos.teams, repos.sports, rankingCache)
	rankingSvc := usecase.NewRankingService(repos.teams, repos.results, rankingCache)

	handler := httpapi.NewHandler(
		teamSvc,
		participantSvc,
		sportSvc,
		participationSvc,
		resultSvc,
		rankingSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

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

func newRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		logger.Info("storage configured", "driver", config.StorageDriverMemory)
		return repositories{
			teams:          memory.NewTeamRepository(store),
			participants:   memory.NewParticipantRepository(store),
			sports:         memory.NewSportRepository(store),
			participations: memory.NewParticipationRepository(store),
			results:        memory.NewResultRepository(store),
			close:          func() error { return nil },
		}, nil
	case config.StorageDriverPostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("storage configured",
			"driver", config.StorageDriverPostgres,
			"database", dbNameFromURL(cfg.DBURL),
		)
		return repositories{
			teams:          postgres.NewTeamRepository(db),
			participants:   postgres.NewParticipantRepository(db),
			sports:         postgres.NewSportRepository(db),
			participations: postgres.NewParticipationRepository(db),
			results:        postgres.NewResultRepository(db),
			close:          db.Close,
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}
