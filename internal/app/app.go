package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/dajarony/club-deportivo-quito/internal/config"
	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
	"github.com/dajarony/club-deportivo-quito/internal/domain/newsletter"
	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/account/clubauth"
	repocache "github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/cache"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/memory"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/repository/postgres"
	"github.com/dajarony/club-deportivo-quito/internal/infrastructure/storage"
	"github.com/dajarony/club-deportivo-quito/internal/interfaces/httpapi"
	"github.com/dajarony/club-deportivo-quito/internal/platform/cache"
	idgen "github.com/dajarony/club-deportivo-quito/internal/platform/id"
	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/platform/resilience"
	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

type repositories struct {
	matches       match.Repository
	news          news.Repository
	players       player.Repository
	sponsors      sponsor.Repository
	subscriptions newsletter.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
		repos.matches = repocache.NewMatchRepository(repos.matches, store)
		repos.news = repocache.NewNewsRepository(repos.news, store)
		repos.players = repocache.NewPlayerRepository(repos.players, store)
	}

	uploads, err := storage.NewLocalStore(cfg.UploadDir, int64(cfg.UploadMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("open upload store: %w", err)
	}

	idGen := idgen.NewRandomGenerator()
	matchSvc := usecase.NewMatchService(repos.matches, idGen)
	newsSvc := usecase.NewNewsService(repos.news, uploads, idGen, logger)
	playerSvc := usecase.NewPlayerService(repos.players, idGen)
	sponsorSvc := usecase.NewSponsorService(repos.sponsors, store, idGen)
	newsletterSvc := usecase.NewNewsletterService(repos.subscriptions, idGen)
	maintenanceSvc := usecase.NewMaintenanceService(repos.news, sponsorSvc, uploads, logger)

	authClient := clubauth.NewClient(
		&http.Client{Timeout: cfg.ClubAuthTimeout},
		cfg.ClubAuthBaseURL,
		cfg.ClubAuthIntrospectPath,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.ClubAuthCircuitEnabled,
			FailureThreshold: cfg.ClubAuthCircuitFailureCount,
			OpenTimeout:      cfg.ClubAuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ClubAuthCircuitHalfOpenMax,
		},
		store,
		logger,
	)

	handler := httpapi.NewHandler(
		matchSvc,
		newsSvc,
		playerSvc,
		sponsorSvc,
		newsletterSvc,
		maintenanceSvc,
		logger,
		cfg.IncludeErrorDetail(),
	)
	if db != nil {
		handler.SetReadinessCheck(func(ctx context.Context) error {
			return db.PingContext(ctx)
		})
	}

	router := httpapi.NewRouter(handler, authClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken, uploads.Dir())

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

// buildRepositories wires postgres when DB_URL is set and falls back to
// the seeded in-memory repositories otherwise.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("database url not configured, using in-memory repositories")
		return repositories{
			matches:       memory.NewMatchRepository(memory.SeedMatches()),
			news:          memory.NewNewsRepository(memory.SeedNews()),
			players:       memory.NewPlayerRepository(memory.SeedPlayers()),
			sponsors:      memory.NewSponsorRepository(memory.SeedSponsors()),
			subscriptions: memory.NewNewsletterRepository(),
		}, nil, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(dsn))

	if cfg.DBBootstrapSeed {
		if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		logger.Info("bootstrap seed applied")
	}

	return repositories{
		matches:       postgres.NewMatchRepository(db),
		news:          postgres.NewNewsRepository(db),
		players:       postgres.NewPlayerRepository(db),
		sponsors:      postgres.NewSponsorRepository(db),
		subscriptions: postgres.NewNewsletterRepository(db),
	}, db, nil
}
