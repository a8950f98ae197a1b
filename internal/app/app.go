package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/dummyjson"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout     = 10 * time.Second
	forcedCloseTimeout  = 2 * time.Second
	startupPingTimeout  = 5 * time.Second
	sessionSweepPeriod  = 10 * time.Minute
	sessionSweepTimeout = 30 * time.Second
	viewSweepPeriod     = time.Minute
)

// App собирает зависимости витрины и управляет её жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(forcedCloseTimeout),
	}

	if err := a.init(); err != nil {
		if closeErr := a.closer.Close(context.Background()); closeErr != nil {
			logger.Warnf("cleanup after failed start: %v", closeErr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	producer := a.initProducer()

	var redisClient *clients.RedisClient
	if a.cfg.NeedsRedis() {
		client, err := a.initRedis()
		if err != nil {
			return err
		}
		redisClient = client
	}

	var cacheRepo usecase.CacheRepository
	if a.cfg.Catalog.CacheEnabled {
		cacheRepo = redis.NewCacheRepo(redisClient, &redisConv.ProductConverterImpl{}, a.cfg.Redis, a.logger)
		a.logger.Infof("catalog cache enabled")
	}

	sessionRepo, err := a.initSessionRepo(redisClient)
	if err != nil {
		return err
	}

	fetcher := dummyjson.NewClient(a.cfg.Catalog.BaseURL, a.cfg.Catalog.Timeout, a.cfg.Catalog.ListLimit, a.logger)

	catalogUC := usecase.NewCatalogUC(fetcher, cacheRepo, producer, a.logger, a.cfg.Catalog.PageSize)
	views := usecase.NewViewRegistry(catalogUC, a.cfg.Catalog.PageSize, a.cfg.Catalog.DebounceDelay, a.logger)
	a.closer.Add("list views", func(context.Context) error {
		return views.Close()
	})
	a.startSweeper("list view sweeper", viewSweepPeriod, func(context.Context) {
		if n := views.EvictIdle(a.cfg.Catalog.ViewIdleTTL); n > 0 {
			a.logger.Debugf("idle list views evicted: %d", n)
		}
	})
	sessionUC := usecase.NewSessionUC(sessionRepo, views, producer, a.logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(catalogUC, sessionUC, views, v1Http.RouterConfig{
		Cookie: v1Http.CookieConfig{
			Name:   a.cfg.Session.CookieName,
			Secure: a.cfg.Session.CookieSecure,
			TTL:    a.cfg.Session.TTL,
		},
		SwaggerHost:    a.cfg.Http.SwaggerHost,
		RequestTimeout: a.cfg.Http.RequestTimeout,
	})

	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)

	return nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func (a *App) initProducer() usecase.EventProducer {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Infof("KAFKA_BROKERS is empty, storefront events are not published")
		return kafka.NopProducer{}
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(a.cfg.Kafka.TopicTimeout); err != nil {
		a.logger.Warnf("failed to ensure kafka topic: %v", err)
	}
	a.closer.Add("kafka producer", func(context.Context) error {
		return producer.Close()
	})

	return producer
}

func (a *App) initRedis() (*clients.RedisClient, error) {
	redisClient := clients.NewRedisClient(a.cfg.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		_ = redisClient.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("redis", func(context.Context) error {
		return redisClient.Close()
	})

	return redisClient, nil
}

func (a *App) initSessionRepo(redisClient *clients.RedisClient) (usecase.SessionRepository, error) {
	switch a.cfg.Session.Backend {
	case config.SessionBackendMemory:
		a.logger.Warnf("session flags are kept in memory and are lost on restart")
		return memory.NewSessionRepo(), nil

	case config.SessionBackendRedis:
		return redis.NewSessionRepo(redisClient, a.cfg.Session.TTL), nil

	case config.SessionBackendPostgres:
		db, err := initPGDB(a.logger, a.cfg)
		if err != nil {
			return nil, err
		}
		a.closer.Add("postgres", func(context.Context) error {
			db.Close()
			return nil
		})

		repo := pgdb.NewSessionRepo(db.Pool, &pgdbConv.SessionConverterImpl{}, a.cfg.Session.TTL)
		a.startSessionSweeper(repo)

		return repo, nil

	default:
		return nil, e.Wrap(a.cfg.Session.Backend, e.ErrUnknownSessionStore)
	}
}

// startSessionSweeper периодически удаляет истёкшие сессии из PostgreSQL.
func (a *App) startSessionSweeper(repo *pgdb.SessionRepo) {
	a.startSweeper("session sweeper", sessionSweepPeriod, func(ctx context.Context) {
		sweepCtx, cancel := context.WithTimeout(ctx, sessionSweepTimeout)
		defer cancel()

		n, err := repo.DeleteExpired(sweepCtx)
		if err != nil {
			a.logger.Warnf("failed to delete expired sessions: %v", err)
			return
		}
		if n > 0 {
			a.logger.Debugf("expired sessions deleted: %d", n)
		}
	})
}

// startSweeper запускает sweep по тикеру до остановки приложения.
func (a *App) startSweeper(name string, period time.Duration, sweep func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep(ctx)
			}
		}
	}()

	a.closer.Add(name, func(closeCtx context.Context) error {
		cancel()
		select {
		case <-done:
			return nil
		case <-closeCtx.Done():
			return closeCtx.Err()
		}
	})
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(ctx); err != nil {
		logger.Errorf(err, "failed to ping database")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
