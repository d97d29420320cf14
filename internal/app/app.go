package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/config"
	"github.com/GlebRadaev/storefront/internal/events"
	"github.com/GlebRadaev/storefront/internal/handlers"
	"github.com/GlebRadaev/storefront/internal/idempotency"
	"github.com/GlebRadaev/storefront/internal/pg"
	"github.com/GlebRadaev/storefront/internal/reclaimer"
	"github.com/GlebRadaev/storefront/internal/repo"
	"github.com/GlebRadaev/storefront/internal/service"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/logger"
)

const eventBuffer = 1024

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	reclaimer *reclaimer.Service

	pool       *pgxpool.Pool
	rdb        *redis.Client
	producer   *events.Producer
	stopEvents context.CancelFunc

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh:      make(chan error),
		stopEvents: func() {},
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.pool = pool
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)
	a.repo = repo.New(conn, txManager)

	reference, err := a.repo.ReferenceRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("can't load reference data: %w", err)
	}

	store, err := a.newIdempotencyStore(ctx)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}
	publisher := a.newPublisher()

	secret, err := jwtSecret(cfg)
	if err != nil {
		return fmt.Errorf("can't prepare session secret: %w", err)
	}
	jwtService := auth.NewJWTService(secret)
	authenticator := auth.NewAuthenticator(auth.NewInitDataVerifier(cfg.BotToken, cfg.InitDataMaxAge), jwtService)
	if cfg.BotToken == "" {
		zap.L().Warn("TELEGRAM_BOT_TOKEN is not set, every init data will be rejected")
	}

	a.srv = service.New(a.repo, service.Options{
		Reference:  reference,
		Store:      store,
		Publisher:  publisher,
		JWTService: jwtService,
		HoldTTL:    cfg.HoldTTL,
		SessionTTL: cfg.SessionTTL,
	})
	a.api = handlers.New(a.srv, handlers.Options{
		Authenticator: authenticator,
		MediaDir:      cfg.MediaDir,
		StaticDir:     cfg.StaticDir,
		CORSOrigins:   cfg.CORSOrigins,
	})

	if cfg.ReclaimEnabled() {
		a.reclaimer = reclaimer.New(cfg, a.repo.HoldRepo, publisher)
		a.reclaimer.Start(ctx)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// newIdempotencyStore keeps discount redemptions idempotent across retries.
// Without REDIS_ADDR every request is processed as new.
func (a *Application) newIdempotencyStore(ctx context.Context) (idempotency.Store, error) {
	if a.cfg.RedisAddr == "" {
		zap.L().Info("redis is not configured, idempotency keys are ignored")
		return idempotency.Nop{}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	a.rdb = rdb
	return idempotency.NewRedisStore(rdb, a.cfg.IdempotencyTTL), nil
}

// newPublisher starts the Kafka producer on its own context so that events
// published by in-flight requests are flushed after the server stops.
func (a *Application) newPublisher() events.Publisher {
	if len(a.cfg.KafkaBrokers) == 0 {
		zap.L().Info("kafka is not configured, events are dropped")
		return events.Nop{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.producer = events.NewProducer(a.cfg.KafkaBrokers, a.cfg.KafkaTopic, eventBuffer)
	a.producer.Start(ctx)
	a.stopEvents = cancel
	return a.producer
}

// jwtSecret falls back to a per-process secret, which invalidates every
// session token on restart.
func jwtSecret(cfg *config.Config) (string, error) {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	zap.L().Warn("JWT_SECRET is not set, session tokens will not survive a restart")
	return hex.EncodeToString(buf), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.shutdown()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// shutdown stops background work once no request can publish anymore.
func (a *Application) shutdown() {
	if a.reclaimer != nil {
		a.reclaimer.Wait()
	}
	a.stopEvents()
	if a.producer != nil {
		a.producer.Wait()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			zap.L().Error("failed to close redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	zap.L().Info("background workers stopped")
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
