package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/checkout"
	"github.com/D1yWeb/S2C/internal/config"
	"github.com/D1yWeb/S2C/internal/handlers"
	"github.com/D1yWeb/S2C/internal/lock"
	"github.com/D1yWeb/S2C/internal/pg"
	"github.com/D1yWeb/S2C/internal/repo"
	"github.com/D1yWeb/S2C/internal/scheduler"
	"github.com/D1yWeb/S2C/internal/service"
	"github.com/D1yWeb/S2C/internal/tracker"
	"github.com/D1yWeb/S2C/pkg/clients"
	"github.com/D1yWeb/S2C/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	pool    *pgxpool.Pool
	redis   *redis.Client
	tracker *tracker.Tracker
	sched   *scheduler.Scheduler

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
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
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool

	var locker lock.Locker = lock.NewLocalLocker()
	if cfg.RedisAddress != "" {
		a.redis, err = getRedis(ctx, cfg)
		if err != nil {
			zap.L().Error("redis connection failed: ", zap.Error(err))
			return fmt.Errorf("can't connect to redis: %w", err)
		}
		locker = lock.NewRedisLocker(a.redis)
	} else {
		zap.L().Warn("REDIS_ADDRESS is empty, using in-process locks and rate limits")
	}

	trackLimiter, err := handlers.NewRateLimiter(cfg.TrackRateLimit, a.redis)
	if err != nil {
		return fmt.Errorf("can't build rate limiter: %w", err)
	}

	a.repo = repo.New(pg.New(pool))
	checkoutClient := checkout.New(cfg.CheckoutAPIURL, cfg.CheckoutToken, clients.NewHTTPClient())
	a.srv = service.New(a.repo, pg.NewTXManager(pool), checkoutClient, cfg)
	a.tracker = tracker.New(a.srv.AffiliateService, cfg.TrackerWorkers, cfg.TrackerQueue)
	a.api = handlers.New(a.srv, a.tracker, trackLimiter, cfg.WebhookSecret)
	a.sched = scheduler.New(a.srv.ProjectService, a.srv.AffiliateService, locker, scheduler.Options{
		CleanupHourUTC:    cfg.CleanupHourUTC,
		ReconcileInterval: cfg.ReconcileInterval,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startScheduler(ctx)

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

func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
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

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.closeResources()
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

func (a *Application) startScheduler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.sched.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("scheduler exited with error: %w", err)
		}
	}()
}

// closeResources runs after the HTTP server stopped taking requests, so no
// new clicks reach the tracker.
func (a *Application) closeResources() {
	if a.tracker != nil {
		a.tracker.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Error("redis close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
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
