// Package app wires configuration, storage, services and the HTTP router.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/api"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/api/handler"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/service"
	mongodb "github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/db/mongo"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/db/postgres"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/db/postgres/migrations"
	redisdb "github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/db/redis"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/config"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/queue"
)

const tokenTTL = 24 * time.Hour

// App holds the long-lived dependencies of the server process.
type App struct {
	Router *echo.Echo

	pool   *pgxpool.Pool
	mongo  *mongo.Client
	redis  *goredis.Client
	warmer *queue.Warmer
	cancel context.CancelFunc
	log    zerolog.Logger
}

// New connects to every backing store, applies migrations, starts the cache
// warmer and builds the router. Stores opened before a failure are closed.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (_ *App, err error) {
	a := &App{log: log}
	defer func() {
		if err != nil {
			a.Shutdown(context.Background())
		}
	}()

	a.pool, err = postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN(), MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		return nil, err
	}
	log.Info().Msg("postgres connection pool established")

	if _, err = migrations.Run(ctx, a.pool, log.With().Str("component", "migrations").Logger()); err != nil {
		return nil, fmt.Errorf("app: run migrations: %w", err)
	}

	var mdb *mongo.Database
	a.mongo, mdb, err = mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	a.redis, err = redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Repositories ---
	packageRepo := postgres.NewPackageRepository(a.pool)
	contactRepo := postgres.NewContactRepository(a.pool)
	authRepo := mongodb.NewAuthRepository(mdb)
	eventRepo := mongodb.NewEventRepository(mdb)
	for _, ix := range []interface{ EnsureIndexes(context.Context) error }{authRepo, eventRepo} {
		if err = ix.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("app: ensure mongo indexes: %w", err)
		}
	}
	idempotency := redisdb.NewIdempotencyStore(a.redis, cfg.Redis.IdempotencyTTL)

	// --- Geocoding ---
	resolver := NewResolver(cfg.Geocoder, log)
	a.warmer = queue.NewWarmer(cfg.Warmer.Workers, cfg.Warmer.QueueSize, resolver, log)
	warmCtx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.warmer.Start(warmCtx)

	// --- Services ---
	a.Router = api.NewRouter(api.Dependencies{
		Auth:     service.NewAuthService(authRepo, cfg.JWTSecret, tokenTTL, log),
		Packages: service.NewPackageService(packageRepo, eventRepo, resolver, a.warmer, idempotency, log),
		Tracking: service.NewTrackingService(packageRepo, resolver, log),
		Contact:  service.NewContactService(contactRepo, log),
		Resolver: resolver,
		Readiness: []handler.DependencyCheck{
			{Name: "postgres", Ping: a.pool.Ping},
			{Name: "mongodb", Ping: func(ctx context.Context) error { return a.mongo.Ping(ctx, readpref.Primary()) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return a.redis.Ping(ctx).Err() }},
		},
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})
	return a, nil
}

// Shutdown stops the warmer and closes every open connection.
func (a *App) Shutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
		a.warmer.Wait()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
