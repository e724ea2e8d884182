package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/precify/pricing-api/internal/api"
	"github.com/precify/pricing-api/internal/api/metrics"
	"github.com/precify/pricing-api/internal/core/service"
	mongodb "github.com/precify/pricing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/precify/pricing-api/internal/infrastructure/db/redis"
	"github.com/precify/pricing-api/internal/pkg/config"
	"github.com/precify/pricing-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if cfg.UsesDevSecret() {
		logg.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}

	// --- Durable store ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	// --- Redis (optional, login rate limiting + readiness) ---
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			logg.Warn().Err(err).Msg("redis unavailable, login rate limiting disabled")
			rdb = nil
		}
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// The unique username index backs every uniqueness guarantee in the
	// auth subsystem; refusing to start without it is the safe choice.
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("ensuring mongo indexes failed")
	}

	// --- Default admin bootstrap, before the listener starts ---
	created, err := service.EnsureAdmin(ctx, userRepo, service.NewPasswordHasher(), logg)
	switch {
	case err != nil:
		metrics.BootstrapRunsTotal.WithLabelValues("failed").Inc()
		if cfg.BootstrapRequired {
			logg.Fatal().Err(err).Msg("default admin bootstrap failed")
		}
		logg.Error().Err(err).Msg("default admin bootstrap failed, starting anyway")
	case created:
		metrics.BootstrapRunsTotal.WithLabelValues("created").Inc()
	default:
		metrics.BootstrapRunsTotal.WithLabelValues("present").Inc()
	}

	e := api.NewRouter(db, rdb, cfg, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
