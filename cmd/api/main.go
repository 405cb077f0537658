package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/api"
	"github.com/pageza/recipebook/backend/internal/database"
	"github.com/pageza/recipebook/backend/internal/logging"
	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/router"
	"github.com/pageza/recipebook/backend/internal/server"
	"github.com/pageza/recipebook/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		boot := logging.New(os.Getenv("ENV"), "info")
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logging.New(string(cfg.Env), cfg.LogLevel)

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	redisClient := connectRedis(cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	gate := service.NewGate(db)
	services := api.Services{
		DB:            db,
		Redis:         redisClient,
		Auth:          service.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiry, log),
		Recipes:       service.NewRecipeService(db, gate, log),
		Users:         service.NewUserService(db, log),
		MealPlans:     service.NewMealPlanService(db, gate, log),
		CreateLimiter: middleware.NewCreationRateLimiter(redisClient, cfg.CreateRateLimit, cfg.CreateRateWindow, log),
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("image uploads disabled")
	case s3Config == nil:
		log.Info().Msg("no S3 bucket configured, image uploads disabled")
	default:
		services.Images = service.NewImageService(s3Config, log)
	}

	srv := server.New(cfg, router.SetupRouter(cfg, log, services), log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Error().Err(err).Msg("server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
	log.Info().Msg("server stopped")
}

// connectRedis returns nil when redis is not configured or unreachable.
// Rate limiting is skipped in that case.
func connectRedis(cfg *config.Config, log zerolog.Logger) *redis.Client {
	if cfg.RedisURL == "" && cfg.RedisHost == "" {
		log.Info().Msg("redis not configured, rate limiting disabled")
		return nil
	}
	client, err := database.NewRedisClient(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		return nil
	}
	return client
}
