package main

import (
	"context"
	"flag"
	"os"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/database"
	"github.com/pageza/recipebook/backend/internal/logging"
	"github.com/pageza/recipebook/backend/internal/seed"
)

func main() {
	reset := flag.Bool("reset", false, "Delete all users, recipes and meal plans before seeding")
	adminPassword := flag.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "Password for the admin account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		boot := logging.New(os.Getenv("ENV"), "info")
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logging.New(string(cfg.Env), cfg.LogLevel)

	if *adminPassword == "" {
		log.Fatal().Msg("admin password is required, set -admin-password or SEED_ADMIN_PASSWORD")
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	result, err := seed.Run(context.Background(), db, seed.Options{Reset: *reset, AdminPassword: *adminPassword}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	if !result.Skipped {
		log.Info().
			Str("email", seed.DemoEmail).
			Str("password", seed.DemoPassword).
			Msg("demo credentials")
	}
}
