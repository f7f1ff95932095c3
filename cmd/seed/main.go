package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/internal/catalog"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/config"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/db"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)
	logg.Info(ctx, "seeding catalog")

	// all-or-nothing: a half-seeded catalog is worse than none
	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return catalog.NewRepository(tx).Seed(ctx, logg)
	})
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "seeding complete")
}
