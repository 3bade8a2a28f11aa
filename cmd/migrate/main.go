package main

import (
	"log/slog"
	"os"

	"profile_backend/internal/config"
	profileadapters "profile_backend/internal/feature/profile/adapters"
	infradb "profile_backend/internal/platform/db"
	"profile_backend/internal/platform/logger"
)

// DB_RUN_MIGRATIONSを有効にせずにスキーマだけを適用するワンショットジョブ
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}
	slog.SetDefault(logger.New(os.Stdout, cfg.Log))

	cfg.DB.RunMigrations = false
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", logger.Err(err))
		os.Exit(1)
	}

	if err := profileadapters.Migrate(db); err != nil {
		slog.Error("failed to migrate", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("migrate ok", "driver", cfg.DB.Driver)
}
