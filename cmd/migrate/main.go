// Command migrate creates or upgrades the world database schema without
// starting the engine.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/yieldgrid/game-core/gridcore"
	"github.com/yieldgrid/game-core/gridcore/database"
	"github.com/yieldgrid/game-core/gridcore/logger"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := gridcore.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Schema migration failed", "error", err)
		os.Exit(-1)
	}

	slog.Info("Schema migration completed successfully!")
}
