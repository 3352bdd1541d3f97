package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yieldgrid/game-core/gridcore"
	"github.com/yieldgrid/game-core/gridcore/config"
	"github.com/yieldgrid/game-core/gridcore/database"
	"github.com/yieldgrid/game-core/gridcore/engine"
	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting YieldGrid world engine",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldBootstrap := flag.Bool("bootstrap", false, "Whether to seed currency prices on an empty world")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := gridcore.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	dbConfig := database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	}

	db, err := database.New(ctx, dbConfig)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	app := gridcore.New(*cfg, version, commit)
	app.DB = db

	if err := app.Setup(ctx); err != nil {
		slog.Error("Failed to set up world engine", slog.Any("error", err))
		os.Exit(-1)
	}

	if *shouldBootstrap {
		if err := bootstrapPrices(app.Engine); err != nil {
			slog.Error("Failed to bootstrap currency prices", slog.Any("error", err))
			os.Exit(-1)
		}
		slog.Info("Currency prices bootstrapped")
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tickInterval := time.Duration(cfg.Sim.TickIntervalSeconds) * time.Second
	ticker := engine.NewPriceTicker(app.Engine, tickInterval)

	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error { return ticker.Run(gCtx) })
	g.Go(func() error { return app.SnapshotLoop(gCtx) })

	slog.Info("World engine is running. Press CTRL-C to exit.")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("World engine stopped with error", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Shutting down world engine...")
}

// bootstrapPrices seeds price records for the five currencies when the world
// has none, so exchanges work from the first tick.
func bootstrapPrices(e *engine.Engine) error {
	now := time.Now().Unix()

	defaults := []struct {
		currency game.CurrencyType
		price    uint64
	}{
		{game.CurrencyUSDC, config.DefaultUSDCPrice},
		{game.CurrencyBTC, config.DefaultBTCPrice},
		{game.CurrencyETH, config.DefaultETHPrice},
		{game.CurrencySOL, config.DefaultSOLPrice},
		{game.CurrencyAiFi, config.DefaultAiFiPrice},
	}

	for _, d := range defaults {
		if _, ok := e.PriceEntity(d.currency); ok {
			continue
		}
		id := e.NewEntityID()
		err := e.InitializePrice(id, d.currency, d.price,
			d.price/config.DefaultMinPriceDivisor,
			d.price*config.DefaultMaxPriceMultiplier,
			config.DefaultVolatilityBps,
			config.DefaultUpdateInterval,
			now)
		if err != nil {
			return err
		}
		if err := e.EnablePrice(id, d.currency, now); err != nil {
			return err
		}
	}
	return nil
}
