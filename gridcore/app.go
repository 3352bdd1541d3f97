package gridcore

import (
	"context"
	"log/slog"
	"time"

	"github.com/yieldgrid/game-core/gridcore/database"
	"github.com/yieldgrid/game-core/gridcore/database/repositories"
	"github.com/yieldgrid/game-core/gridcore/engine"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// App wires the world engine to its persistence and background loops.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB          *database.DB
	WorldRepo   *repositories.WorldRepository
	StatsRepo   *repositories.StatsRepository
	Engine      *engine.Engine
	Leaderboard *engine.Leaderboard
}

// Setup builds the engine, loading any persisted world snapshot.
func (a *App) Setup(ctx context.Context) error {
	a.WorldRepo = repositories.NewWorldRepository(a.DB.BunDB())
	a.StatsRepo = repositories.NewStatsRepository(a.DB.BunDB())

	reg := registry.New()
	world, err := a.WorldRepo.LoadWorld(ctx)
	if err != nil {
		return err
	}
	for id, c := range world {
		reg.Put(id, c)
	}

	a.Engine = engine.New(reg, a.Cfg.Sim.Seed)

	lb, err := engine.NewLeaderboard(a.Engine)
	if err != nil {
		return err
	}
	a.Leaderboard = lb

	slog.Info("World loaded",
		slog.String("type", "sys"),
		slog.Int("entities", len(world)))
	return nil
}

// SnapshotLoop persists the world and a stats sample on a fixed cadence
// until ctx is cancelled. A final snapshot is written on the way out.
func (a *App) SnapshotLoop(ctx context.Context) error {
	every := time.Duration(a.Cfg.Sim.SnapshotEverySeconds) * time.Second
	if every <= 0 {
		every = 5 * time.Minute
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := a.snapshot(saveCtx)
			cancel()
			if err != nil {
				slog.Error("Final snapshot failed", slog.Any("error", err))
			}
			return ctx.Err()
		case <-ticker.C:
			if err := a.snapshot(ctx); err != nil {
				slog.Error("Snapshot failed", slog.Any("error", err))
			}
		}
	}
}

func (a *App) snapshot(ctx context.Context) error {
	start := time.Now()
	snap := a.Engine.Registry().Snapshot()

	if err := a.WorldRepo.SaveSnapshot(ctx, snap); err != nil {
		return err
	}
	if err := a.StatsRepo.RecordSample(ctx, snap, time.Now()); err != nil {
		return err
	}

	slog.Info("World snapshot saved",
		slog.String("type", "sys"),
		slog.Int("entities", len(snap)),
		slog.Duration("took", time.Since(start)))
	return nil
}
