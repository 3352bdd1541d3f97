package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/logger"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

// PriceTicker drives the market's random walks. Each tick it finds the price
// records whose UpdateFrequency has elapsed and advances them. The walk
// itself stays deterministic: the ticker only decides WHEN an update runs,
// the engine's seeded generator decides the delta.
type PriceTicker struct {
	engine   *Engine
	interval time.Duration
}

func NewPriceTicker(e *Engine, interval time.Duration) *PriceTicker {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &PriceTicker{engine: e, interval: interval}
}

// Run ticks until ctx is cancelled. Per-currency update failures are logged
// and do not stop the ticker.
func (t *PriceTicker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	logger.LogSystem("Price ticker started",
		slog.Duration("interval", t.interval))

	for {
		select {
		case <-ctx.Done():
			logger.LogSystem("Price ticker stopped")
			return ctx.Err()
		case now := <-ticker.C:
			t.tick(ctx, now.Unix())
		}
	}
}

type dueUpdate struct {
	entity   game.EntityID
	currency game.CurrencyType
}

func (t *PriceTicker) tick(ctx context.Context, now int64) {
	due := t.dueAt(now)
	if len(due) == 0 {
		return
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, d := range due {
		g.Go(func() error {
			if err := t.engine.UpdatePrice(d.entity, d.currency, now); err != nil &&
				!errors.Is(err, game.ErrPriceUpdatesDisabled) {
				logger.LogError("Price update failed", err,
					slog.String("currency", d.currency.String()))
			}
			return nil
		})
	}
	_ = g.Wait()
}

// dueAt returns the enabled price records whose update interval has elapsed.
func (t *PriceTicker) dueAt(now int64) []dueUpdate {
	var due []dueUpdate
	reg := t.engine.Registry()
	_ = reg.View(func(tx *registry.Tx) error {
		for _, id := range reg.PriceEntities() {
			p := tx.Price(id)
			if !p.UpdatesEnabled {
				continue
			}
			if now-p.LastUpdateTime >= int64(p.UpdateFrequency) {
				due = append(due, dueUpdate{entity: id, currency: p.Currency})
			}
		}
		return nil
	})
	return due
}
