// Package engine dispatches world operations against the component registry.
// Every operation is a single atomic transaction: the systems run on copies
// and the registry commits them together, or not at all. Time is always an
// explicit argument so any sequence of operations replays deterministically.
package engine

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/logger"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

type Engine struct {
	reg *registry.Registry

	// rng drives PriceAction's walk; seeded so simulations replay.
	rngMu sync.Mutex
	rng   *rand.Rand

	idSeq atomic.Uint64
}

func New(reg *registry.Registry, seed uint64) *Engine {
	if reg == nil {
		panic("registry cannot be nil")
	}
	return &Engine{
		reg: reg,
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Registry exposes the underlying store for snapshotting and queries.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// NewEntityID allocates a world-unique entity id: a snowflake timestamp with
// a sequence in the low bits so ids minted within one millisecond stay
// distinct.
func (e *Engine) NewEntityID() game.EntityID {
	base := uint64(snowflake.New(time.Now()))
	seq := e.idSeq.Add(1) & 0x3FFFFF
	return game.EntityID(base | seq)
}

// PriceEntity finds the entity carrying the price record for a currency.
func (e *Engine) PriceEntity(c game.CurrencyType) (game.EntityID, bool) {
	var found game.EntityID
	ok := false
	_ = e.reg.View(func(tx *registry.Tx) error {
		for _, id := range e.reg.PriceEntities() {
			p := tx.Price(id)
			if p.Currency == c && p.Current > 0 {
				found, ok = id, true
				return nil
			}
		}
		return nil
	})
	return found, ok
}

func (e *Engine) done(op string, start time.Time, err error, attrs ...any) {
	logger.LogOperation(op, time.Since(start), err, attrs...)
}
