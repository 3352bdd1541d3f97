package engine

import (
	"log/slog"
	"time"

	"github.com/yieldgrid/game-core/gridcore/economy"
	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

// Fund credits bootstrap funds into a wallet.
func (e *Engine) Fund(wallet game.EntityID, c game.CurrencyType, amount uint64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.Fund(tx.Wallet(wallet), c, amount)
	})
	e.done("fund", start, err,
		slog.Uint64("entity", uint64(wallet)),
		slog.String("currency", c.String()),
		slog.Uint64("amount", amount))
	return err
}

// Transfer moves currency between two wallets.
func (e *Engine) Transfer(src, dst game.EntityID, c game.CurrencyType, amount uint64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.Transfer(tx.Wallet(src), tx.Wallet(dst), c, amount)
	})
	e.done("transfer", start, err,
		slog.Uint64("source", uint64(src)),
		slog.Uint64("destination", uint64(dst)),
		slog.String("currency", c.String()),
		slog.Uint64("amount", amount))
	return err
}

// Exchange converts between two currencies inside one wallet at the current
// prices. Returns the credited destination amount.
func (e *Engine) Exchange(wallet, fromPriceEntity, toPriceEntity game.EntityID, from, to game.CurrencyType, amount uint64) (uint64, error) {
	start := time.Now()
	var credited uint64
	err := e.reg.Update(func(tx *registry.Tx) error {
		var err error
		credited, err = economy.Exchange(
			tx.Wallet(wallet),
			tx.Price(fromPriceEntity),
			tx.Price(toPriceEntity),
			from, to, amount)
		return err
	})
	e.done("exchange", start, err,
		slog.Uint64("entity", uint64(wallet)),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Uint64("amount", amount),
		slog.Uint64("credited", credited))
	return credited, err
}

// InitializePrice sets up a currency's price record.
func (e *Engine) InitializePrice(entity game.EntityID, c game.CurrencyType, price, minPrice, maxPrice uint64, volatility uint16, updateFrequency uint32, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.InitializePrice(tx.Price(entity), c, price, minPrice, maxPrice, volatility, updateFrequency, now)
	})
	e.done("price_initialize", start, err,
		slog.Uint64("entity", uint64(entity)),
		slog.String("currency", c.String()),
		slog.Uint64("price", price))
	return err
}

// EnablePrice turns a currency's random walk on.
func (e *Engine) EnablePrice(entity game.EntityID, c game.CurrencyType, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.EnablePrice(tx.Price(entity), c, now)
	})
	e.done("price_enable", start, err,
		slog.Uint64("entity", uint64(entity)),
		slog.String("currency", c.String()))
	return err
}

// UpdatePrice advances a currency's bounded random walk one step.
func (e *Engine) UpdatePrice(entity game.EntityID, c game.CurrencyType, now int64) error {
	start := time.Now()
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.UpdatePrice(tx.Price(entity), e.rng, c, now)
	})
	e.done("price_update", start, err,
		slog.Uint64("entity", uint64(entity)),
		slog.String("currency", c.String()))
	return err
}
