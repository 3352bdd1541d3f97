package economy

import (
	"math/rand/v2"

	"github.com/yieldgrid/game-core/gridcore/game"
)

// InitializePrice sets the starting price, its bounds and walk parameters.
// Updates stay disabled until EnablePrice is called.
func InitializePrice(p *game.Price, currency game.CurrencyType, price, minPrice, maxPrice uint64, volatility uint16, updateFrequency uint32, now int64) error {
	if price == 0 || minPrice >= maxPrice {
		return game.ErrInvalidPrice
	}
	p.Current = price
	p.Previous = price
	p.Min = minPrice
	p.Max = maxPrice
	p.Volatility = volatility
	p.UpdateFrequency = updateFrequency
	p.Currency = currency
	p.UpdatesEnabled = false
	p.History = [game.PriceHistoryLen]uint64{}
	p.History[0] = price
	p.HistoryIndex = 0
	p.Trend = 0
	p.SupplyFactor = uint16(game.BasisPoints)
	p.DemandFactor = uint16(game.BasisPoints)
	p.LastUpdateTime = now
	return nil
}

// EnablePrice turns the random walk on. No other field changes.
func EnablePrice(p *game.Price, currency game.CurrencyType, now int64) error {
	if p.Currency != currency {
		return game.ErrCurrencyPriceMismatch
	}
	p.UpdatesEnabled = true
	p.LastUpdateTime = now
	return nil
}

// UpdatePrice advances the bounded random walk one step. The delta magnitude
// never exceeds current*volatility/10000 and the result is clamped to
// [Min, Max]. The walk is deterministic given the rand source's seed.
func UpdatePrice(p *game.Price, r *rand.Rand, currency game.CurrencyType, now int64) error {
	if p.Currency != currency {
		return game.ErrCurrencyPriceMismatch
	}
	if !p.UpdatesEnabled {
		return game.ErrPriceUpdatesDisabled
	}

	maxDelta, err := applyBps(p.Current, p.Volatility)
	if err != nil {
		return err
	}

	next := p.Current
	if maxDelta > 0 {
		delta := r.Uint64N(2*maxDelta + 1) // 0 .. 2*maxDelta
		if delta >= maxDelta {
			next = p.Current + (delta - maxDelta)
		} else {
			down := maxDelta - delta
			if down >= p.Current {
				next = 0
			} else {
				next = p.Current - down
			}
		}
	}
	if next < p.Min {
		next = p.Min
	}
	if next > p.Max {
		next = p.Max
	}

	p.Previous = p.Current
	p.Current = next
	p.Trend = priceTrend(p.Previous, next)

	p.HistoryIndex = (p.HistoryIndex + 1) % game.PriceHistoryLen
	p.History[p.HistoryIndex] = next
	p.LastUpdateTime = now
	return nil
}

// priceTrend is the percent change from prev to next, clamped to -100..+100.
func priceTrend(prev, next uint64) int8 {
	if prev == 0 {
		return 0
	}
	diff := next - prev
	neg := false
	if next < prev {
		diff = prev - next
		neg = true
	}
	scaled, err := mulDiv(diff, 100, prev)
	if err != nil || scaled > 100 {
		scaled = 100
	}
	pct := int64(scaled)
	if neg {
		pct = -pct
	}
	if pct > 100 {
		pct = 100
	}
	if pct < -100 {
		pct = -100
	}
	return int8(pct)
}
