package engine

import (
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/yieldgrid/game-core/gridcore/economy"
	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

const (
	leaderboardCacheSize = 10000
	leaderboardCacheTTL  = 30 * time.Second
)

// Leaderboard ranks actors by total wallet value priced in USDC. Valuations
// are cached per entity; a stale entry is recomputed against current prices.
type Leaderboard struct {
	engine *Engine
	cache  *lru.Cache
}

type wealthEntry struct {
	value      uint64
	computedAt time.Time
}

// WealthRank is one leaderboard row.
type WealthRank struct {
	Entity game.EntityID
	Value  uint64
}

func NewLeaderboard(e *Engine) (*Leaderboard, error) {
	cache, err := lru.New(leaderboardCacheSize)
	if err != nil {
		return nil, err
	}
	return &Leaderboard{engine: e, cache: cache}, nil
}

// WealthOf returns an entity's total wallet value in USDC micro-units.
func (lb *Leaderboard) WealthOf(entity game.EntityID) uint64 {
	if v, ok := lb.cache.Get(entity); ok {
		entry := v.(wealthEntry)
		if time.Since(entry.computedAt) < leaderboardCacheTTL {
			return entry.value
		}
	}

	value := lb.compute(entity)
	lb.cache.Add(entity, wealthEntry{value: value, computedAt: time.Now()})
	return value
}

// Invalidate drops an entity's cached valuation, for callers that just moved
// funds and want the next read to be fresh.
func (lb *Leaderboard) Invalidate(entity game.EntityID) {
	lb.cache.Remove(entity)
}

// Top returns the n wealthiest entities, richest first. Ties break on entity
// id so the ordering is stable.
func (lb *Leaderboard) Top(n int) []WealthRank {
	reg := lb.engine.Registry()
	ranks := make([]WealthRank, 0, n)
	for _, id := range reg.EntityIDs() {
		if v := lb.WealthOf(id); v > 0 {
			ranks = append(ranks, WealthRank{Entity: id, Value: v})
		}
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Value != ranks[j].Value {
			return ranks[i].Value > ranks[j].Value
		}
		return ranks[i].Entity < ranks[j].Entity
	})
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// compute values every balance at the current prices. Currencies with no
// usable price record contribute nothing rather than failing the whole
// valuation.
func (lb *Leaderboard) compute(entity game.EntityID) uint64 {
	reg := lb.engine.Registry()

	// Resolve the price entities before opening the view; views must not
	// nest.
	priceIDs := make(map[game.CurrencyType]game.EntityID)
	for _, c := range []game.CurrencyType{
		game.CurrencyUSDC, game.CurrencyBTC, game.CurrencyETH, game.CurrencySOL, game.CurrencyAiFi,
	} {
		if id, ok := lb.engine.PriceEntity(c); ok {
			priceIDs[c] = id
		}
	}

	var total uint64
	_ = reg.View(func(tx *registry.Tx) error {
		w := tx.Wallet(entity)
		total = w.USDC

		usdcEntity, ok := priceIDs[game.CurrencyUSDC]
		if !ok {
			return nil
		}
		usdcPrice := tx.Price(usdcEntity).Current
		if usdcPrice == 0 {
			return nil
		}

		for _, c := range []game.CurrencyType{
			game.CurrencyBTC, game.CurrencyETH, game.CurrencySOL, game.CurrencyAiFi,
		} {
			bal := w.Balance(c)
			if bal == 0 {
				continue
			}
			pe, ok := priceIDs[c]
			if !ok {
				continue
			}
			v, err := economy.ValueInUSDC(bal, tx.Price(pe).Current, usdcPrice)
			if err != nil {
				continue
			}
			if total+v < total {
				total = ^uint64(0)
				return nil
			}
			total += v
		}
		return nil
	})
	return total
}
