// Package registry is the keyed component store the systems run against.
// Records are addressed by entity id and component type; an operation runs
// inside a transaction that lends out deep copies and commits them all
// together, so a failed operation never leaves partial mutations behind.
package registry

import (
	"sync"

	"github.com/yieldgrid/game-core/gridcore/game"
)

// Components bundles every component record an entity can carry. Records are
// nil until first touched; the store allocates them zero-valued on demand.
type Components struct {
	Wallet      *game.Wallet
	Price       *game.Price
	Production  *game.Production
	Upgradeable *game.Upgradeable
	Stakeable   *game.Stakeable
	Ownership   *game.Ownership
	Listing     *game.Listing
	Lottery     *game.LotteryPrize
}

// Clone returns a deep copy of the bundle.
func (c *Components) Clone() *Components {
	out := &Components{}
	if c.Wallet != nil {
		w := *c.Wallet
		out.Wallet = &w
	}
	if c.Price != nil {
		p := *c.Price
		out.Price = &p
	}
	if c.Production != nil {
		p := *c.Production
		out.Production = &p
	}
	if c.Upgradeable != nil {
		u := *c.Upgradeable
		out.Upgradeable = &u
	}
	if c.Stakeable != nil {
		s := *c.Stakeable
		out.Stakeable = &s
	}
	if c.Ownership != nil {
		o := game.Ownership{
			OwnerType:     c.Ownership.OwnerType,
			OwnedEntities: append([]game.EntityID(nil), c.Ownership.OwnedEntities...),
			OwnedTypes:    append([]game.EntityType(nil), c.Ownership.OwnedTypes...),
		}
		out.Ownership = &o
	}
	if c.Listing != nil {
		l := *c.Listing
		out.Listing = &l
	}
	if c.Lottery != nil {
		lp := game.LotteryPrize{
			MinBetAmount:     c.Lottery.MinBetAmount,
			WinProbability:   c.Lottery.WinProbability,
			MaxWinMultiplier: c.Lottery.MaxWinMultiplier,
			LastUpdateTime:   c.Lottery.LastUpdateTime,
			TotalBets:        c.Lottery.TotalBets,
			TotalWins:        c.Lottery.TotalWins,
			IsActive:         c.Lottery.IsActive,
			RecentWinners:    append([]game.EntityID(nil), c.Lottery.RecentWinners...),
			RecentPrizes:     append([]uint64(nil), c.Lottery.RecentPrizes...),
		}
		out.Lottery = &lp
	}
	return out
}

// Registry holds the world state. It serializes transactions; the systems
// themselves are pure and assume no concurrent mutation within one call.
type Registry struct {
	mu       sync.RWMutex
	entities map[game.EntityID]*Components
}

func New() *Registry {
	return &Registry{entities: make(map[game.EntityID]*Components)}
}

// Tx lends out copies of component bundles. Commit happens only when the
// transaction function returns nil; otherwise every copy is discarded.
type Tx struct {
	reg     *Registry
	touched map[game.EntityID]*Components
}

// Get returns the transaction's working copy for an entity, allocating an
// empty bundle on first access. Component records themselves are allocated
// zero-valued by the typed accessors.
func (tx *Tx) Get(id game.EntityID) *Components {
	if c, ok := tx.touched[id]; ok {
		return c
	}
	var c *Components
	if cur, ok := tx.reg.entities[id]; ok {
		c = cur.Clone()
	} else {
		c = &Components{}
	}
	tx.touched[id] = c
	return c
}

// Wallet returns the entity's wallet record, allocating it at zero balances
// on first use.
func (tx *Tx) Wallet(id game.EntityID) *game.Wallet {
	c := tx.Get(id)
	if c.Wallet == nil {
		c.Wallet = &game.Wallet{}
	}
	return c.Wallet
}

func (tx *Tx) Price(id game.EntityID) *game.Price {
	c := tx.Get(id)
	if c.Price == nil {
		c.Price = &game.Price{}
	}
	return c.Price
}

func (tx *Tx) Production(id game.EntityID) *game.Production {
	c := tx.Get(id)
	if c.Production == nil {
		c.Production = &game.Production{}
	}
	return c.Production
}

func (tx *Tx) Upgradeable(id game.EntityID) *game.Upgradeable {
	c := tx.Get(id)
	if c.Upgradeable == nil {
		c.Upgradeable = &game.Upgradeable{}
	}
	return c.Upgradeable
}

func (tx *Tx) Stakeable(id game.EntityID) *game.Stakeable {
	c := tx.Get(id)
	if c.Stakeable == nil {
		c.Stakeable = &game.Stakeable{}
	}
	return c.Stakeable
}

func (tx *Tx) Ownership(id game.EntityID) *game.Ownership {
	c := tx.Get(id)
	if c.Ownership == nil {
		c.Ownership = &game.Ownership{}
	}
	return c.Ownership
}

func (tx *Tx) Listing(id game.EntityID) *game.Listing {
	c := tx.Get(id)
	if c.Listing == nil {
		c.Listing = &game.Listing{}
	}
	return c.Listing
}

func (tx *Tx) Lottery(id game.EntityID) *game.LotteryPrize {
	c := tx.Get(id)
	if c.Lottery == nil {
		c.Lottery = &game.LotteryPrize{}
	}
	return c.Lottery
}

// Update runs fn inside a transaction. If fn returns nil every touched
// bundle is committed together; on error nothing changes.
func (r *Registry) Update(fn func(tx *Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &Tx{reg: r, touched: make(map[game.EntityID]*Components)}
	if err := fn(tx); err != nil {
		return err
	}
	for id, c := range tx.touched {
		r.entities[id] = c
	}
	return nil
}

// View runs fn against read-only copies. Mutations made inside fn are
// discarded.
func (r *Registry) View(fn func(tx *Tx) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx := &Tx{reg: r, touched: make(map[game.EntityID]*Components)}
	return fn(tx)
}

// Put installs a bundle directly, outside any transaction. Used when loading
// a persisted world snapshot.
func (r *Registry) Put(id game.EntityID, c *Components) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[id] = c
}

// EntityIDs returns every entity currently in the store.
func (r *Registry) EntityIDs() []game.EntityID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]game.EntityID, 0, len(r.entities))
	for id := range r.entities {
		ids = append(ids, id)
	}
	return ids
}

// PriceEntities returns the entities carrying a Price record, for the price
// ticker and exchange-rate lookups.
func (r *Registry) PriceEntities() []game.EntityID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []game.EntityID
	for id, c := range r.entities {
		if c.Price != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Snapshot returns a deep copy of the whole world, for persistence.
func (r *Registry) Snapshot() map[game.EntityID]*Components {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[game.EntityID]*Components, len(r.entities))
	for id, c := range r.entities {
		out[id] = c.Clone()
	}
	return out
}
