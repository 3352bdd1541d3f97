package engine

import (
	"log/slog"
	"time"

	"github.com/yieldgrid/game-core/gridcore/economy"
	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

// InitializeOwnership sets an entity's owner type and empties its owned set.
func (e *Engine) InitializeOwnership(entity game.EntityID, ownerType game.EntityType) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.InitializeOwnership(tx.Ownership(entity), ownerType)
		return nil
	})
	e.done("ownership_initialize", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// AssignToWallet adds an asset to an owner's set.
func (e *Engine) AssignToWallet(owner, asset game.EntityID, assetType game.EntityType) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.Assign(tx.Ownership(owner), asset, assetType)
	})
	e.done("ownership_assign", start, err,
		slog.Uint64("owner", uint64(owner)),
		slog.Uint64("asset", uint64(asset)))
	return err
}

// RemoveOwnership drops an asset from an owner's set.
func (e *Engine) RemoveOwnership(owner, asset game.EntityID) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		_, err := economy.Remove(tx.Ownership(owner), asset)
		return err
	})
	e.done("ownership_remove", start, err,
		slog.Uint64("owner", uint64(owner)),
		slog.Uint64("asset", uint64(asset)))
	return err
}

// TransferOwnership moves an asset between two owners' sets.
func (e *Engine) TransferOwnership(from, to, asset game.EntityID) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.TransferOwnership(tx.Ownership(from), tx.Ownership(to), asset)
	})
	e.done("ownership_transfer", start, err,
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(to)),
		slog.Uint64("asset", uint64(asset)))
	return err
}

// ListingArgs bundles CREATE_LISTING arguments. The listing record lives on
// its own entity so it can outlive the trade for history queries.
type ListingArgs struct {
	ListingID uint64
	AssetID   game.EntityID
	AssetType game.EntityType
	Seller    game.EntityID
	Price     uint64
	Payment   game.PaymentMethod
}

// CreateListing opens a marketplace listing for an owned asset.
func (e *Engine) CreateListing(listingEntity game.EntityID, args ListingArgs, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.CreateListing(tx.Listing(listingEntity), tx.Ownership(args.Seller),
			args.ListingID, args.AssetID, args.AssetType, args.Seller, args.Price, args.Payment, now)
	})
	e.done("listing_create", start, err,
		slog.Uint64("listing", args.ListingID),
		slog.Uint64("asset", uint64(args.AssetID)),
		slog.Uint64("price", args.Price))
	return err
}

// UpdateListing re-prices an active listing.
func (e *Engine) UpdateListing(listingEntity game.EntityID, newPrice uint64, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.UpdateListing(tx.Listing(listingEntity), newPrice, now)
	})
	e.done("listing_update", start, err,
		slog.Uint64("entity", uint64(listingEntity)),
		slog.Uint64("price", newPrice))
	return err
}

// CancelListing withdraws an active listing.
func (e *Engine) CancelListing(listingEntity game.EntityID, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.CancelListing(tx.Listing(listingEntity), now)
	})
	e.done("listing_cancel", start, err, slog.Uint64("entity", uint64(listingEntity)))
	return err
}

// Purchase settles an active listing between buyer and seller.
func (e *Engine) Purchase(listingEntity, buyer game.EntityID, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		l := tx.Listing(listingEntity)
		return economy.Purchase(l,
			tx.Wallet(buyer), tx.Wallet(l.Seller),
			tx.Ownership(buyer), tx.Ownership(l.Seller),
			buyer, now)
	})
	e.done("purchase", start, err,
		slog.Uint64("listing", uint64(listingEntity)),
		slog.Uint64("buyer", uint64(buyer)))
	return err
}

// TransferAsset gifts an asset directly between owners.
func (e *Engine) TransferAsset(from, to, asset game.EntityID) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.TransferAsset(tx.Ownership(from), tx.Ownership(to), asset)
	})
	e.done("asset_transfer", start, err,
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(to)),
		slog.Uint64("asset", uint64(asset)))
	return err
}

// InitializeLottery sets up a lottery entity.
func (e *Engine) InitializeLottery(entity game.EntityID, minBet uint64, winProbability uint16, maxWinMultiplier uint32, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.InitializeLottery(tx.Lottery(entity), minBet, winProbability, maxWinMultiplier, now)
	})
	e.done("lottery_initialize", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// UpdateLotteryParams retunes a lottery.
func (e *Engine) UpdateLotteryParams(entity game.EntityID, minBet uint64, winProbability uint16, maxWinMultiplier uint32, active bool, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.UpdateLotteryParams(tx.Lottery(entity), minBet, winProbability, maxWinMultiplier, active, now)
	})
	e.done("lottery_update_params", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// PlaceBet plays the lottery with caller-supplied randomness. Returns the
// prize paid, zero on a loss.
func (e *Engine) PlaceBet(lotteryEntity, player game.EntityID, bet, randomness uint64, now int64) (uint64, error) {
	start := time.Now()
	var prize uint64
	err := e.reg.Update(func(tx *registry.Tx) error {
		var err error
		prize, err = economy.PlaceBet(tx.Lottery(lotteryEntity), tx.Wallet(player), player, bet, randomness, now)
		return err
	})
	e.done("lottery_bet", start, err,
		slog.Uint64("player", uint64(player)),
		slog.Uint64("bet", bet),
		slog.Uint64("prize", prize))
	return prize, err
}
