package economy

import "github.com/yieldgrid/game-core/gridcore/game"

// CreateListing opens a listing for an asset the seller owns. The listing
// gets its own record; asset custody stays with the seller until purchase.
func CreateListing(l *game.Listing, sellerOwn *game.Ownership, listingID uint64, assetID game.EntityID, assetType game.EntityType, seller game.EntityID, price uint64, payment game.PaymentMethod, now int64) error {
	if price == 0 {
		return game.ErrInvalidPrice
	}
	if !payment.Valid() {
		return game.ErrInvalidPaymentMethod
	}
	if !sellerOwn.Contains(assetID) {
		return game.ErrNotTheOwner
	}
	l.ListingID = listingID
	l.AssetID = assetID
	l.AssetType = assetType
	l.Seller = seller
	l.Buyer = 0
	l.AskPrice = price
	l.PreviousAskPrice = 0
	l.LastSalePrice = 0
	l.Payment = payment
	l.Status = game.ListingActive
	l.CreatedAt = now
	l.UpdatedAt = now
	return nil
}

// UpdateListing re-prices an active listing, keeping the previous ask.
func UpdateListing(l *game.Listing, newPrice uint64, now int64) error {
	if l.Status != game.ListingActive {
		return game.ErrListingNotActive
	}
	if newPrice == 0 {
		return game.ErrInvalidPrice
	}
	l.PreviousAskPrice = l.AskPrice
	l.AskPrice = newPrice
	l.UpdatedAt = now
	return nil
}

// CancelListing withdraws an active listing. No funds move.
func CancelListing(l *game.Listing, now int64) error {
	if l.Status != game.ListingActive {
		return game.ErrListingNotActive
	}
	l.Status = game.ListingCancelled
	l.UpdatedAt = now
	return nil
}

// Purchase settles an active listing: the ask price moves from the buyer's
// wallet to the seller's in the listing's payment currency, and the asset
// moves from the seller's ownership set to the buyer's.
func Purchase(l *game.Listing, buyerW, sellerW *game.Wallet, buyerOwn, sellerOwn *game.Ownership, buyer game.EntityID, now int64) error {
	if l.Status != game.ListingActive {
		return game.ErrListingNotActive
	}
	if !sellerOwn.Contains(l.AssetID) {
		return game.ErrNotTheOwner
	}
	currency := l.Payment.Currency()
	if buyerW.Balance(currency) < l.AskPrice {
		return game.ErrInsufficientFunds
	}

	if err := buyerW.Debit(currency, l.AskPrice); err != nil {
		return err
	}
	if err := sellerW.Credit(currency, l.AskPrice); err != nil {
		return err
	}
	if err := TransferOwnership(sellerOwn, buyerOwn, l.AssetID); err != nil {
		return err
	}

	l.Buyer = buyer
	l.LastSalePrice = l.AskPrice
	l.Status = game.ListingSold
	l.UpdatedAt = now
	return nil
}

// TransferAsset gifts an asset directly, bypassing any listing. No funds
// move.
func TransferAsset(fromOwn, toOwn *game.Ownership, assetID game.EntityID) error {
	return TransferOwnership(fromOwn, toOwn, assetID)
}
