package economy

import "github.com/yieldgrid/game-core/gridcore/game"

// ExchangeFeeBps is the flat exchange fee. The fee is deducted from the
// destination amount and not credited anywhere: total supply shrinks by the
// fee on every exchange. This matches the deployed ledger and must be kept.
const ExchangeFeeBps = 100

// Fund credits amount of the given currency into the wallet, ignoring any
// existing balance. Bootstrap funding only, not a real mint.
func Fund(w *game.Wallet, c game.CurrencyType, amount uint64) error {
	return w.Credit(c, amount)
}

// Transfer moves amount of a single currency from src to dst. No fee, no
// price lookup. The sum of both balances is unchanged.
func Transfer(src, dst *game.Wallet, c game.CurrencyType, amount uint64) error {
	if !c.Valid() {
		return game.ErrInvalidCurrencyType
	}
	if src.Balance(c) < amount {
		return game.ErrInsufficientFunds
	}
	if err := src.Debit(c, amount); err != nil {
		return err
	}
	return dst.Credit(c, amount)
}

// Exchange converts amount of the from currency into the to currency at the
// current prices, applying the flat fee. Both price records must be enabled
// and must belong to the currencies being exchanged. Returns the credited
// destination amount.
//
// The credited amount is floor(floor(amount*pFrom/pTo) * (1 - fee)).
func Exchange(w *game.Wallet, fromPrice, toPrice *game.Price, from, to game.CurrencyType, amount uint64) (uint64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, game.ErrInvalidCurrencyType
	}
	if from == to {
		return 0, game.ErrSameCurrencyExchange
	}
	if !fromPrice.UpdatesEnabled || !toPrice.UpdatesEnabled {
		return 0, game.ErrPriceUpdatesDisabled
	}
	if fromPrice.Currency != from || toPrice.Currency != to {
		return 0, game.ErrCurrencyPriceMismatch
	}
	if w.Balance(from) < amount {
		return 0, game.ErrInsufficientFunds
	}

	raw, err := mulDiv(amount, fromPrice.Current, toPrice.Current)
	if err != nil {
		return 0, err
	}
	final, err := mulDiv(raw, game.BasisPoints-ExchangeFeeBps, game.BasisPoints)
	if err != nil {
		return 0, err
	}
	if final == 0 {
		return 0, game.ErrExchangeAmountTooSmall
	}

	if err := w.Debit(from, amount); err != nil {
		return 0, err
	}
	if err := w.Credit(to, final); err != nil {
		return 0, err
	}
	return final, nil
}

// ValueInUSDC converts a balance of some currency into USDC micro-units at
// the given prices, with the same rounding as Exchange but no fee.
func ValueInUSDC(balance, price, usdcPrice uint64) (uint64, error) {
	if usdcPrice == 0 {
		return 0, game.ErrInvalidPrice
	}
	return mulDiv(balance, price, usdcPrice)
}
