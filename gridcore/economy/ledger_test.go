package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldgrid/game-core/gridcore/game"
)

func enabledPrice(c game.CurrencyType, current uint64) *game.Price {
	p := &game.Price{}
	if err := InitializePrice(p, c, current, 1, current*100, 500, 60, 1000); err != nil {
		panic(err)
	}
	p.UpdatesEnabled = true
	return p
}

func TestTransfer(t *testing.T) {
	src := &game.Wallet{USDC: 500}
	dst := &game.Wallet{USDC: 100}

	require.NoError(t, Transfer(src, dst, game.CurrencyUSDC, 200))
	assert.Equal(t, uint64(300), src.USDC)
	assert.Equal(t, uint64(300), dst.USDC)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	src := &game.Wallet{USDC: 100}
	dst := &game.Wallet{}

	err := Transfer(src, dst, game.CurrencyUSDC, 200)
	assert.ErrorIs(t, err, game.ErrInsufficientFunds)
	assert.Equal(t, uint64(100), src.USDC)
	assert.Equal(t, uint64(0), dst.USDC)
}

func TestTransfer_InvalidCurrency(t *testing.T) {
	err := Transfer(&game.Wallet{}, &game.Wallet{}, game.CurrencyType(99), 1)
	assert.ErrorIs(t, err, game.ErrInvalidCurrencyType)
}

func TestFund_Overflow(t *testing.T) {
	w := &game.Wallet{USDC: ^uint64(0)}
	err := Fund(w, game.CurrencyUSDC, 1)
	assert.ErrorIs(t, err, game.ErrArithmeticOverflow)
}

func TestExchange_USDCToBTC(t *testing.T) {
	// 100 USDC at 1.00 into BTC at 50,000.00: raw 2000, minus the 1% fee
	// leaves 1980.
	w := &game.Wallet{USDC: 100_000000}
	usdc := enabledPrice(game.CurrencyUSDC, 1_000000)
	btc := enabledPrice(game.CurrencyBTC, 50_000_000000)

	credited, err := Exchange(w, usdc, btc, game.CurrencyUSDC, game.CurrencyBTC, 100_000000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1980), credited)
	assert.Equal(t, uint64(0), w.USDC)
	assert.Equal(t, uint64(1980), w.BTC)
}

func TestExchange_Errors(t *testing.T) {
	usdc := enabledPrice(game.CurrencyUSDC, 1_000000)
	btc := enabledPrice(game.CurrencyBTC, 50_000_000000)

	tests := []struct {
		name    string
		wallet  *game.Wallet
		from    *game.Price
		to      *game.Price
		fromCur game.CurrencyType
		toCur   game.CurrencyType
		amount  uint64
		wantErr error
	}{
		{
			name:    "same currency",
			wallet:  &game.Wallet{USDC: 100},
			from:    usdc,
			to:      usdc,
			fromCur: game.CurrencyUSDC,
			toCur:   game.CurrencyUSDC,
			amount:  100,
			wantErr: game.ErrSameCurrencyExchange,
		},
		{
			name:    "invalid currency",
			wallet:  &game.Wallet{},
			from:    usdc,
			to:      btc,
			fromCur: game.CurrencyType(42),
			toCur:   game.CurrencyBTC,
			amount:  100,
			wantErr: game.ErrInvalidCurrencyType,
		},
		{
			name:    "price record mismatch",
			wallet:  &game.Wallet{USDC: 100},
			from:    btc, // wrong record for USDC
			to:      usdc,
			fromCur: game.CurrencyUSDC,
			toCur:   game.CurrencyBTC,
			amount:  100,
			wantErr: game.ErrCurrencyPriceMismatch,
		},
		{
			name:    "insufficient funds",
			wallet:  &game.Wallet{USDC: 50},
			from:    usdc,
			to:      btc,
			fromCur: game.CurrencyUSDC,
			toCur:   game.CurrencyBTC,
			amount:  100,
			wantErr: game.ErrInsufficientFunds,
		},
		{
			name:    "amount too small after fee",
			wallet:  &game.Wallet{USDC: 100},
			from:    usdc,
			to:      btc,
			fromCur: game.CurrencyUSDC,
			toCur:   game.CurrencyBTC,
			amount:  100, // converts to zero BTC
			wantErr: game.ErrExchangeAmountTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := *tt.wallet
			_, err := Exchange(tt.wallet, tt.from, tt.to, tt.fromCur, tt.toCur, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, *tt.wallet, "wallet must be untouched on failure")
		})
	}
}

func TestExchange_DisabledPrice(t *testing.T) {
	w := &game.Wallet{USDC: 100_000000}
	usdc := enabledPrice(game.CurrencyUSDC, 1_000000)
	btc := enabledPrice(game.CurrencyBTC, 50_000_000000)
	btc.UpdatesEnabled = false

	_, err := Exchange(w, usdc, btc, game.CurrencyUSDC, game.CurrencyBTC, 100_000000)
	assert.ErrorIs(t, err, game.ErrPriceUpdatesDisabled)
}

func TestExchange_FeeIsBurned(t *testing.T) {
	// Round trip at equal prices loses exactly the fee on each leg; nothing
	// else in the system gains it.
	w := &game.Wallet{USDC: 1_000000}
	usdc := enabledPrice(game.CurrencyUSDC, 2_000000)
	aifi := enabledPrice(game.CurrencyAiFi, 2_000000)

	out, err := Exchange(w, usdc, aifi, game.CurrencyUSDC, game.CurrencyAiFi, 1_000000)
	require.NoError(t, err)
	assert.Equal(t, uint64(990_000), out)

	back, err := Exchange(w, aifi, usdc, game.CurrencyAiFi, game.CurrencyUSDC, out)
	require.NoError(t, err)
	assert.Equal(t, uint64(980_100), back)
	assert.Equal(t, back, w.USDC)
	assert.Equal(t, uint64(0), w.AiFi)
}

func TestValueInUSDC(t *testing.T) {
	v, err := ValueInUSDC(1980, 50_000_000000, 1_000000)
	require.NoError(t, err)
	assert.Equal(t, uint64(99_000000), v)

	_, err = ValueInUSDC(1, 1, 0)
	assert.ErrorIs(t, err, game.ErrInvalidPrice)
}
