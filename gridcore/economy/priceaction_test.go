package economy

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldgrid/game-core/gridcore/game"
)

func TestInitializePrice(t *testing.T) {
	p := &game.Price{}
	require.NoError(t, InitializePrice(p, game.CurrencyBTC, 50_000_000000, 5_000_000000, 500_000_000000, 500, 60, 1000))

	assert.Equal(t, uint64(50_000_000000), p.Current)
	assert.Equal(t, uint64(50_000_000000), p.Previous)
	assert.Equal(t, uint64(50_000_000000), p.History[0])
	assert.False(t, p.UpdatesEnabled)
	assert.Equal(t, uint16(game.BasisPoints), p.SupplyFactor)
	assert.Equal(t, uint16(game.BasisPoints), p.DemandFactor)
	assert.Equal(t, int64(1000), p.LastUpdateTime)
}

func TestInitializePrice_Invalid(t *testing.T) {
	p := &game.Price{}
	assert.ErrorIs(t, InitializePrice(p, game.CurrencyBTC, 0, 1, 100, 500, 60, 0), game.ErrInvalidPrice)
	assert.ErrorIs(t, InitializePrice(p, game.CurrencyBTC, 10, 100, 100, 500, 60, 0), game.ErrInvalidPrice)
	assert.ErrorIs(t, InitializePrice(p, game.CurrencyBTC, 10, 200, 100, 500, 60, 0), game.ErrInvalidPrice)
}

func TestEnablePrice_CurrencyMismatch(t *testing.T) {
	p := &game.Price{}
	require.NoError(t, InitializePrice(p, game.CurrencyBTC, 100, 1, 1000, 500, 60, 0))
	assert.ErrorIs(t, EnablePrice(p, game.CurrencyETH, 10), game.ErrCurrencyPriceMismatch)
	assert.False(t, p.UpdatesEnabled)

	require.NoError(t, EnablePrice(p, game.CurrencyBTC, 10))
	assert.True(t, p.UpdatesEnabled)
}

func TestUpdatePrice_Disabled(t *testing.T) {
	p := &game.Price{}
	require.NoError(t, InitializePrice(p, game.CurrencyBTC, 100, 1, 1000, 500, 60, 0))

	r := rand.New(rand.NewPCG(1, 1))
	assert.ErrorIs(t, UpdatePrice(p, r, game.CurrencyBTC, 10), game.ErrPriceUpdatesDisabled)
}

func TestUpdatePrice_StaysBounded(t *testing.T) {
	p := &game.Price{}
	require.NoError(t, InitializePrice(p, game.CurrencySOL, 150_000000, 100_000000, 200_000000, 1000, 60, 0))
	require.NoError(t, EnablePrice(p, game.CurrencySOL, 0))

	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 10_000; i++ {
		prev := p.Current
		require.NoError(t, UpdatePrice(p, r, game.CurrencySOL, int64(i)))

		assert.GreaterOrEqual(t, p.Current, p.Min)
		assert.LessOrEqual(t, p.Current, p.Max)
		assert.Equal(t, prev, p.Previous)

		// Delta before clamping never exceeds volatility; after clamping it
		// can only shrink.
		maxDelta := prev * 1000 / uint64(game.BasisPoints)
		var delta uint64
		if p.Current > prev {
			delta = p.Current - prev
		} else {
			delta = prev - p.Current
		}
		assert.LessOrEqual(t, delta, maxDelta)
	}
}

func TestUpdatePrice_Deterministic(t *testing.T) {
	mk := func() *game.Price {
		p := &game.Price{}
		require.NoError(t, InitializePrice(p, game.CurrencyETH, 3_000_000000, 1_000_000000, 9_000_000000, 500, 60, 0))
		require.NoError(t, EnablePrice(p, game.CurrencyETH, 0))
		return p
	}

	a, b := mk(), mk()
	ra := rand.New(rand.NewPCG(99, 99))
	rb := rand.New(rand.NewPCG(99, 99))

	for i := 0; i < 500; i++ {
		require.NoError(t, UpdatePrice(a, ra, game.CurrencyETH, int64(i)))
		require.NoError(t, UpdatePrice(b, rb, game.CurrencyETH, int64(i)))
		assert.Equal(t, a.Current, b.Current)
	}
	assert.Equal(t, a.History, b.History)
}

func TestUpdatePrice_HistoryRing(t *testing.T) {
	p := &game.Price{}
	require.NoError(t, InitializePrice(p, game.CurrencyAiFi, 2_000000, 1_000000, 4_000000, 100, 60, 0))
	require.NoError(t, EnablePrice(p, game.CurrencyAiFi, 0))

	r := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < game.PriceHistoryLen+5; i++ {
		idx := p.HistoryIndex
		require.NoError(t, UpdatePrice(p, r, game.CurrencyAiFi, int64(i)))
		assert.Equal(t, (idx+1)%game.PriceHistoryLen, p.HistoryIndex)
		assert.Equal(t, p.Current, p.History[p.HistoryIndex])
	}
}

func TestPriceTrend(t *testing.T) {
	assert.Equal(t, int8(0), priceTrend(0, 100))
	assert.Equal(t, int8(0), priceTrend(100, 100))
	assert.Equal(t, int8(10), priceTrend(100, 110))
	assert.Equal(t, int8(-10), priceTrend(100, 90))
	assert.Equal(t, int8(100), priceTrend(100, 100_000))
	assert.Equal(t, int8(-99), priceTrend(100, 1))
}
