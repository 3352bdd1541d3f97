package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldgrid/game-core/gridcore/game"
)

func TestCollect_OneHour(t *testing.T) {
	// 5 USDC/hr at full efficiency with a 1 USDC/hr operating cost nets
	// exactly 4 USDC after one hour.
	p := &game.Production{}
	InitializeProduction(p, 5_000000, 2_000000, game.EntityGPU, 1, true, 1_000000, 10000, 0)
	w := &game.Wallet{}

	usdc, aifi, err := Collect(p, w, 3600)
	require.NoError(t, err)
	assert.Equal(t, uint64(4_000000), usdc)
	assert.Equal(t, uint64(2_000000), aifi)
	assert.Equal(t, uint64(4_000000), w.USDC)
	assert.Equal(t, uint64(2_000000), w.AiFi)
	assert.Equal(t, int64(3600), p.LastCollectionTime)
}

func TestCollect_Efficiency(t *testing.T) {
	p := &game.Production{}
	InitializeProduction(p, 4_000000, 0, game.EntityGPU, 1, true, 0, 5000, 0)
	w := &game.Wallet{}

	usdc, _, err := Collect(p, w, 3600)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_000000), usdc)
}

func TestCollect_Inactive(t *testing.T) {
	p := &game.Production{}
	InitializeProduction(p, 5_000000, 0, game.EntityGPU, 1, false, 0, 10000, 0)
	w := &game.Wallet{}

	_, _, err := Collect(p, w, 3600)
	assert.ErrorIs(t, err, game.ErrProductionInactive)
	assert.Equal(t, uint64(0), w.USDC)
}

func TestCollect_ClockNeverRunsBackwards(t *testing.T) {
	p := &game.Production{}
	InitializeProduction(p, 5_000000, 1_000000, game.EntityGPU, 1, true, 0, 10000, 1000)
	w := &game.Wallet{}

	// now before the last collection pays nothing but still advances the
	// clock.
	usdc, aifi, err := Collect(p, w, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), usdc)
	assert.Equal(t, uint64(0), aifi)
	assert.Equal(t, int64(500), p.LastCollectionTime)
}

func TestCollect_CostFloorsAtZero(t *testing.T) {
	// Operating cost above gross output zeroes the USDC payout but never
	// debits the wallet; AiFi is unaffected.
	p := &game.Production{}
	InitializeProduction(p, 1_000000, 3_000000, game.EntityDataCenter, 1, true, 5_000000, 10000, 0)
	w := &game.Wallet{USDC: 777}

	usdc, aifi, err := Collect(p, w, 3600)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), usdc)
	assert.Equal(t, uint64(3_000000), aifi)
	assert.Equal(t, uint64(777), w.USDC)
}

func TestCollect_ZeroElapsed(t *testing.T) {
	p := &game.Production{}
	InitializeProduction(p, 5_000000, 0, game.EntityGPU, 1, true, 0, 10000, 100)
	w := &game.Wallet{}

	usdc, _, err := Collect(p, w, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), usdc)
}

func TestSetProductionActive_ResetsClock(t *testing.T) {
	p := &game.Production{}
	InitializeProduction(p, 5_000000, 0, game.EntityGPU, 1, true, 0, 10000, 0)

	SetProductionActive(p, false, 100)
	assert.False(t, p.IsActive)
	assert.Equal(t, int64(0), p.LastCollectionTime)

	// Reactivating resets the clock so the downtime is never paid.
	SetProductionActive(p, true, 5000)
	assert.True(t, p.IsActive)
	assert.Equal(t, int64(5000), p.LastCollectionTime)
}

func TestUpdateProductionRates(t *testing.T) {
	p := &game.Production{}
	InitializeProduction(p, 5_000000, 1_000000, game.EntityGPU, 1, true, 0, 10000, 250)

	UpdateProductionRates(p, 6_000000, 2_000000, 500_000, 9000)
	assert.Equal(t, uint64(6_000000), p.USDCPerHour)
	assert.Equal(t, uint64(2_000000), p.AiFiPerHour)
	assert.Equal(t, uint64(500_000), p.OperatingCost)
	assert.Equal(t, uint16(9000), p.EfficiencyBps)
	assert.Equal(t, int64(250), p.LastCollectionTime, "rate changes must not touch the accrual clock")
}
