package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldgrid/game-core/gridcore/game"
)

func upgradeFixture() (*game.Upgradeable, *game.Wallet, *game.Production) {
	u := &game.Upgradeable{}
	InitializeUpgradeable(u, game.EntityGPU, 1, 5, 3600, 10_000000, 1_000000, 2000, 1000, 0)
	w := &game.Wallet{USDC: 50_000000, AiFi: 5_000000}
	p := &game.Production{}
	InitializeProduction(p, 6_000000, 3_000000, game.EntityGPU, 1, true, 0, 10000, 0)
	return u, w, p
}

func TestUpgrade(t *testing.T) {
	u, w, p := upgradeFixture()

	require.NoError(t, Upgrade(u, w, p, 4000))

	// 20% boost on 6 USDC/hr adds 1.2 USDC/hr.
	assert.Equal(t, uint64(7_200000), p.USDCPerHour)
	// 10% boost on 3 AiFi/hr adds 0.3 AiFi/hr.
	assert.Equal(t, uint64(3_300000), p.AiFiPerHour)

	assert.Equal(t, uint64(40_000000), w.USDC)
	assert.Equal(t, uint64(4_000000), w.AiFi)

	assert.Equal(t, uint8(2), u.CurrentLevel)
	assert.Equal(t, uint8(2), p.Level)
	assert.Equal(t, int64(4000), u.LastUpgradeTime)
	assert.True(t, u.CanUpgrade)
}

func TestUpgrade_MaxLevel(t *testing.T) {
	u, w, p := upgradeFixture()
	u.CurrentLevel = 5

	assert.ErrorIs(t, Upgrade(u, w, p, 4000), game.ErrMaxLevelReached)
}

func TestUpgrade_ReachesMaxLevel(t *testing.T) {
	u, w, p := upgradeFixture()
	u.CurrentLevel = 4

	require.NoError(t, Upgrade(u, w, p, 4000))
	assert.Equal(t, uint8(5), u.CurrentLevel)
	assert.False(t, u.CanUpgrade)

	assert.ErrorIs(t, Upgrade(u, w, p, 10000), game.ErrMaxLevelReached)
}

func TestUpgrade_Cooldown(t *testing.T) {
	u, w, p := upgradeFixture()

	require.NoError(t, Upgrade(u, w, p, 4000))
	assert.ErrorIs(t, Upgrade(u, w, p, 4000+3599), game.ErrCooldownActive)
	assert.NoError(t, Upgrade(u, w, p, 4000+3600))
}

func TestUpgrade_InsufficientUSDC(t *testing.T) {
	u, w, p := upgradeFixture()
	w.USDC = 9_999999

	before := *w
	assert.ErrorIs(t, Upgrade(u, w, p, 4000), game.ErrInsufficientFunds)
	assert.Equal(t, before, *w)
	assert.Equal(t, uint8(1), u.CurrentLevel)
	assert.Equal(t, uint64(6_000000), p.USDCPerHour)
}

func TestUpgrade_InsufficientAiFi(t *testing.T) {
	// AiFi shortfall reports its own error so callers can tell the
	// currencies apart.
	u, w, p := upgradeFixture()
	w.AiFi = 999_999

	assert.ErrorIs(t, Upgrade(u, w, p, 4000), game.ErrInsufficientAiFiFunds)
	assert.Equal(t, uint64(50_000000), w.USDC)
	assert.Equal(t, uint8(1), u.CurrentLevel)
}

func TestUpdateUpgradeParams(t *testing.T) {
	u, _, _ := upgradeFixture()
	u.CurrentLevel = 5
	assert.Equal(t, uint8(5), u.MaxLevel)

	UpdateUpgradeParams(u, 10, 7200, 20_000000, 2_000000, 3000, 1500)
	assert.Equal(t, uint8(10), u.MaxLevel)
	assert.True(t, u.CanUpgrade, "raising the cap re-opens upgrading")
	assert.Equal(t, uint8(5), u.CurrentLevel)
}
