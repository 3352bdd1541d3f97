package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldgrid/game-core/gridcore/game"
)

func stakingFixture() (*game.Stakeable, *game.Production) {
	s := &game.Stakeable{}
	InitializeStakeable(s, game.EntityGPU, 86400, 15000, 5000, 3_000000, 1_000000, true, 0)
	p := &game.Production{}
	InitializeProduction(p, 5_000000, 0, game.EntityGPU, 1, true, 0, 10000, 0)
	return s, p
}

func TestStake(t *testing.T) {
	s, p := stakingFixture()

	require.NoError(t, Stake(s, p, 1000))
	assert.True(t, s.IsStaked)
	assert.Equal(t, int64(1000), s.StakingStartTime)
	assert.False(t, p.IsActive, "production pauses while staked")
	assert.Equal(t, int64(1000), p.LastCollectionTime)

	assert.ErrorIs(t, Stake(s, p, 2000), game.ErrAlreadyStaked)
}

func TestUnstake_EarlyPenalty(t *testing.T) {
	// 3 USDC/hr base at 150% reward rate is 4.5 USDC/hr. Two hours earns 9
	// USDC gross; leaving before the minimum period halves it.
	s, p := stakingFixture()
	require.NoError(t, Stake(s, p, 0))

	usdc, aifi, err := Unstake(s, p, 7200)
	require.NoError(t, err)
	assert.Equal(t, uint64(4_500000), usdc)
	assert.Equal(t, uint64(1_500000), aifi) // 1.5 AiFi/hr * 2h, halved
	assert.Equal(t, uint64(4_500000), s.AccumulatedUSDC)
	assert.Equal(t, uint64(1_500000), s.AccumulatedAiFi)

	assert.False(t, s.IsStaked)
	assert.Equal(t, int64(0), s.StakingStartTime)
	assert.True(t, p.IsActive, "production resumes on unstake")
	assert.Equal(t, int64(7200), p.LastCollectionTime)
}

func TestUnstake_FullPeriod(t *testing.T) {
	s, p := stakingFixture()
	require.NoError(t, Stake(s, p, 0))

	// Exactly the minimum period: no penalty.
	usdc, aifi, err := Unstake(s, p, 86400)
	require.NoError(t, err)
	assert.Equal(t, uint64(108_000000), usdc) // 4.5 USDC/hr * 24h
	assert.Equal(t, uint64(36_000000), aifi)  // 1.5 AiFi/hr * 24h
}

func TestUnstake_Errors(t *testing.T) {
	s, p := stakingFixture()

	_, _, err := Unstake(s, p, 100)
	assert.ErrorIs(t, err, game.ErrNotStaked)

	require.NoError(t, Stake(s, p, 100))
	_, _, err = Unstake(s, p, 100)
	assert.ErrorIs(t, err, game.ErrInvalidTimestamp)
	assert.True(t, s.IsStaked, "failed unstake leaves the stake in place")

	_, _, err = Unstake(s, p, 50)
	assert.ErrorIs(t, err, game.ErrInvalidTimestamp)
}

func TestUnstake_AccumulatesAcrossCycles(t *testing.T) {
	s, p := stakingFixture()

	require.NoError(t, Stake(s, p, 0))
	_, _, err := Unstake(s, p, 7200)
	require.NoError(t, err)

	require.NoError(t, Stake(s, p, 10000))
	_, _, err = Unstake(s, p, 17200)
	require.NoError(t, err)

	assert.Equal(t, uint64(9_000000), s.AccumulatedUSDC)
}

func TestCollectRewards(t *testing.T) {
	s, p := stakingFixture()
	require.NoError(t, Stake(s, p, 0))
	_, _, err := Unstake(s, p, 7200)
	require.NoError(t, err)

	w := &game.Wallet{}
	require.NoError(t, CollectRewards(s, w, 8000))

	assert.Equal(t, uint64(4_500000), w.USDC)
	assert.Equal(t, uint64(1_500000), w.AiFi)
	assert.Equal(t, uint64(0), s.AccumulatedUSDC)
	assert.Equal(t, uint64(0), s.AccumulatedAiFi)
	assert.Equal(t, int64(8000), s.LastClaimTime)

	assert.ErrorIs(t, CollectRewards(s, w, 9000), game.ErrNoRewardsAvailable)
}

func TestCollectRewards_Disabled(t *testing.T) {
	s, _ := stakingFixture()
	s.AccumulatedUSDC = 100
	s.CanClaimRewards = false

	w := &game.Wallet{}
	assert.ErrorIs(t, CollectRewards(s, w, 100), game.ErrClaimingDisabled)
	assert.Equal(t, uint64(100), s.AccumulatedUSDC)
}

func TestUpdateStakingParams(t *testing.T) {
	s, p := stakingFixture()
	require.NoError(t, Stake(s, p, 0))

	UpdateStakingParams(s, 3600, 20000, 1000, 4_000000, 2_000000, false)
	assert.True(t, s.IsStaked, "retuning must not unstake")
	assert.Equal(t, uint16(20000), s.RewardRate)
	assert.False(t, s.CanClaimRewards)
}
