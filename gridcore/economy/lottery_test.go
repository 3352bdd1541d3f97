package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldgrid/game-core/gridcore/game"
)

func TestInitializeLottery(t *testing.T) {
	lp := &game.LotteryPrize{}
	require.NoError(t, InitializeLottery(lp, 1_000000, 500, 10_000, 100))

	assert.True(t, lp.IsActive)
	assert.Equal(t, uint64(1_000000), lp.MinBetAmount)
	assert.Equal(t, uint64(0), lp.TotalBets)
}

func TestInitializeLottery_Invalid(t *testing.T) {
	lp := &game.LotteryPrize{}
	assert.ErrorIs(t, InitializeLottery(lp, 1, 0, 1000, 0), game.ErrInvalidWinProbability)
	assert.ErrorIs(t, InitializeLottery(lp, 1, 10001, 1000, 0), game.ErrInvalidWinProbability)
	assert.ErrorIs(t, InitializeLottery(lp, 1, 500, 0, 0), game.ErrInvalidWinMultiplier)
}

func TestPlaceBet_Loss(t *testing.T) {
	lp := &game.LotteryPrize{}
	require.NoError(t, InitializeLottery(lp, 1_000000, 1, 10_000, 0))
	w := &game.Wallet{AiFi: 5_000000}

	// randomness 5000 rolls 5001, far above a 0.01% win probability.
	prize, err := PlaceBet(lp, w, 7, 1_000000, 5000, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), prize)

	assert.Equal(t, uint64(4_000000), w.AiFi, "the bet is burned either way")
	assert.Equal(t, uint64(0), w.USDC)
	assert.Equal(t, uint64(1), lp.TotalBets)
	assert.Equal(t, uint64(0), lp.TotalWins)
	assert.Empty(t, lp.RecentWinners)
}

func TestPlaceBet_GuaranteedWin(t *testing.T) {
	lp := &game.LotteryPrize{}
	// Probability 10000 always wins; multiplier cap 1000 pins the payout to
	// exactly 1x.
	require.NoError(t, InitializeLottery(lp, 1_000000, 10000, 1000, 0))
	w := &game.Wallet{AiFi: 2_000000}

	prize, err := PlaceBet(lp, w, 7, 2_000000, 123456, 100)
	require.NoError(t, err)

	// 2 AiFi at the 5x AiFi→USDC ratio and a 1x multiplier pays 10 USDC.
	assert.Equal(t, uint64(10_000000), prize)
	assert.Equal(t, uint64(10_000000), w.USDC)
	assert.Equal(t, uint64(0), w.AiFi)
	assert.Equal(t, uint64(1), lp.TotalWins)
	assert.Equal(t, []game.EntityID{7}, lp.RecentWinners)
	assert.Equal(t, []uint64{10_000000}, lp.RecentPrizes)
}

func TestPlaceBet_Deterministic(t *testing.T) {
	run := func() uint64 {
		lp := &game.LotteryPrize{}
		require.NoError(t, InitializeLottery(lp, 1, 10000, 5000, 0))
		w := &game.Wallet{AiFi: 1_000000}
		prize, err := PlaceBet(lp, w, 7, 1_000000, 987654, 100)
		require.NoError(t, err)
		return prize
	}
	assert.Equal(t, run(), run(), "same randomness must pay the same prize")
}

func TestPlaceBet_Errors(t *testing.T) {
	lp := &game.LotteryPrize{}
	require.NoError(t, InitializeLottery(lp, 1_000000, 500, 10_000, 0))
	w := &game.Wallet{AiFi: 5_000000}

	_, err := PlaceBet(lp, w, 7, 500_000, 1, 100)
	assert.ErrorIs(t, err, game.ErrBetAmountTooLow)

	_, err = PlaceBet(lp, &game.Wallet{AiFi: 1}, 7, 1_000000, 1, 100)
	assert.ErrorIs(t, err, game.ErrInsufficientFunds)

	require.NoError(t, UpdateLotteryParams(lp, 1_000000, 500, 10_000, false, 200))
	_, err = PlaceBet(lp, w, 7, 1_000000, 1, 100)
	assert.ErrorIs(t, err, game.ErrLotteryNotActive)

	assert.Equal(t, uint64(5_000000), w.AiFi)
	assert.Equal(t, uint64(0), lp.TotalBets)
}

func TestPlaceBet_WinnerHistoryBounded(t *testing.T) {
	lp := &game.LotteryPrize{}
	require.NoError(t, InitializeLottery(lp, 1, 10000, 1000, 0))
	w := &game.Wallet{AiFi: 1_000000}

	for i := 0; i < 25; i++ {
		_, err := PlaceBet(lp, w, game.EntityID(i), 10, uint64(i), int64(i))
		require.NoError(t, err)
	}

	assert.Len(t, lp.RecentWinners, 10)
	assert.Len(t, lp.RecentPrizes, 10)
	assert.Equal(t, game.EntityID(24), lp.RecentWinners[9], "newest winner kept last")
	assert.Equal(t, game.EntityID(15), lp.RecentWinners[0], "oldest surviving winner first")
}
