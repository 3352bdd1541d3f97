package economy

import "github.com/yieldgrid/game-core/gridcore/game"

// AiFiToUSDCRatio converts AiFi bets into USDC prizes.
const AiFiToUSDCRatio = 5

// lotteryWinnersKept bounds the recent-winner history.
const lotteryWinnersKept = 10

// InitializeLottery sets the bet floor, odds, and payout cap, and activates
// the lottery.
func InitializeLottery(lp *game.LotteryPrize, minBet uint64, winProbability uint16, maxWinMultiplier uint32, now int64) error {
	if winProbability == 0 || uint64(winProbability) > game.BasisPoints {
		return game.ErrInvalidWinProbability
	}
	if maxWinMultiplier == 0 {
		return game.ErrInvalidWinMultiplier
	}
	lp.MinBetAmount = minBet
	lp.WinProbability = winProbability
	lp.MaxWinMultiplier = maxWinMultiplier
	lp.IsActive = true
	lp.LastUpdateTime = now
	lp.TotalBets = 0
	lp.TotalWins = 0
	lp.RecentWinners = nil
	lp.RecentPrizes = nil
	return nil
}

// UpdateLotteryParams retunes the lottery, including pausing it.
func UpdateLotteryParams(lp *game.LotteryPrize, minBet uint64, winProbability uint16, maxWinMultiplier uint32, active bool, now int64) error {
	if winProbability == 0 || uint64(winProbability) > game.BasisPoints {
		return game.ErrInvalidWinProbability
	}
	if maxWinMultiplier == 0 {
		return game.ErrInvalidWinMultiplier
	}
	lp.MinBetAmount = minBet
	lp.WinProbability = winProbability
	lp.MaxWinMultiplier = maxWinMultiplier
	lp.IsActive = active
	lp.LastUpdateTime = now
	return nil
}

// PlaceBet burns an AiFi bet and, on a win, pays a USDC prize of
// bet * AiFiToUSDCRatio scaled by a multiplier between 1x and the cap.
// Randomness is supplied by the caller so outcomes replay deterministically.
// Returns the prize (zero on a loss).
func PlaceBet(lp *game.LotteryPrize, w *game.Wallet, player game.EntityID, bet, randomness uint64, now int64) (uint64, error) {
	if !lp.IsActive {
		return 0, game.ErrLotteryNotActive
	}
	if bet < lp.MinBetAmount {
		return 0, game.ErrBetAmountTooLow
	}
	if w.AiFi < bet {
		return 0, game.ErrInsufficientFunds
	}

	if err := w.Debit(game.CurrencyAiFi, bet); err != nil {
		return 0, err
	}
	lp.TotalBets++
	lp.LastUpdateTime = now

	roll := randomness%game.BasisPoints + 1 // 1..10000
	if roll > uint64(lp.WinProbability) {
		return 0, nil
	}

	// Multiplier in per-mille, 1000 (1x) up to the cap.
	multiplier := uint64(1000)
	if lp.MaxWinMultiplier > 1000 {
		multiplier = 1000 + roll%(uint64(lp.MaxWinMultiplier)-1000) + 1
	}
	scaled, err := mulDiv(bet, AiFiToUSDCRatio*multiplier, 1000)
	if err != nil {
		return 0, err
	}
	if err := w.Credit(game.CurrencyUSDC, scaled); err != nil {
		return 0, err
	}

	lp.TotalWins++
	lp.RecentWinners = append(lp.RecentWinners, player)
	lp.RecentPrizes = append(lp.RecentPrizes, scaled)
	if len(lp.RecentWinners) > lotteryWinnersKept {
		lp.RecentWinners = lp.RecentWinners[1:]
		lp.RecentPrizes = lp.RecentPrizes[1:]
	}
	return scaled, nil
}
