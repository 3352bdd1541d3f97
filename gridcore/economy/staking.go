package economy

import "github.com/yieldgrid/game-core/gridcore/game"

// InitializeStakeable sets the base reward rates and staking policy. The
// entity starts unstaked.
func InitializeStakeable(s *game.Stakeable, kind game.EntityType, minPeriod uint32, rewardRate, penalty uint16, baseUSDCPerHour, baseAiFiPerHour uint64, canClaim bool, now int64) {
	s.Kind = kind
	s.IsStaked = false
	s.StakingStartTime = 0
	s.MinStakingPeriod = minPeriod
	s.RewardRate = rewardRate
	s.UnstakingPenalty = penalty
	s.AccumulatedUSDC = 0
	s.AccumulatedAiFi = 0
	s.LastClaimTime = now
	s.CanClaimRewards = canClaim
	s.BaseUSDCPerHour = baseUSDCPerHour
	s.BaseAiFiPerHour = baseAiFiPerHour
}

// UpdateStakingParams overwrites the policy without changing staking status.
// Claims can be disabled at any time.
func UpdateStakingParams(s *game.Stakeable, minPeriod uint32, rewardRate, penalty uint16, baseUSDCPerHour, baseAiFiPerHour uint64, canClaim bool) {
	s.MinStakingPeriod = minPeriod
	s.RewardRate = rewardRate
	s.UnstakingPenalty = penalty
	s.BaseUSDCPerHour = baseUSDCPerHour
	s.BaseAiFiPerHour = baseAiFiPerHour
	s.CanClaimRewards = canClaim
}

// Stake locks the entity's production in exchange for the reward stream.
// The linked Production pauses and its clock resets so no output accrues
// while staked.
func Stake(s *game.Stakeable, p *game.Production, now int64) error {
	if s.IsStaked {
		return game.ErrAlreadyStaked
	}
	s.IsStaked = true
	s.StakingStartTime = now
	p.IsActive = false
	p.LastCollectionTime = now
	return nil
}

// Unstake ends the stake, banks the rewards earned over the staking period,
// and resumes production. Rewards accrued before MinStakingPeriod are cut by
// the unstaking penalty.
func Unstake(s *game.Stakeable, p *game.Production, now int64) (usdc, aifi uint64, err error) {
	if !s.IsStaked {
		return 0, 0, game.ErrNotStaked
	}
	duration := now - s.StakingStartTime
	if duration <= 0 {
		return 0, 0, game.ErrInvalidTimestamp
	}

	effUSDC, err := applyBps(s.BaseUSDCPerHour, s.RewardRate)
	if err != nil {
		return 0, 0, err
	}
	effAiFi, err := applyBps(s.BaseAiFiPerHour, s.RewardRate)
	if err != nil {
		return 0, 0, err
	}
	grossUSDC, err := mulDiv(effUSDC, uint64(duration), secondsPerHour)
	if err != nil {
		return 0, 0, err
	}
	grossAiFi, err := mulDiv(effAiFi, uint64(duration), secondsPerHour)
	if err != nil {
		return 0, 0, err
	}

	netUSDC, netAiFi := grossUSDC, grossAiFi
	if duration < int64(s.MinStakingPeriod) && s.UnstakingPenalty > 0 {
		usdcPenalty, err := applyBps(grossUSDC, s.UnstakingPenalty)
		if err != nil {
			return 0, 0, err
		}
		aifiPenalty, err := applyBps(grossAiFi, s.UnstakingPenalty)
		if err != nil {
			return 0, 0, err
		}
		netUSDC = grossUSDC - usdcPenalty
		netAiFi = grossAiFi - aifiPenalty
	}

	s.AccumulatedUSDC += netUSDC
	s.AccumulatedAiFi += netAiFi
	s.IsStaked = false
	s.StakingStartTime = 0

	p.IsActive = true
	p.LastCollectionTime = now
	return netUSDC, netAiFi, nil
}

// CollectRewards pays the accumulated rewards into the wallet and zeroes
// them.
func CollectRewards(s *game.Stakeable, w *game.Wallet, now int64) error {
	if !s.CanClaimRewards {
		return game.ErrClaimingDisabled
	}
	if s.AccumulatedUSDC == 0 && s.AccumulatedAiFi == 0 {
		return game.ErrNoRewardsAvailable
	}
	if err := w.Credit(game.CurrencyUSDC, s.AccumulatedUSDC); err != nil {
		return err
	}
	if err := w.Credit(game.CurrencyAiFi, s.AccumulatedAiFi); err != nil {
		return err
	}
	s.AccumulatedUSDC = 0
	s.AccumulatedAiFi = 0
	s.LastClaimTime = now
	return nil
}
