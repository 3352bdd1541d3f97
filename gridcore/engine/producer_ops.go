package engine

import (
	"log/slog"
	"time"

	"github.com/yieldgrid/game-core/gridcore/economy"
	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

// ProductionInit bundles the INITIALIZE arguments for a producer.
type ProductionInit struct {
	USDCPerHour   uint64
	AiFiPerHour   uint64
	OperatingCost uint64
	EfficiencyBps uint16
	Producer      game.EntityType
	Level         uint8
	IsActive      bool
}

// InitializeProduction sets up a producer's output rates.
func (e *Engine) InitializeProduction(entity game.EntityID, init ProductionInit, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.InitializeProduction(tx.Production(entity),
			init.USDCPerHour, init.AiFiPerHour,
			init.Producer, init.Level, init.IsActive,
			init.OperatingCost, init.EfficiencyBps, now)
		return nil
	})
	e.done("production_initialize", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// SetProductionActive toggles a producer on or off.
func (e *Engine) SetProductionActive(entity game.EntityID, active bool, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.SetProductionActive(tx.Production(entity), active, now)
		return nil
	})
	e.done("production_set_active", start, err,
		slog.Uint64("entity", uint64(entity)),
		slog.Bool("active", active))
	return err
}

// UpdateProductionRates overwrites a producer's rates.
func (e *Engine) UpdateProductionRates(entity game.EntityID, usdcPerHour, aifiPerHour, operatingCost uint64, efficiencyBps uint16) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.UpdateProductionRates(tx.Production(entity), usdcPerHour, aifiPerHour, operatingCost, efficiencyBps)
		return nil
	})
	e.done("production_update_rates", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// Collect pays out a producer's accrued output into a wallet.
func (e *Engine) Collect(producer, wallet game.EntityID, now int64) (usdc, aifi uint64, err error) {
	start := time.Now()
	err = e.reg.Update(func(tx *registry.Tx) error {
		var err error
		usdc, aifi, err = economy.Collect(tx.Production(producer), tx.Wallet(wallet), now)
		return err
	})
	e.done("production_collect", start, err,
		slog.Uint64("producer", uint64(producer)),
		slog.Uint64("wallet", uint64(wallet)),
		slog.Uint64("usdc", usdc),
		slog.Uint64("aifi", aifi))
	return usdc, aifi, err
}

// UpgradeableInit bundles the INITIALIZE arguments for leveling.
type UpgradeableInit struct {
	Kind            game.EntityType
	CurrentLevel    uint8
	MaxLevel        uint8
	UpgradeCooldown uint32
	NextUSDCCost    uint64
	NextAiFiCost    uint64
	NextUSDCBoost   uint16
	NextAiFiBoost   uint16
}

// InitializeUpgradeable sets up an entity's leveling state.
func (e *Engine) InitializeUpgradeable(entity game.EntityID, init UpgradeableInit, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.InitializeUpgradeable(tx.Upgradeable(entity),
			init.Kind, init.CurrentLevel, init.MaxLevel, init.UpgradeCooldown,
			init.NextUSDCCost, init.NextAiFiCost,
			init.NextUSDCBoost, init.NextAiFiBoost, now)
		return nil
	})
	e.done("upgrade_initialize", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// UpdateUpgradeParams retunes an entity's next upgrade.
func (e *Engine) UpdateUpgradeParams(entity game.EntityID, maxLevel uint8, cooldown uint32, usdcCost, aifiCost uint64, usdcBoost, aifiBoost uint16) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.UpdateUpgradeParams(tx.Upgradeable(entity), maxLevel, cooldown, usdcCost, aifiCost, usdcBoost, aifiBoost)
		return nil
	})
	e.done("upgrade_update_params", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// Upgrade levels a producer up, paying from the wallet and boosting the
// linked production.
func (e *Engine) Upgrade(entity, wallet game.EntityID, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.Upgrade(tx.Upgradeable(entity), tx.Wallet(wallet), tx.Production(entity), now)
	})
	e.done("upgrade", start, err,
		slog.Uint64("entity", uint64(entity)),
		slog.Uint64("wallet", uint64(wallet)))
	return err
}

// StakeableInit bundles the INITIALIZE arguments for staking.
type StakeableInit struct {
	Kind             game.EntityType
	MinStakingPeriod uint32
	RewardRate       uint16
	UnstakingPenalty uint16
	BaseUSDCPerHour  uint64
	BaseAiFiPerHour  uint64
	CanClaimRewards  bool
}

// InitializeStakeable sets up an entity's staking policy.
func (e *Engine) InitializeStakeable(entity game.EntityID, init StakeableInit, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.InitializeStakeable(tx.Stakeable(entity),
			init.Kind, init.MinStakingPeriod,
			init.RewardRate, init.UnstakingPenalty,
			init.BaseUSDCPerHour, init.BaseAiFiPerHour,
			init.CanClaimRewards, now)
		return nil
	})
	e.done("staking_initialize", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// UpdateStakingParams retunes an entity's staking policy.
func (e *Engine) UpdateStakingParams(entity game.EntityID, minPeriod uint32, rewardRate, penalty uint16, baseUSDC, baseAiFi uint64, canClaim bool) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		economy.UpdateStakingParams(tx.Stakeable(entity), minPeriod, rewardRate, penalty, baseUSDC, baseAiFi, canClaim)
		return nil
	})
	e.done("staking_update_params", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// Stake locks a producer's output for the reward stream.
func (e *Engine) Stake(entity game.EntityID, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.Stake(tx.Stakeable(entity), tx.Production(entity), now)
	})
	e.done("stake", start, err, slog.Uint64("entity", uint64(entity)))
	return err
}

// Unstake ends a stake, banking its rewards and resuming production.
func (e *Engine) Unstake(entity game.EntityID, now int64) (usdc, aifi uint64, err error) {
	start := time.Now()
	err = e.reg.Update(func(tx *registry.Tx) error {
		var err error
		usdc, aifi, err = economy.Unstake(tx.Stakeable(entity), tx.Production(entity), now)
		return err
	})
	e.done("unstake", start, err,
		slog.Uint64("entity", uint64(entity)),
		slog.Uint64("usdc", usdc),
		slog.Uint64("aifi", aifi))
	return usdc, aifi, err
}

// CollectRewards pays banked staking rewards into a wallet.
func (e *Engine) CollectRewards(entity, wallet game.EntityID, now int64) error {
	start := time.Now()
	err := e.reg.Update(func(tx *registry.Tx) error {
		return economy.CollectRewards(tx.Stakeable(entity), tx.Wallet(wallet), now)
	})
	e.done("staking_collect_rewards", start, err,
		slog.Uint64("entity", uint64(entity)),
		slog.Uint64("wallet", uint64(wallet)))
	return err
}
