package economy

import "github.com/yieldgrid/game-core/gridcore/game"

// InitializeUpgradeable sets the leveling state and the first upgrade's costs
// and boosts.
func InitializeUpgradeable(u *game.Upgradeable, kind game.EntityType, currentLevel, maxLevel uint8, cooldown uint32, usdcCost, aifiCost uint64, usdcBoost, aifiBoost uint16, now int64) {
	u.Kind = kind
	u.CurrentLevel = currentLevel
	u.MaxLevel = maxLevel
	u.UpgradeCooldown = cooldown
	u.NextUSDCCost = usdcCost
	u.NextAiFiCost = aifiCost
	u.NextUSDCBoost = usdcBoost
	u.NextAiFiBoost = aifiBoost
	u.LastUpgradeTime = now
	u.CanUpgrade = currentLevel < maxLevel
}

// UpdateUpgradeParams overwrites the tunables without changing the current
// level, and recomputes CanUpgrade.
func UpdateUpgradeParams(u *game.Upgradeable, maxLevel uint8, cooldown uint32, usdcCost, aifiCost uint64, usdcBoost, aifiBoost uint16) {
	u.MaxLevel = maxLevel
	u.UpgradeCooldown = cooldown
	u.NextUSDCCost = usdcCost
	u.NextAiFiCost = aifiCost
	u.NextUSDCBoost = usdcBoost
	u.NextAiFiBoost = aifiBoost
	u.CanUpgrade = u.CurrentLevel < u.MaxLevel
}

// Upgrade spends the next level's costs and applies its production boosts.
// The USDC and AiFi funds checks are separate so callers can tell which
// currency fell short. On any failure nothing changes.
func Upgrade(u *game.Upgradeable, w *game.Wallet, p *game.Production, now int64) error {
	if u.CurrentLevel >= u.MaxLevel {
		return game.ErrMaxLevelReached
	}
	if now-u.LastUpgradeTime < int64(u.UpgradeCooldown) {
		return game.ErrCooldownActive
	}
	if w.USDC < u.NextUSDCCost {
		return game.ErrInsufficientFunds
	}
	if w.AiFi < u.NextAiFiCost {
		return game.ErrInsufficientAiFiFunds
	}

	usdcBoost, err := applyBps(p.USDCPerHour, u.NextUSDCBoost)
	if err != nil {
		return err
	}
	aifiBoost, err := applyBps(p.AiFiPerHour, u.NextAiFiBoost)
	if err != nil {
		return err
	}

	if err := w.Debit(game.CurrencyUSDC, u.NextUSDCCost); err != nil {
		return err
	}
	if err := w.Debit(game.CurrencyAiFi, u.NextAiFiCost); err != nil {
		return err
	}

	p.USDCPerHour += usdcBoost
	p.AiFiPerHour += aifiBoost

	u.CurrentLevel++
	u.LastUpgradeTime = now
	u.CanUpgrade = u.CurrentLevel < u.MaxLevel
	p.Level = u.CurrentLevel
	return nil
}
