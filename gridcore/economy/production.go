package economy

import "github.com/yieldgrid/game-core/gridcore/game"

const secondsPerHour = 3600

// InitializeProduction sets the output rates verbatim and starts the accrual
// clock at now.
func InitializeProduction(p *game.Production, usdcPerHour, aifiPerHour uint64, producer game.EntityType, level uint8, active bool, operatingCost uint64, efficiencyBps uint16, now int64) {
	p.USDCPerHour = usdcPerHour
	p.AiFiPerHour = aifiPerHour
	p.OperatingCost = operatingCost
	p.EfficiencyBps = efficiencyBps
	p.Producer = producer
	p.Level = level
	p.IsActive = active
	p.LastCollectionTime = now
}

// SetProductionActive toggles production. Activating resets the accrual clock
// so downtime is never paid out retroactively.
func SetProductionActive(p *game.Production, active bool, now int64) {
	p.IsActive = active
	if active {
		p.LastCollectionTime = now
	}
}

// UpdateProductionRates overwrites the rate fields without touching the
// accrual clock or the active flag.
func UpdateProductionRates(p *game.Production, usdcPerHour, aifiPerHour, operatingCost uint64, efficiencyBps uint16) {
	p.USDCPerHour = usdcPerHour
	p.AiFiPerHour = aifiPerHour
	p.OperatingCost = operatingCost
	p.EfficiencyBps = efficiencyBps
}

// Collect pays out the resources accrued since the last collection and
// advances the clock. The operating cost reduces only the USDC payout,
// floored at zero; AiFi is always paid in full. The clock advances even when
// zero time has elapsed.
func Collect(p *game.Production, w *game.Wallet, now int64) (usdc, aifi uint64, err error) {
	if !p.IsActive {
		return 0, 0, game.ErrProductionInactive
	}

	elapsed := now - p.LastCollectionTime
	if elapsed < 0 {
		elapsed = 0
	}

	effUSDC, err := applyBps(p.USDCPerHour, p.EfficiencyBps)
	if err != nil {
		return 0, 0, err
	}
	effAiFi, err := applyBps(p.AiFiPerHour, p.EfficiencyBps)
	if err != nil {
		return 0, 0, err
	}

	grossUSDC, err := mulDiv(effUSDC, uint64(elapsed), secondsPerHour)
	if err != nil {
		return 0, 0, err
	}
	grossAiFi, err := mulDiv(effAiFi, uint64(elapsed), secondsPerHour)
	if err != nil {
		return 0, 0, err
	}
	cost, err := mulDiv(p.OperatingCost, uint64(elapsed), secondsPerHour)
	if err != nil {
		return 0, 0, err
	}

	netUSDC := uint64(0)
	if grossUSDC > cost {
		netUSDC = grossUSDC - cost
	}

	if err := w.Credit(game.CurrencyUSDC, netUSDC); err != nil {
		return 0, 0, err
	}
	if err := w.Credit(game.CurrencyAiFi, grossAiFi); err != nil {
		return 0, 0, err
	}

	p.LastCollectionTime = now
	return netUSDC, grossAiFi, nil
}
