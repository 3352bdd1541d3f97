package config

import "time"

// World-wide constants organized by domain

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	SnapshotTimeout     = 1 * time.Minute
	StatsQueryTimeout   = 10 * time.Second
	NetworkDialTimeout  = 5 * time.Second
	NetworkKeepAlive    = 30 * time.Second

	// Cache settings
	ValuationCacheExpiration = 30 * time.Second
	CacheSize                = 10000

	// Batch processing
	SnapshotBatchSize = 500
	MaxRetries        = 3
	ParallelUpdates   = 4
)

// Economy Constants
const (
	// Default price walk tuning for the bootstrap currencies, micro-units.
	DefaultUSDCPrice = 1_000_000
	DefaultBTCPrice  = 50_000_000_000
	DefaultETHPrice  = 3_000_000_000
	DefaultSOLPrice  = 150_000_000
	DefaultAiFiPrice = 2_000_000

	// Walk bounds as a fraction of the starting price.
	DefaultMinPriceDivisor    = 10
	DefaultMaxPriceMultiplier = 10

	// Volatility in basis points and update cadence in seconds.
	DefaultVolatilityBps  = 500
	DefaultUpdateInterval = 60
)

// Game Mechanics Constants
const (
	// Bootstrap funding for new players, micro-units.
	StarterUSDC = 1_000_000_000

	// Producer defaults.
	DefaultEfficiencyBps   = 10_000
	DefaultUpgradeCooldown = 3600

	// Staking defaults.
	DefaultMinStakingPeriod = 86_400
	DefaultRewardRateBps    = 15_000
	DefaultPenaltyBps       = 5_000

	// Lottery defaults.
	DefaultLotteryMinBet      = 1_000_000
	DefaultLotteryProbability = 500
	DefaultLotteryMultiplier  = 10_000
)

// Logging Constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
