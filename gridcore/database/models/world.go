package models

import (
	"github.com/uptrace/bun"
)

// One table per component type, keyed by entity id. Monetary columns are
// micro-unit integers, exactly as the in-memory records hold them.

type Wallet struct {
	bun.BaseModel `bun:"table:wallets,alias:w"`

	EntityID int64 `bun:"entity_id,pk"`
	USDC     int64 `bun:"usdc,notnull"`
	BTC      int64 `bun:"btc,notnull"`
	ETH      int64 `bun:"eth,notnull"`
	SOL      int64 `bun:"sol,notnull"`
	AiFi     int64 `bun:"aifi,notnull"`
}

type Price struct {
	bun.BaseModel `bun:"table:prices,alias:p"`

	EntityID        int64   `bun:"entity_id,pk"`
	Currency        uint8   `bun:"currency,notnull"`
	Current         int64   `bun:"current_price,notnull"`
	Previous        int64   `bun:"previous_price,notnull"`
	LastUpdateTime  int64   `bun:"last_update_time,notnull"`
	MinPrice        int64   `bun:"min_price,notnull"`
	MaxPrice        int64   `bun:"max_price,notnull"`
	Volatility      uint16  `bun:"volatility,notnull"`
	UpdateFrequency uint32  `bun:"update_frequency,notnull"`
	UpdatesEnabled  bool    `bun:"updates_enabled,notnull"`
	Trend           int8    `bun:"trend,notnull"`
	History         []int64 `bun:"history,type:jsonb"`
	HistoryIndex    uint8   `bun:"history_index,notnull"`
	SupplyFactor    uint16  `bun:"supply_factor,notnull"`
	DemandFactor    uint16  `bun:"demand_factor,notnull"`
}

type Production struct {
	bun.BaseModel `bun:"table:productions,alias:pr"`

	EntityID           int64  `bun:"entity_id,pk"`
	USDCPerHour        int64  `bun:"usdc_per_hour,notnull"`
	AiFiPerHour        int64  `bun:"aifi_per_hour,notnull"`
	OperatingCost      int64  `bun:"operating_cost,notnull"`
	LastCollectionTime int64  `bun:"last_collection_time,notnull"`
	EfficiencyBps      uint16 `bun:"efficiency_bps,notnull"`
	Producer           uint8  `bun:"producer,notnull"`
	Level              uint8  `bun:"level,notnull"`
	IsActive           bool   `bun:"is_active,notnull"`
}

type Upgradeable struct {
	bun.BaseModel `bun:"table:upgradeables,alias:u"`

	EntityID        int64  `bun:"entity_id,pk"`
	CurrentLevel    uint8  `bun:"current_level,notnull"`
	MaxLevel        uint8  `bun:"max_level,notnull"`
	LastUpgradeTime int64  `bun:"last_upgrade_time,notnull"`
	CanUpgrade      bool   `bun:"can_upgrade,notnull"`
	Kind            uint8  `bun:"kind,notnull"`
	UpgradeCooldown uint32 `bun:"upgrade_cooldown,notnull"`
	NextUSDCCost    int64  `bun:"next_usdc_cost,notnull"`
	NextAiFiCost    int64  `bun:"next_aifi_cost,notnull"`
	NextUSDCBoost   uint16 `bun:"next_usdc_boost,notnull"`
	NextAiFiBoost   uint16 `bun:"next_aifi_boost,notnull"`
}

type Stakeable struct {
	bun.BaseModel `bun:"table:stakeables,alias:s"`

	EntityID         int64  `bun:"entity_id,pk"`
	IsStaked         bool   `bun:"is_staked,notnull"`
	StakingStartTime int64  `bun:"staking_start_time,notnull"`
	MinStakingPeriod uint32 `bun:"min_staking_period,notnull"`
	RewardRate       uint16 `bun:"reward_rate,notnull"`
	UnstakingPenalty uint16 `bun:"unstaking_penalty,notnull"`
	AccumulatedUSDC  int64  `bun:"accumulated_usdc,notnull"`
	AccumulatedAiFi  int64  `bun:"accumulated_aifi,notnull"`
	LastClaimTime    int64  `bun:"last_claim_time,notnull"`
	Kind             uint8  `bun:"kind,notnull"`
	CanClaimRewards  bool   `bun:"can_claim_rewards,notnull"`
	BaseUSDCPerHour  int64  `bun:"base_usdc_per_hour,notnull"`
	BaseAiFiPerHour  int64  `bun:"base_aifi_per_hour,notnull"`
}

type Ownership struct {
	bun.BaseModel `bun:"table:ownerships,alias:o"`

	EntityID      int64   `bun:"entity_id,pk"`
	OwnerType     uint8   `bun:"owner_type,notnull"`
	OwnedEntities []int64 `bun:"owned_entities,type:jsonb"`
	OwnedTypes    []uint8 `bun:"owned_types,type:jsonb"`
}

type Listing struct {
	bun.BaseModel `bun:"table:listings,alias:l"`

	EntityID         int64 `bun:"entity_id,pk"`
	ListingID        int64 `bun:"listing_id,notnull"`
	AssetID          int64 `bun:"asset_id,notnull"`
	AssetType        uint8 `bun:"asset_type,notnull"`
	Seller           int64 `bun:"seller,notnull"`
	Buyer            int64 `bun:"buyer,notnull"`
	AskPrice         int64 `bun:"ask_price,notnull"`
	PreviousAskPrice int64 `bun:"previous_ask_price,notnull"`
	LastSalePrice    int64 `bun:"last_sale_price,notnull"`
	Payment          uint8 `bun:"payment,notnull"`
	Status           uint8 `bun:"status,notnull"`
	CreatedAt        int64 `bun:"created_at,notnull"`
	UpdatedAt        int64 `bun:"updated_at,notnull"`
}

type Lottery struct {
	bun.BaseModel `bun:"table:lotteries,alias:lt"`

	EntityID         int64   `bun:"entity_id,pk"`
	MinBetAmount     int64   `bun:"min_bet_amount,notnull"`
	WinProbability   uint16  `bun:"win_probability,notnull"`
	MaxWinMultiplier uint32  `bun:"max_win_multiplier,notnull"`
	LastUpdateTime   int64   `bun:"last_update_time,notnull"`
	TotalBets        int64   `bun:"total_bets,notnull"`
	TotalWins        int64   `bun:"total_wins,notnull"`
	IsActive         bool    `bun:"is_active,notnull"`
	RecentWinners    []int64 `bun:"recent_winners,type:jsonb"`
	RecentPrizes     []int64 `bun:"recent_prizes,type:jsonb"`
}
