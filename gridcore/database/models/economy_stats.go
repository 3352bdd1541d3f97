package models

import (
	"time"

	"github.com/uptrace/bun"
)

// EconomyStats is a periodic health sample of the whole economy, recorded by
// the snapshot loop alongside the world state.
type EconomyStats struct {
	bun.BaseModel `bun:"table:economy_stats,alias:es"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Timestamp time.Time `bun:"timestamp,notnull"`

	TotalWealthUSDC   int64 `bun:"total_wealth_usdc,notnull"`
	AverageWealthUSDC int64 `bun:"average_wealth_usdc,notnull"`
	WalletCount       int   `bun:"wallet_count,notnull"`

	ActiveProducers int `bun:"active_producers,notnull"`
	StakedEntities  int `bun:"staked_entities,notnull"`
	ActiveListings  int `bun:"active_listings,notnull"`

	TotalLotteryBets int64 `bun:"total_lottery_bets,notnull"`
	TotalLotteryWins int64 `bun:"total_lottery_wins,notnull"`
}
