package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/yieldgrid/game-core/gridcore/database/models"
	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

// StatsRepository records periodic economy health samples.
type StatsRepository struct {
	*BaseRepository
}

func NewStatsRepository(db *bun.DB) *StatsRepository {
	return &StatsRepository{BaseRepository: NewBaseRepository(db)}
}

// RecordSample derives a stats row from a world snapshot and stores it.
func (r *StatsRepository) RecordSample(ctx context.Context, snap map[game.EntityID]*registry.Components, at time.Time) error {
	stats := deriveStats(snap, at)

	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().Model(&stats).Exec(timeoutCtx)
	return r.HandleError("record_sample", "economy_stats", err)
}

// Latest returns the most recent stats sample.
func (r *StatsRepository) Latest(ctx context.Context) (*models.EconomyStats, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	stats := new(models.EconomyStats)
	err := r.db.NewSelect().
		Model(stats).
		Order("timestamp DESC").
		Limit(1).
		Scan(timeoutCtx)
	if err != nil {
		return nil, r.HandleError("latest", "economy_stats", err)
	}
	return stats, nil
}

func deriveStats(snap map[game.EntityID]*registry.Components, at time.Time) models.EconomyStats {
	stats := models.EconomyStats{Timestamp: at}

	var totalUSDC uint64
	for _, c := range snap {
		if c.Wallet != nil {
			stats.WalletCount++
			totalUSDC += c.Wallet.USDC
		}
		if c.Production != nil && c.Production.IsActive {
			stats.ActiveProducers++
		}
		if c.Stakeable != nil && c.Stakeable.IsStaked {
			stats.StakedEntities++
		}
		if c.Listing != nil && c.Listing.Status == game.ListingActive {
			stats.ActiveListings++
		}
		if c.Lottery != nil {
			stats.TotalLotteryBets += int64(c.Lottery.TotalBets)
			stats.TotalLotteryWins += int64(c.Lottery.TotalWins)
		}
	}

	stats.TotalWealthUSDC = int64(totalUSDC)
	if stats.WalletCount > 0 {
		stats.AverageWealthUSDC = stats.TotalWealthUSDC / int64(stats.WalletCount)
	}
	return stats
}
