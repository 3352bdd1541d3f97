package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/yieldgrid/game-core/gridcore/database/models"
	"github.com/yieldgrid/game-core/gridcore/game"
	"github.com/yieldgrid/game-core/gridcore/registry"
)

// WorldRepository persists the whole component registry as one snapshot.
// A snapshot replaces the previous one atomically: truncate and insert run
// in one transaction, so a crash mid-save never leaves a half-written world.
type WorldRepository struct {
	*BaseRepository
}

func NewWorldRepository(db *bun.DB) *WorldRepository {
	return &WorldRepository{BaseRepository: NewBaseRepository(db)}
}

// SaveSnapshot writes the full world state, replacing the stored snapshot.
func (r *WorldRepository) SaveSnapshot(ctx context.Context, snap map[game.EntityID]*registry.Components) error {
	var (
		wallets      []models.Wallet
		prices       []models.Price
		productions  []models.Production
		upgradeables []models.Upgradeable
		stakeables   []models.Stakeable
		ownerships   []models.Ownership
		listings     []models.Listing
		lotteries    []models.Lottery
	)

	for id, c := range snap {
		eid := int64(id)
		if c.Wallet != nil {
			wallets = append(wallets, walletRow(eid, c.Wallet))
		}
		if c.Price != nil {
			prices = append(prices, priceRow(eid, c.Price))
		}
		if c.Production != nil {
			productions = append(productions, productionRow(eid, c.Production))
		}
		if c.Upgradeable != nil {
			upgradeables = append(upgradeables, upgradeableRow(eid, c.Upgradeable))
		}
		if c.Stakeable != nil {
			stakeables = append(stakeables, stakeableRow(eid, c.Stakeable))
		}
		if c.Ownership != nil {
			ownerships = append(ownerships, ownershipRow(eid, c.Ownership))
		}
		if c.Listing != nil {
			listings = append(listings, listingRow(eid, c.Listing))
		}
		if c.Lottery != nil {
			lotteries = append(lotteries, lotteryRow(eid, c.Lottery))
		}
	}

	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range []interface{}{
			(*models.Wallet)(nil),
			(*models.Price)(nil),
			(*models.Production)(nil),
			(*models.Upgradeable)(nil),
			(*models.Stakeable)(nil),
			(*models.Ownership)(nil),
			(*models.Listing)(nil),
			(*models.Lottery)(nil),
		} {
			if _, err := tx.NewTruncateTable().Model(model).Exec(ctx); err != nil {
				return err
			}
		}

		inserts := []interface{}{}
		if len(wallets) > 0 {
			inserts = append(inserts, &wallets)
		}
		if len(prices) > 0 {
			inserts = append(inserts, &prices)
		}
		if len(productions) > 0 {
			inserts = append(inserts, &productions)
		}
		if len(upgradeables) > 0 {
			inserts = append(inserts, &upgradeables)
		}
		if len(stakeables) > 0 {
			inserts = append(inserts, &stakeables)
		}
		if len(ownerships) > 0 {
			inserts = append(inserts, &ownerships)
		}
		if len(listings) > 0 {
			inserts = append(inserts, &listings)
		}
		if len(lotteries) > 0 {
			inserts = append(inserts, &lotteries)
		}

		for _, rows := range inserts {
			if _, err := tx.NewInsert().Model(rows).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	return r.HandleError("save_snapshot", "world", err)
}

// LoadWorld reads the stored snapshot back into component bundles.
func (r *WorldRepository) LoadWorld(ctx context.Context) (map[game.EntityID]*registry.Components, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	world := make(map[game.EntityID]*registry.Components)
	get := func(eid int64) *registry.Components {
		id := game.EntityID(eid)
		c, ok := world[id]
		if !ok {
			c = &registry.Components{}
			world[id] = c
		}
		return c
	}

	var wallets []models.Wallet
	if err := r.db.NewSelect().Model(&wallets).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "wallets", err)
	}
	for i := range wallets {
		row := &wallets[i]
		get(row.EntityID).Wallet = walletFromRow(row)
	}

	var prices []models.Price
	if err := r.db.NewSelect().Model(&prices).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "prices", err)
	}
	for i := range prices {
		row := &prices[i]
		get(row.EntityID).Price = priceFromRow(row)
	}

	var productions []models.Production
	if err := r.db.NewSelect().Model(&productions).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "productions", err)
	}
	for i := range productions {
		row := &productions[i]
		get(row.EntityID).Production = productionFromRow(row)
	}

	var upgradeables []models.Upgradeable
	if err := r.db.NewSelect().Model(&upgradeables).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "upgradeables", err)
	}
	for i := range upgradeables {
		row := &upgradeables[i]
		get(row.EntityID).Upgradeable = upgradeableFromRow(row)
	}

	var stakeables []models.Stakeable
	if err := r.db.NewSelect().Model(&stakeables).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "stakeables", err)
	}
	for i := range stakeables {
		row := &stakeables[i]
		get(row.EntityID).Stakeable = stakeableFromRow(row)
	}

	var ownerships []models.Ownership
	if err := r.db.NewSelect().Model(&ownerships).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "ownerships", err)
	}
	for i := range ownerships {
		row := &ownerships[i]
		get(row.EntityID).Ownership = ownershipFromRow(row)
	}

	var listings []models.Listing
	if err := r.db.NewSelect().Model(&listings).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "listings", err)
	}
	for i := range listings {
		row := &listings[i]
		get(row.EntityID).Listing = listingFromRow(row)
	}

	var lotteries []models.Lottery
	if err := r.db.NewSelect().Model(&lotteries).Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("load", "lotteries", err)
	}
	for i := range lotteries {
		row := &lotteries[i]
		get(row.EntityID).Lottery = lotteryFromRow(row)
	}

	return world, nil
}

func walletRow(eid int64, w *game.Wallet) models.Wallet {
	return models.Wallet{
		EntityID: eid,
		USDC:     int64(w.USDC),
		BTC:      int64(w.BTC),
		ETH:      int64(w.ETH),
		SOL:      int64(w.SOL),
		AiFi:     int64(w.AiFi),
	}
}

func walletFromRow(row *models.Wallet) *game.Wallet {
	return &game.Wallet{
		USDC: uint64(row.USDC),
		BTC:  uint64(row.BTC),
		ETH:  uint64(row.ETH),
		SOL:  uint64(row.SOL),
		AiFi: uint64(row.AiFi),
	}
}

func priceRow(eid int64, p *game.Price) models.Price {
	history := make([]int64, len(p.History))
	for i, h := range p.History {
		history[i] = int64(h)
	}
	return models.Price{
		EntityID:        eid,
		Currency:        uint8(p.Currency),
		Current:         int64(p.Current),
		Previous:        int64(p.Previous),
		LastUpdateTime:  p.LastUpdateTime,
		MinPrice:        int64(p.Min),
		MaxPrice:        int64(p.Max),
		Volatility:      p.Volatility,
		UpdateFrequency: p.UpdateFrequency,
		UpdatesEnabled:  p.UpdatesEnabled,
		Trend:           p.Trend,
		History:         history,
		HistoryIndex:    p.HistoryIndex,
		SupplyFactor:    p.SupplyFactor,
		DemandFactor:    p.DemandFactor,
	}
}

func priceFromRow(row *models.Price) *game.Price {
	p := &game.Price{
		Currency:        game.CurrencyType(row.Currency),
		Current:         uint64(row.Current),
		Previous:        uint64(row.Previous),
		LastUpdateTime:  row.LastUpdateTime,
		Min:             uint64(row.MinPrice),
		Max:             uint64(row.MaxPrice),
		Volatility:      row.Volatility,
		UpdateFrequency: row.UpdateFrequency,
		UpdatesEnabled:  row.UpdatesEnabled,
		Trend:           row.Trend,
		HistoryIndex:    row.HistoryIndex,
		SupplyFactor:    row.SupplyFactor,
		DemandFactor:    row.DemandFactor,
	}
	for i := 0; i < len(p.History) && i < len(row.History); i++ {
		p.History[i] = uint64(row.History[i])
	}
	return p
}

func productionRow(eid int64, p *game.Production) models.Production {
	return models.Production{
		EntityID:           eid,
		USDCPerHour:        int64(p.USDCPerHour),
		AiFiPerHour:        int64(p.AiFiPerHour),
		OperatingCost:      int64(p.OperatingCost),
		LastCollectionTime: p.LastCollectionTime,
		EfficiencyBps:      p.EfficiencyBps,
		Producer:           uint8(p.Producer),
		Level:              p.Level,
		IsActive:           p.IsActive,
	}
}

func productionFromRow(row *models.Production) *game.Production {
	return &game.Production{
		USDCPerHour:        uint64(row.USDCPerHour),
		AiFiPerHour:        uint64(row.AiFiPerHour),
		OperatingCost:      uint64(row.OperatingCost),
		LastCollectionTime: row.LastCollectionTime,
		EfficiencyBps:      row.EfficiencyBps,
		Producer:           game.EntityType(row.Producer),
		Level:              row.Level,
		IsActive:           row.IsActive,
	}
}

func upgradeableRow(eid int64, u *game.Upgradeable) models.Upgradeable {
	return models.Upgradeable{
		EntityID:        eid,
		CurrentLevel:    u.CurrentLevel,
		MaxLevel:        u.MaxLevel,
		LastUpgradeTime: u.LastUpgradeTime,
		CanUpgrade:      u.CanUpgrade,
		Kind:            uint8(u.Kind),
		UpgradeCooldown: u.UpgradeCooldown,
		NextUSDCCost:    int64(u.NextUSDCCost),
		NextAiFiCost:    int64(u.NextAiFiCost),
		NextUSDCBoost:   u.NextUSDCBoost,
		NextAiFiBoost:   u.NextAiFiBoost,
	}
}

func upgradeableFromRow(row *models.Upgradeable) *game.Upgradeable {
	return &game.Upgradeable{
		CurrentLevel:    row.CurrentLevel,
		MaxLevel:        row.MaxLevel,
		LastUpgradeTime: row.LastUpgradeTime,
		CanUpgrade:      row.CanUpgrade,
		Kind:            game.EntityType(row.Kind),
		UpgradeCooldown: row.UpgradeCooldown,
		NextUSDCCost:    uint64(row.NextUSDCCost),
		NextAiFiCost:    uint64(row.NextAiFiCost),
		NextUSDCBoost:   row.NextUSDCBoost,
		NextAiFiBoost:   row.NextAiFiBoost,
	}
}

func stakeableRow(eid int64, s *game.Stakeable) models.Stakeable {
	return models.Stakeable{
		EntityID:         eid,
		IsStaked:         s.IsStaked,
		StakingStartTime: s.StakingStartTime,
		MinStakingPeriod: s.MinStakingPeriod,
		RewardRate:       s.RewardRate,
		UnstakingPenalty: s.UnstakingPenalty,
		AccumulatedUSDC:  int64(s.AccumulatedUSDC),
		AccumulatedAiFi:  int64(s.AccumulatedAiFi),
		LastClaimTime:    s.LastClaimTime,
		Kind:             uint8(s.Kind),
		CanClaimRewards:  s.CanClaimRewards,
		BaseUSDCPerHour:  int64(s.BaseUSDCPerHour),
		BaseAiFiPerHour:  int64(s.BaseAiFiPerHour),
	}
}

func stakeableFromRow(row *models.Stakeable) *game.Stakeable {
	return &game.Stakeable{
		IsStaked:         row.IsStaked,
		StakingStartTime: row.StakingStartTime,
		MinStakingPeriod: row.MinStakingPeriod,
		RewardRate:       row.RewardRate,
		UnstakingPenalty: row.UnstakingPenalty,
		AccumulatedUSDC:  uint64(row.AccumulatedUSDC),
		AccumulatedAiFi:  uint64(row.AccumulatedAiFi),
		LastClaimTime:    row.LastClaimTime,
		Kind:             game.EntityType(row.Kind),
		CanClaimRewards:  row.CanClaimRewards,
		BaseUSDCPerHour:  uint64(row.BaseUSDCPerHour),
		BaseAiFiPerHour:  uint64(row.BaseAiFiPerHour),
	}
}

func ownershipRow(eid int64, o *game.Ownership) models.Ownership {
	entities := make([]int64, len(o.OwnedEntities))
	for i, e := range o.OwnedEntities {
		entities[i] = int64(e)
	}
	types := make([]uint8, len(o.OwnedTypes))
	for i, t := range o.OwnedTypes {
		types[i] = uint8(t)
	}
	return models.Ownership{
		EntityID:      eid,
		OwnerType:     uint8(o.OwnerType),
		OwnedEntities: entities,
		OwnedTypes:    types,
	}
}

func ownershipFromRow(row *models.Ownership) *game.Ownership {
	o := &game.Ownership{
		OwnerType:     game.EntityType(row.OwnerType),
		OwnedEntities: make([]game.EntityID, len(row.OwnedEntities)),
		OwnedTypes:    make([]game.EntityType, len(row.OwnedTypes)),
	}
	for i, e := range row.OwnedEntities {
		o.OwnedEntities[i] = game.EntityID(e)
	}
	for i, t := range row.OwnedTypes {
		o.OwnedTypes[i] = game.EntityType(t)
	}
	return o
}

func listingRow(eid int64, l *game.Listing) models.Listing {
	return models.Listing{
		EntityID:         eid,
		ListingID:        int64(l.ListingID),
		AssetID:          int64(l.AssetID),
		AssetType:        uint8(l.AssetType),
		Seller:           int64(l.Seller),
		Buyer:            int64(l.Buyer),
		AskPrice:         int64(l.AskPrice),
		PreviousAskPrice: int64(l.PreviousAskPrice),
		LastSalePrice:    int64(l.LastSalePrice),
		Payment:          uint8(l.Payment),
		Status:           uint8(l.Status),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func listingFromRow(row *models.Listing) *game.Listing {
	return &game.Listing{
		ListingID:        uint64(row.ListingID),
		AssetID:          game.EntityID(row.AssetID),
		AssetType:        game.EntityType(row.AssetType),
		Seller:           game.EntityID(row.Seller),
		Buyer:            game.EntityID(row.Buyer),
		AskPrice:         uint64(row.AskPrice),
		PreviousAskPrice: uint64(row.PreviousAskPrice),
		LastSalePrice:    uint64(row.LastSalePrice),
		Payment:          game.PaymentMethod(row.Payment),
		Status:           game.ListingStatus(row.Status),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func lotteryRow(eid int64, lp *game.LotteryPrize) models.Lottery {
	winners := make([]int64, len(lp.RecentWinners))
	for i, w := range lp.RecentWinners {
		winners[i] = int64(w)
	}
	prizes := make([]int64, len(lp.RecentPrizes))
	for i, p := range lp.RecentPrizes {
		prizes[i] = int64(p)
	}
	return models.Lottery{
		EntityID:         eid,
		MinBetAmount:     int64(lp.MinBetAmount),
		WinProbability:   lp.WinProbability,
		MaxWinMultiplier: lp.MaxWinMultiplier,
		LastUpdateTime:   lp.LastUpdateTime,
		TotalBets:        int64(lp.TotalBets),
		TotalWins:        int64(lp.TotalWins),
		IsActive:         lp.IsActive,
		RecentWinners:    winners,
		RecentPrizes:     prizes,
	}
}

func lotteryFromRow(row *models.Lottery) *game.LotteryPrize {
	lp := &game.LotteryPrize{
		MinBetAmount:     uint64(row.MinBetAmount),
		WinProbability:   row.WinProbability,
		MaxWinMultiplier: row.MaxWinMultiplier,
		LastUpdateTime:   row.LastUpdateTime,
		TotalBets:        uint64(row.TotalBets),
		TotalWins:        uint64(row.TotalWins),
		IsActive:         row.IsActive,
		RecentWinners:    make([]game.EntityID, len(row.RecentWinners)),
		RecentPrizes:     make([]uint64, len(row.RecentPrizes)),
	}
	for i, w := range row.RecentWinners {
		lp.RecentWinners[i] = game.EntityID(w)
	}
	for i, p := range row.RecentPrizes {
		lp.RecentPrizes[i] = uint64(p)
	}
	return lp
}
