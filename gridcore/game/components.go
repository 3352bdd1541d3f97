package game

// Component records are plain data. All monetary and per-hour quantities are
// fixed-point integers in micro-units (1_000_000 = 1.0); percentages and
// ratios are basis points (10000 = 100%); timestamps are Unix seconds and are
// always supplied by the caller, never read from a wall clock.

// MicroUnit is the fixed-point scale for all monetary quantities.
const MicroUnit uint64 = 1_000_000

// BasisPoints is the scale for percentages and ratios.
const BasisPoints uint64 = 10_000

// PriceHistoryLen is the size of the price ring buffer.
const PriceHistoryLen = 24

// Wallet holds an actor's balances in the five currencies. Balances never go
// negative; every debit checks funds first.
type Wallet struct {
	USDC uint64
	BTC  uint64
	ETH  uint64
	SOL  uint64
	AiFi uint64
}

// Balance returns the balance for the given currency.
func (w *Wallet) Balance(c CurrencyType) uint64 {
	switch c {
	case CurrencyUSDC:
		return w.USDC
	case CurrencyBTC:
		return w.BTC
	case CurrencyETH:
		return w.ETH
	case CurrencySOL:
		return w.SOL
	case CurrencyAiFi:
		return w.AiFi
	default:
		return 0
	}
}

// Credit adds amount to the given currency balance.
func (w *Wallet) Credit(c CurrencyType, amount uint64) error {
	if !c.Valid() {
		return ErrInvalidCurrencyType
	}
	bal := w.Balance(c)
	if bal+amount < bal {
		return ErrArithmeticOverflow
	}
	w.set(c, bal+amount)
	return nil
}

// Debit removes amount from the given currency balance, failing with
// ErrInsufficientFunds if the balance cannot cover it.
func (w *Wallet) Debit(c CurrencyType, amount uint64) error {
	if !c.Valid() {
		return ErrInvalidCurrencyType
	}
	bal := w.Balance(c)
	if bal < amount {
		return ErrInsufficientFunds
	}
	w.set(c, bal-amount)
	return nil
}

func (w *Wallet) set(c CurrencyType, v uint64) {
	switch c {
	case CurrencyUSDC:
		w.USDC = v
	case CurrencyBTC:
		w.BTC = v
	case CurrencyETH:
		w.ETH = v
	case CurrencySOL:
		w.SOL = v
	case CurrencyAiFi:
		w.AiFi = v
	}
}

// Price tracks a currency's market value and its bounded random walk
// parameters. Once initialized, Min <= Current <= Max holds after every
// update.
type Price struct {
	Current        uint64
	Previous       uint64
	LastUpdateTime int64
	Min            uint64
	Max            uint64
	// Volatility bounds the per-update price delta, in basis points of the
	// current price.
	Volatility      uint16
	UpdateFrequency uint32
	Currency        CurrencyType
	UpdatesEnabled  bool
	// Trend is the last observed direction, -100..+100.
	Trend        int8
	History      [PriceHistoryLen]uint64
	HistoryIndex uint8
	SupplyFactor uint16
	DemandFactor uint16
}

// Production is attached to producing entities (GPUs, data centers, ...) and
// accrues USDC and AiFi over time while active.
type Production struct {
	USDCPerHour   uint64
	AiFiPerHour   uint64
	OperatingCost uint64
	// LastCollectionTime is the accrual clock; COLLECT consumes the time
	// elapsed since it and advances it.
	LastCollectionTime int64
	// EfficiencyBps scales both output rates (10000 = 100%).
	EfficiencyBps uint16
	Producer      EntityType
	Level         uint8
	IsActive      bool
}

// Upgradeable carries leveling state and the cost/boost of the next level.
type Upgradeable struct {
	CurrentLevel    uint8
	MaxLevel        uint8
	LastUpgradeTime int64
	// CanUpgrade is kept equal to CurrentLevel < MaxLevel.
	CanUpgrade      bool
	Kind            EntityType
	UpgradeCooldown uint32
	NextUSDCCost    uint64
	NextAiFiCost    uint64
	NextUSDCBoost   uint16
	NextAiFiBoost   uint16
}

// Stakeable records staking status and the reward stream earned while the
// linked Production is paused.
type Stakeable struct {
	IsStaked bool
	// StakingStartTime is zero whenever IsStaked is false.
	StakingStartTime int64
	MinStakingPeriod uint32
	// RewardRate scales the base rates, in basis points (15000 = 150%).
	RewardRate uint16
	// UnstakingPenalty is applied to rewards accrued before MinStakingPeriod.
	UnstakingPenalty uint16
	AccumulatedUSDC  uint64
	AccumulatedAiFi  uint64
	LastClaimTime    int64
	Kind             EntityType
	CanClaimRewards  bool
	BaseUSDCPerHour  uint64
	BaseAiFiPerHour  uint64
}

// Ownership is the set of entities owned by an actor. OwnedEntities and
// OwnedTypes are parallel and membership is unique by entity id.
type Ownership struct {
	OwnerType     EntityType
	OwnedEntities []EntityID
	OwnedTypes    []EntityType
}

// Contains reports whether the set holds the given entity.
func (o *Ownership) Contains(id EntityID) bool {
	return o.indexOf(id) >= 0
}

func (o *Ownership) indexOf(id EntityID) int {
	for i, e := range o.OwnedEntities {
		if e == id {
			return i
		}
	}
	return -1
}

// Listing is a marketplace listing with its own schema, keyed by the entity
// holding the listing.
type Listing struct {
	ListingID uint64
	AssetID   EntityID
	AssetType EntityType
	Seller    EntityID
	Buyer     EntityID
	AskPrice  uint64
	// PreviousAskPrice is the ask before the last UPDATE_LISTING.
	PreviousAskPrice uint64
	// LastSalePrice is set when the listing is sold.
	LastSalePrice uint64
	Payment       PaymentMethod
	Status        ListingStatus
	CreatedAt     int64
	UpdatedAt     int64
}

// LotteryPrize tracks an AiFi lottery: bet bounds, win odds, and recent
// winners.
type LotteryPrize struct {
	MinBetAmount uint64
	// WinProbability in basis points, 1..10000.
	WinProbability uint16
	// MaxWinMultiplier in per-mille (1000 = 1x).
	MaxWinMultiplier uint32
	LastUpdateTime   int64
	TotalBets        uint64
	TotalWins        uint64
	IsActive         bool
	RecentWinners    []EntityID
	RecentPrizes     []uint64
}
