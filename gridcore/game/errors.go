package game

import "errors"

// Operation failures are ordinary expected outcomes the caller branches on.
// A failed operation never leaves partial state behind; the registry rolls
// back everything the operation touched.
var (
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientAiFiFunds is the upgrade system's AiFi-cost failure,
	// reported distinctly from its USDC-cost failure.
	ErrInsufficientAiFiFunds = errors.New("insufficient AiFi funds")
	// ErrProductionInactive is returned by COLLECT while production is off.
	ErrProductionInactive = errors.New("production is inactive")
	// ErrMaxLevelReached is returned by UPGRADE at the level cap.
	ErrMaxLevelReached = errors.New("maximum level reached")
	// ErrCooldownActive is returned by UPGRADE before the cooldown elapsed.
	ErrCooldownActive = errors.New("upgrade cooldown active")
	// ErrAlreadyStaked / ErrNotStaked guard STAKE and UNSTAKE misuse.
	ErrAlreadyStaked = errors.New("entity is already staked")
	ErrNotStaked     = errors.New("entity is not staked")
	// ErrClaimingDisabled is returned by COLLECT_REWARDS when claims are off.
	ErrClaimingDisabled = errors.New("reward claiming is disabled")
	// ErrNoRewardsAvailable is returned when both accumulated rewards are zero.
	ErrNoRewardsAvailable = errors.New("no rewards available")
	// ErrEntityNotFound is returned when removing an id absent from an
	// ownership set.
	ErrEntityNotFound = errors.New("entity not found in ownership")
	// ErrDuplicateEntity is returned when assigning an id already present.
	ErrDuplicateEntity = errors.New("entity already owned")
	// ErrPriceUpdatesDisabled guards EXCHANGE and UPDATE against disabled
	// price records.
	ErrPriceUpdatesDisabled = errors.New("price updates are disabled")
	// ErrListingNotActive guards UPDATE/CANCEL/PURCHASE of settled listings.
	ErrListingNotActive = errors.New("listing is not active")

	ErrInvalidCurrencyType    = errors.New("invalid currency type")
	ErrSameCurrencyExchange   = errors.New("cannot exchange a currency for itself")
	ErrCurrencyPriceMismatch  = errors.New("price record does not match currency")
	ErrExchangeAmountTooSmall = errors.New("exchange amount too small")
	ErrArithmeticOverflow     = errors.New("arithmetic overflow")
	ErrInvalidTimestamp       = errors.New("invalid timestamp")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrNotTheOwner            = errors.New("seller does not own this asset")

	ErrBetAmountTooLow       = errors.New("bet amount below minimum")
	ErrLotteryNotActive      = errors.New("lottery is not active")
	ErrInvalidWinProbability = errors.New("win probability must be between 1 and 10000")
	ErrInvalidWinMultiplier  = errors.New("max win multiplier must be greater than zero")
)
