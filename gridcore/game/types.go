package game

import "fmt"

// EntityID identifies an entity in the world registry. Every component record
// is keyed by the id of the entity it is attached to.
type EntityID uint64

// CurrencyType enumerates the tradable currencies.
type CurrencyType uint8

const (
	CurrencyUSDC CurrencyType = iota
	CurrencyBTC
	CurrencyETH
	CurrencySOL
	CurrencyAiFi

	currencyCount = 5
)

func (c CurrencyType) Valid() bool {
	return c < currencyCount
}

func (c CurrencyType) String() string {
	switch c {
	case CurrencyUSDC:
		return "USDC"
	case CurrencyBTC:
		return "BTC"
	case CurrencyETH:
		return "ETH"
	case CurrencySOL:
		return "SOL"
	case CurrencyAiFi:
		return "AiFi"
	default:
		return fmt.Sprintf("Currency(%d)", uint8(c))
	}
}

// EntityType classifies entities for ownership and production purposes.
type EntityType uint8

const (
	EntityPlayer EntityType = iota
	EntityGPU
	EntityDataCenter
	EntityLand
	EntityEnergyContract

	EntityUnknown EntityType = 255
)

func (t EntityType) String() string {
	switch t {
	case EntityPlayer:
		return "Player"
	case EntityGPU:
		return "GPU"
	case EntityDataCenter:
		return "DataCenter"
	case EntityLand:
		return "Land"
	case EntityEnergyContract:
		return "EnergyContract"
	default:
		return "Unknown"
	}
}

// PaymentMethod selects the settlement currency for marketplace trades.
type PaymentMethod uint8

const (
	PaymentUSDC PaymentMethod = iota
	PaymentAiFi
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentUSDC || p == PaymentAiFi
}

// Currency maps the payment method onto the wallet currency it settles in.
func (p PaymentMethod) Currency() CurrencyType {
	if p == PaymentAiFi {
		return CurrencyAiFi
	}
	return CurrencyUSDC
}

// ListingStatus is the lifecycle state of a marketplace listing.
type ListingStatus uint8

const (
	// ListingNone is the zero value: no listing has been created on this
	// entity, and lifecycle operations must reject it.
	ListingNone ListingStatus = iota
	ListingActive
	ListingSold
	ListingCancelled
)

func (s ListingStatus) String() string {
	switch s {
	case ListingNone:
		return "none"
	case ListingActive:
		return "active"
	case ListingSold:
		return "sold"
	case ListingCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("ListingStatus(%d)", uint8(s))
	}
}
