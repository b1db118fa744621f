package entities

import "fmt"

// ChannelID identifies a sales channel
type ChannelID string

// ChannelKind determines which cost components a channel incurs
type ChannelKind int

const (
	// OwnStore is the direct-to-consumer web shop: self-shipped, earns loyalty points
	OwnStore ChannelKind = iota
	// MarketplaceFulfilled is a marketplace whose platform stores and ships the goods
	MarketplaceFulfilled
	// MarketplaceSelfShip is a marketplace where the merchant ships
	MarketplaceSelfShip
	// Wholesale is a B2B channel with neither marketplace nor parcel costs
	Wholesale
)

// String method for ChannelKind enum
func (k ChannelKind) String() string {
	switch k {
	case OwnStore:
		return "own_store"
	case MarketplaceFulfilled:
		return "marketplace_fulfilled"
	case MarketplaceSelfShip:
		return "marketplace_self_ship"
	case Wholesale:
		return "wholesale"
	default:
		return "unknown"
	}
}

// ParseChannelKind parses the String form of a ChannelKind
func ParseChannelKind(s string) (ChannelKind, error) {
	switch s {
	case "own_store":
		return OwnStore, nil
	case "marketplace_fulfilled":
		return MarketplaceFulfilled, nil
	case "marketplace_self_ship":
		return MarketplaceSelfShip, nil
	case "wholesale":
		return Wholesale, nil
	default:
		return 0, fmt.Errorf("unknown channel kind %q", s)
	}
}

// DefaultShippingZone is used when a channel does not name a zone
const DefaultShippingZone = "domestic"

// Default referral-fee breakpoints, applied when a schedule leaves them unset
const (
	DefaultReferralBreakpoint = 10.00
	DefaultReferralMinimumFee = 0.30
)

// ReferralFeeSchedule describes a tiered marketplace referral fee
type ReferralFeeSchedule struct {
	LowPct     float64 `validate:"gte=0,lt=100"`
	HighPct    float64 `validate:"gte=0,lt=100"`
	Breakpoint float64 `validate:"gte=0"`
	// MinimumFee is nil when the sheet leaves it empty
	MinimumFee *float64 `validate:"omitempty,gte=0"`
}

// Resolved fills unset breakpoint and minimum fee with their defaults
func (s ReferralFeeSchedule) Resolved() ReferralFeeSchedule {
	if s.Breakpoint <= 0 {
		s.Breakpoint = DefaultReferralBreakpoint
	}
	if s.MinimumFee == nil {
		s.MinimumFee = Amount(DefaultReferralMinimumFee)
	}
	return s
}

// Channel is one active sales channel with its fee assumptions
type Channel struct {
	ID              ChannelID   `validate:"required"`
	Name            string      `validate:"required"`
	Kind            ChannelKind `validate:"gte=0,lte=3"`
	PaymentFeePct   float64     `validate:"gte=0,lt=100"`
	PaymentFeeFixed float64     `validate:"gte=0"`
	ReturnRatePct   float64     `validate:"gte=0,lt=100"`
	Referral        ReferralFeeSchedule
	ShippingZone    string
	Carrier         string
	Active          bool
}

// IsMarketplace reports whether the channel charges a referral fee
func (c *Channel) IsMarketplace() bool {
	return c.Kind == MarketplaceFulfilled || c.Kind == MarketplaceSelfShip
}

// IsPlatformFulfilled reports whether the platform ships on the merchant's behalf
func (c *Channel) IsPlatformFulfilled() bool {
	return c.Kind == MarketplaceFulfilled
}

// IsSelfShip reports whether the merchant pays carrier shipping and boxes
func (c *Channel) IsSelfShip() bool {
	return c.Kind == OwnStore || c.Kind == MarketplaceSelfShip
}

// EarnsLoyalty reports whether sales on the channel accrue loyalty points
func (c *Channel) EarnsLoyalty() bool {
	return c.Kind == OwnStore
}

// Zone returns the shipping zone, defaulting to domestic
func (c *Channel) Zone() string {
	if c.ShippingZone == "" {
		return DefaultShippingZone
	}
	return c.ShippingZone
}

// SizeTierFee is the platform fulfillment fee for one size tier
type SizeTierFee struct {
	Tier      string  `validate:"required"`
	Fee       float64 `validate:"gte=0"`
	Surcharge float64 `validate:"gte=0"`
}

// ShippingRate is one cell of the carrier rate matrix.
// A band matches weights in [MinWeightG, MaxWeightG].
type ShippingRate struct {
	Carrier    string
	Zone       string  `validate:"required"`
	MinWeightG float64 `validate:"gte=0"`
	MaxWeightG float64 `validate:"gtfield=MinWeightG"`
	Price      float64 `validate:"gte=0"`
}

// Matches reports whether the band covers the given zone, carrier and weight
func (r *ShippingRate) Matches(zone, carrier string, weightG float64) bool {
	if r.Zone != zone {
		return false
	}
	if carrier != "" && r.Carrier != "" && r.Carrier != carrier {
		return false
	}
	return weightG >= r.MinWeightG && weightG <= r.MaxWeightG
}

// CarrierSurcharge is a flat per-parcel carrier surcharge such as fuel or peak season
type CarrierSurcharge struct {
	Name   string  `validate:"required"`
	Amount float64 `validate:"gte=0"`
	Active bool
}
