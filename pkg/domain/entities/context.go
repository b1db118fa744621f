package entities

import "sort"

// PricingContext is the snapshot of reference tables used by a pricing run.
// It must not be mutated while a batch is in flight.
type PricingContext struct {
	Channels       map[ChannelID]Channel
	SizeTierFees   map[string]SizeTierFee
	ShippingRates  []ShippingRate
	Surcharges     []CarrierSurcharge
	QuantityTiers  []QuantityTier
	DiscountCaps   map[Role]DiscountCap
	OrderDiscounts []OrderDiscount
	LineTargets    map[LineID]LineTargetPolicy
	// BoxCost is the flat parcel box cost for self-ship channels; nil uses DefaultBoxCost
	BoxCost *float64
}

// DefaultBoxCost is the parcel box cost used when the context does not set one
const DefaultBoxCost = 0.50

// NewPricingContext creates an empty context with initialised tables
func NewPricingContext() *PricingContext {
	return &PricingContext{
		Channels:     make(map[ChannelID]Channel),
		SizeTierFees: make(map[string]SizeTierFee),
		DiscountCaps: make(map[Role]DiscountCap),
		LineTargets:  make(map[LineID]LineTargetPolicy),
	}
}

// Channel returns the active channel with the given id
func (c *PricingContext) Channel(id ChannelID) (Channel, bool) {
	if c == nil {
		return Channel{}, false
	}
	ch, ok := c.Channels[id]
	if !ok || !ch.Active {
		return Channel{}, false
	}
	return ch, true
}

// LineTarget returns the active policy of a product line
func (c *PricingContext) LineTarget(line LineID) (LineTargetPolicy, bool) {
	if c == nil {
		return LineTargetPolicy{}, false
	}
	policy, ok := c.LineTargets[line]
	if !ok || !policy.Active {
		return LineTargetPolicy{}, false
	}
	return policy, true
}

// ParcelBoxCost returns the configured box cost or the default
func (c *PricingContext) ParcelBoxCost() float64 {
	if c == nil || c.BoxCost == nil {
		return DefaultBoxCost
	}
	return *c.BoxCost
}

// ActiveChannelIDs returns the ids of every active channel in sorted order
func (c *PricingContext) ActiveChannelIDs() []ChannelID {
	if c == nil {
		return nil
	}
	ids := make([]ChannelID, 0, len(c.Channels))
	for id, ch := range c.Channels {
		if ch.Active {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
