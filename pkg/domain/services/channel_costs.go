package services

import (
	"math"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// UnknownChannelName is reported for channels missing from the context
const UnknownChannelName = "Unknown"

// LoyaltyProvisionPct is the share of the price reserved for loyalty points on the own store
const LoyaltyProvisionPct = 2.0

// ChannelCostCalculator computes the channel-specific cost stack of a sale
type ChannelCostCalculator struct{}

// NewChannelCostCalculator creates a new channel cost calculator
func NewChannelCostCalculator() *ChannelCostCalculator {
	return &ChannelCostCalculator{}
}

// CalculateChannelCosts returns every channel cost component for a candidate price.
// Unknown or inactive channels yield an all-zero breakdown named "Unknown".
func (c *ChannelCostCalculator) CalculateChannelCosts(product *entities.Product, channelID entities.ChannelID, price float64, ctx *entities.PricingContext) entities.ChannelCostBreakdown {
	channel, ok := ctx.Channel(channelID)
	if !ok {
		return entities.ChannelCostBreakdown{ChannelID: channelID, ChannelName: UnknownChannelName}
	}
	if !entities.IsFinite(price) {
		price = 0
	}

	breakdown := entities.ChannelCostBreakdown{
		ChannelID:        channelID,
		ChannelName:      channel.Name,
		PaymentFee:       c.PaymentFee(price, &channel),
		ReturnsProvision: entities.Percent(price, channel.ReturnRatePct),
	}

	if channel.IsMarketplace() {
		breakdown.ReferralFee = c.ReferralFee(price, channel.Referral)
	}

	if channel.IsPlatformFulfilled() {
		breakdown.FulfillmentFee = c.FulfillmentFee(product, ctx)
	}

	if channel.IsSelfShip() {
		shipping, matched := c.CarrierShipping(product, &channel, ctx)
		breakdown.Shipping = shipping
		if matched {
			breakdown.Surcharges = c.CarrierSurcharges(ctx)
		}
		breakdown.Packaging = entities.Round2(ctx.ParcelBoxCost())
	}

	if channel.EarnsLoyalty() {
		breakdown.LoyaltyProvision = entities.Percent(price, LoyaltyProvisionPct)
	}

	breakdown.TotalChannelCost = entities.Sum2(
		breakdown.PaymentFee,
		breakdown.ReferralFee,
		breakdown.FulfillmentFee,
		breakdown.Shipping,
		breakdown.Surcharges,
		breakdown.Packaging,
		breakdown.ReturnsProvision,
		breakdown.LoyaltyProvision,
	)

	return breakdown
}

// PaymentFee returns the percentage fee plus the fixed fee; both terms always add
func (c *ChannelCostCalculator) PaymentFee(price float64, channel *entities.Channel) float64 {
	return entities.Sum2(entities.Percent(price, channel.PaymentFeePct), channel.PaymentFeeFixed)
}

// ReferralFee returns the tiered marketplace referral fee, never below the minimum fee.
// The low tier applies up to and including the breakpoint.
func (c *ChannelCostCalculator) ReferralFee(price float64, schedule entities.ReferralFeeSchedule) float64 {
	schedule = schedule.Resolved()

	pct := schedule.HighPct
	if price <= schedule.Breakpoint {
		pct = schedule.LowPct
	}

	return entities.Round2(math.Max(entities.Percent(price, pct), *schedule.MinimumFee))
}

// FulfillmentFee returns the platform fee plus surcharge of the product's size tier.
// Products without a tier, or with a tier missing from the table, cost nothing here.
func (c *ChannelCostCalculator) FulfillmentFee(product *entities.Product, ctx *entities.PricingContext) float64 {
	if product == nil || product.SizeTier == "" {
		return 0
	}
	fee, ok := ctx.SizeTierFees[product.SizeTier]
	if !ok {
		return 0
	}
	return entities.Sum2(fee.Fee, fee.Surcharge)
}

// CarrierShipping returns the rate of the first band matching the product weight.
// matched is false when the weight is absent or no band covers it.
func (c *ChannelCostCalculator) CarrierShipping(product *entities.Product, channel *entities.Channel, ctx *entities.PricingContext) (float64, bool) {
	if product == nil || product.WeightGrams <= 0 {
		return 0, false
	}
	zone := channel.Zone()
	for i := range ctx.ShippingRates {
		rate := &ctx.ShippingRates[i]
		if rate.Matches(zone, channel.Carrier, product.WeightGrams) {
			return entities.Round2(rate.Price), true
		}
	}
	return 0, false
}

// CarrierSurcharges sums the active named surcharges
func (c *ChannelCostCalculator) CarrierSurcharges(ctx *entities.PricingContext) float64 {
	amounts := make([]float64, 0, len(ctx.Surcharges))
	for _, surcharge := range ctx.Surcharges {
		if surcharge.Active {
			amounts = append(amounts, surcharge.Amount)
		}
	}
	return entities.Sum2(amounts...)
}
