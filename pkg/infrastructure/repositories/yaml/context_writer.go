package yaml

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// ContextWriter renders pricing context snapshots as YAML documents
// that ContextLoader reads back unchanged.
type ContextWriter struct{}

// NewContextWriter creates a new YAML context writer
func NewContextWriter() *ContextWriter {
	return &ContextWriter{}
}

// SaveContext writes a context snapshot to a YAML file
func (w *ContextWriter) SaveContext(filename string, ctx *entities.PricingContext) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create context file %s: %w", filename, err)
	}
	defer file.Close()

	return w.WriteContext(file, ctx)
}

// WriteContext encodes a context snapshot. Keyed tables are written in key order.
func (w *ContextWriter) WriteContext(out io.Writer, ctx *entities.PricingContext) error {
	if ctx == nil {
		return fmt.Errorf("pricing context cannot be nil")
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(toDocument(ctx)); err != nil {
		return fmt.Errorf("failed to encode context YAML: %w", err)
	}
	return encoder.Close()
}

func toDocument(ctx *entities.PricingContext) contextDocument {
	doc := contextDocument{BoxCost: ctx.BoxCost}

	channelIDs := make([]string, 0, len(ctx.Channels))
	for id := range ctx.Channels {
		channelIDs = append(channelIDs, string(id))
	}
	sort.Strings(channelIDs)
	for _, id := range channelIDs {
		doc.Channels = append(doc.Channels, channelToDocument(ctx.Channels[entities.ChannelID(id)]))
	}

	tiers := make([]string, 0, len(ctx.SizeTierFees))
	for tier := range ctx.SizeTierFees {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)
	for _, tier := range tiers {
		fee := ctx.SizeTierFees[tier]
		doc.SizeTiers = append(doc.SizeTiers, sizeTierDocument{Tier: tier, Fee: fee.Fee, Surcharge: fee.Surcharge})
	}

	for _, rate := range ctx.ShippingRates {
		doc.ShippingRates = append(doc.ShippingRates, shippingRateDocument{
			Carrier:    rate.Carrier,
			Zone:       rate.Zone,
			MinWeightG: rate.MinWeightG,
			MaxWeightG: rate.MaxWeightG,
			Price:      rate.Price,
		})
	}

	for _, s := range ctx.Surcharges {
		doc.Surcharges = append(doc.Surcharges, surchargeDocument{Name: s.Name, Amount: s.Amount, Active: flag(s.Active)})
	}

	for _, t := range ctx.QuantityTiers {
		doc.QuantityTiers = append(doc.QuantityTiers, quantityTierDocument{
			Role:        string(t.Role),
			MinQty:      t.MinQty,
			MaxQty:      t.MaxQty,
			DiscountPct: t.DiscountPct,
			Active:      flag(t.Active),
		})
	}

	roles := make([]string, 0, len(ctx.DiscountCaps))
	for role := range ctx.DiscountCaps {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)
	for _, role := range roles {
		c := ctx.DiscountCaps[entities.Role(role)]
		doc.DiscountCaps = append(doc.DiscountCaps, discountCapDocument{
			Role:           role,
			MaxRolePct:     c.MaxRolePct,
			MaxQtyPct:      c.MaxQtyPct,
			MaxCombinedPct: c.MaxCombinedPct,
		})
	}

	for _, d := range ctx.OrderDiscounts {
		doc.OrderDiscounts = append(doc.OrderDiscounts, orderDiscountDoc{
			Name:          d.Name,
			MinOrderValue: d.MinOrderValue,
			DiscountPct:   d.DiscountPct,
			Active:        flag(d.Active),
		})
	}

	lines := make([]string, 0, len(ctx.LineTargets))
	for line := range ctx.LineTargets {
		lines = append(lines, string(line))
	}
	sort.Strings(lines)
	for _, line := range lines {
		p := ctx.LineTargets[entities.LineID(line)]
		target := lineTargetDocument{
			Line:               line,
			TargetMarginPct:    p.TargetMarginPct,
			FloorMultiplier:    p.FloorMultiplier,
			GuardrailMarginPct: p.GuardrailMarginPct,
			Active:             flag(p.Active),
		}
		if p.Rounding != nil {
			target.Rounding = p.Rounding.String()
		}
		doc.LineTargets = append(doc.LineTargets, target)
	}

	return doc
}

func channelToDocument(c entities.Channel) channelDocument {
	doc := channelDocument{
		ID:              string(c.ID),
		Name:            c.Name,
		Kind:            c.Kind.String(),
		PaymentFeePct:   c.PaymentFeePct,
		PaymentFeeFixed: c.PaymentFeeFixed,
		ReturnRatePct:   c.ReturnRatePct,
		ShippingZone:    c.ShippingZone,
		Carrier:         c.Carrier,
		Active:          flag(c.Active),
	}
	if c.IsMarketplace() || c.Referral != (entities.ReferralFeeSchedule{}) {
		doc.Referral = &referralDocument{
			LowPct:     c.Referral.LowPct,
			HighPct:    c.Referral.HighPct,
			Breakpoint: c.Referral.Breakpoint,
			MinimumFee: c.Referral.MinimumFee,
		}
	}
	return doc
}

func flag(v bool) *bool {
	return &v
}
