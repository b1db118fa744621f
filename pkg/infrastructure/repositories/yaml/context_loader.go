package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// contextDocument is the on-disk layout of a pricing context snapshot
type contextDocument struct {
	BoxCost        *float64               `yaml:"box_cost,omitempty"`
	Channels       []channelDocument      `yaml:"channels"`
	SizeTiers      []sizeTierDocument     `yaml:"size_tiers"`
	ShippingRates  []shippingRateDocument `yaml:"shipping_rates"`
	Surcharges     []surchargeDocument    `yaml:"surcharges"`
	QuantityTiers  []quantityTierDocument `yaml:"quantity_tiers"`
	DiscountCaps   []discountCapDocument  `yaml:"discount_caps"`
	OrderDiscounts []orderDiscountDoc     `yaml:"order_discounts"`
	LineTargets    []lineTargetDocument   `yaml:"line_targets"`
}

type channelDocument struct {
	ID              string            `yaml:"id"`
	Name            string            `yaml:"name"`
	Kind            string            `yaml:"kind"`
	PaymentFeePct   float64           `yaml:"payment_fee_pct"`
	PaymentFeeFixed float64           `yaml:"payment_fee_fixed"`
	ReturnRatePct   float64           `yaml:"return_rate_pct"`
	Referral        *referralDocument `yaml:"referral,omitempty"`
	ShippingZone    string            `yaml:"shipping_zone,omitempty"`
	Carrier         string            `yaml:"carrier,omitempty"`
	Active          *bool             `yaml:"active"`
}

type referralDocument struct {
	LowPct     float64  `yaml:"low_pct"`
	HighPct    float64  `yaml:"high_pct"`
	Breakpoint float64  `yaml:"breakpoint"`
	MinimumFee *float64 `yaml:"minimum_fee,omitempty"`
}

type sizeTierDocument struct {
	Tier      string  `yaml:"tier"`
	Fee       float64 `yaml:"fee"`
	Surcharge float64 `yaml:"surcharge"`
}

type shippingRateDocument struct {
	Carrier    string  `yaml:"carrier"`
	Zone       string  `yaml:"zone"`
	MinWeightG float64 `yaml:"min_weight_g"`
	MaxWeightG float64 `yaml:"max_weight_g"`
	Price      float64 `yaml:"price"`
}

type surchargeDocument struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount"`
	Active *bool   `yaml:"active"`
}

type quantityTierDocument struct {
	Role        string  `yaml:"role"`
	MinQty      int     `yaml:"min_qty"`
	MaxQty      int     `yaml:"max_qty"`
	DiscountPct float64 `yaml:"discount_pct"`
	Active      *bool   `yaml:"active"`
}

type discountCapDocument struct {
	Role           string  `yaml:"role"`
	MaxRolePct     float64 `yaml:"max_role_pct"`
	MaxQtyPct      float64 `yaml:"max_qty_pct"`
	MaxCombinedPct float64 `yaml:"max_combined_pct"`
}

type orderDiscountDoc struct {
	Name          string  `yaml:"name"`
	MinOrderValue float64 `yaml:"min_order_value"`
	DiscountPct   float64 `yaml:"discount_pct"`
	Active        *bool   `yaml:"active"`
}

type lineTargetDocument struct {
	Line               string  `yaml:"line"`
	TargetMarginPct    float64 `yaml:"target_margin_pct"`
	FloorMultiplier    float64 `yaml:"floor_multiplier"`
	GuardrailMarginPct float64 `yaml:"guardrail_margin_pct"`
	Rounding           string  `yaml:"rounding,omitempty"`
	Active             *bool   `yaml:"active"`
}

// ContextLoader reads pricing context snapshots from YAML documents
type ContextLoader struct{}

// NewContextLoader creates a new YAML context loader
func NewContextLoader() *ContextLoader {
	return &ContextLoader{}
}

// LoadContext loads a pricing context snapshot from a YAML file
func (l *ContextLoader) LoadContext(filename string) (*entities.PricingContext, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open context file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadContext(file)
}

// ReadContext parses a pricing context snapshot. Rows without an active key are active.
func (l *ContextLoader) ReadContext(r io.Reader) (*entities.PricingContext, error) {
	var doc contextDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("context document is empty")
		}
		return nil, fmt.Errorf("failed to parse context YAML: %w", err)
	}

	ctx := entities.NewPricingContext()
	ctx.BoxCost = doc.BoxCost

	for i, c := range doc.Channels {
		channel, err := c.toEntity()
		if err != nil {
			return nil, fmt.Errorf("channels[%d]: %w", i, err)
		}
		if _, dup := ctx.Channels[channel.ID]; dup {
			return nil, fmt.Errorf("channels[%d]: duplicate channel id %s", i, channel.ID)
		}
		ctx.Channels[channel.ID] = channel
	}

	for i, t := range doc.SizeTiers {
		if t.Tier == "" {
			return nil, fmt.Errorf("size_tiers[%d]: tier is required", i)
		}
		ctx.SizeTierFees[t.Tier] = entities.SizeTierFee{Tier: t.Tier, Fee: t.Fee, Surcharge: t.Surcharge}
	}

	for _, rate := range doc.ShippingRates {
		ctx.ShippingRates = append(ctx.ShippingRates, entities.ShippingRate{
			Carrier:    rate.Carrier,
			Zone:       rate.Zone,
			MinWeightG: rate.MinWeightG,
			MaxWeightG: rate.MaxWeightG,
			Price:      rate.Price,
		})
	}

	for _, s := range doc.Surcharges {
		ctx.Surcharges = append(ctx.Surcharges, entities.CarrierSurcharge{
			Name:   s.Name,
			Amount: s.Amount,
			Active: activeOrDefault(s.Active),
		})
	}

	for _, t := range doc.QuantityTiers {
		ctx.QuantityTiers = append(ctx.QuantityTiers, entities.QuantityTier{
			Role:        entities.Role(t.Role),
			MinQty:      t.MinQty,
			MaxQty:      t.MaxQty,
			DiscountPct: t.DiscountPct,
			Active:      activeOrDefault(t.Active),
		})
	}

	for i, c := range doc.DiscountCaps {
		if c.Role == "" {
			return nil, fmt.Errorf("discount_caps[%d]: role is required", i)
		}
		role := entities.Role(c.Role)
		ctx.DiscountCaps[role] = entities.DiscountCap{
			Role:           role,
			MaxRolePct:     c.MaxRolePct,
			MaxQtyPct:      c.MaxQtyPct,
			MaxCombinedPct: c.MaxCombinedPct,
		}
	}

	for _, d := range doc.OrderDiscounts {
		ctx.OrderDiscounts = append(ctx.OrderDiscounts, entities.OrderDiscount{
			Name:          d.Name,
			MinOrderValue: d.MinOrderValue,
			DiscountPct:   d.DiscountPct,
			Active:        activeOrDefault(d.Active),
		})
	}

	for i, t := range doc.LineTargets {
		if t.Line == "" {
			return nil, fmt.Errorf("line_targets[%d]: line is required", i)
		}
		policy := entities.LineTargetPolicy{
			Line:               entities.LineID(t.Line),
			TargetMarginPct:    t.TargetMarginPct,
			FloorMultiplier:    t.FloorMultiplier,
			GuardrailMarginPct: t.GuardrailMarginPct,
			Active:             activeOrDefault(t.Active),
		}
		if strings.TrimSpace(t.Rounding) != "" {
			style, ok := entities.ParseRoundingStyle(t.Rounding)
			if !ok {
				return nil, fmt.Errorf("line_targets[%d]: unknown rounding %q", i, t.Rounding)
			}
			policy.Rounding = &style
		}
		ctx.LineTargets[policy.Line] = policy
	}

	return ctx, nil
}

func (c channelDocument) toEntity() (entities.Channel, error) {
	if c.ID == "" {
		return entities.Channel{}, fmt.Errorf("id is required")
	}
	kind, err := entities.ParseChannelKind(strings.ToLower(strings.TrimSpace(c.Kind)))
	if err != nil {
		return entities.Channel{}, fmt.Errorf("channel %s: %w", c.ID, err)
	}

	name := c.Name
	if name == "" {
		name = c.ID
	}

	channel := entities.Channel{
		ID:              entities.ChannelID(c.ID),
		Name:            name,
		Kind:            kind,
		PaymentFeePct:   c.PaymentFeePct,
		PaymentFeeFixed: c.PaymentFeeFixed,
		ReturnRatePct:   c.ReturnRatePct,
		ShippingZone:    c.ShippingZone,
		Carrier:         c.Carrier,
		Active:          activeOrDefault(c.Active),
	}
	if c.Referral != nil {
		channel.Referral = entities.ReferralFeeSchedule{
			LowPct:     c.Referral.LowPct,
			HighPct:    c.Referral.HighPct,
			Breakpoint: c.Referral.Breakpoint,
			MinimumFee: c.Referral.MinimumFee,
		}
	}
	return channel, nil
}

func activeOrDefault(active *bool) bool {
	return active == nil || *active
}
