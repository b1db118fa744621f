package dto

import (
	"time"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// PricingFlag marks a noteworthy outcome of a pricing run
type PricingFlag string

const (
	FlagCostEstimated     PricingFlag = "cost_estimated"
	FlagFloorApplied      PricingFlag = "floor_applied"
	FlagMAPViolated       PricingFlag = "map_violated"
	FlagGuardrailFailed   PricingFlag = "guardrail_failed"
	FlagGrundpreisInvalid PricingFlag = "grundpreis_invalid"
	FlagDiscountCapped    PricingFlag = "discount_capped"
	FlagUnknownChannel    PricingFlag = "unknown_channel"
)

// PricingRequest selects one SKU/channel/role combination to price
type PricingRequest struct {
	Product    *entities.Product
	Channel    entities.ChannelID
	Role       entities.Role
	Quantity   int
	OrderValue float64
	// LegacyTotalCost overrides the base used to estimate missing cost components
	LegacyTotalCost *float64
}

// PricingResult contains every stage output of one pricing run
type PricingResult struct {
	SKU          entities.SKU                  `json:"sku"`
	Channel      entities.ChannelID            `json:"channel"`
	FullCost     entities.FullCostBreakdown    `json:"full_cost"`
	LineTarget   entities.LineTarget           `json:"line_target"`
	UVP          float64                       `json:"uvp"`
	Rounding     entities.RoundingStyle        `json:"rounding"`
	FloorPrice   float64                       `json:"floor_price"`
	MAP          entities.MAPResult            `json:"map"`
	FinalPrice   float64                       `json:"final_price"`
	ChannelCosts entities.ChannelCostBreakdown `json:"channel_costs"`
	Guardrail    entities.GuardrailResult      `json:"guardrail"`
	Grundpreis   entities.GrundpreisResult     `json:"grundpreis"`
	B2B          *entities.B2BDiscountResult   `json:"b2b,omitempty"`
	Role         entities.Role                 `json:"role,omitempty"`
	Flags        []PricingFlag                 `json:"flags,omitempty"`
}

// HasFlag reports whether the result carries a flag
func (r *PricingResult) HasFlag(flag PricingFlag) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// RepricingSummary aggregates a batch repricing run
type RepricingSummary struct {
	RunID            string           `json:"run_id"`
	StartedAt        time.Time        `json:"started_at"`
	Duration         time.Duration    `json:"duration"`
	Products         int              `json:"products"`
	Results          []*PricingResult `json:"results"`
	MAPViolations    int              `json:"map_violations"`
	GuardrailFails   int              `json:"guardrail_fails"`
	EstimatedCosts   int              `json:"estimated_costs"`
	GrundpreisErrors int              `json:"grundpreis_errors"`
	DiscountsCapped  int              `json:"discounts_capped"`
}
