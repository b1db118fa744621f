package services

import (
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// LineTargetResolver resolves the pricing policy of a product line
type LineTargetResolver struct{}

// NewLineTargetResolver creates a new line target resolver
func NewLineTargetResolver() *LineTargetResolver {
	return &LineTargetResolver{}
}

// ApplyLineTargets resolves the policy of a line and the floor price it implies.
// Callers must price at max(margin-derived price, FloorPrice).
func (r *LineTargetResolver) ApplyLineTargets(fullCost float64, line entities.LineID, ctx *entities.PricingContext) entities.LineTarget {
	policy, ok := ctx.LineTarget(line)
	if !ok {
		return entities.LineTarget{
			FloorPrice:         entities.Round2(fullCost * entities.DefaultFloorMultiplier),
			TargetMarginPct:    entities.DefaultTargetMarginPct,
			FloorMultiplier:    entities.DefaultFloorMultiplier,
			GuardrailMarginPct: entities.DefaultGuardrailMarginPct,
			Fallback:           true,
		}
	}

	guardrail := policy.GuardrailMarginPct
	if guardrail <= 0 {
		guardrail = entities.DefaultGuardrailMarginPct
	}

	return entities.LineTarget{
		FloorPrice:         entities.Round2(fullCost * policy.FloorMultiplier),
		TargetMarginPct:    policy.TargetMarginPct,
		FloorMultiplier:    policy.FloorMultiplier,
		GuardrailMarginPct: guardrail,
		Rounding:           policy.Rounding,
	}
}
