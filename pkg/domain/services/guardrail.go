package services

import (
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// DefaultGuardrailThresholdPct is the minimum post-channel margin when none is given
const DefaultGuardrailThresholdPct = entities.DefaultGuardrailMarginPct

// GuardrailChecker validates the net margin left after channel costs
type GuardrailChecker struct{}

// NewGuardrailChecker creates a new guardrail checker
func NewGuardrailChecker() *GuardrailChecker {
	return &GuardrailChecker{}
}

// CheckGuardrail computes net revenue and margin; the check passes when the
// margin is at or above the threshold. A non-positive price always fails.
func (g *GuardrailChecker) CheckGuardrail(price, fullCost, channelCost, thresholdPct float64) entities.GuardrailResult {
	if !entities.IsFinite(price) || price <= 0 {
		return entities.GuardrailResult{ThresholdPct: thresholdPct, GuardrailOK: false}
	}

	netRevenue := entities.Sum2(price, -fullCost, -channelCost)
	marginPct := entities.Round2(netRevenue / price * 100)

	return entities.GuardrailResult{
		NetRevenue:   netRevenue,
		MarginPct:    marginPct,
		ThresholdPct: thresholdPct,
		GuardrailOK:  marginPct >= thresholdPct,
	}
}
