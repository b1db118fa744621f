package services

import (
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// PriceDeriver turns a full cost and a target margin into a recommended retail price (UVP)
type PriceDeriver struct{}

// NewPriceDeriver creates a new price deriver
func NewPriceDeriver() *PriceDeriver {
	return &PriceDeriver{}
}

// CalculateUVP returns fullCost / (1 - margin/100), cosmetically rounded.
// It returns 0 for a negative cost or a margin outside [0, 100).
func (d *PriceDeriver) CalculateUVP(fullCost, targetMarginPct float64, style entities.RoundingStyle) float64 {
	if !entities.IsFinite(fullCost) || !entities.IsFinite(targetMarginPct) {
		return 0
	}
	if fullCost < 0 || targetMarginPct < 0 || targetMarginPct >= 100 {
		return 0
	}

	raw := fullCost / (1 - targetMarginPct/100)
	return d.ApplyRounding(raw, style)
}

// ApplyRounding applies a rounding style to a raw price
func (d *PriceDeriver) ApplyRounding(raw float64, style entities.RoundingStyle) float64 {
	switch style {
	case entities.RoundEnding99:
		return entities.Sum2(entities.FloorToEuro(raw), 0.99)
	case entities.RoundEnding95:
		return entities.Sum2(entities.FloorToEuro(raw), 0.95)
	default:
		return entities.Round2(raw)
	}
}
