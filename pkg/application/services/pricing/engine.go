package pricing

import (
	"github.com/vsinha/pricinglaw/pkg/application/dto"
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/domain/services"
)

// Engine runs the pricing pipeline for one SKU/channel/role combination.
// It holds no mutable state and may be shared between goroutines.
type Engine struct {
	costModel   *services.CostModel
	compliance  *services.ComplianceCalculator
	lineTargets *services.LineTargetResolver
	deriver     *services.PriceDeriver
	channels    *services.ChannelCostCalculator
	guardrail   *services.GuardrailChecker
	mapEnforcer *services.MAPEnforcer
	b2b         *services.B2BDiscountCalculator

	defaultGuardrailPct float64
}

// NewEngine creates a pricing engine wired with every pipeline stage
func NewEngine() *Engine {
	return &Engine{
		costModel:   services.NewCostModel(),
		compliance:  services.NewComplianceCalculator(),
		lineTargets: services.NewLineTargetResolver(),
		deriver:     services.NewPriceDeriver(),
		channels:    services.NewChannelCostCalculator(),
		guardrail:   services.NewGuardrailChecker(),
		mapEnforcer: services.NewMAPEnforcer(),
		b2b:         services.NewB2BDiscountCalculator(),

		defaultGuardrailPct: entities.DefaultGuardrailMarginPct,
	}
}

// WithDefaultGuardrailPct sets the guardrail threshold for lines without an active policy
func (e *Engine) WithDefaultGuardrailPct(pct float64) *Engine {
	e.defaultGuardrailPct = pct
	return e
}

// Price runs full cost → line targets → UVP → floor clamp → MAP → channel costs →
// guardrail → Grundpreis → B2B discount. MAP is applied after floor and rounding
// and its price is final.
func (e *Engine) Price(req dto.PricingRequest, ctx *entities.PricingContext) *dto.PricingResult {
	product := req.Product
	result := &dto.PricingResult{
		SKU:     product.SKU,
		Channel: req.Channel,
		Role:    req.Role,
		Flags:   make([]dto.PricingFlag, 0),
	}

	// Step 1: Landed cost, estimating absent components
	result.FullCost = e.costModel.CalculateFullCostWithDefaults(product, req.LegacyTotalCost)
	if result.FullCost.IsEstimated() {
		result.Flags = append(result.Flags, dto.FlagCostEstimated)
	}
	fullCost := result.FullCost.Total

	// Step 2: Product line policy
	result.LineTarget = e.lineTargets.ApplyLineTargets(fullCost, product.Line, ctx)
	if result.LineTarget.Fallback {
		result.LineTarget.GuardrailMarginPct = e.defaultGuardrailPct
	}
	result.FloorPrice = result.LineTarget.FloorPrice

	// Step 3: Margin-derived price
	result.Rounding = entities.RoundPrecise
	if result.LineTarget.Rounding != nil {
		result.Rounding = *result.LineTarget.Rounding
	}
	result.UVP = e.deriver.CalculateUVP(fullCost, result.LineTarget.TargetMarginPct, result.Rounding)

	// Step 4: Floor multiplier clamp
	price := result.UVP
	if result.FloorPrice > price {
		price = result.FloorPrice
		result.Flags = append(result.Flags, dto.FlagFloorApplied)
	}

	// Step 5: MAP outranks everything before it
	minimum := 0.0
	if product.MinimumAdvertisedPrice != nil {
		minimum = *product.MinimumAdvertisedPrice
	}
	result.MAP = e.mapEnforcer.EnforceMAP(price, minimum, product.CompetitorPrice)
	if result.MAP.Violated {
		result.Flags = append(result.Flags, dto.FlagMAPViolated)
	}
	result.FinalPrice = result.MAP.AdjustedPrice

	// Step 6: Channel cost stack at the final price
	result.ChannelCosts = e.channels.CalculateChannelCosts(product, req.Channel, result.FinalPrice, ctx)
	if result.ChannelCosts.ChannelName == services.UnknownChannelName {
		result.Flags = append(result.Flags, dto.FlagUnknownChannel)
	}

	// Step 7: Post-channel margin guardrail
	result.Guardrail = e.guardrail.CheckGuardrail(
		result.FinalPrice,
		fullCost,
		result.ChannelCosts.TotalChannelCost,
		result.LineTarget.GuardrailMarginPct,
	)
	if !result.Guardrail.GuardrailOK {
		result.Flags = append(result.Flags, dto.FlagGuardrailFailed)
	}

	// Step 8: Unit-price disclosure for labels
	result.Grundpreis = e.compliance.CalculateGrundpreis(result.FinalPrice, product)
	if !result.Grundpreis.Valid {
		result.Flags = append(result.Flags, dto.FlagGrundpreisInvalid)
	}

	// Step 9: Wholesale net price
	if req.Role != "" {
		b2b := e.b2b.CalculateB2BDiscount(result.FinalPrice, req.Role, req.Quantity, req.OrderValue, ctx)
		result.B2B = &b2b
		if b2b.Capped {
			result.Flags = append(result.Flags, dto.FlagDiscountCapped)
		}
	}

	return result
}

// OrderDiscount returns the order-level discount for an order value
func (e *Engine) OrderDiscount(orderValue float64, ctx *entities.PricingContext) entities.OrderDiscountResult {
	return e.b2b.CalculateOrderDiscount(orderValue, ctx)
}
