package entities

import (
	"fmt"
	"strings"
)

// SKU represents a unique stock keeping unit identifier
type SKU string

// LineID identifies a product line carrying its own pricing policy
type LineID string

// CostComponent enumerates the landed-cost components of a unit
type CostComponent int

const (
	FactoryCost CostComponent = iota
	PackagingCost
	InboundFreight
	EPRFee
	GS1Fee
	RetailPackaging
	QCFee
	OperationsCost
	MarketingCost
)

// AllCostComponents lists the components in breakdown order
var AllCostComponents = []CostComponent{
	FactoryCost,
	PackagingCost,
	InboundFreight,
	EPRFee,
	GS1Fee,
	RetailPackaging,
	QCFee,
	OperationsCost,
	MarketingCost,
}

// String method for CostComponent enum
func (c CostComponent) String() string {
	switch c {
	case FactoryCost:
		return "factory"
	case PackagingCost:
		return "packaging"
	case InboundFreight:
		return "inbound_freight"
	case EPRFee:
		return "epr_fee"
	case GS1Fee:
		return "gs1_fee"
	case RetailPackaging:
		return "retail_packaging"
	case QCFee:
		return "qc_fee"
	case OperationsCost:
		return "operations"
	case MarketingCost:
		return "marketing"
	default:
		return "unknown"
	}
}

// MarshalText renders the component by name
func (c CostComponent) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnitPricingMode declares which unit-price disclosure a product needs.
// Values other than the known constants are kept verbatim and never apply.
type UnitPricingMode string

const (
	UnitPricingNone UnitPricingMode = ""
	PerLiter        UnitPricingMode = "liter"
	PerKilogram     UnitPricingMode = "kilogram"
)

// ParseUnitPricingMode maps the spellings found in catalog sheets onto a mode
func ParseUnitPricingMode(s string) UnitPricingMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "-":
		return UnitPricingNone
	case "liter", "litre", "per-liter", "l":
		return PerLiter
	case "kilogram", "per-kilogram", "kg":
		return PerKilogram
	default:
		return UnitPricingMode(strings.TrimSpace(s))
	}
}

// CostInputs holds the nine optional landed-cost components.
// nil means the component is absent; a pointer to 0 is an explicit zero.
type CostInputs struct {
	Factory         *float64 `validate:"omitempty,gte=0"`
	Packaging       *float64 `validate:"omitempty,gte=0"`
	InboundFreight  *float64 `validate:"omitempty,gte=0"`
	EPR             *float64 `validate:"omitempty,gte=0"`
	GS1             *float64 `validate:"omitempty,gte=0"`
	RetailPackaging *float64 `validate:"omitempty,gte=0"`
	QC              *float64 `validate:"omitempty,gte=0"`
	Operations      *float64 `validate:"omitempty,gte=0"`
	Marketing       *float64 `validate:"omitempty,gte=0"`
}

// Get returns the component value, or nil when absent
func (c CostInputs) Get(component CostComponent) *float64 {
	switch component {
	case FactoryCost:
		return c.Factory
	case PackagingCost:
		return c.Packaging
	case InboundFreight:
		return c.InboundFreight
	case EPRFee:
		return c.EPR
	case GS1Fee:
		return c.GS1
	case RetailPackaging:
		return c.RetailPackaging
	case QCFee:
		return c.QC
	case OperationsCost:
		return c.Operations
	case MarketingCost:
		return c.Marketing
	default:
		return nil
	}
}

// With returns a copy of the inputs with one component set
func (c CostInputs) With(component CostComponent, value float64) CostInputs {
	v := value
	switch component {
	case FactoryCost:
		c.Factory = &v
	case PackagingCost:
		c.Packaging = &v
	case InboundFreight:
		c.InboundFreight = &v
	case EPRFee:
		c.EPR = &v
	case GS1Fee:
		c.GS1 = &v
	case RetailPackaging:
		c.RetailPackaging = &v
	case QCFee:
		c.QC = &v
	case OperationsCost:
		c.Operations = &v
	case MarketingCost:
		c.Marketing = &v
	}
	return c
}

// Product is a read-only snapshot of the pricing-relevant attributes of one SKU
type Product struct {
	SKU         SKU `validate:"required"`
	Description string
	Line        LineID
	Costs       CostInputs
	// AggregateCost is the product's already-known total cost, used as an estimation base
	AggregateCost *float64 `validate:"omitempty,gte=0"`

	WeightGrams float64 `validate:"gte=0"`
	ContentML   float64 `validate:"gte=0"`
	UnitPricing UnitPricingMode
	SizeTier    string

	MinimumAdvertisedPrice *float64
	CompetitorPrice        *float64
}

// HasCost reports whether a component is present (explicit zero counts as present)
func (p *Product) HasCost(component CostComponent) bool {
	return p.Costs.Get(component) != nil
}

// NewProduct creates a validated Product
func NewProduct(sku SKU, line LineID, costs CostInputs, weightGrams, contentML float64, unitPricing UnitPricingMode, sizeTier string) (*Product, error) {
	if string(sku) == "" {
		return nil, fmt.Errorf("sku cannot be empty")
	}
	for _, component := range AllCostComponents {
		if v := costs.Get(component); v != nil && *v < 0 {
			return nil, fmt.Errorf("%s cost cannot be negative, got %.2f", component, *v)
		}
	}
	if weightGrams < 0 {
		return nil, fmt.Errorf("weight cannot be negative, got %.2f", weightGrams)
	}
	if contentML < 0 {
		return nil, fmt.Errorf("content cannot be negative, got %.2f", contentML)
	}

	return &Product{
		SKU:         sku,
		Line:        line,
		Costs:       costs,
		WeightGrams: weightGrams,
		ContentML:   contentML,
		UnitPricing: unitPricing,
		SizeTier:    sizeTier,
	}, nil
}
