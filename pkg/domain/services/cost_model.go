package services

import (
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// estimateAllocationPct is the share of a base cost assumed for each missing component.
// The shares add up to more than 100% on purpose: estimated rows err on the expensive side.
// Do not normalise them to 100%.
var estimateAllocationPct = map[entities.CostComponent]float64{
	entities.FactoryCost:     70,
	entities.PackagingCost:   8,
	entities.InboundFreight:  10,
	entities.EPRFee:          2,
	entities.GS1Fee:          1,
	entities.RetailPackaging: 5,
	entities.QCFee:           3,
	entities.OperationsCost:  12,
	entities.MarketingCost:   9,
}

// CostModel aggregates landed-cost components into a full unit cost
type CostModel struct{}

// NewCostModel creates a new cost model
func NewCostModel() *CostModel {
	return &CostModel{}
}

// EstimateAllocationPct returns the estimation share of a component
func EstimateAllocationPct(component entities.CostComponent) float64 {
	return estimateAllocationPct[component]
}

// CalculateFullCost sums the nine components. Absent components count as 0;
// explicit zeros stay zeros.
func (m *CostModel) CalculateFullCost(product *entities.Product) entities.FullCostBreakdown {
	values := make(map[entities.CostComponent]float64, len(entities.AllCostComponents))
	for _, component := range entities.AllCostComponents {
		if v := product.Costs.Get(component); v != nil {
			values[component] = *v
		}
	}
	return buildBreakdown(values, nil)
}

// ValidateFullCostFields returns the names of the components that are absent.
// An explicit 0 is not missing.
func (m *CostModel) ValidateFullCostFields(product *entities.Product) []string {
	missing := make([]string, 0)
	for _, component := range entities.AllCostComponents {
		if !product.HasCost(component) {
			missing = append(missing, component.String())
		}
	}
	return missing
}

// CalculateFullCostWithDefaults fills absent components with a share of a base cost.
// The base is legacyTotalCost when given, else the product's aggregate cost, else 0.
// Present components, explicit zeros included, are never overwritten.
func (m *CostModel) CalculateFullCostWithDefaults(product *entities.Product, legacyTotalCost *float64) entities.FullCostBreakdown {
	if len(m.ValidateFullCostFields(product)) == 0 {
		return m.CalculateFullCost(product)
	}

	base := 0.0
	switch {
	case legacyTotalCost != nil && entities.IsFinite(*legacyTotalCost):
		base = *legacyTotalCost
	case product.AggregateCost != nil && entities.IsFinite(*product.AggregateCost):
		base = *product.AggregateCost
	}

	values := make(map[entities.CostComponent]float64, len(entities.AllCostComponents))
	estimated := make([]entities.CostComponent, 0)
	for _, component := range entities.AllCostComponents {
		if v := product.Costs.Get(component); v != nil {
			values[component] = *v
			continue
		}
		values[component] = entities.Percent(base, estimateAllocationPct[component])
		estimated = append(estimated, component)
	}
	return buildBreakdown(values, estimated)
}

func buildBreakdown(values map[entities.CostComponent]float64, estimated []entities.CostComponent) entities.FullCostBreakdown {
	rounded := make([]float64, 0, len(entities.AllCostComponents))
	for _, component := range entities.AllCostComponents {
		values[component] = entities.Round2(values[component])
		rounded = append(rounded, values[component])
	}

	return entities.FullCostBreakdown{
		Factory:         values[entities.FactoryCost],
		Packaging:       values[entities.PackagingCost],
		InboundFreight:  values[entities.InboundFreight],
		EPR:             values[entities.EPRFee],
		GS1:             values[entities.GS1Fee],
		RetailPackaging: values[entities.RetailPackaging],
		QC:              values[entities.QCFee],
		Operations:      values[entities.OperationsCost],
		Marketing:       values[entities.MarketingCost],
		Total:           entities.Sum2(rounded...),
		Estimated:       estimated,
	}
}
