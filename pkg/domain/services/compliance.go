package services

import (
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// Display units of the Grundpreis
const (
	UnitPerLiter    = "€/L"
	UnitPerKilogram = "€/kg"
)

// ComplianceCalculator derives unit-price disclosures (Grundpreis)
type ComplianceCalculator struct{}

// NewComplianceCalculator creates a new compliance calculator
func NewComplianceCalculator() *ComplianceCalculator {
	return &ComplianceCalculator{}
}

// CalculateGrundpreis returns the price per liter or per kilogram of a product.
// A missing volume or weight is a validation error, never a silent zero.
func (c *ComplianceCalculator) CalculateGrundpreis(price float64, product *entities.Product) entities.GrundpreisResult {
	mode := entities.UnitPricingNone
	if product != nil {
		mode = product.UnitPricing
	}

	var (
		unit     string
		quantity float64
		missing  string
	)
	switch mode {
	case entities.PerLiter:
		unit = UnitPerLiter
		quantity = product.ContentML / 1000
		missing = "content_ml must be positive for per-liter unit pricing"
	case entities.PerKilogram:
		unit = UnitPerKilogram
		quantity = product.WeightGrams / 1000
		missing = "weight_g must be positive for per-kilogram unit pricing"
	}
	applies := unit != ""

	if !entities.IsFinite(price) || price <= 0 {
		return entities.GrundpreisResult{
			Unit:    unit,
			Applies: applies,
			Valid:   false,
			Error:   "price must be positive",
		}
	}

	// Undeclared or unknown units carry no disclosure duty
	if !applies {
		return entities.GrundpreisResult{Applies: false, Valid: true}
	}

	if !entities.IsFinite(quantity) || quantity <= 0 {
		return entities.GrundpreisResult{
			Unit:    unit,
			Applies: true,
			Valid:   false,
			Error:   missing,
		}
	}

	return entities.GrundpreisResult{
		Value:   entities.Round2(price / quantity),
		Unit:    unit,
		Applies: true,
		Valid:   true,
	}
}
