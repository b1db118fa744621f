package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

func TestComplianceCalculator_CalculateGrundpreis(t *testing.T) {
	calc := NewComplianceCalculator()

	tests := []struct {
		name     string
		price    float64
		product  *entities.Product
		expected entities.GrundpreisResult
	}{
		{
			name:     "per_liter",
			price:    32.99,
			product:  &entities.Product{SKU: "SERUM-50", ContentML: 50, UnitPricing: entities.PerLiter},
			expected: entities.GrundpreisResult{Value: 659.80, Unit: UnitPerLiter, Applies: true, Valid: true},
		},
		{
			name:     "per_kilogram",
			price:    12.50,
			product:  &entities.Product{SKU: "SALT-250", WeightGrams: 250, UnitPricing: entities.PerKilogram},
			expected: entities.GrundpreisResult{Value: 50.00, Unit: UnitPerKilogram, Applies: true, Valid: true},
		},
		{
			name:     "no_unit_declared",
			price:    9.99,
			product:  &entities.Product{SKU: "COMB"},
			expected: entities.GrundpreisResult{Applies: false, Valid: true},
		},
		{
			name:     "unknown_unit_never_applies",
			price:    9.99,
			product:  &entities.Product{SKU: "WIPES", UnitPricing: entities.UnitPricingMode("per-piece")},
			expected: entities.GrundpreisResult{Applies: false, Valid: true},
		},
		{
			name:    "missing_content",
			price:   19.99,
			product: &entities.Product{SKU: "TONER", UnitPricing: entities.PerLiter},
			expected: entities.GrundpreisResult{
				Unit:    UnitPerLiter,
				Applies: true,
				Valid:   false,
				Error:   "content_ml must be positive for per-liter unit pricing",
			},
		},
		{
			name:    "missing_weight",
			price:   19.99,
			product: &entities.Product{SKU: "SCRUB", ContentML: 200, UnitPricing: entities.PerKilogram},
			expected: entities.GrundpreisResult{
				Unit:    UnitPerKilogram,
				Applies: true,
				Valid:   false,
				Error:   "weight_g must be positive for per-kilogram unit pricing",
			},
		},
		{
			name:    "zero_price_invalid_even_without_unit",
			price:   0,
			product: &entities.Product{SKU: "COMB"},
			expected: entities.GrundpreisResult{
				Applies: false,
				Valid:   false,
				Error:   "price must be positive",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.CalculateGrundpreis(tt.price, tt.product))
		})
	}
}

func TestComplianceCalculator_NonFinitePrice(t *testing.T) {
	calc := NewComplianceCalculator()
	product := &entities.Product{SKU: "SERUM-50", ContentML: 50, UnitPricing: entities.PerLiter}

	for _, price := range []float64{math.NaN(), math.Inf(1), -5} {
		result := calc.CalculateGrundpreis(price, product)
		assert.False(t, result.Valid)
		assert.True(t, result.Applies)
	}
}
