package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

func TestContextValidator_ValidContext(t *testing.T) {
	validator := NewContextValidator()

	result := validator.ValidateContext(testContext())

	assert.True(t, result.Valid(), "unexpected errors: %v", result.Errors)
	assert.Empty(t, result.OverlappingTiers)
}

func TestContextValidator_NilContext(t *testing.T) {
	result := NewContextValidator().ValidateContext(nil)

	assert.Equal(t, []string{"pricing context is nil"}, result.Errors)
}

func TestContextValidator_InvalidRows(t *testing.T) {
	validator := NewContextValidator()

	tests := []struct {
		name          string
		mutate        func(ctx *entities.PricingContext)
		expectedError string
	}{
		{
			name: "payment_fee_out_of_range",
			mutate: func(ctx *entities.PricingContext) {
				ch := ctx.Channels["shop"]
				ch.PaymentFeePct = 120
				ctx.Channels["shop"] = ch
			},
			expectedError: "channel shop: PaymentFeePct must be less than 100",
		},
		{
			name: "mismatching_channel_key",
			mutate: func(ctx *entities.PricingContext) {
				ch := ctx.Channels["shop"]
				ctx.Channels["webshop"] = ch
			},
			expectedError: "channel shop: keyed under mismatching id webshop",
		},
		{
			name: "marketplace_without_referral",
			mutate: func(ctx *entities.PricingContext) {
				ch := ctx.Channels["amazon_fbm"]
				ch.Referral = entities.ReferralFeeSchedule{}
				ctx.Channels["amazon_fbm"] = ch
			},
			expectedError: "channel amazon_fbm: marketplace without referral fee schedule",
		},
		{
			name: "inverted_shipping_band",
			mutate: func(ctx *entities.PricingContext) {
				ctx.ShippingRates[0].MaxWeightG = 0
			},
			expectedError: "shipping rate 1: MaxWeightG must be greater than MinWeightG",
		},
		{
			name: "inverted_quantity_tier",
			mutate: func(ctx *entities.PricingContext) {
				ctx.QuantityTiers = append(ctx.QuantityTiers, entities.QuantityTier{
					Role: entities.RoleReseller, MinQty: 10, MaxQty: 5, DiscountPct: 2, Active: true,
				})
			},
			expectedError: "quantity tier 5: max qty 5 below min qty 10",
		},
		{
			name: "combined_cap_below_individual",
			mutate: func(ctx *entities.PricingContext) {
				ctx.DiscountCaps[entities.RoleDistributor] = entities.DiscountCap{
					Role: entities.RoleDistributor, MaxRolePct: 30, MaxQtyPct: 15, MaxCombinedPct: 20,
				}
			},
			expectedError: "discount cap Distributor: combined cap below an individual cap",
		},
		{
			name: "floor_multiplier_missing",
			mutate: func(ctx *entities.PricingContext) {
				policy := ctx.LineTargets["skincare"]
				policy.FloorMultiplier = 0
				ctx.LineTargets["skincare"] = policy
			},
			expectedError: "line target skincare: FloorMultiplier must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			tt.mutate(ctx)

			result := validator.ValidateContext(ctx)

			require.False(t, result.Valid())
			assert.Contains(t, result.Errors, tt.expectedError)
		})
	}
}

func TestContextValidator_OverlappingTiers(t *testing.T) {
	ctx := testContext()
	ctx.QuantityTiers = append(ctx.QuantityTiers, entities.QuantityTier{
		Role: entities.RoleDistributor, MinQty: 40, MaxQty: 60, DiscountPct: 11, Active: true,
	})

	result := NewContextValidator().ValidateContext(ctx)

	assert.Len(t, result.OverlappingTiers, 4)
	assert.Contains(t, result.Errors, "Found 4 overlapping quantity tiers")
}

func TestContextValidator_ValidateProduct(t *testing.T) {
	validator := NewContextValidator()

	assert.True(t, validator.ValidateProduct(fullCostProduct()).Valid())

	product := fullCostProduct()
	product.Costs = product.Costs.With(entities.QCFee, -0.5)
	product.WeightGrams = -1

	result := validator.ValidateProduct(product)

	assert.Contains(t, result.Errors, "product SERUM-30: QC must be at least 0")
	assert.Contains(t, result.Errors, "product SERUM-30: WeightGrams must be at least 0")
	assert.Equal(t, []string{"product is nil"}, validator.ValidateProduct(nil).Errors)
}
