package services

import (
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

func amount(v float64) *float64 {
	return &v
}

func fullCostProduct() *entities.Product {
	return &entities.Product{
		SKU:  "SERUM-30",
		Line: "skincare",
		Costs: entities.CostInputs{
			Factory:         amount(8.50),
			Packaging:       amount(0.80),
			InboundFreight:  amount(1.20),
			EPR:             amount(0.15),
			GS1:             amount(0.05),
			RetailPackaging: amount(0.50),
			QC:              amount(0.30),
			Operations:      amount(1.50),
			Marketing:       amount(0.80),
		},
		WeightGrams: 180,
		ContentML:   30,
		UnitPricing: entities.PerLiter,
		SizeTier:    "small_standard",
	}
}

func testContext() *entities.PricingContext {
	ctx := entities.NewPricingContext()
	ctx.Channels["shop"] = entities.Channel{
		ID:              "shop",
		Name:            "Own Shop",
		Kind:            entities.OwnStore,
		PaymentFeePct:   1.5,
		PaymentFeeFixed: 0.25,
		ReturnRatePct:   3,
		Active:          true,
	}
	ctx.Channels["amazon_fba"] = entities.Channel{
		ID:            "amazon_fba",
		Name:          "Amazon FBA",
		Kind:          entities.MarketplaceFulfilled,
		ReturnRatePct: 5,
		Referral: entities.ReferralFeeSchedule{
			LowPct:     8,
			HighPct:    15,
			Breakpoint: 10,
			MinimumFee: amount(0.30),
		},
		Active: true,
	}
	ctx.Channels["amazon_fbm"] = entities.Channel{
		ID:           "amazon_fbm",
		Name:         "Amazon FBM",
		Kind:         entities.MarketplaceSelfShip,
		Referral:     entities.ReferralFeeSchedule{LowPct: 8, HighPct: 15},
		ShippingZone: "domestic",
		Active:       true,
	}
	ctx.Channels["b2b"] = entities.Channel{
		ID:            "b2b",
		Name:          "Wholesale",
		Kind:          entities.Wholesale,
		PaymentFeePct: 0.5,
		Active:        true,
	}
	ctx.Channels["legacy"] = entities.Channel{
		ID:     "legacy",
		Name:   "Old Marketplace",
		Kind:   entities.MarketplaceSelfShip,
		Active: false,
	}
	ctx.SizeTierFees["small_standard"] = entities.SizeTierFee{Tier: "small_standard", Fee: 2.70, Surcharge: 0.10}
	ctx.ShippingRates = []entities.ShippingRate{
		{Carrier: "DHL", Zone: "domestic", MinWeightG: 0, MaxWeightG: 1000, Price: 4.19},
		{Carrier: "DHL", Zone: "domestic", MinWeightG: 1000.01, MaxWeightG: 5000, Price: 5.49},
		{Carrier: "DHL", Zone: "eu", MinWeightG: 0, MaxWeightG: 5000, Price: 9.49},
	}
	ctx.Surcharges = []entities.CarrierSurcharge{
		{Name: "fuel", Amount: 0.25, Active: true},
		{Name: "peak", Amount: 0.40, Active: false},
	}
	ctx.QuantityTiers = []entities.QuantityTier{
		{MinQty: 6, MaxQty: 11, DiscountPct: 3, Active: true},
		{MinQty: 12, MaxQty: 0, DiscountPct: 5, Active: true},
		{Role: entities.RoleDistributor, MinQty: 12, MaxQty: 47, DiscountPct: 10, Active: true},
		{Role: entities.RoleDistributor, MinQty: 48, MaxQty: 0, DiscountPct: 12, Active: true},
	}
	ctx.DiscountCaps[entities.RoleDistributor] = entities.DiscountCap{
		Role:           entities.RoleDistributor,
		MaxRolePct:     30,
		MaxQtyPct:      15,
		MaxCombinedPct: 30,
	}
	ctx.OrderDiscounts = []entities.OrderDiscount{
		{Name: "Spring 5", MinOrderValue: 500, DiscountPct: 5, Active: true},
		{Name: "Volume 8", MinOrderValue: 1500, DiscountPct: 8, Active: true},
		{Name: "Retired 20", MinOrderValue: 100, DiscountPct: 20, Active: false},
	}
	ending99 := entities.RoundEnding99
	ctx.LineTargets["skincare"] = entities.LineTargetPolicy{
		Line:               "skincare",
		TargetMarginPct:    55,
		FloorMultiplier:    2.5,
		GuardrailMarginPct: 40,
		Rounding:           &ending99,
		Active:             true,
	}
	ctx.LineTargets["haircare"] = entities.LineTargetPolicy{
		Line:            "haircare",
		TargetMarginPct: 60,
		FloorMultiplier: 3,
		Active:          false,
	}
	return ctx
}
