package testing

import (
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/repositories/memory"
)

// BuildCosmeticsTestData builds a small cosmetics catalog and the pricing context it is sold under
func BuildCosmeticsTestData() (*memory.ProductRepository, *memory.ContextRepository) {
	products := BuildCosmeticsCatalog()
	productRepo := memory.NewProductRepository(len(products))
	if err := productRepo.LoadProducts(products); err != nil {
		panic(err)
	}
	return productRepo, memory.NewContextRepository(BuildCosmeticsContext())
}

// BuildCosmeticsCatalog returns four products covering the main pricing paths:
//   - SERUM-30: every cost component known, per-liter unit price
//   - CREAM-50: only an aggregate cost, so every component is estimated
//   - SOAP-100: line without a policy and a MAP above the derived price
//   - MASK-75: per-liter unit pricing without a declared content
func BuildCosmeticsCatalog() []*entities.Product {
	return []*entities.Product{
		{
			SKU:         "SERUM-30",
			Description: "Hyaluronic Serum 30ml",
			Line:        "skincare",
			Costs: entities.CostInputs{
				Factory:         entities.Amount(8.50),
				Packaging:       entities.Amount(0.80),
				InboundFreight:  entities.Amount(1.20),
				EPR:             entities.Amount(0.15),
				GS1:             entities.Amount(0.05),
				RetailPackaging: entities.Amount(0.50),
				QC:              entities.Amount(0.30),
				Operations:      entities.Amount(1.50),
				Marketing:       entities.Amount(0.80),
			},
			WeightGrams: 180,
			ContentML:   30,
			UnitPricing: entities.PerLiter,
			SizeTier:    "small_standard",
		},
		{
			SKU:           "CREAM-50",
			Description:   "Night Cream 50ml",
			Line:          "skincare",
			AggregateCost: entities.Amount(10.00),
			WeightGrams:   240,
			ContentML:     50,
			UnitPricing:   entities.PerLiter,
			SizeTier:      "small_standard",
		},
		{
			SKU:         "SOAP-100",
			Description: "Olive Soap Bar 100g",
			Line:        "bodycare",
			Costs: entities.CostInputs{
				Factory:         entities.Amount(2.00),
				Packaging:       entities.Amount(0.40),
				InboundFreight:  entities.Amount(0.30),
				EPR:             entities.Amount(0.05),
				GS1:             entities.Amount(0.05),
				RetailPackaging: entities.Amount(0.20),
				QC:              entities.Amount(0.10),
				Operations:      entities.Amount(0.50),
				Marketing:       entities.Amount(0.40),
			},
			WeightGrams:            100,
			UnitPricing:            entities.PerKilogram,
			SizeTier:               "small_standard",
			MinimumAdvertisedPrice: entities.Amount(12.99),
			CompetitorPrice:        entities.Amount(11.49),
		},
		{
			SKU:         "MASK-75",
			Description: "Clay Mask",
			Line:        "skincare",
			Costs: entities.CostInputs{
				Factory:         entities.Amount(3.00),
				Packaging:       entities.Amount(0.50),
				InboundFreight:  entities.Amount(0.50),
				EPR:             entities.Amount(0.10),
				GS1:             entities.Amount(0.05),
				RetailPackaging: entities.Amount(0.25),
				QC:              entities.Amount(0.20),
				Operations:      entities.Amount(0.60),
				Marketing:       entities.Amount(0.80),
			},
			WeightGrams: 120,
			UnitPricing: entities.PerLiter,
			SizeTier:    "small_standard",
		},
	}
}

// BuildCosmeticsContext returns a context with an own shop, two Amazon channels,
// a wholesale channel and one inactive marketplace
func BuildCosmeticsContext() *entities.PricingContext {
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
		Referral:      entities.ReferralFeeSchedule{LowPct: 8, HighPct: 15},
		Active:        true,
	}
	ctx.Channels["amazon_fbm"] = entities.Channel{
		ID:           "amazon_fbm",
		Name:         "Amazon FBM",
		Kind:         entities.MarketplaceSelfShip,
		Referral:     entities.ReferralFeeSchedule{LowPct: 8, HighPct: 15},
		ShippingZone: entities.DefaultShippingZone,
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
		ID:       "legacy",
		Name:     "Old Marketplace",
		Kind:     entities.MarketplaceSelfShip,
		Referral: entities.ReferralFeeSchedule{LowPct: 12, HighPct: 12},
		Active:   false,
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
	return ctx
}
