package main

import (
	"fmt"

	"github.com/vsinha/pricinglaw/pkg/application/dto"
	"github.com/vsinha/pricinglaw/pkg/application/services/pricing"
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

func main() {
	ctx := buildContext()
	serum := &entities.Product{
		SKU:         "SERUM-30",
		Description: "Vitamin C Serum 30ml",
		Line:        "skincare",
		Costs: entities.CostInputs{
			Factory:         entities.Amount(8.00),
			Packaging:       entities.Amount(1.20),
			InboundFreight:  entities.Amount(0.90),
			EPR:             entities.Amount(0.10),
			GS1:             entities.Amount(0.05),
			RetailPackaging: entities.Amount(0.60),
			QC:              entities.Amount(0.25),
			Operations:      entities.Amount(1.20),
			Marketing:       entities.Amount(1.50),
		},
		WeightGrams: 180,
		ContentML:   30,
		UnitPricing: entities.PerLiter,
		SizeTier:    "small_standard",
	}

	engine := pricing.NewEngine()

	fmt.Println("💶 Pricing Vitamin C Serum across channels...")
	fmt.Println()

	for _, channel := range ctx.ActiveChannelIDs() {
		result := engine.Price(dto.PricingRequest{Product: serum, Channel: channel}, ctx)

		fmt.Printf("📦 %s on %s\n", result.SKU, result.ChannelCosts.ChannelName)
		fmt.Printf("  Full cost: %.2f | UVP: %.2f | Final: %.2f\n",
			result.FullCost.Total, result.UVP, result.FinalPrice)
		fmt.Printf("  Channel costs: %.2f | Net revenue: %.2f | Margin: %.2f%%\n",
			result.ChannelCosts.TotalChannelCost, result.Guardrail.NetRevenue, result.Guardrail.MarginPct)
		if !result.Guardrail.GuardrailOK {
			fmt.Printf("    ⚠️  Below %.0f%% guardrail\n", result.Guardrail.ThresholdPct)
		}
		if result.Grundpreis.Applies && result.Grundpreis.Valid {
			fmt.Printf("  Grundpreis: %.2f %s\n", result.Grundpreis.Value, result.Grundpreis.Unit)
		}
		fmt.Println()
	}

	// Wholesale price for a distributor ordering two cartons
	result := engine.Price(dto.PricingRequest{
		Product:  serum,
		Channel:  "b2b",
		Role:     entities.RoleDistributor,
		Quantity: 24,
	}, ctx)
	fmt.Printf("🏷️  Distributor net price for 24 units: %.2f (%.2f%% off", result.B2B.NetPrice, result.B2B.DiscountPct)
	if result.B2B.Capped {
		fmt.Print(", capped")
	}
	fmt.Println(")")

	fmt.Println("✅ Pricing complete!")
}

func buildContext() *entities.PricingContext {
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
	ctx.Channels["b2b"] = entities.Channel{
		ID:            "b2b",
		Name:          "Wholesale",
		Kind:          entities.Wholesale,
		PaymentFeePct: 0.5,
		Active:        true,
	}

	ctx.SizeTierFees["small_standard"] = entities.SizeTierFee{Tier: "small_standard", Fee: 2.70, Surcharge: 0.10}
	ctx.ShippingRates = []entities.ShippingRate{
		{Carrier: "DHL", Zone: "domestic", MinWeightG: 0, MaxWeightG: 1000, Price: 4.19},
	}
	ctx.Surcharges = []entities.CarrierSurcharge{{Name: "fuel", Amount: 0.25, Active: true}}
	ctx.QuantityTiers = []entities.QuantityTier{
		{Role: entities.RoleDistributor, MinQty: 12, DiscountPct: 10, Active: true},
	}
	ctx.DiscountCaps[entities.RoleDistributor] = entities.DiscountCap{
		Role:           entities.RoleDistributor,
		MaxRolePct:     30,
		MaxQtyPct:      15,
		MaxCombinedPct: 30,
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
