package entities

import "testing"

func TestChannelKind_Capabilities(t *testing.T) {
	tests := []struct {
		kind        ChannelKind
		marketplace bool
		fulfilled   bool
		selfShip    bool
		loyalty     bool
	}{
		{OwnStore, false, false, true, true},
		{MarketplaceFulfilled, true, true, false, false},
		{MarketplaceSelfShip, true, false, true, false},
		{Wholesale, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ch := &Channel{Kind: tt.kind}
			if ch.IsMarketplace() != tt.marketplace {
				t.Errorf("IsMarketplace = %v, want %v", ch.IsMarketplace(), tt.marketplace)
			}
			if ch.IsPlatformFulfilled() != tt.fulfilled {
				t.Errorf("IsPlatformFulfilled = %v, want %v", ch.IsPlatformFulfilled(), tt.fulfilled)
			}
			if ch.IsSelfShip() != tt.selfShip {
				t.Errorf("IsSelfShip = %v, want %v", ch.IsSelfShip(), tt.selfShip)
			}
			if ch.EarnsLoyalty() != tt.loyalty {
				t.Errorf("EarnsLoyalty = %v, want %v", ch.EarnsLoyalty(), tt.loyalty)
			}

			parsed, err := ParseChannelKind(tt.kind.String())
			if err != nil || parsed != tt.kind {
				t.Errorf("ParseChannelKind(%s) = %v, %v", tt.kind, parsed, err)
			}
		})
	}

	if _, err := ParseChannelKind("fax"); err == nil {
		t.Errorf("Expected error for unknown channel kind")
	}
}

func TestChannel_Zone(t *testing.T) {
	if zone := (&Channel{}).Zone(); zone != DefaultShippingZone {
		t.Errorf("Expected default zone %s, got %s", DefaultShippingZone, zone)
	}
	if zone := (&Channel{ShippingZone: "eu"}).Zone(); zone != "eu" {
		t.Errorf("Expected zone eu, got %s", zone)
	}
}

func TestShippingRate_Matches(t *testing.T) {
	rate := ShippingRate{Carrier: "DHL", Zone: "domestic", MinWeightG: 0, MaxWeightG: 1000, Price: 4.19}

	tests := []struct {
		name     string
		zone     string
		carrier  string
		weight   float64
		expected bool
	}{
		{"inside_band", "domestic", "", 500, true},
		{"upper_bound_inclusive", "domestic", "DHL", 1000, true},
		{"above_band", "domestic", "", 1000.5, false},
		{"other_zone", "eu", "", 500, false},
		{"other_carrier", "domestic", "GLS", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rate.Matches(tt.zone, tt.carrier, tt.weight); got != tt.expected {
				t.Errorf("Matches = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReferralFeeSchedule_Resolved(t *testing.T) {
	resolved := ReferralFeeSchedule{LowPct: 8, HighPct: 15}.Resolved()
	if resolved.Breakpoint != DefaultReferralBreakpoint {
		t.Errorf("Expected default breakpoint, got %.2f", resolved.Breakpoint)
	}
	if resolved.MinimumFee == nil || *resolved.MinimumFee != DefaultReferralMinimumFee {
		t.Errorf("Expected default minimum fee")
	}

	zeroMin := 0.0
	kept := ReferralFeeSchedule{Breakpoint: 20, MinimumFee: &zeroMin}.Resolved()
	if kept.Breakpoint != 20 || *kept.MinimumFee != 0 {
		t.Errorf("Expected configured breakpoint and explicit zero minimum to be kept")
	}
}

func TestQuantityTier_Contains(t *testing.T) {
	closed := QuantityTier{MinQty: 6, MaxQty: 11}
	open := QuantityTier{MinQty: 12}

	if closed.Contains(5) || !closed.Contains(6) || !closed.Contains(11) || closed.Contains(12) {
		t.Errorf("Closed tier bounds are not inclusive on both ends")
	}
	if open.Contains(11) || !open.Contains(12) || !open.Contains(100000) {
		t.Errorf("Open-ended tier should contain every quantity from its minimum")
	}
}

func TestPricingContext_Lookups(t *testing.T) {
	ctx := NewPricingContext()
	ctx.Channels["shop"] = Channel{ID: "shop", Active: true}
	ctx.Channels["old"] = Channel{ID: "old", Active: false}

	if _, ok := ctx.Channel("shop"); !ok {
		t.Errorf("Expected active channel to be found")
	}
	if _, ok := ctx.Channel("old"); ok {
		t.Errorf("Expected inactive channel to be hidden")
	}
	if ids := ctx.ActiveChannelIDs(); len(ids) != 1 || ids[0] != "shop" {
		t.Errorf("Expected only shop to be active, got %v", ids)
	}
	if ctx.ParcelBoxCost() != DefaultBoxCost {
		t.Errorf("Expected default box cost")
	}

	var nilCtx *PricingContext
	if _, ok := nilCtx.Channel("shop"); ok {
		t.Errorf("Expected nil context to have no channels")
	}
}
