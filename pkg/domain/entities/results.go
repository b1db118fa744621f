package entities

// FullCostBreakdown is the landed unit cost split into its nine components
type FullCostBreakdown struct {
	Factory         float64 `json:"factory"`
	Packaging       float64 `json:"packaging"`
	InboundFreight  float64 `json:"inbound_freight"`
	EPR             float64 `json:"epr_fee"`
	GS1             float64 `json:"gs1_fee"`
	RetailPackaging float64 `json:"retail_packaging"`
	QC              float64 `json:"qc_fee"`
	Operations      float64 `json:"operations"`
	Marketing       float64 `json:"marketing"`
	Total           float64 `json:"total"`
	// Estimated lists components filled from a percentage of a base cost
	Estimated []CostComponent `json:"estimated,omitempty"`
}

// Component returns one component of the breakdown
func (b *FullCostBreakdown) Component(component CostComponent) float64 {
	switch component {
	case FactoryCost:
		return b.Factory
	case PackagingCost:
		return b.Packaging
	case InboundFreight:
		return b.InboundFreight
	case EPRFee:
		return b.EPR
	case GS1Fee:
		return b.GS1
	case RetailPackaging:
		return b.RetailPackaging
	case QCFee:
		return b.QC
	case OperationsCost:
		return b.Operations
	case MarketingCost:
		return b.Marketing
	default:
		return 0
	}
}

// IsEstimated reports whether any component was estimated
func (b *FullCostBreakdown) IsEstimated() bool {
	return len(b.Estimated) > 0
}

// ChannelCostBreakdown is the channel-specific cost stack for one price
type ChannelCostBreakdown struct {
	ChannelID        ChannelID `json:"channel_id"`
	ChannelName      string    `json:"channel_name"`
	PaymentFee       float64   `json:"payment_fee"`
	ReferralFee      float64   `json:"referral_fee"`
	FulfillmentFee   float64   `json:"fulfillment_fee"`
	Shipping         float64   `json:"shipping"`
	Surcharges       float64   `json:"surcharges"`
	Packaging        float64   `json:"packaging"`
	ReturnsProvision float64   `json:"returns_provision"`
	LoyaltyProvision float64   `json:"loyalty_provision"`
	TotalChannelCost float64   `json:"total_channel_cost"`
}

// GuardrailResult is the post-channel margin check outcome
type GuardrailResult struct {
	NetRevenue   float64 `json:"net_revenue"`
	MarginPct    float64 `json:"margin_pct"`
	ThresholdPct float64 `json:"threshold_pct"`
	GuardrailOK  bool    `json:"guardrail_ok"`
}

// LineTarget is the resolved policy of a product line for one cost
type LineTarget struct {
	FloorPrice         float64        `json:"floor_price"`
	TargetMarginPct    float64        `json:"target_margin_pct"`
	FloorMultiplier    float64        `json:"floor_multiplier"`
	GuardrailMarginPct float64        `json:"guardrail_margin_pct"`
	Rounding           *RoundingStyle `json:"rounding,omitempty"`
	// Fallback is set when no active policy existed for the line
	Fallback bool `json:"fallback"`
}

// GrundpreisResult is a price per standard unit of measure
type GrundpreisResult struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit,omitempty"`
	Applies bool    `json:"applies"`
	Valid   bool    `json:"valid"`
	Error   string  `json:"error,omitempty"`
}

// MAPResult is the outcome of minimum advertised price enforcement
type MAPResult struct {
	AdjustedPrice   float64  `json:"adjusted_price"`
	Violated        bool     `json:"violated"`
	Reason          string   `json:"reason,omitempty"`
	CompetitorPrice *float64 `json:"competitor_price,omitempty"`
}

// B2BDiscountResult is a wholesale net price with the applied discount
type B2BDiscountResult struct {
	NetPrice    float64 `json:"net_price"`
	DiscountPct float64 `json:"discount_pct"`
	RolePct     float64 `json:"role_pct"`
	QuantityPct float64 `json:"quantity_pct"`
	Capped      bool    `json:"capped"`
}

// OrderDiscountResult is the order-level discount selected for an order value
type OrderDiscountResult struct {
	Name        string  `json:"name,omitempty"`
	DiscountPct float64 `json:"discount_pct"`
	Amount      float64 `json:"amount"`
}
