package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// ContextValidator checks pricing context snapshots and products before a strict run
type ContextValidator struct {
	validate *validator.Validate
}

// NewContextValidator creates a new context validator
func NewContextValidator() *ContextValidator {
	return &ContextValidator{validate: validator.New()}
}

// ValidationResult contains the results of context validation
type ValidationResult struct {
	OverlappingTiers []entities.QuantityTier
	Errors           []string
}

// Valid reports whether no problems were found
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateContext performs comprehensive validation on a pricing context
func (v *ContextValidator) ValidateContext(ctx *entities.PricingContext) *ValidationResult {
	result := &ValidationResult{
		OverlappingTiers: make([]entities.QuantityTier, 0),
		Errors:           make([]string, 0),
	}
	if ctx == nil {
		result.Errors = append(result.Errors, "pricing context is nil")
		return result
	}

	for _, id := range sortedChannelIDs(ctx) {
		channel := ctx.Channels[id]
		v.checkStruct(result, fmt.Sprintf("channel %s", id), channel)
		if channel.ID != id {
			result.Errors = append(result.Errors, fmt.Sprintf("channel %s: keyed under mismatching id %s", channel.ID, id))
		}
		if channel.Active && channel.IsMarketplace() && channel.Referral.HighPct == 0 && channel.Referral.LowPct == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("channel %s: marketplace without referral fee schedule", id))
		}
	}

	for tier, fee := range ctx.SizeTierFees {
		v.checkStruct(result, fmt.Sprintf("size tier %s", tier), fee)
	}
	for i, rate := range ctx.ShippingRates {
		v.checkStruct(result, fmt.Sprintf("shipping rate %d", i+1), rate)
	}
	for i, surcharge := range ctx.Surcharges {
		v.checkStruct(result, fmt.Sprintf("surcharge %d", i+1), surcharge)
	}
	for i, tier := range ctx.QuantityTiers {
		v.checkStruct(result, fmt.Sprintf("quantity tier %d", i+1), tier)
		if tier.MaxQty != 0 && tier.MaxQty < tier.MinQty {
			result.Errors = append(result.Errors, fmt.Sprintf("quantity tier %d: max qty %d below min qty %d", i+1, tier.MaxQty, tier.MinQty))
		}
	}
	for role, limit := range ctx.DiscountCaps {
		v.checkStruct(result, fmt.Sprintf("discount cap %s", role), limit)
		if limit.MaxCombinedPct < limit.MaxRolePct || limit.MaxCombinedPct < limit.MaxQtyPct {
			result.Errors = append(result.Errors, fmt.Sprintf("discount cap %s: combined cap below an individual cap", role))
		}
	}
	for i, discount := range ctx.OrderDiscounts {
		v.checkStruct(result, fmt.Sprintf("order discount %d", i+1), discount)
	}
	for line, policy := range ctx.LineTargets {
		v.checkStruct(result, fmt.Sprintf("line target %s", line), policy)
	}

	result.OverlappingTiers = v.detectOverlappingTiers(ctx.QuantityTiers)
	if len(result.OverlappingTiers) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Found %d overlapping quantity tiers", len(result.OverlappingTiers)))
	}

	sort.Strings(result.Errors)
	return result
}

// ValidateProduct validates a single product's attributes
func (v *ContextValidator) ValidateProduct(product *entities.Product) *ValidationResult {
	result := &ValidationResult{Errors: make([]string, 0)}
	if product == nil {
		result.Errors = append(result.Errors, "product is nil")
		return result
	}
	v.checkStruct(result, fmt.Sprintf("product %s", product.SKU), product)
	return result
}

func (v *ContextValidator) checkStruct(result *ValidationResult, subject string, s interface{}) {
	err := v.validate.Struct(s)
	if err == nil {
		return
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", subject, err))
		return
	}
	for _, fe := range fieldErrors {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", subject, fieldErrorMessage(fe)))
	}
}

// fieldErrorMessage returns a human-readable message for a validation error
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// detectOverlappingTiers finds active tiers of the same scope whose ranges intersect
func (v *ContextValidator) detectOverlappingTiers(tiers []entities.QuantityTier) []entities.QuantityTier {
	overlapping := make([]entities.QuantityTier, 0)
	for i := 0; i < len(tiers); i++ {
		for j := i + 1; j < len(tiers); j++ {
			a, b := tiers[i], tiers[j]
			if !a.Active || !b.Active || a.Role != b.Role {
				continue
			}
			if rangesOverlap(a, b) {
				overlapping = append(overlapping, a, b)
			}
		}
	}
	return overlapping
}

func rangesOverlap(a, b entities.QuantityTier) bool {
	aMax, bMax := a.MaxQty, b.MaxQty
	if aMax == 0 {
		aMax = math.MaxInt
	}
	if bMax == 0 {
		bMax = math.MaxInt
	}
	return a.MinQty <= bMax && b.MinQty <= aMax
}

func sortedChannelIDs(ctx *entities.PricingContext) []entities.ChannelID {
	ids := make([]entities.ChannelID, 0, len(ctx.Channels))
	for id := range ctx.Channels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
