package services

import (
	"math"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// roleDiscountPct is the fixed wholesale discount per role
var roleDiscountPct = map[entities.Role]float64{
	entities.RoleDistributor: 25,
	entities.RoleWholesaler:  20,
	entities.RoleRetailer:    15,
	entities.RoleReseller:    10,
}

// B2BDiscountCalculator derives wholesale net prices from role and quantity discounts
type B2BDiscountCalculator struct{}

// NewB2BDiscountCalculator creates a new B2B discount calculator
func NewB2BDiscountCalculator() *B2BDiscountCalculator {
	return &B2BDiscountCalculator{}
}

// RoleDiscountPct returns the discount of a role; unknown roles get 0
func (c *B2BDiscountCalculator) RoleDiscountPct(role entities.Role) float64 {
	return roleDiscountPct[role]
}

// QuantityDiscountPct picks the best active tier containing quantity.
// Role-specific tiers win over universal ones; among the winners the highest percentage applies.
func (c *B2BDiscountCalculator) QuantityDiscountPct(role entities.Role, quantity int, ctx *entities.PricingContext) float64 {
	if ctx == nil {
		return 0
	}

	var (
		bestRole      float64
		bestUniversal float64
		foundRole     bool
	)
	for i := range ctx.QuantityTiers {
		tier := &ctx.QuantityTiers[i]
		if !tier.Active || !tier.Contains(quantity) {
			continue
		}
		switch {
		case tier.IsUniversal():
			bestUniversal = math.Max(bestUniversal, tier.DiscountPct)
		case tier.Role == role:
			foundRole = true
			bestRole = math.Max(bestRole, tier.DiscountPct)
		}
	}

	if foundRole {
		return bestRole
	}
	return bestUniversal
}

// CalculateB2BDiscount applies role and quantity discounts to price, clamped by the role's caps.
// orderValue is accepted for order-level rules and does not affect the line discount.
func (c *B2BDiscountCalculator) CalculateB2BDiscount(price float64, role entities.Role, quantity int, orderValue float64, ctx *entities.PricingContext) entities.B2BDiscountResult {
	if !entities.IsFinite(price) || price <= 0 {
		return entities.B2BDiscountResult{}
	}

	rolePct := c.RoleDiscountPct(role)
	qtyPct := c.QuantityDiscountPct(role, quantity, ctx)
	combined := rolePct + qtyPct
	capped := false

	if ctx != nil {
		if limit, ok := ctx.DiscountCaps[role]; ok {
			if rolePct > limit.MaxRolePct {
				rolePct = limit.MaxRolePct
				capped = true
			}
			if qtyPct > limit.MaxQtyPct {
				qtyPct = limit.MaxQtyPct
				capped = true
			}
			combined = rolePct + qtyPct
			if combined > limit.MaxCombinedPct {
				combined = limit.MaxCombinedPct
				capped = true
			}
		}
	}

	return entities.B2BDiscountResult{
		NetPrice:    entities.Round2(price * (1 - combined/100)),
		DiscountPct: combined,
		RolePct:     rolePct,
		QuantityPct: qtyPct,
		Capped:      capped,
	}
}

// CalculateOrderDiscount selects the highest active order-level discount whose
// minimum order value is met. It is applied to whole orders, never per line.
func (c *B2BDiscountCalculator) CalculateOrderDiscount(orderValue float64, ctx *entities.PricingContext) entities.OrderDiscountResult {
	if ctx == nil || !entities.IsFinite(orderValue) || orderValue <= 0 {
		return entities.OrderDiscountResult{}
	}

	var best *entities.OrderDiscount
	for i := range ctx.OrderDiscounts {
		discount := &ctx.OrderDiscounts[i]
		if !discount.Active || orderValue < discount.MinOrderValue {
			continue
		}
		if best == nil || discount.DiscountPct > best.DiscountPct {
			best = discount
		}
	}
	if best == nil {
		return entities.OrderDiscountResult{}
	}

	return entities.OrderDiscountResult{
		Name:        best.Name,
		DiscountPct: best.DiscountPct,
		Amount:      entities.Percent(orderValue, best.DiscountPct),
	}
}
