package entities

// Role is the B2B customer role that drives wholesale discounts
type Role string

const (
	RoleDistributor Role = "Distributor"
	RoleWholesaler  Role = "Wholesaler"
	RoleRetailer    Role = "Retailer"
	RoleReseller    Role = "Reseller"
)

// QuantityTier is a quantity-break discount row.
// An empty Role makes the tier universal; MaxQty 0 leaves the range open-ended.
type QuantityTier struct {
	Role        Role
	MinQty      int     `validate:"gte=1"`
	MaxQty      int     `validate:"gte=0"`
	DiscountPct float64 `validate:"gte=0,lt=100"`
	Active      bool
}

// IsUniversal reports whether the tier applies to every role
func (t *QuantityTier) IsUniversal() bool {
	return t.Role == ""
}

// Contains reports whether quantity falls inside the tier range
func (t *QuantityTier) Contains(quantity int) bool {
	if quantity < t.MinQty {
		return false
	}
	return t.MaxQty == 0 || quantity <= t.MaxQty
}

// DiscountCap bounds the discounts a role may receive
type DiscountCap struct {
	Role           Role    `validate:"required"`
	MaxRolePct     float64 `validate:"gte=0,lte=100"`
	MaxQtyPct      float64 `validate:"gte=0,lte=100"`
	MaxCombinedPct float64 `validate:"gte=0,lte=100"`
}

// OrderDiscount is an order-level discount triggered by order value.
// It is never applied inside per-line pricing.
type OrderDiscount struct {
	Name          string  `validate:"required"`
	MinOrderValue float64 `validate:"gte=0"`
	DiscountPct   float64 `validate:"gte=0,lt=100"`
	Active        bool
}
