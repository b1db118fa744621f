package services

import (
	"fmt"
	"strconv"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// MAPEnforcer applies the minimum advertised price, which outranks every other constraint
type MAPEnforcer struct{}

// NewMAPEnforcer creates a new MAP enforcer
func NewMAPEnforcer() *MAPEnforcer {
	return &MAPEnforcer{}
}

// EnforceMAP raises price to the minimum advertised price when below it.
// An invalid minimum disables the check. The competitor price is recorded only
// and never lowers the result.
func (e *MAPEnforcer) EnforceMAP(price, minimumAdvertisedPrice float64, competitorPrice *float64) entities.MAPResult {
	result := entities.MAPResult{AdjustedPrice: price}
	if competitorPrice != nil {
		cp := *competitorPrice
		result.CompetitorPrice = &cp
	}

	if !entities.IsFinite(minimumAdvertisedPrice) || minimumAdvertisedPrice <= 0 {
		return result
	}

	if !entities.IsFinite(price) || price <= 0 {
		result.AdjustedPrice = minimumAdvertisedPrice
		result.Violated = true
		result.Reason = fmt.Sprintf("invalid price %s raised to MAP %s",
			formatAmount(price), formatAmount(minimumAdvertisedPrice))
		return result
	}

	if price < minimumAdvertisedPrice {
		result.AdjustedPrice = minimumAdvertisedPrice
		result.Violated = true
		result.Reason = fmt.Sprintf("price %s below MAP %s",
			formatAmount(price), formatAmount(minimumAdvertisedPrice))
	}

	return result
}

// formatAmount renders amounts for reasons, including NaN and infinities
func formatAmount(v float64) string {
	if !entities.IsFinite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
