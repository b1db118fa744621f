package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMAPEnforcer_EnforceMAP(t *testing.T) {
	enforcer := NewMAPEnforcer()

	t.Run("below_map_is_raised", func(t *testing.T) {
		result := enforcer.EnforceMAP(24.99, 29.99, nil)

		assert.Equal(t, 29.99, result.AdjustedPrice)
		assert.True(t, result.Violated)
		assert.Equal(t, "price 24.99 below MAP 29.99", result.Reason)
	})

	t.Run("at_map_passes", func(t *testing.T) {
		result := enforcer.EnforceMAP(29.99, 29.99, nil)

		assert.Equal(t, 29.99, result.AdjustedPrice)
		assert.False(t, result.Violated)
		assert.Empty(t, result.Reason)
	})

	t.Run("invalid_minimum_disables_check", func(t *testing.T) {
		for _, minimum := range []float64{0, -10, math.NaN(), math.Inf(1)} {
			result := enforcer.EnforceMAP(5, minimum, nil)
			assert.Equal(t, 5.0, result.AdjustedPrice)
			assert.False(t, result.Violated)
		}
	})

	t.Run("invalid_price_raised_without_panic", func(t *testing.T) {
		for _, price := range []float64{0, -1, math.NaN(), math.Inf(-1), math.Inf(1)} {
			result := enforcer.EnforceMAP(price, 19.95, nil)
			assert.Equal(t, 19.95, result.AdjustedPrice)
			assert.True(t, result.Violated)
			assert.Contains(t, result.Reason, "19.95")
		}
	})

	t.Run("nan_reason_is_readable", func(t *testing.T) {
		result := enforcer.EnforceMAP(math.NaN(), 19.95, nil)

		assert.Equal(t, "invalid price NaN raised to MAP 19.95", result.Reason)
	})

	t.Run("competitor_price_never_lowers", func(t *testing.T) {
		competitor := 17.49
		result := enforcer.EnforceMAP(21.00, 19.99, &competitor)

		assert.Equal(t, 21.00, result.AdjustedPrice)
		assert.False(t, result.Violated)
		require.NotNil(t, result.CompetitorPrice)
		assert.Equal(t, 17.49, *result.CompetitorPrice)
	})
}

func TestMAPEnforcer_NeverBelowMAP(t *testing.T) {
	enforcer := NewMAPEnforcer()

	for _, minimum := range []float64{0.99, 9.95, 29.99, 149} {
		for _, price := range []float64{-2, 0, 0.5, 9.94, 9.95, 29.98, 30, 500} {
			result := enforcer.EnforceMAP(price, minimum, nil)
			assert.GreaterOrEqual(t, result.AdjustedPrice, minimum)
			if price >= minimum {
				assert.Equal(t, price, result.AdjustedPrice)
				assert.False(t, result.Violated)
			}
		}
	}
}
