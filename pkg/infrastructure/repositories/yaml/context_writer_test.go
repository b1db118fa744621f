package yaml

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	testhelpers "github.com/vsinha/pricinglaw/pkg/infrastructure/testing"
)

func TestContextWriter_RoundTrip(t *testing.T) {
	original := testhelpers.BuildCosmeticsContext()

	var buf bytes.Buffer
	require.NoError(t, NewContextWriter().WriteContext(&buf, original))

	loaded, err := NewContextLoader().ReadContext(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Channels, loaded.Channels)
	assert.Equal(t, original.SizeTierFees, loaded.SizeTierFees)
	assert.Equal(t, original.ShippingRates, loaded.ShippingRates)
	assert.Equal(t, original.Surcharges, loaded.Surcharges)
	assert.Equal(t, original.QuantityTiers, loaded.QuantityTiers)
	assert.Equal(t, original.DiscountCaps, loaded.DiscountCaps)
	assert.Equal(t, original.OrderDiscounts, loaded.OrderDiscounts)
	assert.Equal(t, original.LineTargets, loaded.LineTargets)
	assert.Equal(t, original.ParcelBoxCost(), loaded.ParcelBoxCost())
}

func TestContextWriter_InactiveRowsStayInactive(t *testing.T) {
	ctx := entities.NewPricingContext()
	ctx.Channels["legacy"] = entities.Channel{ID: "legacy", Name: "legacy", Kind: entities.Wholesale}
	ctx.OrderDiscounts = []entities.OrderDiscount{{Name: "Old", MinOrderValue: 100, DiscountPct: 2}}

	var buf bytes.Buffer
	require.NoError(t, NewContextWriter().WriteContext(&buf, ctx))
	assert.Contains(t, buf.String(), "active: false")

	loaded, err := NewContextLoader().ReadContext(&buf)
	require.NoError(t, err)

	assert.False(t, loaded.Channels["legacy"].Active)
	require.Len(t, loaded.OrderDiscounts, 1)
	assert.False(t, loaded.OrderDiscounts[0].Active)
}

func TestContextWriter_SaveContext(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "context.yaml")

	require.NoError(t, NewContextWriter().SaveContext(filename, testhelpers.BuildCosmeticsContext()))

	loaded, err := NewContextLoader().LoadContext(filename)
	require.NoError(t, err)
	assert.Len(t, loaded.Channels, 5)
}

func TestContextWriter_NilContext(t *testing.T) {
	err := NewContextWriter().WriteContext(&bytes.Buffer{}, nil)
	assert.Error(t, err)
}
