package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

const header = "sku,description,line,factory,packaging,inbound_freight,epr_fee,gs1_fee,retail_packaging,qc_fee,operations,marketing,aggregate_cost,weight_g,content_ml,unit_pricing,size_tier,map_price,competitor_price\n"

func TestLoader_ReadProducts(t *testing.T) {
	content := header +
		"SERUM-30,Hyaluronic Serum,skincare,8.50,0.80,1.20,0.15,0.05,0.50,0.30,1.50,0.80,,180,30,per-liter,small_standard,29.99,\n" +
		"\"BAR-100\",Soap Bar,bodycare,,,,,,,,0,,\"12,00\",110,,kg,small_standard,,9.49\n"

	products, err := NewLoader().ReadProducts(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, products, 2)

	serum := products[0]
	assert.Equal(t, entities.SKU("SERUM-30"), serum.SKU)
	assert.Equal(t, "Hyaluronic Serum", serum.Description)
	assert.Equal(t, entities.LineID("skincare"), serum.Line)
	require.NotNil(t, serum.Costs.Factory)
	assert.Equal(t, 8.50, *serum.Costs.Factory)
	assert.Nil(t, serum.AggregateCost)
	assert.Equal(t, 30.0, serum.ContentML)
	assert.Equal(t, entities.PerLiter, serum.UnitPricing)
	require.NotNil(t, serum.MinimumAdvertisedPrice)
	assert.Equal(t, 29.99, *serum.MinimumAdvertisedPrice)
	assert.Nil(t, serum.CompetitorPrice)

	bar := products[1]
	assert.Nil(t, bar.Costs.Factory, "empty cell must stay absent")
	require.NotNil(t, bar.Costs.Operations, "explicit zero must be present")
	assert.Equal(t, 0.0, *bar.Costs.Operations)
	require.NotNil(t, bar.AggregateCost)
	assert.Equal(t, 12.0, *bar.AggregateCost)
	assert.Equal(t, entities.PerKilogram, bar.UnitPricing)
	require.NotNil(t, bar.CompetitorPrice)
	assert.Equal(t, 9.49, *bar.CompetitorPrice)
}

func TestLoader_ReadProductsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "header only",
			content: header,
			wantErr: "at least one data row",
		},
		{
			name:    "wrong header",
			content: "sku,price\nA,1\n",
			wantErr: "header mismatch",
		},
		{
			name:    "bad number",
			content: header + "A,,x,abc,,,,,,,,,,0,0,,,,\n",
			wantErr: "row 2: invalid factory",
		},
		{
			name:    "negative cost",
			content: header + "A,,x,-1,,,,,,,,,,0,0,,,,\n",
			wantErr: "row 2: factory cost cannot be negative",
		},
		{
			name:    "empty sku",
			content: header + ",,x,,,,,,,,,,,0,0,,,,\n",
			wantErr: "sku cannot be empty",
		},
		{
			name:    "duplicate sku",
			content: header + "A,,x,,,,,,,,,,,0,0,,,,\nA,,x,,,,,,,,,,,0,0,,,,\n",
			wantErr: "row 3: duplicate sku A (first seen in row 2)",
		},
		{
			name:    "negative aggregate",
			content: header + "A,,x,,,,,,,,,,-5,0,0,,,,\n",
			wantErr: "aggregate_cost cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().ReadProducts(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_LoadProductsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	content := header + "# exported 2024-03-01\nCREAM-50,Night Cream,skincare,,,,,,,,,,14.00,95,50,liter,small_standard,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, err := NewLoader().LoadProducts(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, entities.SKU("CREAM-50"), products[0].SKU)

	_, err = NewLoader().LoadProducts(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to open products file")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.50", 12.50},
		{" 3 ", 3},
		{"0,99", 0.99},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseAmount("1,000.50")
	assert.Error(t, err)
}
