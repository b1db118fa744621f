package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// Writer exports catalogs in the layout Loader reads
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// SaveProducts writes products to a CSV file
func (w *Writer) SaveProducts(filename string, products []*entities.Product) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create products file %s: %w", filename, err)
	}
	defer file.Close()

	return w.WriteProducts(file, products)
}

// WriteProducts writes the header and one row per product. Absent components
// are left empty so they stay absent on reload.
func (w *Writer) WriteProducts(out io.Writer, products []*entities.Product) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(productsHeader); err != nil {
		return fmt.Errorf("failed to write products header: %w", err)
	}

	for _, p := range products {
		if p == nil {
			continue
		}
		record := make([]string, 0, len(productsHeader))
		record = append(record, string(p.SKU), p.Description, string(p.Line))
		for _, component := range entities.AllCostComponents {
			record = append(record, formatOptionalAmount(p.Costs.Get(component)))
		}
		record = append(record,
			formatOptionalAmount(p.AggregateCost),
			formatAmount(p.WeightGrams),
			formatAmount(p.ContentML),
			string(p.UnitPricing),
			p.SizeTier,
			formatOptionalAmount(p.MinimumAdvertisedPrice),
			formatOptionalAmount(p.CompetitorPrice),
		)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write product %s: %w", p.SKU, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatOptionalAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return formatAmount(*v)
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}
