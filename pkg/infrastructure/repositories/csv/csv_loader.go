package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// productsHeader is the column layout of a catalog export. The nine cost
// columns are named after entities.CostComponent.
var productsHeader = []string{
	"sku", "description", "line",
	"factory", "packaging", "inbound_freight", "epr_fee", "gs1_fee",
	"retail_packaging", "qc_fee", "operations", "marketing",
	"aggregate_cost", "weight_g", "content_ml", "unit_pricing", "size_tier",
	"map_price", "competitor_price",
}

const firstCostColumn = 3

// Header returns the products CSV header line
func Header() string {
	return strings.Join(productsHeader, ",")
}

// Loader handles loading catalog data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProducts loads products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open products file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadProducts(file)
}

// ReadProducts parses products from CSV content. An empty cost cell means the
// component is absent; "0" is an explicit zero.
func (l *Loader) ReadProducts(r io.Reader) ([]*entities.Product, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read products CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("products CSV must have header and at least one data row")
	}

	// Validate header
	header := records[0]
	if !validateHeader(header, productsHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", productsHeader, header)
	}

	products := make([]*entities.Product, 0, len(records)-1)
	seen := make(map[entities.SKU]int, len(records)-1)
	for i, record := range records[1:] {
		row := i + 2
		if len(record) != len(productsHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", row, len(productsHeader), len(record))
		}

		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", row, err)
		}
		if first, dup := seen[product.SKU]; dup {
			return nil, fmt.Errorf("products CSV row %d: duplicate sku %s (first seen in row %d)", row, product.SKU, first)
		}
		seen[product.SKU] = row

		products = append(products, product)
	}

	return products, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseProduct(record []string) (*entities.Product, error) {
	sku := entities.SKU(strings.TrimSpace(record[0]))

	var costs entities.CostInputs
	for i, component := range entities.AllCostComponents {
		value, err := parseOptionalAmount(record[firstCostColumn+i])
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", component, err)
		}
		if value != nil {
			costs = costs.With(component, *value)
		}
	}

	aggregate, err := parseOptionalAmount(record[12])
	if err != nil {
		return nil, fmt.Errorf("invalid aggregate_cost: %w", err)
	}
	weight, err := parseAmount(record[13])
	if err != nil {
		return nil, fmt.Errorf("invalid weight_g: %w", err)
	}
	content, err := parseAmount(record[14])
	if err != nil {
		return nil, fmt.Errorf("invalid content_ml: %w", err)
	}
	mapPrice, err := parseOptionalAmount(record[17])
	if err != nil {
		return nil, fmt.Errorf("invalid map_price: %w", err)
	}
	competitor, err := parseOptionalAmount(record[18])
	if err != nil {
		return nil, fmt.Errorf("invalid competitor_price: %w", err)
	}

	product, err := entities.NewProduct(
		sku,
		entities.LineID(strings.TrimSpace(record[2])),
		costs,
		weight,
		content,
		entities.ParseUnitPricingMode(record[15]),
		strings.TrimSpace(record[16]),
	)
	if err != nil {
		return nil, err
	}
	if aggregate != nil && *aggregate < 0 {
		return nil, fmt.Errorf("aggregate_cost cannot be negative, got %.2f", *aggregate)
	}

	product.Description = strings.TrimSpace(record[1])
	product.AggregateCost = aggregate
	product.MinimumAdvertisedPrice = mapPrice
	product.CompetitorPrice = competitor
	return product, nil
}

// parseOptionalAmount returns nil for an empty cell
func parseOptionalAmount(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := parseAmount(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseAmount parses a decimal amount. A lone comma is read as the decimal
// separator, as exported by German-locale spreadsheets.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return d.InexactFloat64(), nil
}
