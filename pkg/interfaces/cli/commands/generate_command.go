package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/repositories/yaml"
)

// GenerateConfig holds configuration for catalog generation
type GenerateConfig struct {
	Products      int     // Number of products to generate
	EstimatedRate float64 // Share of products carrying only an aggregate cost (0..1)
	MAPRate       float64 // Share of products with a minimum advertised price (0..1)
	OutputDir     string  // Output directory for generated files
	Seed          int64   // Random seed for reproducible generation
	Help          bool    // Show help
	Verbose       bool    // Verbose output
	Out           io.Writer
}

// GenerateCommand writes a synthetic catalog and pricing context
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
	out    io.Writer
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	out := config.Out
	if out == nil {
		out = os.Stdout
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
		out:    out,
	}
}

type productLine struct {
	id         entities.LineID
	name       string
	contentML  bool
	minFactory float64
	maxFactory float64
}

var generatedLines = []productLine{
	{id: "skincare", name: "Serum", contentML: true, minFactory: 3, maxFactory: 12},
	{id: "bodycare", name: "Soap", contentML: false, minFactory: 1, maxFactory: 4},
	{id: "haircare", name: "Shampoo", contentML: true, minFactory: 2, maxFactory: 6},
	{id: "fragrance", name: "Eau de Parfum", contentML: true, minFactory: 8, maxFactory: 25},
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	if err := cmd.validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out,
			"🔧 Generating catalog with %d products, %.0f%% estimated costs, %.0f%% MAP\n",
			cmd.config.Products,
			cmd.config.EstimatedRate*100,
			cmd.config.MAPRate*100,
		)
		fmt.Fprintf(cmd.out, "📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Fprintf(cmd.out, "🎲 Random seed: %d\n", cmd.config.Seed)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintln(cmd.out, "📦 Generating products.csv...")
	}
	products := make([]*entities.Product, 0, cmd.config.Products)
	for i := 0; i < cmd.config.Products; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		products = append(products, cmd.generateProduct(i))
	}
	productsFile := filepath.Join(cmd.config.OutputDir, "products.csv")
	if err := csv.NewWriter().SaveProducts(productsFile, products); err != nil {
		return fmt.Errorf("failed to generate products: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintln(cmd.out, "🏷️  Generating context.yaml...")
	}
	contextFile := filepath.Join(cmd.config.OutputDir, "context.yaml")
	if err := yaml.NewContextWriter().SaveContext(contextFile, cmd.generateContext()); err != nil {
		return fmt.Errorf("failed to generate context: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "✅ Catalog generated successfully in %s\n", cmd.config.OutputDir)
	}

	return nil
}

func (cmd *GenerateCommand) validate() error {
	if cmd.config.Products <= 0 {
		return fmt.Errorf("products must be positive, got %d", cmd.config.Products)
	}
	if cmd.config.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if cmd.config.EstimatedRate < 0 || cmd.config.EstimatedRate > 1 {
		return fmt.Errorf("estimated rate must be between 0 and 1, got %.2f", cmd.config.EstimatedRate)
	}
	if cmd.config.MAPRate < 0 || cmd.config.MAPRate > 1 {
		return fmt.Errorf("MAP rate must be between 0 and 1, got %.2f", cmd.config.MAPRate)
	}
	return nil
}

// generateProduct creates one product. Costs are whole cents so the CSV stays readable.
func (cmd *GenerateCommand) generateProduct(i int) *entities.Product {
	line := generatedLines[cmd.rand.Intn(len(generatedLines))]
	size := []float64{30, 50, 100, 200}[cmd.rand.Intn(4)]

	product := &entities.Product{
		SKU:         entities.SKU(fmt.Sprintf("%s-%05d", line.id[:4], i+1)),
		Description: fmt.Sprintf("%s %.0f", line.name, size),
		Line:        line.id,
		WeightGrams: size*1.1 + 60,
		SizeTier:    "small_standard",
	}
	if line.contentML {
		product.ContentML = size
		product.UnitPricing = entities.PerLiter
	} else {
		product.UnitPricing = entities.PerKilogram
	}
	if product.WeightGrams > 250 {
		product.SizeTier = "large_standard"
	}

	factory := cmd.amount(line.minFactory, line.maxFactory)
	if cmd.rand.Float64() < cmd.config.EstimatedRate {
		product.AggregateCost = entities.Amount(entities.Round2(factory / 0.7))
	} else {
		product.Costs = entities.CostInputs{
			Factory:         entities.Amount(factory),
			Packaging:       entities.Amount(cmd.amount(0.20, 1.50)),
			InboundFreight:  entities.Amount(cmd.amount(0.10, 0.80)),
			EPR:             entities.Amount(cmd.amount(0.02, 0.15)),
			GS1:             entities.Amount(0.05),
			RetailPackaging: entities.Amount(cmd.amount(0.10, 0.60)),
			QC:              entities.Amount(cmd.amount(0.05, 0.30)),
			Operations:      entities.Amount(cmd.amount(0.30, 1.00)),
			Marketing:       entities.Amount(cmd.amount(0.30, 2.00)),
		}
	}

	if cmd.rand.Float64() < cmd.config.MAPRate {
		mapPrice := entities.FloorToEuro(factory*4) + 0.99
		product.MinimumAdvertisedPrice = entities.Amount(mapPrice)
		product.CompetitorPrice = entities.Amount(entities.Round2(mapPrice * 0.9))
	}

	return product
}

// amount returns a random amount in [lo, hi] rounded to the cent
func (cmd *GenerateCommand) amount(lo, hi float64) float64 {
	return entities.Round2(lo + cmd.rand.Float64()*(hi-lo))
}

// generateContext builds the reference tables for the generated lines
func (cmd *GenerateCommand) generateContext() *entities.PricingContext {
	ctx := entities.NewPricingContext()
	ctx.BoxCost = entities.Amount(0.50)

	ctx.Channels["shop"] = entities.Channel{
		ID: "shop", Name: "Own Shop", Kind: entities.OwnStore,
		PaymentFeePct: 1.5, PaymentFeeFixed: 0.25, ReturnRatePct: 3, Active: true,
	}
	ctx.Channels["amazon_fba"] = entities.Channel{
		ID: "amazon_fba", Name: "Amazon FBA", Kind: entities.MarketplaceFulfilled,
		ReturnRatePct: 5, Referral: entities.ReferralFeeSchedule{LowPct: 8, HighPct: 15}, Active: true,
	}
	ctx.Channels["amazon_fbm"] = entities.Channel{
		ID: "amazon_fbm", Name: "Amazon FBM", Kind: entities.MarketplaceSelfShip,
		ReturnRatePct: 4, Referral: entities.ReferralFeeSchedule{LowPct: 8, HighPct: 15}, Carrier: "DHL", Active: true,
	}
	ctx.Channels["b2b"] = entities.Channel{
		ID: "b2b", Name: "Wholesale", Kind: entities.Wholesale, PaymentFeePct: 0.5, Active: true,
	}

	ctx.SizeTierFees["small_standard"] = entities.SizeTierFee{Tier: "small_standard", Fee: 2.70, Surcharge: 0.10}
	ctx.SizeTierFees["large_standard"] = entities.SizeTierFee{Tier: "large_standard", Fee: 3.45, Surcharge: 0.15}
	ctx.ShippingRates = []entities.ShippingRate{
		{Carrier: "DHL", Zone: "domestic", MinWeightG: 0, MaxWeightG: 1000, Price: 4.19},
		{Carrier: "DHL", Zone: "domestic", MinWeightG: 1000.01, MaxWeightG: 5000, Price: 5.49},
	}
	ctx.Surcharges = []entities.CarrierSurcharge{{Name: "fuel", Amount: 0.25, Active: true}}
	ctx.QuantityTiers = []entities.QuantityTier{
		{MinQty: 6, MaxQty: 11, DiscountPct: 3, Active: true},
		{MinQty: 12, DiscountPct: 5, Active: true},
		{Role: entities.RoleDistributor, MinQty: 12, MaxQty: 47, DiscountPct: 10, Active: true},
		{Role: entities.RoleDistributor, MinQty: 48, DiscountPct: 12, Active: true},
	}
	ctx.DiscountCaps[entities.RoleDistributor] = entities.DiscountCap{
		Role: entities.RoleDistributor, MaxRolePct: 30, MaxQtyPct: 15, MaxCombinedPct: 30,
	}
	ctx.DiscountCaps[entities.RoleRetailer] = entities.DiscountCap{
		Role: entities.RoleRetailer, MaxRolePct: 15, MaxQtyPct: 10, MaxCombinedPct: 20,
	}
	ctx.OrderDiscounts = []entities.OrderDiscount{
		{Name: "Spring 5", MinOrderValue: 500, DiscountPct: 5, Active: true},
		{Name: "Volume 8", MinOrderValue: 1500, DiscountPct: 8, Active: true},
	}

	ending99, ending95 := entities.RoundEnding99, entities.RoundEnding95
	ctx.LineTargets["skincare"] = entities.LineTargetPolicy{
		Line: "skincare", TargetMarginPct: 55, FloorMultiplier: 2.5, GuardrailMarginPct: 40, Rounding: &ending99, Active: true,
	}
	ctx.LineTargets["haircare"] = entities.LineTargetPolicy{
		Line: "haircare", TargetMarginPct: 50, FloorMultiplier: 2.2, GuardrailMarginPct: 35, Rounding: &ending95, Active: true,
	}
	ctx.LineTargets["fragrance"] = entities.LineTargetPolicy{
		Line: "fragrance", TargetMarginPct: 60, FloorMultiplier: 2.8, GuardrailMarginPct: 45, Rounding: &ending99, Active: true,
	}
	// bodycare has no policy row and prices on the fallback policy

	return ctx
}

// printHelp shows usage information
func (cmd *GenerateCommand) printHelp() {
	fmt.Fprintln(cmd.out, `Pricing Catalog Generator

USAGE:
    pricing generate [OPTIONS]

OPTIONS:
    -products <N>       Number of products to generate (required)
    -estimated <F>      Share of products with only an aggregate cost, 0..1 (default: 0.2)
    -map <F>            Share of products with a minimum advertised price, 0..1 (default: 0.1)
    -output <DIR>       Output directory for products.csv and context.yaml (required)
    -seed <N>           Random seed for reproducible generation (optional)
    -verbose            Enable verbose output
    -help               Show this help message

EXAMPLES:
    # Generate a small catalog
    pricing generate -products 50 -output ./catalog

    # Generate a large reproducible catalog
    pricing generate -products 20000 -estimated 0.3 -output ./large_catalog -seed 12345 -verbose`)
}
