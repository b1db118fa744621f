package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vsinha/pricinglaw/pkg/application/services/orchestration"
	"github.com/vsinha/pricinglaw/pkg/application/services/pricing"
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/events"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/repositories/yaml"
	"github.com/vsinha/pricinglaw/pkg/interfaces/cli/output"
)

// Config holds configuration for the reprice command
type Config struct {
	ScenarioDir         string
	ProductsFile        string
	ContextFile         string
	Channels            string // comma-separated channel ids; empty means every active channel
	SKUs                string // comma-separated SKUs; empty means the whole catalog
	Role                string
	Quantity            int
	OrderValue          float64
	OutputDir           string
	Format              string
	Workers             int
	Strict              bool
	DefaultGuardrailPct float64 // 0 keeps the engine default
	Verbose             bool
	Help                bool
	Out                 io.Writer
}

// RepriceCommand prices a catalog across its sales channels
type RepriceCommand struct {
	config Config
	log    zerolog.Logger
	out    io.Writer
}

// NewRepriceCommand creates a new reprice command with the given configuration
func NewRepriceCommand(config Config, log zerolog.Logger) *RepriceCommand {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	return &RepriceCommand{
		config: config,
		log:    log,
		out:    out,
	}
}

// Execute runs the reprice command
func (c *RepriceCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	// Validate inputs
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	if c.config.Verbose {
		c.printHeader(files)
		fmt.Fprintln(c.out, "📂 Loading catalog and pricing context...")
	}

	products, err := csv.NewLoader().LoadProducts(files["Products"])
	if err != nil {
		return fmt.Errorf("error loading products: %w", err)
	}

	pricingCtx, err := yaml.NewContextLoader().LoadContext(files["Context"])
	if err != nil {
		return fmt.Errorf("error loading pricing context: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Data loaded successfully:\n")
		fmt.Fprintf(c.out, "  Products: %d\n", len(products))
		fmt.Fprintf(c.out, "  Channels: %d active of %d\n", len(pricingCtx.ActiveChannelIDs()), len(pricingCtx.Channels))
		fmt.Fprintf(c.out, "  Line Targets: %d\n", len(pricingCtx.LineTargets))
		fmt.Fprintln(c.out)
	}

	// Create repositories
	productRepo := memory.NewProductRepository(len(products))
	if err := productRepo.LoadProducts(products); err != nil {
		return fmt.Errorf("failed to load products into repository: %w", err)
	}
	contextRepo := memory.NewContextRepository(pricingCtx)
	priceRepo := memory.NewPriceRepository()
	eventStore := events.NewInMemoryEventStore(c.log)

	// Create services
	engine := pricing.NewEngine()
	if c.config.DefaultGuardrailPct > 0 {
		engine = engine.WithDefaultGuardrailPct(c.config.DefaultGuardrailPct)
	}
	orchestrator := orchestration.NewRepricingOrchestrator(
		engine,
		productRepo,
		contextRepo,
		priceRepo,
		eventStore,
		c.log,
		orchestration.Options{Workers: c.config.Workers, Strict: c.config.Strict},
	)

	if c.config.Verbose {
		fmt.Fprintf(c.out, "🔄 Repricing with %d workers...\n", c.workers())
	}

	startTime := time.Now()
	summary, err := orchestrator.RepriceCatalog(ctx, orchestration.RepricingRequest{
		SKUs:       splitList[entities.SKU](c.config.SKUs),
		Channels:   splitList[entities.ChannelID](c.config.Channels),
		Role:       entities.Role(strings.TrimSpace(c.config.Role)),
		Quantity:   c.config.Quantity,
		OrderValue: c.config.OrderValue,
	})
	if err != nil {
		return fmt.Errorf("error repricing catalog: %w", err)
	}
	eventStore.Wait()

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Repricing completed in %v\n", time.Since(startTime))
		c.printEventCounts(eventStore, summary.RunID)
		fmt.Fprintln(c.out)
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Writer:    c.out,
	}
	if c.config.OrderValue > 0 {
		discount := engine.OrderDiscount(c.config.OrderValue, pricingCtx)
		outputConfig.OrderDiscount = &discount
	}

	if err := output.Generate(summary, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintln(c.out, "🏁 Repricing complete!")
	}

	return nil
}

// validateInputs validates the command configuration
func (c *RepriceCommand) validateInputs() error {
	if c.config.ScenarioDir == "" && (c.config.ProductsFile == "" || c.config.ContextFile == "") {
		return fmt.Errorf("must specify either -scenario directory or both -products and -context files")
	}
	if c.config.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative, got %d", c.config.Quantity)
	}
	if c.config.OrderValue < 0 {
		return fmt.Errorf("order value cannot be negative, got %.2f", c.config.OrderValue)
	}
	if c.config.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.config.Workers)
	}
	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s", c.config.Format)
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use
func (c *RepriceCommand) resolveInputFiles() (map[string]string, error) {
	productsPath, contextPath := c.config.ProductsFile, c.config.ContextFile
	if c.config.ScenarioDir != "" {
		productsPath = filepath.Join(c.config.ScenarioDir, "products.csv")
		contextPath = filepath.Join(c.config.ScenarioDir, "context.yaml")
	}

	files := map[string]string{
		"Products": productsPath,
		"Context":  contextPath,
	}

	for _, name := range []string{"Products", "Context"} {
		if _, err := os.Stat(files[name]); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", name, files[name])
		}
	}

	return files, nil
}

func (c *RepriceCommand) workers() int {
	if c.config.Workers <= 0 {
		return orchestration.DefaultWorkers
	}
	return c.config.Workers
}

// printEventCounts summarises the events a run published, by type
func (c *RepriceCommand) printEventCounts(store events.EventStore, runID string) {
	runEvents, err := store.ReadEvents(runID, 0)
	if err != nil {
		c.log.Warn().Err(err).Str("run_id", runID).Msg("Could not read run events")
		return
	}

	counts := make(map[string]int)
	for _, e := range runEvents {
		counts[e.Type()]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintf(c.out, "📣 Events published: %d\n", len(runEvents))
	for _, t := range types {
		fmt.Fprintf(c.out, "  %s: %d\n", t, counts[t])
	}
}

// printHeader prints the command header information
func (c *RepriceCommand) printHeader(files map[string]string) {
	fmt.Fprintf(c.out, "🚀 Pricing Engine CLI\n")
	fmt.Fprintf(c.out, "Input files:\n")
	fmt.Fprintf(c.out, "  Products: %s\n", files["Products"])
	fmt.Fprintf(c.out, "  Context: %s\n", files["Context"])
	fmt.Fprintf(c.out, "Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Fprintf(c.out, "Output directory: %s\n", c.config.OutputDir)
	}
	if c.config.Strict {
		fmt.Fprintf(c.out, "Strict validation: on\n")
	}
	fmt.Fprintln(c.out)
}

func splitList[T ~string](s string) []T {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, T(p))
		}
	}
	return out
}

// showHelp displays the help message
func (c *RepriceCommand) showHelp() {
	fmt.Fprintf(c.out, `Pricing Engine CLI - Price Determination for Cosmetics Retail

USAGE:
    pricing -scenario <directory>                 # Use scenario directory
    pricing -products <file> -context <file> ...  # Use individual files
    pricing generate [OPTIONS]                    # Generate a synthetic catalog

OPTIONS:
    -scenario <dir>       Path to scenario directory with products.csv and context.yaml
    -products <file>      Path to products CSV file
    -context <file>       Path to pricing context YAML file
    -channels <ids>       Comma-separated channel ids (default: every active channel)
    -skus <skus>          Comma-separated SKUs (default: whole catalog)
    -role <role>          B2B role for wholesale net prices (e.g. Distributor)
    -qty <n>              Order quantity for quantity-break discounts
    -order-value <eur>    Order value for the order-level discount
    -output <dir>         Output directory for results (optional)
    -format <fmt>         Output format: text, json, csv (default: text)
    -workers <n>          Concurrent pricing workers (default: 4)
    -strict               Reject invalid contexts and products before pricing
    -guardrail <pct>      Guardrail margin for lines without a policy (default: 45)
    -verbose              Enable verbose output
    -help                 Show this help message

Defaults are read from PRICING_* environment variables and a .env file.

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── products.csv    # Catalog with landed costs
    └── context.yaml    # Channels, fee tables, discounts, line targets

CSV FILE FORMAT:

products.csv:
    %s
    SERUM-30,Vitamin C Serum,skincare,8,1.2,0.9,0.1,0.05,0.6,0.25,1.2,1.5,,180,30,liter,small_standard,,
    CREAM-50,Night Cream,skincare,,,,,,,,,,10,160,50,liter,small_standard,,

    Empty cost cells are estimated from aggregate_cost; 0 is an explicit zero.

context.yaml:
    channels:
      - {id: shop, kind: own_store, payment_fee_pct: 1.5, payment_fee_fixed: 0.25, return_rate_pct: 3}
      - {id: amazon_fba, kind: marketplace_fulfilled, referral: {low_pct: 8, high_pct: 15}}
    size_tiers:
      - {tier: small_standard, fee: 2.70, surcharge: 0.10}
    shipping_rates:
      - {carrier: DHL, zone: domestic, min_weight_g: 0, max_weight_g: 1000, price: 4.19}
    line_targets:
      - {line: skincare, target_margin_pct: 55, floor_multiplier: 2.5, guardrail_margin_pct: 40, rounding: ending-in-.99}

EXAMPLES:
    # Price a scenario across every active channel
    pricing -scenario scenarios/cosmetics -verbose

    # Wholesale net prices for a distributor ordering 24 units
    pricing -scenario scenarios/cosmetics -channels b2b -role Distributor -qty 24

    # Write prices.csv for two SKUs
    pricing -scenario scenarios/cosmetics -skus SERUM-30,SOAP-100 -format csv -output results/
`, csv.Header())
}
