package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/vsinha/pricinglaw/pkg/config"
	"github.com/vsinha/pricinglaw/pkg/interfaces/cli/commands"
	"github.com/vsinha/pricinglaw/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) > 1 && os.Args[1] == "generate" {
		err = runGenerate(ctx, os.Args[2:])
	} else {
		err = runReprice(ctx, cfg, log, os.Args[1:])
	}

	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReprice(ctx context.Context, cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("pricing", flag.ExitOnError)

	// Command line flags
	var (
		scenarioDir = fs.String(
			"scenario",
			"",
			"Path to scenario directory containing products.csv and context.yaml",
		)
		productsFile = fs.String("products", "", "Path to products CSV file")
		contextFile  = fs.String("context", "", "Path to pricing context YAML file")
		channels     = fs.String("channels", "", "Comma-separated channel ids (default: every active channel)")
		skus         = fs.String("skus", "", "Comma-separated SKUs (default: whole catalog)")
		role         = fs.String("role", "", "B2B role for wholesale net prices")
		quantity     = fs.Int("qty", 0, "Order quantity for quantity-break discounts")
		orderValue   = fs.Float64("order-value", 0, "Order value for the order-level discount")
		outputDir    = fs.String("output", "", "Output directory for results (optional)")
		format       = fs.String("format", cfg.OutputFormat, "Output format: text, json, csv")
		workers      = fs.Int("workers", cfg.Workers, "Concurrent pricing workers")
		strict       = fs.Bool("strict", cfg.Strict, "Reject invalid contexts and products before pricing")
		guardrail    = fs.Float64("guardrail", cfg.DefaultGuardrailPct, "Guardrail margin for lines without a policy")
		verbose      = fs.Bool("verbose", false, "Enable verbose output")
		help         = fs.Bool("help", false, "Show help message")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Create command configuration
	commandConfig := commands.Config{
		ScenarioDir:         *scenarioDir,
		ProductsFile:        *productsFile,
		ContextFile:         *contextFile,
		Channels:            *channels,
		SKUs:                *skus,
		Role:                *role,
		Quantity:            *quantity,
		OrderValue:          *orderValue,
		OutputDir:           *outputDir,
		Format:              *format,
		Workers:             *workers,
		Strict:              *strict,
		DefaultGuardrailPct: *guardrail,
		Verbose:             *verbose,
		Help:                *help,
	}

	return commands.NewRepriceCommand(commandConfig, log).Execute(ctx)
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pricing generate", flag.ExitOnError)

	var (
		products  = fs.Int("products", 0, "Number of products to generate")
		estimated = fs.Float64("estimated", 0.2, "Share of products with only an aggregate cost")
		mapRate   = fs.Float64("map", 0.1, "Share of products with a minimum advertised price")
		outputDir = fs.String("output", "", "Output directory for generated files")
		seed      = fs.Int64("seed", 0, "Random seed for reproducible generation")
		verbose   = fs.Bool("verbose", false, "Enable verbose output")
		help      = fs.Bool("help", false, "Show help message")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := commands.NewGenerateCommand(commands.GenerateConfig{
		Products:      *products,
		EstimatedRate: *estimated,
		MAPRate:       *mapRate,
		OutputDir:     *outputDir,
		Seed:          *seed,
		Help:          *help,
		Verbose:       *verbose,
	})
	return cmd.Execute(ctx)
}
