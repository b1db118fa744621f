package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vsinha/pricinglaw/pkg/application/dto"
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	// Writer receives stdout output; nil means os.Stdout
	Writer io.Writer
	// OrderDiscount is reported when an order value was given
	OrderDiscount *entities.OrderDiscountResult
}

func (c Config) writer() io.Writer {
	if c.Writer == nil {
		return os.Stdout
	}
	return c.Writer
}

// Generate creates output in the specified format
func Generate(summary *dto.RepricingSummary, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(summary, config)
	case "json":
		return generateJSONOutput(summary, config)
	case "csv":
		return generateCSVOutput(summary, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(summary *dto.RepricingSummary, config Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Repricing Summary\n")
	fmt.Fprintf(&b, "====================\n\n")
	fmt.Fprintf(&b, "Run: %s\n", summary.RunID)
	fmt.Fprintf(&b, "Products: %d\n", summary.Products)
	fmt.Fprintf(&b, "Prices: %d\n", len(summary.Results))
	fmt.Fprintf(&b, "MAP Violations: %d\n", summary.MAPViolations)
	fmt.Fprintf(&b, "Guardrail Failures: %d\n", summary.GuardrailFails)
	fmt.Fprintf(&b, "Estimated Costs: %d\n", summary.EstimatedCosts)
	fmt.Fprintf(&b, "Grundpreis Errors: %d\n", summary.GrundpreisErrors)
	fmt.Fprintf(&b, "Discounts Capped: %d\n", summary.DiscountsCapped)
	fmt.Fprintf(&b, "Duration: %v\n\n", summary.Duration)

	if len(summary.Results) > 0 {
		fmt.Fprintf(&b, "💶 Prices:\n")
		fmt.Fprintf(&b, "%-14s %-12s %10s %10s %10s %10s %8s %-4s %-14s\n",
			"SKU", "Channel", "Full Cost", "UVP", "Final", "Channel $", "Margin", "OK", "Grundpreis")
		fmt.Fprintf(&b, "%-14s %-12s %10s %10s %10s %10s %8s %-4s %-14s\n",
			"--------------", "------------", "----------", "----------", "----------", "----------", "--------", "----", "--------------")

		for _, r := range summary.Results {
			fmt.Fprintf(&b, "%-14s %-12s %10.2f %10.2f %10.2f %10.2f %7.2f%% %-4s %-14s\n",
				r.SKU,
				r.Channel,
				r.FullCost.Total,
				r.UVP,
				r.FinalPrice,
				r.ChannelCosts.TotalChannelCost,
				r.Guardrail.MarginPct,
				yesNo(r.Guardrail.GuardrailOK),
				formatGrundpreis(r.Grundpreis))
		}
		fmt.Fprintln(&b)
	}

	if wholesale := wholesaleResults(summary.Results); len(wholesale) > 0 {
		fmt.Fprintf(&b, "🏷️  Wholesale:\n")
		fmt.Fprintf(&b, "%-14s %-12s %-12s %8s %8s %8s %10s %-6s\n",
			"SKU", "Channel", "Role", "Role %", "Qty %", "Total %", "Net", "Capped")
		for _, r := range wholesale {
			fmt.Fprintf(&b, "%-14s %-12s %-12s %8.2f %8.2f %8.2f %10.2f %-6s\n",
				r.SKU, r.Channel, r.Role, r.B2B.RolePct, r.B2B.QuantityPct, r.B2B.DiscountPct, r.B2B.NetPrice, yesNo(r.B2B.Capped))
		}
		fmt.Fprintln(&b)
	}

	if flagged := flaggedResults(summary.Results); len(flagged) > 0 {
		fmt.Fprintf(&b, "⚠️  Flags:\n")
		for _, r := range flagged {
			fmt.Fprintf(&b, "  %s/%s: %s", r.SKU, r.Channel, joinFlags(r.Flags))
			if r.MAP.Violated {
				fmt.Fprintf(&b, " (%s)", r.MAP.Reason)
			}
			fmt.Fprintln(&b)
		}
		fmt.Fprintln(&b)
	}

	if config.OrderDiscount != nil && config.OrderDiscount.Name != "" {
		fmt.Fprintf(&b, "🧾 Order discount: %s %.2f%% (%.2f)\n\n",
			config.OrderDiscount.Name, config.OrderDiscount.DiscountPct, config.OrderDiscount.Amount)
	}

	if _, err := io.WriteString(config.writer(), b.String()); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}

	if config.OutputDir != "" {
		filename, err := writeFile(config.OutputDir, "pricing_results.txt", []byte(b.String()))
		if err != nil {
			return err
		}
		if config.Verbose {
			fmt.Fprintf(config.writer(), "💾 Results saved to: %s\n", filename)
		}
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(summary *dto.RepricingSummary, config Config) error {
	payload := struct {
		*dto.RepricingSummary
		OrderDiscount *entities.OrderDiscountResult `json:"order_discount,omitempty"`
	}{summary, config.OrderDiscount}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Fprintln(config.writer(), string(jsonData))
		return nil
	}

	filename, err := writeFile(config.OutputDir, "pricing_results.json", jsonData)
	if err != nil {
		return err
	}
	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 JSON results saved to: %s\n", filename)
	}
	return nil
}

var csvHeader = []string{
	"sku", "channel", "role", "full_cost", "estimated", "uvp", "rounding", "floor_price",
	"final_price", "map_violated", "channel_cost", "net_revenue", "margin_pct", "guardrail_ok",
	"grundpreis", "grundpreis_unit", "net_price", "discount_pct", "flags",
}

// generateCSVOutput creates CSV output, one row per SKU and channel
func generateCSVOutput(summary *dto.RepricingSummary, config Config) error {
	if config.OutputDir == "" {
		return writePricesCSV(config.writer(), summary.Results)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "prices.csv")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create prices CSV: %w", err)
	}
	defer file.Close()

	if err := writePricesCSV(file, summary.Results); err != nil {
		return fmt.Errorf("failed to write prices CSV: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 CSV results saved to: %s\n", filename)
	}
	return nil
}

func writePricesCSV(w io.Writer, results []*dto.PricingResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range results {
		netPrice, discountPct := r.FinalPrice, 0.0
		if r.B2B != nil {
			netPrice, discountPct = r.B2B.NetPrice, r.B2B.DiscountPct
		}
		grundpreis := ""
		if r.Grundpreis.Applies && r.Grundpreis.Valid {
			grundpreis = formatAmount(r.Grundpreis.Value)
		}

		record := []string{
			string(r.SKU),
			string(r.Channel),
			string(r.Role),
			formatAmount(r.FullCost.Total),
			strconv.FormatBool(r.FullCost.IsEstimated()),
			formatAmount(r.UVP),
			r.Rounding.String(),
			formatAmount(r.FloorPrice),
			formatAmount(r.FinalPrice),
			strconv.FormatBool(r.MAP.Violated),
			formatAmount(r.ChannelCosts.TotalChannelCost),
			formatAmount(r.Guardrail.NetRevenue),
			formatAmount(r.Guardrail.MarginPct),
			strconv.FormatBool(r.Guardrail.GuardrailOK),
			grundpreis,
			r.Grundpreis.Unit,
			formatAmount(netPrice),
			formatAmount(discountPct),
			joinFlags(r.Flags),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return filename, nil
}

func wholesaleResults(results []*dto.PricingResult) []*dto.PricingResult {
	out := make([]*dto.PricingResult, 0)
	for _, r := range results {
		if r.B2B != nil {
			out = append(out, r)
		}
	}
	return out
}

func flaggedResults(results []*dto.PricingResult) []*dto.PricingResult {
	out := make([]*dto.PricingResult, 0)
	for _, r := range results {
		if len(r.Flags) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func joinFlags(flags []dto.PricingFlag) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, "|")
}

func formatGrundpreis(g entities.GrundpreisResult) string {
	switch {
	case !g.Applies:
		return "-"
	case !g.Valid:
		return "invalid"
	default:
		return fmt.Sprintf("%.2f %s", g.Value, g.Unit)
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
