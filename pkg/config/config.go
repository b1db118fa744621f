package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats understood by the report writer
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config holds application configuration
type Config struct {
	LogLevel            string
	LogPretty           bool
	Workers             int
	Strict              bool
	DefaultGuardrailPct float64
	OutputFormat        string
}

// Load reads configuration from the environment, after loading a .env file when present
func Load() (*Config, error) {
	// A missing .env file is normal outside development
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("PRICING_LOG_LEVEL", "info"),
		LogPretty:           getEnvAsBool("PRICING_LOG_PRETTY", false),
		Workers:             getEnvAsInt("PRICING_WORKERS", 4),
		Strict:              getEnvAsBool("PRICING_STRICT", false),
		DefaultGuardrailPct: getEnvAsFloat("PRICING_DEFAULT_GUARDRAIL_PCT", 45),
		OutputFormat:        strings.ToLower(getEnv("PRICING_OUTPUT_FORMAT", FormatText)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the CLI cannot run with
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("PRICING_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.DefaultGuardrailPct < 0 || c.DefaultGuardrailPct >= 100 {
		return fmt.Errorf("PRICING_DEFAULT_GUARDRAIL_PCT must be in [0, 100), got %.2f", c.DefaultGuardrailPct)
	}
	switch c.OutputFormat {
	case FormatText, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("unsupported output format %q (use text, json or csv)", c.OutputFormat)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
