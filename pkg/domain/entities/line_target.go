package entities

import "strings"

// RoundingStyle represents the cosmetic rounding applied to a derived price
type RoundingStyle int

const (
	RoundPrecise RoundingStyle = iota
	RoundEnding99
	RoundEnding95
)

// String method for RoundingStyle enum
func (r RoundingStyle) String() string {
	switch r {
	case RoundPrecise:
		return "precise"
	case RoundEnding99:
		return "ending-in-.99"
	case RoundEnding95:
		return "ending-in-.95"
	default:
		return "unknown"
	}
}

// MarshalText renders the style by name
func (r RoundingStyle) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRoundingStyle parses a rounding style; ok is false for unrecognised input,
// in which case the precise style is returned
func ParseRoundingStyle(s string) (RoundingStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "precise", "":
		return RoundPrecise, true
	case "ending-in-.99", ".99", "99":
		return RoundEnding99, true
	case "ending-in-.95", ".95", "95":
		return RoundEnding95, true
	default:
		return RoundPrecise, false
	}
}

// Fallback policy used when a line has no active policy row
const (
	DefaultFloorMultiplier    = 2.2
	DefaultTargetMarginPct    = 48.0
	DefaultGuardrailMarginPct = 45.0
)

// LineTargetPolicy is the pricing policy row of a product line
type LineTargetPolicy struct {
	Line               LineID  `validate:"required"`
	TargetMarginPct    float64 `validate:"gte=0,lt=100"`
	FloorMultiplier    float64 `validate:"gt=0"`
	GuardrailMarginPct float64 `validate:"gte=0,lt=100"`
	// Rounding is nil when the line does not prescribe a style
	Rounding *RoundingStyle
	Active   bool
}
