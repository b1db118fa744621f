package entities

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"already_rounded", 13.80, 13.80},
		{"half_rounds_up", 2.345, 2.35},
		{"binary_artifact", 659.7999999999999, 659.80},
		{"below_half", 1.004, 1.00},
		{"negative_half", -1.005, -1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.input); got != tt.expected {
				t.Errorf("Round2(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	if !math.IsNaN(Round2(math.NaN())) {
		t.Errorf("Expected NaN to pass through")
	}
	if !math.IsInf(Round2(math.Inf(1)), 1) {
		t.Errorf("Expected +Inf to pass through")
	}
}

func TestSum2(t *testing.T) {
	if got := Sum2(8.50, 0.80, 1.20, 0.15, 0.05, 0.50, 0.30, 1.50, 0.80); got != 13.80 {
		t.Errorf("Sum2 = %v, want 13.80", got)
	}
	if got := Sum2(0.1, 0.2); got != 0.30 {
		t.Errorf("Sum2(0.1, 0.2) = %v, want 0.30", got)
	}
	if got := Sum2(1, math.NaN()); got != 1 {
		t.Errorf("Expected NaN terms to be skipped, got %v", got)
	}
	if got := Sum2(); got != 0 {
		t.Errorf("Expected empty sum 0, got %v", got)
	}
}

func TestPercentAndFloor(t *testing.T) {
	if got := Percent(27.99, 1.5); got != 0.42 {
		t.Errorf("Percent(27.99, 1.5) = %v, want 0.42", got)
	}
	if got := Percent(math.Inf(1), 2); got != 0 {
		t.Errorf("Expected non-finite percent base to yield 0, got %v", got)
	}
	if got := FloorToEuro(27.6); got != 27 {
		t.Errorf("FloorToEuro(27.6) = %v, want 27", got)
	}
}
