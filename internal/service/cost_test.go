package service

import (
	"math"
	"testing"

	"uni-advisor/pkg/config"
)

func TestPricing_Estimate(t *testing.T) {
	tests := []struct {
		prompt, completion int
		want               float64
	}{
		{0, 0, 0.0},
		{1000, 0, 0.03},
		{0, 1000, 0.06},
		{2000, 500, 0.09},
		{1200, 300, 0.054},
	}

	for _, tt := range tests {
		got := DefaultPricing.Estimate(tt.prompt, tt.completion)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Estimate(%d, %d) = %v, want %v", tt.prompt, tt.completion, got, tt.want)
		}
	}
}

func TestPricing_EstimateKeepsPrecision(t *testing.T) {
	// 1 prompt token costs 0.00003; rounding to 4 places would give 0
	if got := DefaultPricing.Estimate(1, 0); got == 0 {
		t.Error("Estimate rounded a non-zero cost to zero")
	}
}

func TestNewPricing(t *testing.T) {
	p := NewPricing(&config.PricingConfig{InputPer1K: 0.01, OutputPer1K: 0.02})
	if got := p.Estimate(1000, 1000); math.Abs(got-0.03) > 1e-12 {
		t.Errorf("custom rates: Estimate = %v, want 0.03", got)
	}
	if NewPricing(nil) != DefaultPricing {
		t.Error("NewPricing(nil) did not return DefaultPricing")
	}
}

func TestFormatCost(t *testing.T) {
	tests := map[float64]string{
		0:                   "$0.0000",
		0.054:               "$0.0540",
		0.05399999999999999: "$0.0540",
		1.23456:             "$1.2346",
	}
	for in, want := range tests {
		if got := FormatCost(in); got != want {
			t.Errorf("FormatCost(%v) = %q, want %q", in, got, want)
		}
	}
}
