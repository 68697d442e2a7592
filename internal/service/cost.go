package service

import (
	"fmt"

	"uni-advisor/pkg/config"
)

// Pricing holds linear USD rates per 1000 tokens.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// DefaultPricing matches the GPT-4 8K tier the advisor was budgeted against.
var DefaultPricing = Pricing{InputPer1K: 0.03, OutputPer1K: 0.06}

func NewPricing(cfg *config.PricingConfig) Pricing {
	if cfg == nil {
		return DefaultPricing
	}
	return Pricing{InputPer1K: cfg.InputPer1K, OutputPer1K: cfg.OutputPer1K}
}

// Estimate returns the cost at full precision; round only when displaying.
func (p Pricing) Estimate(promptTokens, completionTokens int) float64 {
	return float64(promptTokens)/1000*p.InputPer1K +
		float64(completionTokens)/1000*p.OutputPer1K
}

func FormatCost(cost float64) string {
	return fmt.Sprintf("$%.4f", cost)
}
