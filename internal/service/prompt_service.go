package service

import (
	"errors"
	"fmt"
	"strings"

	"uni-advisor/internal/models"
)

var ErrUnknownVariant = errors.New("unknown prompt variant")

// Variant selects which system instruction the advisor runs with.
type Variant int

const (
	VariantStandard Variant = iota
	VariantROI
)

const (
	profileHeader    = "Student Profile:"
	profileDirective = "Based on this profile, suggest 5 realistic university programs."
)

// Per-recommendation fields requested from the model. Every variant asks for
// the base fields; the heading line (university and program) comes on top.
var baseRecommendationFields = []string{
	"Why a Good Fit",
	"Course Structure",
	"Tuition + Living Costs",
	"Country + City",
	"Post-Graduation Options",
}

type variantSpec struct {
	name   string
	fields []string
	rules  []string
}

var variants = map[Variant]variantSpec{
	VariantStandard: {
		name:   "standard",
		fields: baseRecommendationFields,
	},
	VariantROI: {
		name: "roi",
		fields: append(append([]string{}, baseRecommendationFields...),
			"ROI Insight",
			"Alumni Outcomes",
		),
		rules: []string{
			"For *ROI Insight*, estimate typical graduate salary in the target country and the payback time against total tuition and living costs. Label estimates as estimates.",
			"For *Alumni Outcomes*, name companies or roles that graduates of the program actually join. If you cannot verify this, write \"No verified data\" instead of guessing.",
		},
	},
}

// ParseVariant accepts "standard", "roi" or "roi-enhanced".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return VariantStandard, nil
	case "roi", "roi-enhanced":
		return VariantROI, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) String() string {
	if spec, ok := variants[v]; ok {
		return spec.name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// RequiredFields returns the per-recommendation fields the variant asks for,
// not counting the university/program heading.
func (v Variant) RequiredFields() []string {
	return append([]string(nil), variants[v].fields...)
}

// SystemInstruction renders the counselor instruction for a variant.
func SystemInstruction(v Variant) string {
	spec := variants[v]

	var b strings.Builder
	b.WriteString(`You are an expert international higher education counselor with deep knowledge of master's programs around the world. Your job is to match students to the most realistic and well-suited graduate programs based on their actual academic background, goals, budget, and preferences.

Using the student profile provided, recommend **exactly 5 real, verifiable university + program combinations** that align with their goals and constraints.

Here are your rules:

1. **Do not recommend unrealistic or generic top-tier programs** (e.g., Stanford, MIT, Oxford) unless the student's academic profile clearly qualifies.
2. Each recommendation MUST include:
   - **University Name + Program Name**
`)
	for _, field := range spec.fields {
		fmt.Fprintf(&b, "   - **%s**\n", field)
	}
	b.WriteString(`3. **Do not hallucinate** program names, structures, or costs. Use real data from 2023-2024 if available.
4. Make the tone sound like a seasoned, confident advisor, not like a search result.
5. Every part of your response should be specific and useful enough that a human counselor could send it directly to a student without edits.
`)
	for i, rule := range spec.rules {
		fmt.Fprintf(&b, "%d. %s\n", i+6, rule)
	}

	b.WriteString("\nFormat strictly like this for each recommendation:\n\n1. **University Name - Program Name**\n")
	for _, field := range spec.fields {
		fmt.Fprintf(&b, "   - *%s:* ...\n", field)
	}
	b.WriteString("\nIf you are unsure or can't verify something, say so. Prioritize transparency over guesswork.\n")

	return b.String()
}

// CompilePrompt renders a profile into the system/user pair. Every schema
// field gets exactly one line, in schema order, even when empty. Values are
// not escaped.
func CompilePrompt(v Variant, profile models.Profile) models.CompiledPrompt {
	lines := make([]string, 0, len(models.Schema)+3)
	lines = append(lines, profileHeader)
	for _, field := range models.Schema {
		lines = append(lines, field.Name+": "+profile.Value(field.Name))
	}
	lines = append(lines, "", profileDirective)

	return models.CompiledPrompt{
		System: SystemInstruction(v),
		User:   strings.Join(lines, "\n"),
	}
}
