package models

import (
	"github.com/google/uuid"
)

// CompiledPrompt is the exact system/user pair sent to the completion API.
type CompiledPrompt struct {
	System string
	User   string
}

// RawRecommendations is model output exactly as received. It is never
// parsed; callers that need structure should ask the model for a structured
// format instead.
type RawRecommendations string

type CompletionResult struct {
	Text             RawRecommendations
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Recommendation is the outcome of one pipeline run.
type Recommendation struct {
	RequestID uuid.UUID
	Variant   string
	Profile   Profile
	Prompt    CompiledPrompt
	Result    CompletionResult
	Cost      float64 // USD, full precision
}
