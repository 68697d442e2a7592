package service

import (
	"context"
	"fmt"

	"uni-advisor/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecommendationService runs the profile → prompt → completion → cost
// pipeline. It holds no mutable state, so one instance serves concurrent
// callers.
type RecommendationService struct {
	client  CompletionClient
	pricing Pricing
	logger  *zap.Logger
}

func NewRecommendationService(client CompletionClient, pricing Pricing, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		client:  client,
		pricing: pricing,
		logger:  logger,
	}
}

// Generate makes exactly one completion call. On failure no Recommendation
// is returned, so callers cannot render usage or cost for a failed run.
func (s *RecommendationService) Generate(
	ctx context.Context,
	variant Variant,
	profile models.Profile,
) (*models.Recommendation, error) {
	requestID := uuid.New()
	log := s.logger.With(
		zap.String("request_id", requestID.String()),
		zap.String("variant", variant.String()),
	)

	prompt := CompilePrompt(variant, profile)
	log.Info("Requesting recommendations", zap.Int("prompt_length", len(prompt.User)))

	result, err := s.client.Complete(ctx, prompt)
	if err != nil {
		log.Error("Completion failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	cost := s.pricing.Estimate(result.PromptTokens, result.CompletionTokens)

	log.Info("Recommendations generated",
		zap.String("model", result.Model),
		zap.Int("prompt_tokens", result.PromptTokens),
		zap.Int("completion_tokens", result.CompletionTokens),
		zap.Int("total_tokens", result.TotalTokens),
		zap.Float64("estimated_cost_usd", cost),
	)

	return &models.Recommendation{
		RequestID: requestID,
		Variant:   variant.String(),
		Profile:   profile,
		Prompt:    prompt,
		Result:    *result,
		Cost:      cost,
	}, nil
}
