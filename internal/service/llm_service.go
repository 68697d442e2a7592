package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"uni-advisor/internal/models"
	"uni-advisor/pkg/config"

	"go.uber.org/zap"
)

var (
	ErrMissingAPIKey     = errors.New("missing API key")
	ErrMalformedResponse = errors.New("malformed completion response")
)

// Temperature is kept low to limit invented programs while leaving the
// prose some room.
const Temperature = 0.4

// CompletionClient performs one chat completion. Implementations never
// retry; every failure is returned to the caller as is.
type CompletionClient interface {
	Complete(ctx context.Context, prompt models.CompiledPrompt) (*models.CompletionResult, error)
}

// NewCompletionClient builds the client for the configured provider.
func NewCompletionClient(cfg *config.Config, logger *zap.Logger) (CompletionClient, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI, "":
		client, err := NewOpenAIClient(&cfg.OpenAI, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderGigaChat:
		client, err := NewGigaChatClient(context.Background(), &cfg.GigaChat, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLM.Provider)
}

type OpenAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func NewOpenAIClient(cfg *config.OpenAIConfig, logger *zap.Logger) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingAPIKey)
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4"
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &OpenAIClient{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		// transport defaults only, no timeout override
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt models.CompiledPrompt) (*models.CompletionResult, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Temperature: Temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read openai response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("OpenAI request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(body)),
		)
		return nil, fmt.Errorf("openai API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	if result.Usage == nil {
		return nil, fmt.Errorf("%w: no usage", ErrMalformedResponse)
	}

	model := result.Model
	if model == "" {
		model = c.model
	}

	return &models.CompletionResult{
		Text:             models.RawRecommendations(result.Choices[0].Message.Content),
		Model:            model,
		PromptTokens:     result.Usage.PromptTokens,
		CompletionTokens: result.Usage.CompletionTokens,
		TotalTokens:      result.Usage.TotalTokens,
	}, nil
}
