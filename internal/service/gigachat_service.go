package service

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"uni-advisor/internal/models"
	"uni-advisor/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const (
	gigaChatModel   = "GigaChat"
	gigaChatTimeout = 2 * time.Minute
)

// ErrUnauthorized is returned when GigaChat rejects the access token.
var ErrUnauthorized = errors.New("gigachat rejected the credentials")

// GigaChatClient runs completions through the GigaChat API.
type GigaChatClient struct {
	client *gigago.Client
	logger *zap.Logger
}

func NewGigaChatClient(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: set GIGACHAT_API_KEY", ErrMissingAPIKey)
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		base.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	// WithCustomClient goes first: later options modify the client it sets.
	opts := []gigago.Option{
		gigago.WithCustomClient(&http.Client{Transport: &failOnUnauthorized{base: base}}),
		gigago.WithCustomTimeout(gigaChatTimeout),
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.APIURL != "" {
		opts = append(opts, gigago.WithCustomURLAI(cfg.APIURL))
	}
	if cfg.OAuthURL != "" {
		opts = append(opts, gigago.WithCustomURLOauth(cfg.OAuthURL))
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	return &GigaChatClient{client: client, logger: logger}, nil
}

func (c *GigaChatClient) Complete(ctx context.Context, prompt models.CompiledPrompt) (*models.CompletionResult, error) {
	// A model per call: the system instruction differs between variants and
	// concurrent requests must not share it.
	model := c.client.GenerativeModel(gigaChatModel)
	model.SystemInstruction = prompt.System
	model.Temperature = Temperature

	resp, err := model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt.User},
	})
	if err != nil {
		return nil, fmt.Errorf("gigachat request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	if resp.Usage.PromptTokens == 0 && resp.Usage.CompletionTokens == 0 && resp.Usage.TotalTokens == 0 {
		return nil, fmt.Errorf("%w: no usage", ErrMalformedResponse)
	}

	c.logger.Debug("GigaChat completion received",
		zap.String("model", resp.Model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return &models.CompletionResult{
		Text:             models.RawRecommendations(resp.Choices[0].Message.Content),
		Model:            gigaChatModel,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

// Close stops the SDK's background token refresher.
func (c *GigaChatClient) Close() error {
	if c.client != nil {
		c.client.Close()
	}
	return nil
}

// failOnUnauthorized turns a 401 into a transport error. gigago refreshes the
// token and resends the request on a 401 response; an error stops it after
// the first attempt.
type failOnUnauthorized struct {
	base http.RoundTripper
}

func (t *failOnUnauthorized) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
	return nil, fmt.Errorf("%w (401): %s", ErrUnauthorized, strings.TrimSpace(string(body)))
}
