package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uni-advisor/internal/models"
	"uni-advisor/pkg/config"

	"go.uber.org/zap"
)

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewOpenAIClient(&config.OpenAIConfig{
		APIKey:  "sk-test",
		Model:   "gpt-4",
		BaseURL: srv.URL + "/",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewOpenAIClient: %v", err)
	}
	return client
}

func TestOpenAIClient_Complete(t *testing.T) {
	var calls int
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Model != "gpt-4" {
			t.Errorf("model = %q, want gpt-4", req.Model)
		}
		if req.Temperature != 0.4 {
			t.Errorf("temperature = %v, want 0.4", req.Temperature)
		}
		if len(req.Messages) != 2 ||
			req.Messages[0].Role != "system" || req.Messages[0].Content != "SYS" ||
			req.Messages[1].Role != "user" || req.Messages[1].Content != "USER" {
			t.Errorf("messages = %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"model": "gpt-4-0613",
			"choices": [{"message": {"role": "assistant", "content": "1. **Uni - MSc**"}}],
			"usage": {"prompt_tokens": 1200, "completion_tokens": 300, "total_tokens": 1500}
		}`))
	})

	result, err := client.Complete(context.Background(), models.CompiledPrompt{System: "SYS", User: "USER"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1", calls)
	}
	if result.Text != "1. **Uni - MSc**" {
		t.Errorf("Text = %q", result.Text)
	}
	if result.Model != "gpt-4-0613" {
		t.Errorf("Model = %q", result.Model)
	}
	if result.PromptTokens != 1200 || result.CompletionTokens != 300 || result.TotalTokens != 1500 {
		t.Errorf("usage = %d/%d/%d", result.PromptTokens, result.CompletionTokens, result.TotalTokens)
	}
}

func TestOpenAIClient_ErrorStatusIsNotRetried(t *testing.T) {
	var calls int
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit reached"}}`))
	})

	_, err := client.Complete(context.Background(), models.CompiledPrompt{System: "s", User: "u"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "Rate limit reached") {
		t.Errorf("error does not carry the remote failure: %v", err)
	}
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1", calls)
	}
}

func TestOpenAIClient_MalformedResponse(t *testing.T) {
	tests := map[string]string{
		"no usage":   `{"choices": [{"message": {"content": "hi"}}]}`,
		"no choices": `{"choices": [], "usage": {"prompt_tokens": 1}}`,
		"not json":   `<html>gateway</html>`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			_, err := client.Complete(context.Background(), models.CompiledPrompt{})
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestOpenAIClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewOpenAIClient(&config.OpenAIConfig{APIKey: "sk-test", BaseURL: url}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewOpenAIClient: %v", err)
	}
	if _, err := client.Complete(context.Background(), models.CompiledPrompt{}); err == nil {
		t.Error("expected an error from a closed server")
	}
}

func TestNewOpenAIClient_MissingKey(t *testing.T) {
	_, err := NewOpenAIClient(&config.OpenAIConfig{APIKey: "  "}, zap.NewNop())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewCompletionClient(t *testing.T) {
	cfg := &config.Config{
		LLM:    config.LLMConfig{Provider: config.ProviderOpenAI},
		OpenAI: config.OpenAIConfig{APIKey: "sk-test"},
	}
	client, err := NewCompletionClient(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCompletionClient: %v", err)
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Errorf("client is %T, want *OpenAIClient", client)
	}

	cfg.LLM.Provider = config.ProviderGigaChat
	if _, err := NewCompletionClient(cfg, zap.NewNop()); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("gigachat without key: error = %v, want ErrMissingAPIKey", err)
	}

	cfg.LLM.Provider = "llama"
	if _, err := NewCompletionClient(cfg, zap.NewNop()); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}
