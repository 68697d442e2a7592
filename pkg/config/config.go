package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	OpenAI   OpenAIConfig
	GigaChat GigaChatConfig
	Pricing  PricingConfig
	Advisor  AdvisorConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LLMConfig selects the completion provider: "openai" or "gigachat".
type LLMConfig struct {
	Provider string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GigaChatConfig leaves APIURL and OAuthURL empty to use the SDK defaults.
type GigaChatConfig struct {
	APIKey             string
	Scope              string
	APIURL             string
	OAuthURL           string
	InsecureSkipVerify bool
}

// PricingConfig holds USD rates per 1000 tokens.
type PricingConfig struct {
	InputPer1K  float64
	OutputPer1K float64
}

type AdvisorConfig struct {
	Variant   string
	ExportDir string
}

const (
	ProviderOpenAI   = "openai"
	ProviderGigaChat = "gigachat"
)

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "120"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", ProviderOpenAI),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			APIURL:             getEnv("GIGACHAT_API_URL", ""),
			OAuthURL:           getEnv("GIGACHAT_OAUTH_URL", ""),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Pricing: PricingConfig{
			InputPer1K:  getEnvFloat("COST_INPUT_PER_1K", 0.03),
			OutputPer1K: getEnvFloat("COST_OUTPUT_PER_1K", 0.06),
		},
		Advisor: AdvisorConfig{
			Variant:   getEnv("ADVISOR_VARIANT", "standard"),
			ExportDir: getEnv("ADVISOR_EXPORT_DIR", "."),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
