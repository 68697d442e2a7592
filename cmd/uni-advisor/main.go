package main

import (
	"fmt"
	"io"
	"os"

	"uni-advisor/internal/service"
	"uni-advisor/pkg/config"
	"uni-advisor/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Uni Advisor API
// @version 1.0
// @description Matches a student profile to five realistic master's programs using an LLM

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

var (
	version     = "dev"
	variantFlag string
)

var rootCmd = &cobra.Command{
	Use:   "uni-advisor",
	Short: "Graduate program recommendations from a student profile",
	Long: `uni-advisor turns a student's academic and financial profile into five
realistic master's program recommendations, with token usage and cost.

  uni-advisor ask                          Answer the profile questions in the terminal
  uni-advisor ask --profile asha.yaml      Use a YAML profile instead
  uni-advisor serve                        Start the web form`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "", "Prompt variant: standard or roi (default from ADVISOR_VARIANT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is what every command needs: config, logger and a completion
// pipeline.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	variant service.Variant
	client  service.CompletionClient
	recs    *service.RecommendationService
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger := logger.Get()

	variantName := cfg.Advisor.Variant
	if variantFlag != "" {
		variantName = variantFlag
	}
	variant, err := service.ParseVariant(variantName)
	if err != nil {
		return nil, err
	}

	client, err := service.NewCompletionClient(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize completion client: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  appLogger,
		variant: variant,
		client:  client,
		recs:    service.NewRecommendationService(client, service.NewPricing(&cfg.Pricing), appLogger),
	}, nil
}

func (a *app) Close() {
	if closer, ok := a.client.(io.Closer); ok {
		_ = closer.Close()
	}
	logger.Sync()
}
