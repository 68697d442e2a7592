package main

import (
	"os"
	"os/signal"
	"syscall"

	"uni-advisor/internal/api"
	"uni-advisor/internal/api/handlers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form and JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	recHandler := handlers.NewRecommendationHandler(a.recs, a.variant, a.logger)
	server := api.SetupRouter(recHandler, &a.cfg.Server, a.logger)

	serverErr := make(chan error, 1)
	go func() {
		addr := ":" + a.cfg.Server.Port
		a.logger.Info("Server starting", zap.String("address", addr), zap.String("variant", a.variant.String()))
		serverErr <- server.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	a.logger.Info("Shutting down server")
	if err := server.Shutdown(); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
	}
	return nil
}
