package main

import (
	"context"
	"errors"
	"fmt"

	"uni-advisor/internal/console"
	"uni-advisor/internal/models"
	"uni-advisor/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	askProfilePath string
	askExport      bool
	askExportDir   string
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Collect a profile in the terminal and print recommendations",
	Long: `Asks the profile questions one by one (or reads --profile), sends one
completion request and prints the recommendations, token usage and estimated
cost. Exits non-zero when the request fails.`,
	Args: cobra.NoArgs,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askProfilePath, "profile", "", "YAML profile file keyed by field keys (name, current_city, ...)")
	askCmd.Flags().BoolVar(&askExport, "export", false, "Also write <name>_recommendations.txt")
	askCmd.Flags().StringVar(&askExportDir, "export-dir", "", "Directory for --export (default from ADVISOR_EXPORT_DIR)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()

	var profile models.Profile
	if askProfilePath != "" {
		profile, err = console.LoadProfile(askProfilePath)
	} else {
		profile, err = console.Collect(cmd.InOrStdin(), out)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nGenerating recommendations... please wait.")

	presenter := service.NewPresenter()
	rec, err := a.recs.Generate(context.Background(), a.variant, profile)
	if err != nil {
		_ = presenter.RenderError(out, err)
		return errors.New("recommendation request failed")
	}

	if err := presenter.Render(out, rec); err != nil {
		return err
	}

	if askExport {
		dir := askExportDir
		if dir == "" {
			dir = a.cfg.Advisor.ExportDir
		}
		path, err := service.WriteExport(dir, rec)
		if err != nil {
			return err
		}
		a.logger.Info("Recommendations exported", zap.String("path", path))
		fmt.Fprintf(out, "Saved to %s\n", path)
	}

	return nil
}
