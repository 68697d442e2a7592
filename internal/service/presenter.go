package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"uni-advisor/internal/models"
)

const exportSuffix = "_recommendations.txt"

// Presenter writes pipeline results for the console surface. Model text is
// written byte for byte.
type Presenter struct{}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func (p *Presenter) Render(w io.Writer, rec *models.Recommendation) error {
	r := rec.Result
	_, err := fmt.Fprintf(w,
		"=== University Recommendations ===\n\n%s\n\n"+
			"=== Token Usage Summary ===\n"+
			"Prompt tokens: %d\n"+
			"Completion tokens: %d\n"+
			"Total tokens: %d\n"+
			"Tokens (prompt / completion / total): %s\n"+
			"Estimated cost: %s USD\n",
		string(r.Text),
		r.PromptTokens, r.CompletionTokens, r.TotalTokens,
		TokenSummary(r),
		FormatCost(rec.Cost),
	)
	return err
}

// RenderError reports a failed run. It prints no usage or cost.
func (p *Presenter) RenderError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "=== Error ===\nCould not generate recommendations: %v\n", err)
	return werr
}

// TokenSummary formats counts as "prompt / completion / total".
func TokenSummary(r models.CompletionResult) string {
	return fmt.Sprintf("%d / %d / %d", r.PromptTokens, r.CompletionTokens, r.TotalTokens)
}

// ExportFileName derives the download name from the profile's Name field.
func ExportFileName(profile models.Profile) string {
	return sanitizeFileName(profile.Value(models.FieldName)) + exportSuffix
}

// WriteExport saves the raw recommendation text into dir and returns the
// file path.
func WriteExport(dir string, rec *models.Recommendation) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(rec.Profile))
	if err := os.WriteFile(path, []byte(rec.Result.Text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
