package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neocompliance/neocompliance/internal/report"
)

var detectIn inputFlags

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Show which guideline categories a document triggers",
	Long: `Score a document against every guideline category without evaluating
rules, and classify it into a single primary category with alternatives.

Examples:
  neocompliance detect --text "Term life insurance with low premium"
  neocompliance detect brochure.pdf -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: detectCommand,
}

func init() {
	detectIn.register(detectCmd)
	rootCmd.AddCommand(detectCmd)
}

func detectCommand(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	format, err := a.format()
	if err != nil {
		return err
	}
	in, err := detectIn.resolve(cmd, args, a.cfg)
	if err != nil {
		return err
	}
	_, scan, err := loadDocument(cmd, in, a.log)
	if err != nil {
		return err
	}

	det := a.engine.Detect(scan.Sanitized)
	cls := a.engine.Classify(scan.Sanitized)
	if err := report.RenderDetection(cmd.OutOrStdout(), det, cls, format, colorEnabled(cmd.OutOrStdout())); err != nil {
		return fmt.Errorf("failed to render detection: %w", err)
	}
	return nil
}
