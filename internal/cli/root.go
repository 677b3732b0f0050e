package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	catalogPath string
	packsPath   string
	logLevel    string
	outputFlag  string
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "neocompliance",
	Short: "NeoCompliance - rule-based compliance checks for advertising and regulated content",
	Long: `NeoCompliance analyzes marketing copy, web pages and product documents
against regulatory and advertising guidelines (ASCI, WCAG, IRDAI, RBI, SEBI,
pharma, food, telecom, automotive, real estate and AI ethics). It detects
which standards apply, evaluates their rules deterministically, and reports
a compliance score with the issues to fix.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML file (default: ~/.neocompliance/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a rule catalog YAML file (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&packsPath, "packs", "", "Path to the rule packs directory (default: ~/.neocompliance/packs)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, json, yaml or markdown")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled terminal output")
}

// Execute runs the root command. Cobra prints the error itself; the caller
// only chooses the exit status.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
