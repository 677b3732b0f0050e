package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neocompliance/neocompliance/internal/policy"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print NeoCompliance version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "NeoCompliance %s\n", Version)
		fmt.Fprintf(out, "  Commit:  %s\n", GitCommit)
		fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
		fmt.Fprintf(out, "  Catalog: %s\n", policy.CatalogVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
