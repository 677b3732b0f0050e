package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

var categoriesMarkdown bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the guideline categories and their rule counts",
	Long: `List every guideline category with its sectors and the number of rules
registered against it. With --markdown, print a full guideline reference
document generated from the effective catalog.

  neocompliance categories
  neocompliance categories --markdown > GUIDELINES.md`,
	Args: cobra.NoArgs,
	RunE: categoriesCommand,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesMarkdown, "markdown", false, "Print the guideline reference as markdown")
	rootCmd.AddCommand(categoriesCmd)
}

func categoriesCommand(cmd *cobra.Command, args []string) error {
	catalog, err := effectiveCatalog()
	if err != nil {
		return err
	}
	byCategory := catalog.ByCategory()
	out := cmd.OutOrStdout()

	if categoriesMarkdown {
		fmt.Fprint(out, taxonomy.GenerateReferenceMarkdown(taxonomy.Guidelines(), byCategory))
		return nil
	}

	printBanner(out, "Guideline Categories")
	for _, info := range taxonomy.Guidelines() {
		fmt.Fprintf(out, "  %s %-14s %-45s %2d rules\n", info.Icon, info.ID, info.Name, len(byCategory[info.ID]))
		if len(info.ApplicableSectors) > 0 {
			fmt.Fprintf(out, "     Sectors: %s\n", strings.Join(info.ApplicableSectors, ", "))
		}
	}
	return nil
}
