package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neocompliance/neocompliance/internal/policy"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

var (
	rulesCategory string
	rulesOut      string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect, export and validate the rule catalog",
	Long: `Inspect the effective rule catalog: the built-in catalog (or --catalog)
with every enabled pack merged in.

Examples:
  neocompliance rules list                      # All rules
  neocompliance rules list --category SEBI      # Rules of one category
  neocompliance rules show sebi-guarantee-prohibition
  neocompliance rules export --out catalog.yaml # Starting point for a custom catalog
  neocompliance rules validate catalog.yaml     # Check a catalog before using it`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules grouped by category",
	Args:  cobra.NoArgs,
	RunE:  rulesList,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show <rule-id>",
	Short: "Show the full definition of one rule",
	Args:  cobra.ExactArgs(1),
	RunE:  rulesShow,
}

var rulesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the effective catalog as YAML",
	Args:  cobra.NoArgs,
	RunE:  rulesExport,
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate <catalog.yaml>",
	Short: "Validate a catalog file and compile its patterns",
	Args:  cobra.ExactArgs(1),
	RunE:  rulesValidate,
}

func init() {
	rulesListCmd.Flags().StringVarP(&rulesCategory, "category", "c", "", "Only list rules of this category")
	rulesExportCmd.Flags().StringVar(&rulesOut, "out", "", "Write to this file instead of stdout")
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesExportCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
	rootCmd.AddCommand(rulesCmd)
}

func effectiveCatalog() (*policy.Catalog, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}
	defer a.close()
	return a.catalog, nil
}

func rulesList(cmd *cobra.Command, args []string) error {
	catalog, err := effectiveCatalog()
	if err != nil {
		return err
	}

	var only taxonomy.Category
	if rulesCategory != "" {
		if only, err = taxonomy.ParseCategory(rulesCategory); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	byCategory := catalog.ByCategory()
	fmt.Fprintf(out, "Rule catalog v%s (%d rules)\n", catalog.Version, len(catalog.Rules))
	for _, cat := range taxonomy.All() {
		if only != "" && cat != only {
			continue
		}
		refs := byCategory[cat]
		if len(refs) == 0 {
			continue
		}
		fmt.Fprintln(out)
		printRule(out, fmt.Sprintf("%s %s (%d)", categoryIcon(cat), cat, len(refs)))
		for _, r := range refs {
			fmt.Fprintf(out, "  %-36s %-9s %s\n", r.ID, r.Severity, r.Message)
		}
	}
	return nil
}

func rulesShow(cmd *cobra.Command, args []string) error {
	catalog, err := effectiveCatalog()
	if err != nil {
		return err
	}

	rule, ok := catalog.Find(args[0])
	if !ok {
		return fmt.Errorf("rule '%s' not found", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", categoryIcon(rule.Category), rule.ID)
	fmt.Fprintf(out, "  %-12s %s\n", "Category:", rule.Category)
	fmt.Fprintf(out, "  %-12s %s\n", "Severity:", rule.Severity)
	fmt.Fprintf(out, "  %-12s %s\n", "Checks:", strings.Join(rule.Match.Kinds(), ", "))
	fmt.Fprintln(out)

	data, err := yaml.Marshal(rule)
	if err != nil {
		return fmt.Errorf("failed to encode rule: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func rulesExport(cmd *cobra.Command, args []string) error {
	catalog, err := effectiveCatalog()
	if err != nil {
		return err
	}

	if rulesOut == "" {
		return policy.WriteYAML(cmd.OutOrStdout(), catalog)
	}

	f, err := os.OpenFile(rulesOut, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", rulesOut, err)
	}
	if err := policy.WriteYAML(f, catalog); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\xe2\x9c\x85 Wrote %d rules to %s\n", len(catalog.Rules), rulesOut)
	return nil
}

func rulesValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	catalog, err := policy.Parse(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := policy.Compile(catalog); err != nil {
		var verr *policy.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(out, "\xe2\x9d\x8c %s is invalid:\n", args[0])
			for _, p := range verr.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			return fmt.Errorf("%d problem(s) in %s", len(verr.Problems), args[0])
		}
		return err
	}

	fmt.Fprintf(out, "\xe2\x9c\x85 %s is valid (%d rules)\n", args[0], len(catalog.Rules))
	return nil
}

func categoryIcon(c taxonomy.Category) string {
	if info, ok := taxonomy.Info(c); ok {
		return info.Icon
	}
	return taxonomy.FallbackIcon
}
