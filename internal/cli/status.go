package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/neocompliance/neocompliance/internal/config"
	"github.com/neocompliance/neocompliance/internal/policy"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show NeoCompliance status: configuration, catalog, packs, audit log",
	Long: `Show which configuration, rule catalog and packs are in effect, the
detection thresholds, and where the audit log and metrics are written.

  neocompliance status`,
	Args: cobra.NoArgs,
	RunE: statusCommand,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusCommand(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	printBanner(out, "NeoCompliance Status")
	fmt.Fprintln(out)

	binPath, err := os.Executable()
	if err != nil {
		binPath = "unknown"
	}
	fmt.Fprintf(out, "  Binary:    %s (%s)\n", binPath, Version)
	fmt.Fprintf(out, "  Config:    %s\n", a.cfg.ConfigDir)
	fmt.Fprintf(out, "  Output:    %s\n", a.cfg.Output)
	fmt.Fprintln(out)

	printRule(out, "Rule Catalog")
	checkFile(out, "Catalog", a.cfg.CatalogPath, "using the built-in catalog")
	fmt.Fprintf(out, "  \xe2\x9c\x85 %d rules (v%s)\n", len(a.catalog.Rules), a.catalog.Version)
	checkPacks(out, a.cfg.PacksDir, a.packs)
	fmt.Fprintln(out)

	printRule(out, "Detection")
	th := a.engine.Thresholds()
	fmt.Fprintf(out, "  Threshold:          %.1f\n", th.Detect)
	fmt.Fprintf(out, "  Reporting floor:    %.1f\n", th.Floor)
	fmt.Fprintf(out, "  Default category:   %s %s (%.0f%% confidence)\n", categoryIcon(th.DefaultCategory), th.DefaultCategory, th.DefaultConfidence)
	fmt.Fprintf(out, "  Alternatives above: %.1f\n", th.Alternatives)
	fmt.Fprintf(out, "  Categories:         %d\n", len(taxonomy.All()))
	fmt.Fprintln(out)

	printRule(out, "Audit Log")
	checkAuditLog(out, a.cfg)
	fmt.Fprintln(out)

	printRule(out, "Metrics")
	if a.cfg.Metrics.Textfile == "" {
		fmt.Fprintln(out, "  ⬚  Textfile export disabled (set metrics.textfile or use --metrics-file)")
	} else {
		checkFile(out, "Textfile", a.cfg.Metrics.Textfile, "not yet written")
	}
	fmt.Fprintln(out)

	return nil
}

func checkFile(w io.Writer, name, path, missing string) {
	if path == "" {
		fmt.Fprintf(w, "  ⬚  %s: %s\n", name, missing)
		return
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  \xe2\x9c\x85 %s: %s\n", name, path)
	} else {
		fmt.Fprintf(w, "  ⬚  %s: %s (%s)\n", name, path, missing)
	}
}

func checkPacks(w io.Writer, dir string, packs []policy.PackInfo) {
	if len(packs) == 0 {
		fmt.Fprintf(w, "  ⬚  No rule packs installed (%s)\n", dir)
		return
	}
	enabled, broken := 0, 0
	for _, p := range packs {
		if p.Err != nil {
			broken++
			continue
		}
		if p.Enabled {
			enabled++
		}
	}
	fmt.Fprintf(w, "  \xe2\x9c\x85 Rule packs: %d installed, %d enabled (%s)\n", len(packs), enabled, dir)
	if broken > 0 {
		fmt.Fprintf(w, "  \xe2\x9a\xa0  %d pack(s) could not be read; run 'neocompliance pack list'\n", broken)
	}
}

func checkAuditLog(w io.Writer, cfg *config.Config) {
	state := "disabled (enable with audit.enabled or --audit)"
	if cfg.Audit.Enabled {
		state = "enabled"
	}
	fmt.Fprintf(w, "  Recording: %s\n", state)

	info, err := os.Stat(cfg.Audit.Path)
	if err != nil {
		fmt.Fprintf(w, "  ⬚  %s (not yet created, will start on first analysis)\n", cfg.Audit.Path)
		return
	}

	sizeKB := info.Size() / 1024
	if sizeKB == 0 {
		fmt.Fprintf(w, "  \xe2\x9c\x85 %s (<1 KB)\n", cfg.Audit.Path)
	} else {
		fmt.Fprintf(w, "  \xe2\x9c\x85 %s (%d KB)\n", cfg.Audit.Path, sizeKB)
	}
}
