package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neocompliance/neocompliance/internal/config"
)

//go:embed packs/*.yaml
var bundledPacks embed.FS

var setupInstall bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up NeoCompliance: config file and example rule packs",
	Long: `Create ~/.neocompliance with a commented default config file and install
the bundled example rule packs. Packs are installed disabled; turn one on
with 'neocompliance pack enable <name>'. Existing files are never overwritten.

  neocompliance setup --install   # write config and install packs
  neocompliance setup             # show what would be installed`,
	Args: cobra.NoArgs,
	RunE: setupCommand,
}

func init() {
	setupCmd.Flags().BoolVar(&setupInstall, "install", false, "Write the default config and install bundled packs")
	rootCmd.AddCommand(setupCmd)
}

func setupCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !setupInstall {
		printSetupInstructions(out)
		return nil
	}
	return runSetupInstall(out)
}

func runSetupInstall(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printBanner(w, "NeoCompliance Setup")
	fmt.Fprintln(w)

	cfgFile := configPath
	if cfgFile == "" {
		cfgFile = filepath.Join(cfg.ConfigDir, config.DefaultConfigFile)
	}
	written, err := writeDefaultConfig(cfgFile, cfg)
	if err != nil {
		return err
	}
	if written {
		fmt.Fprintf(w, "\xe2\x9c\x85 Config written to %s\n", cfgFile)
	} else {
		fmt.Fprintf(w, "\xe2\x9c\x85 Config already present at %s\n", cfgFile)
	}

	if err := os.MkdirAll(cfg.PacksDir, 0700); err != nil {
		return fmt.Errorf("failed to create packs directory: %w", err)
	}
	installed, err := installPacks(bundledPacks, "packs", cfg.PacksDir)
	if err != nil {
		return err
	}
	if installed > 0 {
		fmt.Fprintf(w, "\xe2\x9c\x85 %d rule packs installed to %s\n", installed, cfg.PacksDir)
	} else {
		fmt.Fprintf(w, "\xe2\x9c\x85 Rule packs already present in %s\n", cfg.PacksDir)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  neocompliance pack list              # see installed packs")
	fmt.Fprintln(w, "  neocompliance pack enable house-style")
	fmt.Fprintln(w, "  neocompliance scan                   # verify the effective catalog")
	return nil
}

func printSetupInstructions(w io.Writer) {
	printBanner(w, "NeoCompliance Setup")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'neocompliance setup --install' to create:")
	fmt.Fprintf(w, "  ~/%s/%s   default configuration (edit to taste)\n", config.DefaultConfigDir, config.DefaultConfigFile)
	fmt.Fprintf(w, "  ~/%s/%s/         example rule packs, installed disabled\n", config.DefaultConfigDir, config.DefaultPacksDir)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bundled packs:")
	names, _ := fs.Glob(bundledPacks, "packs/*.yaml")
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", path.Base(n))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment overrides use the NEOCOMPLIANCE_ prefix, for example")
	fmt.Fprintln(w, "  NEOCOMPLIANCE_AUDIT__ENABLED=true neocompliance analyze brochure.pdf")
}

// writeDefaultConfig writes a commented config file mirroring cfg. It
// reports false when the file already exists.
func writeDefaultConfig(file string, cfg *config.Config) (bool, error) {
	if _, err := os.Stat(file); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	d := cfg.Detection
	body := fmt.Sprintf(`# NeoCompliance configuration.
# Every key can be overridden with NEOCOMPLIANCE_<KEY>; use __ for nesting.

log_level: %s
log_format: %s

# Report format: text, json, yaml or markdown.
output: %s

# A YAML catalog replaces the built-in rules; leave empty to use them.
catalog_path: "%s"
packs_dir: "%s"

audit:
  enabled: %t
  path: "%s"

metrics:
  # Prometheus textfile for node_exporter; empty disables it.
  textfile: "%s"

source:
  timeout: %s
  max_bytes: %d

detection:
  threshold: %g
  floor: %g
  default_category: %s
  default_confidence: %g
  alternatives_min: %g
`,
		cfg.LogLevel, cfg.LogFormat, cfg.Output,
		cfg.CatalogPath, cfg.PacksDir,
		cfg.Audit.Enabled, cfg.Audit.Path,
		cfg.Metrics.Textfile,
		cfg.Source.Timeout, cfg.Source.MaxBytes,
		d.Detect, d.Floor, d.DefaultCategory, d.DefaultConfidence, d.Alternatives,
	)

	if err := os.WriteFile(file, []byte(body), 0600); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}

// installPacks copies pack files from src in fsys to dstDir, skipping packs
// already present in either enabled or disabled form.
func installPacks(fsys fs.FS, src, dstDir string) (int, error) {
	entries, err := fs.ReadDir(fsys, src)
	if err != nil {
		return 0, fmt.Errorf("failed to read bundled packs: %w", err)
	}

	installed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		bare := name
		if bare[0] == '_' {
			bare = bare[1:]
		}
		if exists(filepath.Join(dstDir, bare)) || exists(filepath.Join(dstDir, "_"+bare)) {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(src, name))
		if err != nil {
			return installed, fmt.Errorf("failed to read bundled pack %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dstDir, name), data, 0600); err != nil {
			return installed, fmt.Errorf("failed to install pack %s: %w", name, err)
		}
		installed++
	}
	return installed, nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
