package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neocompliance/neocompliance/internal/policy"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage rule packs",
	Long: `Manage NeoCompliance rule packs.

Rule packs are YAML files of extra or replacement rules, for example a
company style guide or a newer revision of a regulator's circular. Packs are
stored in ~/.neocompliance/packs/ and merged over the base catalog at
runtime. A pack rule with an existing ID replaces the built-in rule.

Examples:
  neocompliance pack list                  # List installed packs
  neocompliance pack enable house-style    # Enable a pack
  neocompliance pack disable sebi-2024     # Disable a pack
  neocompliance pack show house-style      # Show pack details`,
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed rule packs",
	RunE:  packList,
}

var packEnableCmd = &cobra.Command{
	Use:   "enable <pack-name>",
	Short: "Enable a disabled rule pack",
	Args:  cobra.ExactArgs(1),
	RunE:  packEnable,
}

var packDisableCmd = &cobra.Command{
	Use:   "disable <pack-name>",
	Short: "Disable a rule pack (prefix with underscore)",
	Args:  cobra.ExactArgs(1),
	RunE:  packDisable,
}

var packShowCmd = &cobra.Command{
	Use:   "show <pack-name>",
	Short: "Show details of a rule pack",
	Args:  cobra.ExactArgs(1),
	RunE:  packShow,
}

func init() {
	packCmd.AddCommand(packListCmd)
	packCmd.AddCommand(packEnableCmd)
	packCmd.AddCommand(packDisableCmd)
	packCmd.AddCommand(packShowCmd)
	rootCmd.AddCommand(packCmd)
}

func packsDir() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfg.PacksDir, 0700); err != nil {
		return "", err
	}
	return cfg.PacksDir, nil
}

func packList(cmd *cobra.Command, args []string) error {
	dir, err := packsDir()
	if err != nil {
		return err
	}

	_, infos, err := policy.LoadPacks(dir, policy.DefaultCatalog())
	if err != nil {
		return fmt.Errorf("failed to load packs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(infos) == 0 {
		fmt.Fprintln(out, "No rule packs installed.")
		fmt.Fprintf(out, "\nTo install packs, copy YAML files to: %s\n", dir)
		return nil
	}

	fmt.Fprintln(out, "Installed Rule Packs:")
	fmt.Fprintln(out, strings.Repeat("─", 60))
	for _, info := range infos {
		status := "\xe2\x9c\x85" // check mark
		if !info.Enabled {
			status = "\xe2\x9d\x8c" // cross mark
		}
		fmt.Fprintf(out, "  %s  %-25s %s\n", status, info.Name, info.Description)
		if info.Err != nil {
			fmt.Fprintf(out, "       error: %v\n", info.Err)
			continue
		}
		if info.Version != "" {
			fmt.Fprintf(out, "       v%s by %s  (%d rules)\n", info.Version, info.Author, info.RuleCount)
		}
	}
	fmt.Fprintln(out, strings.Repeat("─", 60))
	fmt.Fprintf(out, "\nPacks directory: %s\n", dir)
	return nil
}

func packEnable(cmd *cobra.Command, args []string) error {
	return setPack(cmd, args[0], true)
}

func packDisable(cmd *cobra.Command, args []string) error {
	return setPack(cmd, args[0], false)
}

func setPack(cmd *cobra.Command, name string, enable bool) error {
	dir, err := packsDir()
	if err != nil {
		return err
	}

	_, enabled, err := policy.PackFile(dir, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	state := "disabled"
	if enable {
		state = "enabled"
	}
	if enabled == enable {
		fmt.Fprintf(out, "Pack '%s' is already %s.\n", name, state)
		return nil
	}

	if err := policy.SetPackEnabled(dir, name, enable); err != nil {
		return fmt.Errorf("failed to %s pack: %w", strings.TrimSuffix(state, "d"), err)
	}
	icon := "\xe2\x9d\x8c"
	if enable {
		icon = "\xe2\x9c\x85"
	}
	fmt.Fprintf(out, "%s Pack '%s' %s.\n", icon, name, state)
	return nil
}

func packShow(cmd *cobra.Command, args []string) error {
	dir, err := packsDir()
	if err != nil {
		return err
	}

	path, enabled, err := policy.PackFile(dir, args[0])
	if err != nil {
		return err
	}
	pack, err := policy.ReadPack(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	name := pack.Name
	if name == "" {
		name = args[0]
	}
	fmt.Fprintf(out, "%s (%s)\n", name, state)
	if pack.Description != "" {
		fmt.Fprintf(out, "  %s\n", pack.Description)
	}
	fmt.Fprintf(out, "  File:  %s\n", path)
	fmt.Fprintf(out, "  Rules: %d\n", len(pack.Rules))
	for _, r := range pack.Rules {
		fmt.Fprintf(out, "    %s %-34s %-9s %s\n", categoryIcon(r.Category), r.ID, r.Severity, r.Message)
	}
	return nil
}
