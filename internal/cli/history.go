package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neocompliance/neocompliance/internal/logger"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

var (
	historyCategory string
	historyBelow    int
	historyLast     int
	historySummary  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View and filter the analysis audit log",
	Long: `View past analyses recorded in the audit log (enable it with --audit or
audit.enabled in the config file).

Examples:
  neocompliance history                      # Show all entries
  neocompliance history --last 20            # Show last 20 entries
  neocompliance history --category SEBI      # Analyses that applied SEBI rules
  neocompliance history --below 80           # Analyses scoring under 80%
  neocompliance history --summary            # Show summary stats`,
	Args: cobra.NoArgs,
	RunE: historyCommand,
}

func init() {
	historyCmd.Flags().StringVarP(&historyCategory, "category", "c", "", "Filter by applied category")
	historyCmd.Flags().IntVar(&historyBelow, "below", 0, "Show only analyses scoring below this value")
	historyCmd.Flags().IntVar(&historyLast, "last", 0, "Show last N entries")
	historyCmd.Flags().BoolVar(&historySummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(historyCmd)
}

func historyCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	events, err := logger.ReadEvents(cfg.Audit.Path)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No audit log entries found.")
		return nil
	}

	var category taxonomy.Category
	if historyCategory != "" {
		if category, err = taxonomy.ParseCategory(historyCategory); err != nil {
			return err
		}
	}

	filtered := filterEvents(events, category, historyBelow)
	if historyLast > 0 && historyLast < len(filtered) {
		filtered = filtered[len(filtered)-historyLast:]
	}

	if historySummary {
		printSummary(out, events)
		return nil
	}

	printEvents(out, filtered)
	return nil
}

func filterEvents(events []logger.AnalysisEvent, category taxonomy.Category, below int) []logger.AnalysisEvent {
	if category == "" && below <= 0 {
		return events
	}

	var filtered []logger.AnalysisEvent
	for _, e := range events {
		if category != "" && !containsString(e.DetectedStandards, string(category)) {
			continue
		}
		if below > 0 && e.ComplianceScore >= below {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func printEvents(w io.Writer, events []logger.AnalysisEvent) {
	for _, e := range events {
		fmt.Fprintf(w, "%s %s %3d%%  %s\n", scoreIcon(e.ComplianceScore), formatTimestamp(e.Timestamp), e.ComplianceScore, e.Source)
		fmt.Fprintf(w, "     Standards: %s (primary %s)\n", strings.Join(e.DetectedStandards, ", "), e.PrimaryCategory)
		fmt.Fprintf(w, "     Rules: %d total, %d passed, %d failed, %d warnings\n", e.TotalRules, e.PassedRules, e.FailedRules, e.WarningRules)
		if len(e.CriticalIssues) > 0 {
			fmt.Fprintf(w, "     Critical: %s\n", strings.Join(e.CriticalIssues, ", "))
		}
		if len(e.Redactions) > 0 {
			fmt.Fprintf(w, "     Redacted: %s\n", strings.Join(e.Redactions, ", "))
		}
		if e.Excerpt != "" {
			fmt.Fprintf(w, "     Excerpt: %s\n", e.Excerpt)
		}
		if e.Error != "" {
			fmt.Fprintf(w, "     Error: %s\n", e.Error)
		}
		fmt.Fprintln(w)
	}
}

func printSummary(w io.Writer, all []logger.AnalysisEvent) {
	var scoreTotal, critical, errorCount int
	grades := map[string]int{}
	standards := map[string]int{}
	ruleFailures := map[string]int{}

	for _, e := range all {
		scoreTotal += e.ComplianceScore
		critical += len(e.CriticalIssues)
		if e.Error != "" {
			errorCount++
		}
		switch {
		case e.ComplianceScore >= 80:
			grades["excellent"]++
		case e.ComplianceScore >= 60:
			grades["good"]++
		default:
			grades["poor"]++
		}
		for _, s := range e.DetectedStandards {
			standards[s]++
		}
		for _, id := range e.CriticalIssues {
			ruleFailures[id]++
		}
	}

	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintln(w, "  NeoCompliance Analysis Summary")
	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintf(w, "  Total analyses:     %d\n", len(all))
	fmt.Fprintf(w, "  Average score:      %d%%\n", scoreTotal/len(all))
	fmt.Fprintf(w, "  Excellent (>=80):   %d\n", grades["excellent"])
	fmt.Fprintf(w, "  Good (60-79):       %d\n", grades["good"])
	fmt.Fprintf(w, "  Needs work (<60):   %d\n", grades["poor"])
	fmt.Fprintf(w, "  Critical issues:    %d\n", critical)
	fmt.Fprintf(w, "  Errors:             %d\n", errorCount)
	fmt.Fprintln(w, "═══════════════════════════════════════════")

	fmt.Fprintf(w, "  First analysis:     %s\n", formatTimestamp(all[0].Timestamp))
	fmt.Fprintf(w, "  Last analysis:      %s\n", formatTimestamp(all[len(all)-1].Timestamp))

	if len(standards) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Standards applied:")
		for _, s := range topCounts(standards, len(standards)) {
			fmt.Fprintf(w, "    %-16s %d\n", s.key, s.n)
		}
	}

	if len(ruleFailures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Most frequent critical failures:")
		for _, r := range topCounts(ruleFailures, 10) {
			fmt.Fprintf(w, "    %-36s %d\n", r.key, r.n)
		}
	}

	fmt.Fprintln(w)
}

type count struct {
	key string
	n   int
}

// topCounts orders counts descending, then by key, and keeps the first limit.
func topCounts(m map[string]int, limit int) []count {
	out := make([]count, 0, len(m))
	for k, n := range m {
		out = append(out, count{k, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].n != out[j].n {
			return out[i].n > out[j].n
		}
		return out[i].key < out[j].key
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func scoreIcon(score int) string {
	switch {
	case score >= 80:
		return "\xe2\x9c\x85" // check mark
	case score >= 60:
		return "\xe2\x9a\xa0\xef\xb8\x8f" // warning sign
	default:
		return "\xe2\x9d\x8c" // cross mark
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
