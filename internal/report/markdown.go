package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/neocompliance/neocompliance/internal/analyzer"
)

func renderMarkdown(w io.Writer, sum *analyzer.Summary, opts Options) error {
	var b strings.Builder

	b.WriteString("# Compliance Report\n\n")
	if opts.Source != "" {
		fmt.Fprintf(&b, "- **Source:** %s\n", opts.Source)
	}
	if !opts.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- **Generated:** %s\n", opts.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if opts.ID != "" {
		fmt.Fprintf(&b, "- **Analysis ID:** `%s`\n", opts.ID)
	}
	fmt.Fprintf(&b, "- **Primary standard:** %s\n", categoryLabel(sum.PrimaryCategory))
	fmt.Fprintf(&b, "- **Auto-detected:** %s\n", yesNo(sum.AutoDetected))
	fmt.Fprintf(&b, "- **Standards applied:** %s\n", standardsList(sum.DetectedStandards, sum.DetectionConfidence))

	b.WriteString("\n## Executive Summary\n\n")
	fmt.Fprintf(&b, "**Overall compliance score: %d%%** (%s)\n\n", sum.ComplianceScore, Grade(sum.ComplianceScore))
	b.WriteString("| Total checks | Passed | Failed | Warnings |\n")
	b.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n", sum.TotalRules, sum.PassedRules, sum.FailedRules, sum.WarningRules)

	if opts.Hidden != nil && len(opts.Hidden.Findings) > 0 {
		fmt.Fprintf(&b, "\n> %d hidden or look-alike characters were normalized before analysis: %s.\n",
			len(opts.Hidden.Findings), strings.Join(opts.Hidden.Kinds(), ", "))
	}

	if opts.Classification != nil {
		cls := opts.Classification
		b.WriteString("\n## Classification\n\n")
		fmt.Fprintf(&b, "- **Primary category:** %s, %s confidence\n", categoryLabel(cls.Primary), percent(cls.Confidence))
		for _, a := range cls.Alternatives {
			fmt.Fprintf(&b, "- Alternative: %s, %s confidence\n", a.Category, percent(a.Confidence))
		}
		fmt.Fprintf(&b, "\n%s\n", cls.Reasoning)
	}

	if len(sum.CriticalIssues) > 0 {
		b.WriteString("\n## Critical Issues\n\n")
		for i, r := range sum.CriticalIssues {
			fmt.Fprintf(&b, "%d. %s **%s** `%s`: %s\n", i+1, symbolOr(r.Symbol), r.Category, r.RuleID, r.Rule)
			if r.FailureReason != "" {
				fmt.Fprintf(&b, "   - Reason: %s\n", r.FailureReason)
			}
			if r.Recommendation != "" {
				fmt.Fprintf(&b, "   - Solution: %s\n", r.Recommendation)
			}
		}
	}

	if len(sum.CategoryResults) > 0 {
		b.WriteString("\n## Category Results\n")
	}
	for _, cr := range sum.CategoryResults {
		fmt.Fprintf(&b, "\n### %s %s (%s)\n\n", cr.Icon, cr.CategoryName, cr.Category)
		fmt.Fprintf(&b, "Score **%d%%**, %s. %d rules: %d passed, %d failed, %d warnings.",
			cr.ComplianceScore, cr.OverallStatus, cr.TotalRules, cr.PassedRules, cr.FailedRules, cr.WarningRules)
		if cr.AutoDetected {
			fmt.Fprintf(&b, " Auto-detected with %s confidence.", percent(cr.DetectionConfidence))
		}
		b.WriteString("\n\n")

		b.WriteString("| Status | Rule | Severity | Finding | Recommendation |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, r := range cr.Results {
			finding := r.FailureReason
			if finding == "" {
				finding = r.Rule
			}
			fmt.Fprintf(&b, "| %s %s | `%s` | %s | %s | %s |\n",
				statusIcon(r.Status), r.Status, r.RuleID, r.Severity, escapeCell(finding), escapeCell(r.Recommendation))
		}

		if len(cr.Recommendations) > 0 {
			b.WriteString("\n**Recommendations**\n\n")
			for _, rec := range cr.Recommendations {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
		}
	}

	if len(sum.OverallRecommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, rec := range sum.OverallRecommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderDetectionMarkdown(w io.Writer, det analyzer.Detection, cls analyzer.Classification) error {
	var b strings.Builder

	b.WriteString("# Category Detection\n\n")
	fmt.Fprintf(&b, "- **Primary:** %s\n", categoryLabel(det.Primary))
	fmt.Fprintf(&b, "- **Detected:** %s\n", standardsList(det.Detected, det.Confidence))
	if det.Fallback {
		b.WriteString("- No category cleared the detection threshold; the default category was applied.\n")
	}

	if len(det.Ranked) > 0 {
		b.WriteString("\n| Category | Confidence |\n|---|---|\n")
		for _, s := range det.Ranked {
			fmt.Fprintf(&b, "| %s | %s |\n", s.Category, percent(s.Confidence))
		}
	}

	b.WriteString("\n## Classification\n\n")
	fmt.Fprintf(&b, "- **Primary category:** %s, %s confidence\n", categoryLabel(cls.Primary), percent(cls.Confidence))
	for _, a := range cls.Alternatives {
		fmt.Fprintf(&b, "- Alternative: %s, %s confidence\n", a.Category, percent(a.Confidence))
	}
	fmt.Fprintf(&b, "\n%s\n", cls.Reasoning)

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.Join(strings.Fields(s), " ")
}
