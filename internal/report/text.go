package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neocompliance/neocompliance/internal/analyzer"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

const (
	ruleWidth = 60
	labelFmt  = "  %-22s %s\n"
)

type palette struct {
	title  lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	pass   lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	box    lipgloss.Style
	accent lipgloss.Style
}

func newPalette(color bool) palette {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if !color {
		plain := lipgloss.NewStyle()
		return palette{title: plain, label: plain, muted: plain, pass: plain, warn: plain, fail: plain, box: box, accent: plain}
	}
	return palette{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		box:    box.BorderForeground(lipgloss.Color("69")),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}

func (p palette) score(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return p.pass
	case score >= 60:
		return p.warn
	default:
		return p.fail
	}
}

func (p palette) status(s analyzer.Status) lipgloss.Style {
	switch s {
	case analyzer.StatusPass:
		return p.pass
	case analyzer.StatusWarning:
		return p.warn
	case analyzer.StatusFail:
		return p.fail
	default:
		return p.muted
	}
}

func (p palette) overall(s analyzer.OverallStatus) lipgloss.Style {
	switch s {
	case analyzer.Compliant:
		return p.pass
	case analyzer.Partial:
		return p.warn
	default:
		return p.fail
	}
}

func renderText(w io.Writer, sum *analyzer.Summary, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder

	header := []string{p.title.Render("NeoCompliance Report")}
	if opts.Source != "" {
		header = append(header, p.label.Render("Source       ")+" "+opts.Source)
	}
	if !opts.GeneratedAt.IsZero() {
		header = append(header, p.label.Render("Generated    ")+" "+opts.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if opts.ID != "" {
		header = append(header, p.label.Render("Analysis ID  ")+" "+opts.ID)
	}
	b.WriteString(p.box.Render(lipgloss.JoinVertical(lipgloss.Left, header...)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, labelFmt, "Compliance score:", p.score(sum.ComplianceScore).Render(fmt.Sprintf("%d%%", sum.ComplianceScore))+"  "+Grade(sum.ComplianceScore))
	fmt.Fprintf(&b, labelFmt, "Primary standard:", categoryLabel(sum.PrimaryCategory))
	fmt.Fprintf(&b, labelFmt, "Auto-detected:", yesNo(sum.AutoDetected))
	fmt.Fprintf(&b, labelFmt, "Standards applied:", standardsList(sum.DetectedStandards, sum.DetectionConfidence))
	fmt.Fprintf(&b, labelFmt, "Rules evaluated:", fmt.Sprintf("%d total, %s passed, %s failed, %s warnings",
		sum.TotalRules,
		p.pass.Render(fmt.Sprint(sum.PassedRules)),
		p.fail.Render(fmt.Sprint(sum.FailedRules)),
		p.warn.Render(fmt.Sprint(sum.WarningRules))))
	if opts.TextLength > 0 {
		fmt.Fprintf(&b, labelFmt, "Text length:", fmt.Sprintf("%d characters", opts.TextLength))
	}

	if opts.Hidden != nil && len(opts.Hidden.Findings) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %d hidden or look-alike characters (%d removed, %d replaced): %s\n",
			p.warn.Render("\xe2\x9a\xa0\xef\xb8\x8f"), len(opts.Hidden.Findings), opts.Hidden.Removed, opts.Hidden.Replaced,
			strings.Join(opts.Hidden.Kinds(), ", "))
	}

	if opts.Classification != nil {
		writeSection(&b, p, "Classification")
		writeClassification(&b, p, *opts.Classification)
	}

	for _, cr := range sum.CategoryResults {
		writeCategory(&b, p, cr)
	}

	if len(sum.CriticalIssues) > 0 {
		writeSection(&b, p, "\xf0\x9f\x9a\xa8 Critical Issues")
		for i, r := range sum.CriticalIssues {
			fmt.Fprintf(&b, "  %d. %s %s: %s\n", i+1, symbolOr(r.Symbol), r.Category, r.Rule)
			if r.FailureReason != "" {
				fmt.Fprintf(&b, "     %s %s\n", p.label.Render("Reason:"), r.FailureReason)
			}
			if r.Recommendation != "" {
				fmt.Fprintf(&b, "     \xf0\x9f\x92\xa1 %s\n", r.Recommendation)
			}
		}
	}

	if len(sum.OverallRecommendations) > 0 {
		writeSection(&b, p, "Recommendations")
		for _, rec := range sum.OverallRecommendations {
			fmt.Fprintf(&b, "  \xe2\x80\xa2 %s\n", rec)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, p palette, title string) {
	line := strings.Repeat("\xe2\x95\x90", ruleWidth)
	b.WriteString("\n" + p.accent.Render(line) + "\n")
	b.WriteString("  " + p.title.Render(title) + "\n")
	b.WriteString(p.accent.Render(line) + "\n")
}

func writeCategory(b *strings.Builder, p palette, cr analyzer.CategoryResult) {
	title := fmt.Sprintf("%s %s (%s)", cr.Icon, cr.CategoryName, cr.Category)
	b.WriteString("\n" + p.accent.Render("\xe2\x94\x80\xe2\x94\x80\xe2\x94\x80 ") + p.title.Render(title) + "\n")

	detail := fmt.Sprintf("%d rules: %d passed, %d failed, %d warnings", cr.TotalRules, cr.PassedRules, cr.FailedRules, cr.WarningRules)
	if cr.AutoDetected {
		detail += fmt.Sprintf(", auto-detected at %s confidence", percent(cr.DetectionConfidence))
	}
	fmt.Fprintf(b, "  %s  %s  %s\n",
		p.score(cr.ComplianceScore).Render(fmt.Sprintf("%d%%", cr.ComplianceScore)),
		p.overall(cr.OverallStatus).Render(string(cr.OverallStatus)),
		p.muted.Render(detail))

	for _, r := range cr.Results {
		fmt.Fprintf(b, "  %s %s %s %s\n",
			statusIcon(r.Status),
			p.status(r.Status).Render(r.RuleID),
			p.label.Render("["+string(r.Severity)+"]"),
			r.Rule)
		if r.Status == analyzer.StatusPass {
			continue
		}
		if r.FailureReason != "" {
			fmt.Fprintf(b, "       %s\n", p.muted.Render(r.FailureReason))
		}
		if r.Recommendation != "" {
			fmt.Fprintf(b, "       \xf0\x9f\x92\xa1 %s\n", r.Recommendation)
		}
	}

	if len(cr.PriorityActions) > 0 {
		b.WriteString("  " + p.label.Render("Priority actions") + "\n")
		for _, a := range cr.PriorityActions {
			fmt.Fprintf(b, "    %s\n", a)
		}
	}
	if len(cr.Recommendations) > 0 {
		b.WriteString("  " + p.label.Render("Recommendations") + "\n")
		for _, rec := range cr.Recommendations {
			fmt.Fprintf(b, "    \xe2\x80\xa2 %s\n", rec)
		}
	}
}

func writeClassification(b *strings.Builder, p palette, cls analyzer.Classification) {
	fmt.Fprintf(b, labelFmt, "Primary category:", categoryLabel(cls.Primary))
	fmt.Fprintf(b, labelFmt, "Confidence:", percent(cls.Confidence))
	if len(cls.Alternatives) > 0 {
		alts := make([]string, 0, len(cls.Alternatives))
		for _, a := range cls.Alternatives {
			alts = append(alts, fmt.Sprintf("%s (%s)", a.Category, percent(a.Confidence)))
		}
		fmt.Fprintf(b, labelFmt, "Alternatives:", strings.Join(alts, ", "))
	}
	fmt.Fprintf(b, labelFmt, "Reasoning:", p.muted.Render(cls.Reasoning))
}

func renderDetectionText(w io.Writer, det analyzer.Detection, cls analyzer.Classification, color bool) error {
	p := newPalette(color)
	var b strings.Builder

	writeSection(&b, p, "Category Detection")
	primary := categoryLabel(det.Primary)
	if det.Fallback {
		primary += "  " + p.muted.Render("(no category cleared the threshold, default applied)")
	}
	fmt.Fprintf(&b, labelFmt, "Primary:", primary)
	fmt.Fprintf(&b, labelFmt, "Detected:", standardsList(det.Detected, det.Confidence))
	if len(det.Ranked) > 0 {
		b.WriteString("\n")
		for _, s := range det.Ranked {
			bar := strings.Repeat("\xe2\x96\x88", int(math.Round(s.Confidence/5)))
			fmt.Fprintf(&b, "  %-22s %5s  %s\n", s.Category, percent(s.Confidence), p.accent.Render(bar))
		}
	}

	writeSection(&b, p, "Classification")
	writeClassification(&b, p, cls)

	_, err := io.WriteString(w, b.String())
	return err
}

func categoryLabel(c taxonomy.Category) string {
	info, ok := taxonomy.Info(c)
	if !ok {
		return string(c)
	}
	return fmt.Sprintf("%s %s (%s)", info.Icon, info.Name, c)
}

func standardsList(cats []taxonomy.Category, confidence map[taxonomy.Category]float64) string {
	if len(cats) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		parts = append(parts, fmt.Sprintf("%s (%s)", c, percent(confidence[c])))
	}
	return strings.Join(parts, ", ")
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

func symbolOr(s string) string {
	if s == "" {
		return "\xe2\x9a\xa0\xef\xb8\x8f"
	}
	return s
}
