package cli

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neocompliance/neocompliance/internal/logger"
	"github.com/neocompliance/neocompliance/internal/metrics"
	"github.com/neocompliance/neocompliance/internal/report"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

var (
	analyzeIn          inputFlags
	analyzeCategories  string
	analyzeFailUnder   int
	analyzeAudit       bool
	analyzeMetricsFile string
	analyzeClassify    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a document against the applicable compliance guidelines",
	Long: `Analyze text, a file, a URL or piped stdin. The applicable standards are
auto-detected from the content unless --category names them explicitly.

Examples:
  neocompliance analyze --text "Guaranteed returns on our mutual fund!"
  neocompliance analyze brochure.pdf
  neocompliance analyze --url https://example.com/offer -o markdown
  cat ad.txt | neocompliance analyze --category IRDAI,Financial
  neocompliance analyze landing.html --fail-under 80      # for CI`,
	Args: cobra.MaximumNArgs(1),
	RunE: analyzeCommand,
}

func init() {
	analyzeIn.register(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeCategories, "category", "c", "", "Comma-separated categories to check instead of auto-detection")
	analyzeCmd.Flags().IntVar(&analyzeFailUnder, "fail-under", 0, "Exit with an error when the compliance score is below this value")
	analyzeCmd.Flags().BoolVar(&analyzeAudit, "audit", false, "Append this analysis to the audit log")
	analyzeCmd.Flags().StringVar(&analyzeMetricsFile, "metrics-file", "", "Write Prometheus metrics for this run to a textfile")
	analyzeCmd.Flags().BoolVar(&analyzeClassify, "classify", false, "Include the document classification in the report")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeCommand(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	format, err := a.format()
	if err != nil {
		return err
	}
	categories, err := parseCategories(analyzeCategories)
	if err != nil {
		return err
	}
	if analyzeFailUnder < 0 || analyzeFailUnder > 100 {
		return fmt.Errorf("--fail-under must be between 0 and 100, got %d", analyzeFailUnder)
	}

	rec := metrics.New()
	metricsPath := analyzeMetricsFile
	if metricsPath == "" {
		metricsPath = a.cfg.Metrics.Textfile
	}

	in, err := analyzeIn.resolve(cmd, args, a.cfg)
	if err != nil {
		return err
	}
	doc, scan, err := loadDocument(cmd, in, a.log)
	if err != nil {
		rec.ObserveError("source")
		a.writeMetrics(rec, metricsPath)
		return err
	}
	text := scan.Sanitized

	start := time.Now()
	sum, err := a.engine.AnalyzeCategories(text, categories)
	if err != nil {
		rec.ObserveError("analyze")
		a.writeMetrics(rec, metricsPath)
		return fmt.Errorf("failed to analyze document: %w", err)
	}
	elapsed := time.Since(start)

	id := uuid.NewString()
	opts := report.Options{
		ID:          id,
		Source:      doc.Source,
		TextLength:  utf8.RuneCountInString(text),
		GeneratedAt: time.Now().UTC(),
		Color:       colorEnabled(cmd.OutOrStdout()),
		Hidden:      &scan,
	}
	if analyzeClassify {
		cls := a.engine.Classify(text)
		opts.Classification = &cls
	}

	if err := report.Render(cmd.OutOrStdout(), sum, format, opts); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if analyzeAudit || a.cfg.Audit.Enabled {
		if err := a.audit(logger.NewAnalysisEvent(id, doc.Source, string(doc.Kind), text, sum, elapsed)); err != nil {
			return err
		}
	}

	rec.Observe(sum, elapsed)
	a.writeMetrics(rec, metricsPath)

	a.log.Debug("analysis complete",
		zap.String("id", id),
		zap.String("source", doc.Source),
		zap.String("primary", string(sum.PrimaryCategory)),
		zap.Int("score", sum.ComplianceScore),
		zap.Duration("elapsed", elapsed),
	)

	if analyzeFailUnder > 0 && sum.ComplianceScore < analyzeFailUnder {
		return fmt.Errorf("compliance score %d%% is below the required %d%%", sum.ComplianceScore, analyzeFailUnder)
	}
	return nil
}

func (a *app) audit(event logger.AnalysisEvent) error {
	auditLog, err := logger.New(a.cfg.Audit.Path)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer func() { _ = auditLog.Close() }()

	if err := auditLog.Log(event); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// writeMetrics is best effort: a metrics failure never fails the analysis.
func (a *app) writeMetrics(rec *metrics.Recorder, path string) {
	if path == "" {
		return
	}
	if err := rec.WriteTextfile(path); err != nil {
		a.log.Warn("failed to write metrics textfile", zap.String("path", path), zap.Error(err))
	}
}

func parseCategories(s string) ([]taxonomy.Category, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []taxonomy.Category
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := taxonomy.ParseCategory(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

