package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/neocompliance/neocompliance/internal/analyzer"
)

const namespace = "neocompliance"

// Recorder collects analysis metrics in its own registry so a run can be
// dumped in the node_exporter textfile format without global state.
type Recorder struct {
	registry *prometheus.Registry

	analyses       *prometheus.CounterVec
	duration       prometheus.Histogram
	score          prometheus.Histogram
	lastScore      prometheus.Gauge
	detections     *prometheus.CounterVec
	categoryScore  *prometheus.GaugeVec
	ruleResults    *prometheus.CounterVec
	criticalIssues *prometheus.CounterVec
	failures       *prometheus.CounterVec
}

// New returns a Recorder with every collector registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "total",
				Help:      "Total number of documents analyzed",
			},
			[]string{"primary_category", "auto_detected"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "duration_seconds",
				Help:      "Time spent analyzing one document",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 15), // 100µs to ~1.6s
			},
		),
		score: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "compliance_score",
				Help:      "Distribution of overall compliance scores",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		lastScore: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "last_compliance_score",
				Help:      "Overall compliance score of the most recent analysis",
			},
		),
		detections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "category",
				Name:      "detections_total",
				Help:      "Number of analyses that applied each category",
			},
			[]string{"category"},
		),
		categoryScore: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "category",
				Name:      "compliance_score",
				Help:      "Most recent compliance score per category",
			},
			[]string{"category"},
		),
		ruleResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rule",
				Name:      "results_total",
				Help:      "Rule results by category and status",
			},
			[]string{"category", "status"},
		),
		criticalIssues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rule",
				Name:      "critical_issues_total",
				Help:      "Critical failures by rule",
			},
			[]string{"category", "rule_id"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "errors_total",
				Help:      "Analyses that could not run, by stage",
			},
			[]string{"stage"},
		),
	}
}

// Observe records one completed analysis.
func (r *Recorder) Observe(sum *analyzer.Summary, elapsed time.Duration) {
	if sum == nil {
		return
	}
	r.analyses.WithLabelValues(string(sum.PrimaryCategory), strconv.FormatBool(sum.AutoDetected)).Inc()
	r.duration.Observe(elapsed.Seconds())
	r.score.Observe(float64(sum.ComplianceScore))
	r.lastScore.Set(float64(sum.ComplianceScore))

	for _, cr := range sum.CategoryResults {
		cat := string(cr.Category)
		r.detections.WithLabelValues(cat).Inc()
		r.categoryScore.WithLabelValues(cat).Set(float64(cr.ComplianceScore))
		for _, res := range cr.Results {
			r.ruleResults.WithLabelValues(cat, string(res.Status)).Inc()
		}
		for _, res := range cr.CriticalIssues {
			r.criticalIssues.WithLabelValues(cat, res.RuleID).Inc()
		}
	}
}

// ObserveError counts an analysis that failed at stage, such as "source".
func (r *Recorder) ObserveError(stage string) {
	r.failures.WithLabelValues(stage).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create metrics directory: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
