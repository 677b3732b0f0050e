package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/neocompliance/neocompliance/internal/analyzer"
	"github.com/neocompliance/neocompliance/internal/unicode"
)

// Format selects how a summary is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts a format name, case-insensitively. "md" and "yml"
// are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected text, json, yaml or markdown)", s)
}

// Options carries the document context rendered around a summary.
type Options struct {
	// ID identifies the analysis. Exports generate one when empty.
	ID          string
	Source      string
	TextLength  int
	GeneratedAt time.Time
	// Color enables terminal styling in text output.
	Color bool
	// Classification, when set, is rendered alongside the summary.
	Classification *analyzer.Classification
	// Hidden is the result of the hidden-character scan run before analysis.
	Hidden *unicode.ScanResult
}

// Export is the JSON and YAML document shape.
type Export struct {
	ID               string                   `json:"id" yaml:"id"`
	GeneratedAt      time.Time                `json:"generated_at" yaml:"generated_at"`
	Source           string                   `json:"source,omitempty" yaml:"source,omitempty"`
	TextLength       int                      `json:"text_length" yaml:"text_length"`
	Classification   *analyzer.Classification `json:"classification,omitempty" yaml:"classification,omitempty"`
	HiddenCharacters []unicode.Finding        `json:"hidden_characters,omitempty" yaml:"hidden_characters,omitempty"`
	Summary          *analyzer.Summary        `json:"summary" yaml:"summary"`
}

// NewExport wraps sum with the analysis metadata in opts.
func NewExport(sum *analyzer.Summary, opts Options) Export {
	exp := Export{
		ID:             opts.ID,
		GeneratedAt:    opts.GeneratedAt,
		Source:         opts.Source,
		TextLength:     opts.TextLength,
		Classification: opts.Classification,
		Summary:        sum,
	}
	if exp.ID == "" {
		exp.ID = uuid.New().String()
	}
	if exp.GeneratedAt.IsZero() {
		exp.GeneratedAt = time.Now().UTC()
	}
	if opts.Hidden != nil {
		exp.HiddenCharacters = opts.Hidden.Findings
	}
	return exp
}

// Render writes sum to w in the requested format.
func Render(w io.Writer, sum *analyzer.Summary, format Format, opts Options) error {
	if sum == nil {
		return fmt.Errorf("no summary to render")
	}
	switch format {
	case FormatText, "":
		return renderText(w, sum, opts)
	case FormatJSON:
		return writeJSON(w, NewExport(sum, opts))
	case FormatYAML:
		return writeYAML(w, NewExport(sum, opts))
	case FormatMarkdown:
		return renderMarkdown(w, sum, opts)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// DetectionExport is the JSON and YAML shape of a detection run.
type DetectionExport struct {
	Detection      analyzer.Detection      `json:"detection" yaml:"detection"`
	Classification analyzer.Classification `json:"classification" yaml:"classification"`
}

// RenderDetection writes auto-detection scores and the classification.
func RenderDetection(w io.Writer, det analyzer.Detection, cls analyzer.Classification, format Format, color bool) error {
	switch format {
	case FormatText, "":
		return renderDetectionText(w, det, cls, color)
	case FormatJSON:
		return writeJSON(w, DetectionExport{Detection: det, Classification: cls})
	case FormatYAML:
		return writeYAML(w, DetectionExport{Detection: det, Classification: cls})
	case FormatMarkdown:
		return renderDetectionMarkdown(w, det, cls)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// Grade interprets an overall compliance score.
func Grade(score int) string {
	switch {
	case score >= 80:
		return "\xe2\x9c\x85 Excellent"
	case score >= 60:
		return "\xe2\x9a\xa0\xef\xb8\x8f Good"
	default:
		return "\xe2\x9d\x8c Needs Improvement"
	}
}

func statusIcon(s analyzer.Status) string {
	switch s {
	case analyzer.StatusPass:
		return "\xe2\x9c\x85"
	case analyzer.StatusWarning:
		return "\xe2\x9a\xa0\xef\xb8\x8f"
	case analyzer.StatusFail:
		return "\xe2\x9d\x8c"
	default:
		return "\xe2\x84\xb9\xef\xb8\x8f"
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
