package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/neocompliance/neocompliance/internal/analyzer"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
	"github.com/neocompliance/neocompliance/internal/unicode"
)

var generatedAt = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func sampleSummary() *analyzer.Summary {
	failed := analyzer.Result{
		RuleID:         "irdai-mandatory-disclosure",
		Category:       taxonomy.IRDAI,
		Rule:           "Insurance advertisements must include mandatory disclosures",
		Status:         analyzer.StatusFail,
		Severity:       taxonomy.SeverityCritical,
		Message:        "Insurance advertisements must include mandatory disclosures",
		Suggestion:     "Add the disclosure",
		Symbol:         "\xe2\x9a\xa0\xef\xb8\x8f",
		FailureReason:  "Missing required terms: risk factors | terms and conditions",
		Recommendation: "Add the disclosure. Missing: risk factors",
	}
	warned := analyzer.Result{
		RuleID:         "irdai-misleading-claims",
		Category:       taxonomy.IRDAI,
		Rule:           "Avoid misleading claims",
		Status:         analyzer.StatusWarning,
		Severity:       taxonomy.SeverityHigh,
		Matches:        []string{"best"},
		FailureReason:  "Found keywords: best",
		Recommendation: "Substantiate superlatives",
	}
	passed := analyzer.Result{
		RuleID:   "irdai-claim-settlement",
		Category: taxonomy.IRDAI,
		Rule:     "Claim settlement ratios must cite the source",
		Status:   analyzer.StatusPass,
		Severity: taxonomy.SeverityMedium,
	}

	cr := analyzer.CategoryResult{
		Category:            taxonomy.IRDAI,
		CategoryName:        "IRDAI Insurance Guidelines",
		Icon:                "\xf0\x9f\x9b\xa1\xef\xb8\x8f",
		OverallStatus:       analyzer.NonCompliant,
		ComplianceScore:     33,
		TotalRules:          3,
		PassedRules:         1,
		FailedRules:         1,
		WarningRules:        1,
		Results:             []analyzer.Result{failed, warned, passed},
		Recommendations:     []string{"Add the disclosure. Missing: risk factors"},
		CriticalIssues:      []analyzer.Result{failed},
		PriorityActions:     []string{"\xf0\x9f\x9a\xa8 CRITICAL: Insurance advertisements must include mandatory disclosures"},
		AutoDetected:        true,
		DetectionConfidence: 82.4,
	}

	return &analyzer.Summary{
		TotalRules:             3,
		PassedRules:            1,
		FailedRules:            1,
		WarningRules:           1,
		ComplianceScore:        33,
		PrimaryCategory:        taxonomy.IRDAI,
		CategoryResults:        []analyzer.CategoryResult{cr},
		CriticalIssues:         []analyzer.Result{failed},
		OverallRecommendations: []string{"Review all flagged content before publication"},
		CategoryBreakdown: map[taxonomy.Category]analyzer.Breakdown{
			taxonomy.IRDAI: {Total: 3, Passed: 1, Failed: 1, Warnings: 1, ComplianceScore: 33, AutoDetected: true, Confidence: 82.4},
		},
		AutoDetected:        true,
		DetectedStandards:   []taxonomy.Category{taxonomy.IRDAI},
		DetectionConfidence: map[taxonomy.Category]float64{taxonomy.IRDAI: 82.4, taxonomy.SEBI: 3},
	}
}

func sampleOptions() Options {
	return Options{
		ID:          "3b241101-e2bb-4255-8caf-4136c566a962",
		Source:      "brochure.pdf",
		TextLength:  1200,
		GeneratedAt: generatedAt,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); !strings.HasSuffix(got, tt.want) {
			t.Errorf("Grade(%d) = %q, want suffix %q", tt.score, got, tt.want)
		}
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleSummary(), FormatJSON, sampleOptions()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc struct {
		ID          string           `json:"id"`
		GeneratedAt time.Time        `json:"generated_at"`
		Source      string           `json:"source"`
		TextLength  int              `json:"text_length"`
		Summary     analyzer.Summary `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if doc.ID != sampleOptions().ID || !doc.GeneratedAt.Equal(generatedAt) || doc.Source != "brochure.pdf" || doc.TextLength != 1200 {
		t.Errorf("unexpected envelope %+v", doc)
	}
	if doc.Summary.ComplianceScore != 33 || doc.Summary.PrimaryCategory != taxonomy.IRDAI {
		t.Errorf("unexpected summary %+v", doc.Summary)
	}
	if got := doc.Summary.CategoryBreakdown[taxonomy.IRDAI].Failed; got != 1 {
		t.Errorf("breakdown failed = %d, want 1", got)
	}
	if !strings.Contains(buf.String(), `"complianceScore": 33`) {
		t.Errorf("summary keys should stay camelCase:\n%s", buf.String())
	}
}

func TestRender_JSONGeneratesID(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleSummary(), FormatJSON, Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	id, _ := doc["id"].(string)
	if len(id) != 36 {
		t.Errorf("expected a generated UUID, got %q", id)
	}
	if _, ok := doc["generated_at"]; !ok {
		t.Error("generated_at missing")
	}
}

func TestRender_YAML(t *testing.T) {
	opts := sampleOptions()
	opts.Hidden = &unicode.ScanResult{
		Findings: []unicode.Finding{{Kind: "zero-width", Codepoint: "U+200B", Action: unicode.ActionRemoved}},
		Removed:  1,
	}

	var buf bytes.Buffer
	if err := Render(&buf, sampleSummary(), FormatYAML, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if doc["id"] != opts.ID {
		t.Errorf("id = %v", doc["id"])
	}
	summary, ok := doc["summary"].(map[string]any)
	if !ok {
		t.Fatalf("summary missing:\n%s", buf.String())
	}
	if summary["compliance_score"] != 33 {
		t.Errorf("compliance_score = %v", summary["compliance_score"])
	}
	if summary["primary_category"] != "IRDAI" {
		t.Errorf("primary_category = %v", summary["primary_category"])
	}
	hidden, ok := doc["hidden_characters"].([]any)
	if !ok || len(hidden) != 1 {
		t.Errorf("hidden_characters = %v", doc["hidden_characters"])
	}
}

func TestRender_Text(t *testing.T) {
	opts := sampleOptions()
	opts.Hidden = &unicode.ScanResult{
		Findings: []unicode.Finding{
			{Kind: "zero-width", Action: unicode.ActionRemoved},
			{Kind: "homoglyph-cyrillic", Action: unicode.ActionReplaced},
		},
		Removed:  1,
		Replaced: 1,
	}
	cls := analyzer.Classification{
		Primary:      taxonomy.IRDAI,
		Confidence:   82.4,
		Alternatives: []analyzer.Scored{{Category: taxonomy.Financial, Confidence: 12.6}},
		Reasoning:    "Insurance terms detected (Confidence: 82%)",
	}
	opts.Classification = &cls

	var buf bytes.Buffer
	if err := Render(&buf, sampleSummary(), FormatText, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"NeoCompliance Report",
		"brochure.pdf",
		"2026-10-15 09:30:00 UTC",
		"33%",
		"Needs Improvement",
		"IRDAI (82%)",
		"irdai-mandatory-disclosure",
		"Missing required terms: risk factors | terms and conditions",
		"Found keywords: best",
		"Priority actions",
		"Critical Issues",
		"Review all flagged content before publication",
		"2 hidden or look-alike characters (1 removed, 1 replaced)",
		"Alternatives:",
		"Financial (13%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("uncolored output should not contain ANSI escapes")
	}
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleSummary(), FormatMarkdown, sampleOptions()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Compliance Report",
		"- **Source:** brochure.pdf",
		"**Overall compliance score: 33%**",
		"| 3 | 1 | 1 | 1 |",
		"## Critical Issues",
		"### \xf0\x9f\x9b\xa1\xef\xb8\x8f IRDAI Insurance Guidelines (IRDAI)",
		"`irdai-mandatory-disclosure`",
		`risk factors \| terms and conditions`,
		"Auto-detected with 82% confidence.",
		"## Recommendations",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, FormatText, Options{}); err == nil {
		t.Error("expected an error for a nil summary")
	}
	if err := Render(&buf, sampleSummary(), Format("pdf"), Options{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestRenderDetection(t *testing.T) {
	det := analyzer.Detection{
		Confidence: map[taxonomy.Category]float64{taxonomy.SEBI: 64, taxonomy.Financial: 22, taxonomy.ASCI: 7},
		Ranked: []analyzer.Scored{
			{Category: taxonomy.SEBI, Confidence: 64},
			{Category: taxonomy.Financial, Confidence: 22},
			{Category: taxonomy.ASCI, Confidence: 7},
		},
		Detected: []taxonomy.Category{taxonomy.SEBI, taxonomy.Financial},
		Primary:  taxonomy.SEBI,
	}
	cls := analyzer.Classification{
		Primary:      taxonomy.SEBI,
		Confidence:   64,
		Alternatives: []analyzer.Scored{{Category: taxonomy.Financial, Confidence: 22}},
		Reasoning:    "Securities terms detected (Confidence: 64%)",
	}

	var text bytes.Buffer
	if err := RenderDetection(&text, det, cls, FormatText, false); err != nil {
		t.Fatalf("RenderDetection text: %v", err)
	}
	for _, want := range []string{"Category Detection", "SEBI (64%), Financial (22%)", "Classification", "Securities terms detected"} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("text output missing %q\n%s", want, text.String())
		}
	}

	var js bytes.Buffer
	if err := RenderDetection(&js, det, cls, FormatJSON, false); err != nil {
		t.Fatalf("RenderDetection json: %v", err)
	}
	var doc DetectionExport
	if err := json.Unmarshal(js.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Detection.Primary != taxonomy.SEBI || doc.Classification.Confidence != 64 || len(doc.Detection.Ranked) != 3 {
		t.Errorf("unexpected export %+v", doc)
	}

	var md bytes.Buffer
	if err := RenderDetection(&md, det, cls, FormatMarkdown, false); err != nil {
		t.Fatalf("RenderDetection markdown: %v", err)
	}
	if !strings.Contains(md.String(), "| SEBI | 64% |") {
		t.Errorf("markdown output missing ranking row\n%s", md.String())
	}
}
