package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/neocompliance/neocompliance/internal/normalize"
	"github.com/neocompliance/neocompliance/internal/policy"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

func compileRule(t *testing.T, r policy.Rule) *policy.CompiledRule {
	t.Helper()
	if r.Category == "" {
		r.Category = taxonomy.ASCI
	}
	if r.Severity == "" {
		r.Severity = taxonomy.SeverityHigh
	}
	if r.Message == "" {
		r.Message = "test rule"
	}
	if r.Suggestion == "" {
		r.Suggestion = "Fix it."
	}
	cc, err := policy.Compile(&policy.Catalog{Rules: []policy.Rule{r}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	rules := cc.Rules()
	return &rules[0]
}

func evaluate(t *testing.T, text string, r policy.Rule) *Result {
	t.Helper()
	return EvaluateRule(normalize.NewCaseFold().Prepare(text), compileRule(t, r), zap.NewNop())
}

func TestDefaultRegistry_Order(t *testing.T) {
	var names []string
	for _, c := range DefaultRegistry().Checks() {
		names = append(names, c.Name())
	}
	want := []string{"pattern", "keywords", "prohibited", "required", "custom"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("check order = %v, want %v", names, want)
	}
}

func TestEvaluate_CheckKinds(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		rule       policy.Rule
		wantStatus Status
		wantReason string
		wantMatch  []string
	}{
		{
			name:       "pattern fails",
			text:       "Our #1 product",
			rule:       policy.Rule{ID: "p", Match: policy.Match{Pattern: `#1`}},
			wantStatus: StatusFail,
			wantReason: "Found prohibited patterns: #1",
			wantMatch:  []string{"#1"},
		},
		{
			name:       "keywords warn",
			text:       "Hover to see more",
			rule:       policy.Rule{ID: "k", Match: policy.Match{Keywords: []string{"hover", "click here"}}},
			wantStatus: StatusWarning,
			wantReason: "Found keywords requiring attention: hover",
			wantMatch:  []string{"hover"},
		},
		{
			name: "prohibited escalates a warning",
			text: "A star recommends this",
			rule: policy.Rule{ID: "x", Match: policy.Match{
				Keywords:   []string{"recommends"},
				Prohibited: []string{"star recommends"},
			}},
			wantStatus: StatusFail,
			wantReason: "Found prohibited terms: star recommends",
			wantMatch:  []string{"recommends", "star recommends"},
		},
		{
			name:       "required missing fails",
			text:       "Nothing relevant",
			rule:       policy.Rule{ID: "r", Match: policy.Match{Required: []string{"risk factors", "sales brochure"}}},
			wantStatus: StatusFail,
			wantReason: "Missing required terms: risk factors, sales brochure",
		},
		{
			name:       "custom with no prior reason",
			text:       "Free delivery",
			rule:       policy.Rule{ID: "c", Match: policy.Match{Custom: &policy.CustomMatch{AnyOf: []string{"free"}}}},
			wantStatus: StatusFail,
			wantReason: "Failed custom compliance check",
		},
		{
			name: "custom keeps earlier reason",
			text: "Free delivery",
			rule: policy.Rule{ID: "c2", Match: policy.Match{
				Keywords: []string{"delivery"},
				Custom:   &policy.CustomMatch{AnyOf: []string{"free"}},
			}},
			wantStatus: StatusFail,
			wantReason: "Found keywords requiring attention: delivery",
			wantMatch:  []string{"delivery"},
		},
		{
			name: "keywords do not downgrade a pattern failure",
			text: "The best offer",
			rule: policy.Rule{ID: "pk", Match: policy.Match{
				Pattern:  `\bbest\b`,
				Keywords: []string{"offer"},
			}},
			wantStatus: StatusFail,
			wantReason: "Found prohibited patterns: best",
			wantMatch:  []string{"best", "offer"},
		},
		{
			name:       "all required present passes",
			text:       "Read the sales brochure; mind the risk factors.",
			rule:       policy.Rule{ID: "rp", Match: policy.Match{Required: []string{"risk factors", "sales brochure"}}},
			wantStatus: StatusPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluate(t, tt.text, tt.rule)
			if got == nil {
				t.Fatal("expected a result, got none")
			}
			if got.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.FailureReason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got.FailureReason, tt.wantReason)
			}
			if !reflect.DeepEqual(got.Matches, tt.wantMatch) {
				t.Errorf("matches = %q, want %q", got.Matches, tt.wantMatch)
			}
		})
	}
}

func TestEvaluate_RequiredRewritesRecommendation(t *testing.T) {
	got := evaluate(t, "risk factors only", policy.Rule{
		ID:         "r",
		Suggestion: "Add the disclosure.",
		Match:      policy.Match{Required: []string{"risk factors", "sales brochure"}},
	})
	want := "Add the disclosure. Missing: sales brochure"
	if got.Recommendation != want || got.Suggestion != want {
		t.Errorf("recommendation = %q, suggestion = %q, want %q", got.Recommendation, got.Suggestion, want)
	}
}

func TestEvaluate_Suppression(t *testing.T) {
	rules := []policy.Rule{
		{ID: "p", Match: policy.Match{Pattern: `never-matches`}},
		{ID: "k", Match: policy.Match{Keywords: []string{"absent"}}},
		{ID: "x", Match: policy.Match{Prohibited: []string{"absent"}}},
		{ID: "c", Match: policy.Match{Custom: &policy.CustomMatch{AnyOf: []string{"absent"}}}},
	}
	for _, r := range rules {
		if got := evaluate(t, "plain harmless text", r); got != nil {
			t.Errorf("rule %s: expected suppression, got %+v", r.ID, got)
		}
	}
}

func TestEvaluate_ResultFields(t *testing.T) {
	got := evaluate(t, "best deal", policy.Rule{
		ID:         "asci-x",
		Category:   taxonomy.ASCI,
		Severity:   taxonomy.SeverityCritical,
		Message:    "Superlative claim",
		Suggestion: "Substantiate it.",
		Symbol:     "⚠️",
		Match:      policy.Match{Pattern: `best`},
	})
	want := &Result{
		RuleID:         "asci-x",
		Category:       taxonomy.ASCI,
		Rule:           "Superlative claim",
		Status:         StatusFail,
		Severity:       taxonomy.SeverityCritical,
		Message:        "Superlative claim",
		Suggestion:     "Substantiate it.",
		Symbol:         "⚠️",
		Matches:        []string{"best"},
		FailureReason:  "Found prohibited patterns: best",
		Recommendation: "Substantiate it.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestEvaluate_CustomPanicIsIsolated(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	rule := compileRule(t, policy.Rule{ID: "boom", Match: policy.Match{
		Keywords: []string{"hello"},
		Check:    func(normalize.Text) bool { panic("bad predicate") },
	}})

	got := EvaluateRule(normalize.NewCaseFold().Prepare("hello"), rule, zap.New(core))
	if got == nil || got.Status != StatusWarning {
		t.Fatalf("expected the keyword warning to survive the panic, got %+v", got)
	}

	entries := logs.FilterMessage("custom check panicked").All()
	if len(entries) != 1 {
		t.Fatalf("expected one panic log entry, got %d", len(entries))
	}
	if id := entries[0].ContextMap()["rule_id"]; id != "boom" {
		t.Errorf("rule_id = %v", id)
	}
}

func TestRegistry_CustomChecks(t *testing.T) {
	// A registry can run a subset of checks.
	reg := NewRegistry(keywordCheck{})
	rule := compileRule(t, policy.Rule{ID: "k", Match: policy.Match{
		Keywords: []string{"offer"},
		Required: []string{"terms"},
	}})

	got := reg.Evaluate(normalize.NewCaseFold().Prepare("Great offer"), rule, nil)
	if got == nil || got.Status != StatusWarning {
		t.Fatalf("expected warning without the required check, got %+v", got)
	}
	if !strings.HasPrefix(got.FailureReason, "Found keywords") {
		t.Errorf("unexpected reason %q", got.FailureReason)
	}
}
