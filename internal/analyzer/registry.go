package analyzer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/neocompliance/neocompliance/internal/normalize"
	"github.com/neocompliance/neocompliance/internal/policy"
)

// Check is one stage of rule evaluation. Each check reads the rule and the
// text, and folds its findings into the RuleContext shared by every stage.
type Check interface {
	// Name returns the check kind ("pattern", "keywords", ...).
	Name() string

	// Apply inspects ctx.Text against ctx.Rule and updates ctx.
	Apply(ctx *RuleContext)
}

// RuleContext carries one rule evaluation through all checks. Status only
// ever escalates; matches only ever accumulate.
type RuleContext struct {
	Text normalize.Text
	Rule *policy.CompiledRule
	Log  *zap.Logger

	Status         Status
	Matches        []string
	FailureReason  string
	Recommendation string
}

func (c *RuleContext) escalate(s Status) {
	if s.rank() > c.Status.rank() {
		c.Status = s
	}
}

// Registry is an ordered collection of checks that runs them in sequence,
// threading the RuleContext through each stage. There is no short-circuit:
// every check runs for every rule.
type Registry struct {
	checks []Check
}

// NewRegistry creates a registry with the given checks, executed in the
// order provided.
func NewRegistry(checks ...Check) *Registry {
	return &Registry{checks: checks}
}

// DefaultRegistry runs pattern, keyword, prohibited-term, required-term and
// custom checks, in that order.
func DefaultRegistry() *Registry {
	return NewRegistry(patternCheck{}, keywordCheck{}, prohibitedCheck{}, requiredCheck{}, customCheck{})
}

// Checks returns the registered checks (for inspection/testing).
func (r *Registry) Checks() []Check {
	return r.checks
}

// Evaluate runs every check for rule against text. It returns nil when the
// rule found nothing to report: status pass, no matches, and none of its
// required terms present.
func (r *Registry) Evaluate(text normalize.Text, rule *policy.CompiledRule, log *zap.Logger) *Result {
	if log == nil {
		log = zap.NewNop()
	}
	ctx := &RuleContext{
		Text:           text,
		Rule:           rule,
		Log:            log,
		Status:         StatusPass,
		Recommendation: rule.Suggestion,
	}

	for _, c := range r.checks {
		c.Apply(ctx)
	}

	if ctx.Status == StatusPass && len(ctx.Matches) == 0 &&
		len(normalize.Present(text, rule.Match.Required)) == 0 {
		return nil
	}

	var matches []string
	if len(ctx.Matches) > 0 {
		matches = append(matches, ctx.Matches...)
	}

	return &Result{
		RuleID:         rule.ID,
		Category:       rule.Category,
		Rule:           rule.Message,
		Status:         ctx.Status,
		Severity:       rule.Severity,
		Message:        rule.Message,
		Suggestion:     ctx.Recommendation,
		Symbol:         rule.Symbol,
		Matches:        matches,
		FailureReason:  ctx.FailureReason,
		Recommendation: ctx.Recommendation,
	}
}

var defaultRegistry = DefaultRegistry()

// EvaluateRule evaluates a single rule with the default check order.
func EvaluateRule(text normalize.Text, rule *policy.CompiledRule, log *zap.Logger) *Result {
	return defaultRegistry.Evaluate(text, rule, log)
}

type patternCheck struct{}

func (patternCheck) Name() string { return "pattern" }

func (patternCheck) Apply(ctx *RuleContext) {
	found := ctx.Rule.FindPattern(ctx.Text.Raw())
	if len(found) == 0 {
		return
	}
	ctx.Matches = append(ctx.Matches, found...)
	ctx.escalate(StatusFail)
	ctx.FailureReason = "Found prohibited patterns: " + strings.Join(found, ", ")
}

type keywordCheck struct{}

func (keywordCheck) Name() string { return "keywords" }

func (keywordCheck) Apply(ctx *RuleContext) {
	found := normalize.Present(ctx.Text, ctx.Rule.Match.Keywords)
	if len(found) == 0 {
		return
	}
	ctx.Matches = append(ctx.Matches, found...)
	if ctx.Status != StatusFail {
		ctx.escalate(StatusWarning)
		ctx.FailureReason = "Found keywords requiring attention: " + strings.Join(found, ", ")
	}
}

type prohibitedCheck struct{}

func (prohibitedCheck) Name() string { return "prohibited" }

func (prohibitedCheck) Apply(ctx *RuleContext) {
	found := normalize.Present(ctx.Text, ctx.Rule.Match.Prohibited)
	if len(found) == 0 {
		return
	}
	ctx.Matches = append(ctx.Matches, found...)
	ctx.escalate(StatusFail)
	ctx.FailureReason = "Found prohibited terms: " + strings.Join(found, ", ")
}

type requiredCheck struct{}

func (requiredCheck) Name() string { return "required" }

func (requiredCheck) Apply(ctx *RuleContext) {
	missing := normalize.Missing(ctx.Text, ctx.Rule.Match.Required)
	if len(missing) == 0 {
		return
	}
	list := strings.Join(missing, ", ")
	ctx.escalate(StatusFail)
	ctx.FailureReason = "Missing required terms: " + list
	ctx.Recommendation = ctx.Rule.Suggestion + " Missing: " + list
}

type customCheck struct{}

func (customCheck) Name() string { return "custom" }

func (customCheck) Apply(ctx *RuleContext) {
	check := ctx.Rule.CustomCheck()
	if check == nil || !runCustom(ctx, check) {
		return
	}
	ctx.escalate(StatusFail)
	if ctx.FailureReason == "" {
		ctx.FailureReason = "Failed custom compliance check"
	}
}

// runCustom isolates a panicking predicate: it is logged and treated as not
// having fired.
func runCustom(ctx *RuleContext, check policy.Predicate) (fired bool) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Log.Warn("custom check panicked",
				zap.String("rule_id", ctx.Rule.ID),
				zap.String("panic", fmt.Sprint(r)),
			)
			fired = false
		}
	}()
	return check(ctx.Text)
}
