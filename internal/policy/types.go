package policy

import (
	"github.com/neocompliance/neocompliance/internal/normalize"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// Catalog is the declarative rule table. It is plain data: nothing is
// compiled or checked until Compile.
type Catalog struct {
	Version string `yaml:"version" json:"version"`
	Rules   []Rule `yaml:"rules" json:"rules" validate:"dive"`
}

// Rule is a single checkable requirement belonging to one category.
type Rule struct {
	ID         string            `yaml:"id" json:"id" validate:"required"`
	Category   taxonomy.Category `yaml:"category" json:"category" validate:"required,category"`
	Severity   taxonomy.Severity `yaml:"severity" json:"severity" validate:"required,oneof=low medium high critical"`
	Message    string            `yaml:"message" json:"message" validate:"required"`
	Suggestion string            `yaml:"suggestion" json:"suggestion" validate:"required"`
	Symbol     string            `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Match      Match             `yaml:"match" json:"match"`
}

// Match holds the checks a rule runs. Any subset may be configured and all
// configured checks run on every evaluation.
type Match struct {
	// Pattern is a regular expression; every match is a violation.
	// Matching is case-insensitive unless CaseSensitive is set.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	// PatternExclude drops Pattern matches that themselves match this
	// expression. RE2 has no lookahead, so "an <img> tag without alt=" is
	// written as pattern "<img[^>]*" with exclude "alt=".
	PatternExclude string `yaml:"pattern_exclude,omitempty" json:"pattern_exclude,omitempty"`
	CaseSensitive  bool   `yaml:"case_sensitive,omitempty" json:"case_sensitive,omitempty"`

	Keywords   []string `yaml:"keywords,omitempty" json:"keywords,omitempty" validate:"dive,required"`
	Prohibited []string `yaml:"prohibited,omitempty" json:"prohibited,omitempty" validate:"dive,required"`
	Required   []string `yaml:"required,omitempty" json:"required,omitempty" validate:"dive,required"`

	Custom *CustomMatch `yaml:"custom,omitempty" json:"custom,omitempty"`

	// Check is a programmatic custom predicate for rules defined in Go.
	// It is mutually exclusive with Custom.
	Check Predicate `yaml:"-" json:"-"`
}

// CustomMatch is a declarative custom predicate. It fires when the positive
// conditions hold and none of the negative ones do:
//
//	(any_of is empty OR some any_of term present) AND
//	(regex is empty OR regex matches) AND
//	no none_of term present AND
//	(not_regex is empty OR not_regex does not match)
//
// At least one of any_of or regex must be set.
type CustomMatch struct {
	AnyOf    []string `yaml:"any_of,omitempty" json:"any_of,omitempty" validate:"dive,required"`
	NoneOf   []string `yaml:"none_of,omitempty" json:"none_of,omitempty" validate:"dive,required"`
	Regex    string   `yaml:"regex,omitempty" json:"regex,omitempty"`
	NotRegex string   `yaml:"not_regex,omitempty" json:"not_regex,omitempty"`
}

// Predicate reports whether a rule is violated by text.
type Predicate func(text normalize.Text) bool

// HasChecks reports whether at least one check is configured.
func (m Match) HasChecks() bool {
	return m.Pattern != "" || len(m.Keywords) > 0 || len(m.Prohibited) > 0 ||
		len(m.Required) > 0 || m.Custom != nil || m.Check != nil
}

// HasCustom reports whether a custom predicate of either form is set.
func (m Match) HasCustom() bool {
	return m.Custom != nil || m.Check != nil
}

// Kinds lists the configured check kinds in evaluation order.
func (m Match) Kinds() []string {
	var kinds []string
	if m.Pattern != "" {
		kinds = append(kinds, "pattern")
	}
	if len(m.Keywords) > 0 {
		kinds = append(kinds, "keywords")
	}
	if len(m.Prohibited) > 0 {
		kinds = append(kinds, "prohibited")
	}
	if len(m.Required) > 0 {
		kinds = append(kinds, "required")
	}
	if m.HasCustom() {
		kinds = append(kinds, "custom")
	}
	return kinds
}

// ByCategory groups rule references for the guideline reference document.
func (c *Catalog) ByCategory() map[taxonomy.Category][]taxonomy.RuleRef {
	out := make(map[taxonomy.Category][]taxonomy.RuleRef)
	for _, r := range c.Rules {
		out[r.Category] = append(out[r.Category], taxonomy.RuleRef{
			ID:       r.ID,
			Severity: r.Severity,
			Message:  r.Message,
		})
	}
	return out
}

// Find returns the rule with the given ID.
func (c *Catalog) Find(id string) (Rule, bool) {
	for _, r := range c.Rules {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
