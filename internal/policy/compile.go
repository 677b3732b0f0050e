package policy

import (
	"regexp"

	"github.com/neocompliance/neocompliance/internal/normalize"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// CompiledRule is a validated rule with its expressions compiled.
type CompiledRule struct {
	Rule

	pattern *regexp.Regexp
	exclude *regexp.Regexp
	custom  Predicate
}

// FindPattern returns every non-overlapping Pattern match in raw, minus the
// matches rejected by PatternExclude. It returns nil when no pattern is set.
func (r *CompiledRule) FindPattern(raw string) []string {
	if r.pattern == nil {
		return nil
	}
	var found []string
	for _, m := range r.pattern.FindAllString(raw, -1) {
		if r.exclude != nil && r.exclude.MatchString(m) {
			continue
		}
		found = append(found, m)
	}
	return found
}

// CustomCheck returns the rule's custom predicate, or nil.
func (r *CompiledRule) CustomCheck() Predicate { return r.custom }

// CompiledCatalog is an immutable, validated catalog indexed by category.
// It is safe for concurrent use.
type CompiledCatalog struct {
	version    string
	rules      []CompiledRule
	byCategory map[taxonomy.Category][]int
}

// Compile validates c and compiles every rule. The returned catalog does not
// share mutable state with c.
func Compile(c *Catalog) (*CompiledCatalog, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	cc := &CompiledCatalog{
		version:    c.Version,
		rules:      make([]CompiledRule, 0, len(c.Rules)),
		byCategory: make(map[taxonomy.Category][]int),
	}

	for _, r := range c.Rules {
		compiled := CompiledRule{Rule: r}
		m := r.Match

		// Validate has already compiled each expression once.
		if m.Pattern != "" {
			compiled.pattern, _ = compileRegex(m.Pattern, m.CaseSensitive)
		}
		if m.PatternExclude != "" {
			compiled.exclude, _ = compileRegex(m.PatternExclude, m.CaseSensitive)
		}
		switch {
		case m.Check != nil:
			compiled.custom = m.Check
		case m.Custom != nil:
			compiled.custom = m.Custom.predicate(m.CaseSensitive)
		}

		cc.byCategory[r.Category] = append(cc.byCategory[r.Category], len(cc.rules))
		cc.rules = append(cc.rules, compiled)
	}

	return cc, nil
}

// MustCompile is like Compile but panics on an invalid catalog. It is meant
// for the built-in catalog and tests.
func MustCompile(c *Catalog) *CompiledCatalog {
	cc, err := Compile(c)
	if err != nil {
		panic(err)
	}
	return cc
}

func (c *CompiledCatalog) Version() string { return c.version }

// Len returns the number of rules.
func (c *CompiledCatalog) Len() int { return len(c.rules) }

// Rules returns every rule in catalog order.
func (c *CompiledCatalog) Rules() []CompiledRule {
	out := make([]CompiledRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// RulesFor returns the rules of the given categories, grouped by category in
// the order the categories are listed and in catalog order within a
// category. Repeated categories are ignored.
func (c *CompiledCatalog) RulesFor(categories []taxonomy.Category) []CompiledRule {
	var out []CompiledRule
	seen := make(map[taxonomy.Category]bool, len(categories))
	for _, cat := range categories {
		if seen[cat] {
			continue
		}
		seen[cat] = true
		for _, i := range c.byCategory[cat] {
			out = append(out, c.rules[i])
		}
	}
	return out
}

// Count returns the number of rules registered for a category.
func (c *CompiledCatalog) Count(cat taxonomy.Category) int {
	return len(c.byCategory[cat])
}

func (cm *CustomMatch) predicate(caseSensitive bool) Predicate {
	anyOf := append([]string(nil), cm.AnyOf...)
	noneOf := append([]string(nil), cm.NoneOf...)
	var re, notRe *regexp.Regexp
	if cm.Regex != "" {
		re, _ = compileRegex(cm.Regex, caseSensitive)
	}
	if cm.NotRegex != "" {
		notRe, _ = compileRegex(cm.NotRegex, caseSensitive)
	}

	return func(text normalize.Text) bool {
		if len(anyOf) > 0 && len(normalize.Present(text, anyOf)) == 0 {
			return false
		}
		if re != nil && !re.MatchString(text.Raw()) {
			return false
		}
		if len(normalize.Present(text, noneOf)) > 0 {
			return false
		}
		if notRe != nil && notRe.MatchString(text.Raw()) {
			return false
		}
		return true
	}
}
