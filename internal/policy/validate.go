package policy

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid rule catalog: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid rule catalog (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return taxonomy.Category(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks that every rule is well formed: required fields are set,
// the category and severity are known, IDs are unique, at least one check is
// configured and every regular expression compiles. All problems are
// reported together.
func Validate(c *Catalog) error {
	if c == nil {
		return &ValidationError{Problems: []string{"catalog is nil"}}
	}

	var problems []string
	seen := make(map[string]int, len(c.Rules))

	for i, r := range c.Rules {
		label := r.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		report := func(format string, args ...any) {
			problems = append(problems, fmt.Sprintf("rule %s: ", label)+fmt.Sprintf(format, args...))
		}

		if err := validate.Struct(r); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				report("%v", err)
			}
			for _, fe := range verrs {
				report("%s %s", fieldName(fe), describeTag(fe))
			}
		}

		if r.ID != "" {
			if first, dup := seen[r.ID]; dup {
				report("duplicate id (first defined at #%d)", first)
			} else {
				seen[r.ID] = i
			}
		}

		m := r.Match
		if !m.HasChecks() {
			report("no checks configured")
		}
		if m.Custom != nil && m.Check != nil {
			report("custom and check are mutually exclusive")
		}
		if m.PatternExclude != "" && m.Pattern == "" {
			report("pattern_exclude requires pattern")
		}
		if m.Custom != nil && len(m.Custom.AnyOf) == 0 && m.Custom.Regex == "" {
			report("custom needs any_of or regex")
		}

		for _, f := range regexFields(m) {
			if _, err := compileRegex(f.expr, m.CaseSensitive); err != nil {
				report("%s does not compile: %v", f.name, err)
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

type regexField struct {
	name, expr string
}

func regexFields(m Match) []regexField {
	var fields []regexField
	if m.Pattern != "" {
		fields = append(fields, regexField{"pattern", m.Pattern})
	}
	if m.PatternExclude != "" {
		fields = append(fields, regexField{"pattern_exclude", m.PatternExclude})
	}
	if m.Custom != nil {
		if m.Custom.Regex != "" {
			fields = append(fields, regexField{"custom.regex", m.Custom.Regex})
		}
		if m.Custom.NotRegex != "" {
			fields = append(fields, regexField{"custom.not_regex", m.Custom.NotRegex})
		}
	}
	return fields
}

func compileRegex(expr string, caseSensitive bool) (*regexp.Regexp, error) {
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}

// fieldName strips the leading "Rule." from the validator namespace.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "category":
		return fmt.Sprintf("%q is not a known category", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
