package analyzer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/neocompliance/neocompliance/internal/normalize"
	"github.com/neocompliance/neocompliance/internal/policy"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// Engine runs detection, rule evaluation and aggregation over documents.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	catalog  *policy.CompiledCatalog
	detector *Detector
	registry *Registry
	combiner *Combiner
	matcher  normalize.Matcher
	log      *zap.Logger

	profiles   []Profile
	thresholds Thresholds
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMatcher replaces the text matcher used by detection and every check.
func WithMatcher(m normalize.Matcher) Option {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

// WithThresholds overrides the detection thresholds.
func WithThresholds(th Thresholds) Option {
	return func(e *Engine) { e.thresholds = th }
}

// WithProfiles replaces the detection profiles.
func WithProfiles(p []Profile) Option {
	return func(e *Engine) { e.profiles = p }
}

// WithRegistry replaces the rule check pipeline.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// NewEngine compiles catalog and wires the detector, check registry and
// combiner. A malformed catalog or profile set is reported here, never
// during analysis.
func NewEngine(catalog *policy.Catalog, opts ...Option) (*Engine, error) {
	compiled, err := policy.Compile(catalog)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog:    compiled,
		registry:   defaultRegistry,
		combiner:   NewCombiner(),
		matcher:    normalize.NewCaseFold(),
		log:        zap.NewNop(),
		profiles:   DefaultProfiles(),
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := validateProfiles(e.profiles); err != nil {
		return nil, err
	}
	e.detector = NewDetector(e.profiles, e.thresholds)

	for _, cat := range taxonomy.All() {
		if compiled.Count(cat) > 0 && !hasProfile(e.profiles, cat) {
			e.log.Warn("category has rules but no detection profile", zap.String("category", string(cat)))
		}
	}

	return e, nil
}

// Catalog returns the compiled rule catalog.
func (e *Engine) Catalog() *policy.CompiledCatalog { return e.catalog }

// Thresholds returns the detection thresholds in effect.
func (e *Engine) Thresholds() Thresholds { return e.detector.Thresholds() }

// Detect scores text against every category.
func (e *Engine) Detect(text string) Detection {
	det := e.detector.Detect(e.matcher.Prepare(text))
	e.logDetection(text, det)
	return det
}

// Classify assigns text a primary category with alternatives.
func (e *Engine) Classify(text string) Classification {
	return e.detector.Classify(e.matcher.Prepare(text))
}

// Analyze auto-detects the applicable categories and evaluates their rules.
func (e *Engine) Analyze(text string) *Summary {
	prepared := e.matcher.Prepare(text)
	det := e.detector.Detect(prepared)
	e.logDetection(text, det)

	sum := e.combiner.Combine(e.evaluate(prepared, det.Detected), det)
	return &sum
}

// AnalyzeCategories evaluates the rules of the given categories instead of
// the detected ones. Detection confidences are still reported; the first
// category is treated as primary.
func (e *Engine) AnalyzeCategories(text string, categories []taxonomy.Category) (*Summary, error) {
	if len(categories) == 0 {
		return e.Analyze(text), nil
	}
	for _, c := range categories {
		if !c.Valid() {
			return nil, fmt.Errorf("unknown category %q", c)
		}
	}

	prepared := e.matcher.Prepare(text)
	det := e.detector.Detect(prepared)
	det.Detected = normalizeCategories(categories)
	det.Primary = det.Detected[0]
	det.Fallback = false

	sum := e.combiner.Combine(e.evaluate(prepared, det.Detected), det)
	sum.AutoDetected = false
	for i := range sum.CategoryResults {
		sum.CategoryResults[i].AutoDetected = false
	}
	for cat, b := range sum.CategoryBreakdown {
		b.AutoDetected = false
		sum.CategoryBreakdown[cat] = b
	}
	return &sum, nil
}

func (e *Engine) evaluate(text normalize.Text, categories []taxonomy.Category) []Result {
	rules := e.catalog.RulesFor(categories)
	results := make([]Result, 0, len(rules))
	for i := range rules {
		if r := e.registry.Evaluate(text, &rules[i], e.log); r != nil {
			results = append(results, *r)
		}
	}
	return results
}

func (e *Engine) logDetection(text string, det Detection) {
	if ce := e.log.Check(zap.DebugLevel, "auto-detection results"); ce != nil {
		ce.Write(
			zap.String("excerpt", runePrefix(text, 100)),
			zap.Any("confidence", det.Confidence),
			zap.Any("detected", det.Detected),
			zap.String("primary", string(det.Primary)),
			zap.Bool("fallback", det.Fallback),
		)
	}
}

func validateProfiles(profiles []Profile) error {
	if len(profiles) == 0 {
		return fmt.Errorf("no detection profiles configured")
	}
	seen := make(map[taxonomy.Category]bool, len(profiles))
	for _, p := range profiles {
		switch {
		case !p.Category.Valid():
			return fmt.Errorf("detection profile for unknown category %q", p.Category)
		case seen[p.Category]:
			return fmt.Errorf("duplicate detection profile for %s", p.Category)
		case p.Weight <= 0:
			return fmt.Errorf("detection profile %s: weight must be positive", p.Category)
		case len(p.Keywords) == 0:
			return fmt.Errorf("detection profile %s: no keywords", p.Category)
		}
		seen[p.Category] = true
	}
	return nil
}

func hasProfile(profiles []Profile, cat taxonomy.Category) bool {
	for _, p := range profiles {
		if p.Category == cat {
			return true
		}
	}
	return false
}

func normalizeCategories(in []taxonomy.Category) []taxonomy.Category {
	seen := make(map[taxonomy.Category]bool, len(in))
	out := make([]taxonomy.Category, 0, len(in))
	for _, c := range in {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
