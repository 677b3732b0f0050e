package taxonomy

import (
	"fmt"
	"strings"
)

// Category identifies one regulatory or standards domain. The set is closed:
// every value is declared below and listed by All in detection order.
type Category string

const (
	ASCI         Category = "ASCI"
	WCAG         Category = "WCAG"
	IRDAI        Category = "IRDAI"
	Financial    Category = "Financial"
	SEBI         Category = "SEBI"
	Pharma       Category = "Pharma"
	Food         Category = "Food"
	Telecom      Category = "Telecom"
	Automotive   Category = "Automotive"
	RealEstate   Category = "RealEstate"
	AICompliance Category = "AICompliance"
)

// DefaultCategory is the general-advertising fallback used when detection
// finds nothing more specific.
const DefaultCategory = ASCI

var allCategories = []Category{
	ASCI, WCAG, IRDAI, Financial, SEBI, Pharma,
	Food, Telecom, Automotive, RealEstate, AICompliance,
}

// All returns every category in canonical order. Ties in detection
// confidence are broken by this order.
func All() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Index returns the canonical position of c, or -1 for unknown values.
func (c Category) Index() int {
	for i, known := range allCategories {
		if known == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return c.Index() >= 0 }

func (c Category) String() string { return string(c) }

// ParseCategory resolves a category identifier case-insensitively. Common
// aliases ("real-estate", "ai", "insurance") are accepted for CLI use.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range allCategories {
		if strings.ToLower(string(c)) == key {
			return c, nil
		}
	}
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown guideline category %q", s)
}

var categoryAliases = map[string]Category{
	"advertising":    ASCI,
	"accessibility":  WCAG,
	"insurance":      IRDAI,
	"finance":        Financial,
	"securities":     SEBI,
	"mutual-funds":   SEBI,
	"pharmaceutical": Pharma,
	"nutrition":      Food,
	"auto":           Automotive,
	"real-estate":    RealEstate,
	"ai":             AICompliance,
	"ai-ethics":      AICompliance,
}

// UnmarshalText lets YAML and JSON decoders reject unknown categories.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// Severity ranks how serious a rule violation is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities from 1 (low) to 4 (critical). Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

func (s Severity) Valid() bool { return s.Rank() > 0 }

// GuidelineInfo is the static display metadata for one category.
type GuidelineInfo struct {
	ID                Category `yaml:"id" json:"id"`
	Name              string   `yaml:"name" json:"name"`
	Description       string   `yaml:"description" json:"description"`
	ApplicableSectors []string `yaml:"applicable_sectors" json:"applicableSectors"`
	KeyRequirements   []string `yaml:"key_requirements" json:"keyRequirements"`
	Icon              string   `yaml:"icon" json:"icon"`
	Color             string   `yaml:"color" json:"color"`
}
