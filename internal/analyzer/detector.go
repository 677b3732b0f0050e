package analyzer

import (
	"math"
	"sort"

	"github.com/neocompliance/neocompliance/internal/normalize"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// Profile is the detection signature of one category: whole-word keywords
// and a weight reflecting how specific they are to the domain.
type Profile struct {
	Category taxonomy.Category
	Keywords []string
	Weight   float64
}

// DefaultProfiles returns the built-in detection profiles in canonical
// category order.
func DefaultProfiles() []Profile {
	return []Profile{
		{taxonomy.ASCI, []string{"advertisement", "marketing", "promotion", "claim", "offer", "best", "guaranteed", "superior", "leading", "award-winning"}, 1.0},
		{taxonomy.WCAG, []string{"website", "digital", "accessibility", "web", "online", "mobile app", "responsive", "screen reader", "alt text", "contrast"}, 1.2},
		{taxonomy.IRDAI, []string{"insurance", "policy", "coverage", "premium", "life insurance", "health insurance", "claim", "benefit", "assured", "protection"}, 1.5},
		{taxonomy.Financial, []string{"loan", "credit", "banking", "finance", "interest", "investment", "apr", "EMI", "mortgage", "financial"}, 1.3},
		{taxonomy.SEBI, []string{"mutual fund", "securities", "trading", "stock", "portfolio", "CAGR", "returns", "investment", "SIP", "NAV"}, 1.4},
		{taxonomy.Pharma, []string{"medicine", "drug", "pharmaceutical", "treatment", "therapy", "clinical", "therapeutic", "medical", "health", "cure"}, 1.4},
		{taxonomy.Food, []string{"food", "nutrition", "supplement", "dietary", "beverage", "FSSAI", "healthy", "vitamin", "organic", "natural"}, 1.2},
		{taxonomy.Telecom, []string{"mobile", "telecom", "network", "data", "internet", "mbps", "plan", "recharge", "unlimited", "coverage"}, 1.3},
		{taxonomy.Automotive, []string{"car", "vehicle", "automobile", "bike", "mileage", "fuel", "ARAI", "safety", "performance", "engine"}, 1.2},
		{taxonomy.RealEstate, []string{"property", "real estate", "apartment", "house", "construction", "RERA", "possession", "project", "development", "builder"}, 1.3},
		{taxonomy.AICompliance, []string{
			"AI", "artificial intelligence", "machine learning", "algorithm", "automated", "neural", "deep learning", "chatbot",
			"AI-generated", "AI-powered", "smart", "intelligent", "recommendation engine", "personalized", "data analytics", "predictive",
		}, 1.6},
	}
}

// Thresholds tune detection. The defaults are the calibrated values the
// catalog was written against.
type Thresholds struct {
	// Detect is the confidence a category must exceed to be analyzed.
	Detect float64 `koanf:"threshold"`
	// Floor is the confidence a category must exceed to be ranked.
	Floor float64 `koanf:"floor"`
	// DefaultConfidence is the minimum confidence given to the fallback
	// category when nothing is detected.
	DefaultConfidence float64 `koanf:"default_confidence"`
	// DefaultCategory is applied when nothing is detected.
	DefaultCategory taxonomy.Category `koanf:"default_category"`
	// Alternatives is the confidence an alternative classification must exceed.
	Alternatives float64 `koanf:"alternatives_min"`
}

// DefaultThresholds returns the calibrated detection thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Detect:            15,
		Floor:             5,
		DefaultConfidence: 25,
		DefaultCategory:   taxonomy.DefaultCategory,
		Alternatives:      10,
	}
}

// Detector scores text against category profiles.
type Detector struct {
	profiles   []Profile
	thresholds Thresholds
}

// NewDetector creates a detector. Profiles are scored in the order given,
// which also breaks ties between equal confidences.
func NewDetector(profiles []Profile, th Thresholds) *Detector {
	if !th.DefaultCategory.Valid() {
		th.DefaultCategory = taxonomy.DefaultCategory
	}
	return &Detector{profiles: profiles, thresholds: th}
}

// Thresholds returns the detector's thresholds.
func (d *Detector) Thresholds() Thresholds { return d.thresholds }

// Detect scores every profile and selects the categories to analyze. It
// never fails and always detects at least one category.
func (d *Detector) Detect(text normalize.Text) Detection {
	// Documents under 100 words are normalized as if they had exactly 100.
	divisor := math.Max(float64(text.WordCount())/100, 1)

	det := Detection{Confidence: make(map[taxonomy.Category]float64, len(d.profiles))}
	for _, p := range d.profiles {
		var score float64
		for _, kw := range p.Keywords {
			score += float64(text.CountWord(kw)) * p.Weight
		}
		det.Confidence[p.Category] = math.Min(score/divisor*100, 100)
	}

	for _, p := range d.profiles {
		if conf := det.Confidence[p.Category]; conf > d.thresholds.Floor {
			det.Ranked = append(det.Ranked, Scored{Category: p.Category, Confidence: conf})
		}
	}
	sort.SliceStable(det.Ranked, func(i, j int) bool {
		return det.Ranked[i].Confidence > det.Ranked[j].Confidence
	})

	for _, s := range det.Ranked {
		if s.Confidence > d.thresholds.Detect {
			det.Detected = append(det.Detected, s.Category)
		}
	}

	if len(det.Detected) == 0 {
		def := d.thresholds.DefaultCategory
		det.Detected = []taxonomy.Category{def}
		det.Confidence[def] = math.Max(det.Confidence[def], d.thresholds.DefaultConfidence)
		det.Primary = def
		det.Fallback = true
		return det
	}

	det.Primary = det.Ranked[0].Category
	return det
}

// Classify picks the primary category and up to three alternatives.
func (d *Detector) Classify(text normalize.Text) Classification {
	det := d.Detect(text)

	var alts []Scored
	for _, p := range d.profiles {
		conf := det.Confidence[p.Category]
		if p.Category != det.Primary && conf > d.thresholds.Alternatives {
			alts = append(alts, Scored{Category: p.Category, Confidence: conf})
		}
	}
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].Confidence > alts[j].Confidence
	})
	if len(alts) > 3 {
		alts = alts[:3]
	}

	conf := det.Confidence[det.Primary]
	return Classification{
		Primary:      det.Primary,
		Confidence:   conf,
		Alternatives: alts,
		Reasoning:    taxonomy.Reasoning(det.Primary, conf),
	}
}
