package analyzer

import (
	"math"
	"sort"

	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// Combiner folds rule results into per-category and overall statistics.
type Combiner struct {
	// MaxRecommendations caps each category's recommendation list.
	MaxRecommendations int
	// MaxPriorityActions caps each category's priority action list.
	MaxPriorityActions int
}

// NewCombiner creates a Combiner with the standard caps.
func NewCombiner() *Combiner {
	return &Combiner{MaxRecommendations: 6, MaxPriorityActions: 4}
}

// Combine builds the summary for results produced under det. Categories are
// visited in detection order; a detected category with no results is left
// out. The primary category is listed first, the rest by descending
// detection confidence.
func (c *Combiner) Combine(results []Result, det Detection) Summary {
	byCategory := make(map[taxonomy.Category][]Result)
	for _, r := range results {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	sum := Summary{
		PrimaryCategory:     det.Primary,
		CategoryResults:     []CategoryResult{},
		CriticalIssues:      []Result{},
		HighPriorityIssues:  []Result{},
		CategoryBreakdown:   make(map[taxonomy.Category]Breakdown),
		AutoDetected:        true,
		DetectedStandards:   append([]taxonomy.Category(nil), det.Detected...),
		DetectionConfidence: make(map[taxonomy.Category]float64, len(det.Confidence)),
	}
	for cat, conf := range det.Confidence {
		sum.DetectionConfidence[cat] = conf
	}

	for _, cat := range det.Detected {
		group := byCategory[cat]
		if len(group) == 0 {
			continue
		}
		cr := c.categoryResult(cat, group, det.Confidence[cat])
		sum.CategoryResults = append(sum.CategoryResults, cr)
		sum.CategoryBreakdown[cat] = Breakdown{
			Total:           cr.TotalRules,
			Passed:          cr.PassedRules,
			Failed:          cr.FailedRules,
			Warnings:        cr.WarningRules,
			ComplianceScore: cr.ComplianceScore,
			AutoDetected:    true,
			Confidence:      cr.DetectionConfidence,
		}
	}

	sort.SliceStable(sum.CategoryResults, func(i, j int) bool {
		a, b := sum.CategoryResults[i], sum.CategoryResults[j]
		if a.Category == det.Primary || b.Category == det.Primary {
			return a.Category == det.Primary && b.Category != det.Primary
		}
		return a.DetectionConfidence > b.DetectionConfidence
	})

	for _, cr := range sum.CategoryResults {
		sum.TotalRules += cr.TotalRules
		sum.PassedRules += cr.PassedRules
		sum.FailedRules += cr.FailedRules
		sum.WarningRules += cr.WarningRules
	}
	// Issues keep evaluation order rather than display order.
	for _, r := range results {
		if r.Status != StatusFail {
			continue
		}
		if _, reported := sum.CategoryBreakdown[r.Category]; !reported {
			continue
		}
		switch r.Severity {
		case taxonomy.SeverityCritical:
			sum.CriticalIssues = append(sum.CriticalIssues, r)
		case taxonomy.SeverityHigh:
			sum.HighPriorityIssues = append(sum.HighPriorityIssues, r)
		}
	}
	sum.ComplianceScore = score(sum.PassedRules, sum.TotalRules)
	sum.OverallRecommendations = overallRecommendations(len(sum.CriticalIssues), len(sum.HighPriorityIssues))

	return sum
}

func (c *Combiner) categoryResult(cat taxonomy.Category, results []Result, confidence float64) CategoryResult {
	info, ok := taxonomy.Info(cat)
	if !ok {
		info = taxonomy.GuidelineInfo{ID: cat, Name: string(cat), Icon: taxonomy.FallbackIcon, Color: taxonomy.FallbackColor}
	}

	cr := CategoryResult{
		Category:            cat,
		CategoryName:        info.Name,
		Icon:                info.Icon,
		Color:               info.Color,
		TotalRules:          len(results),
		Results:             results,
		CriticalIssues:      []Result{},
		AutoDetected:        true,
		DetectionConfidence: confidence,
	}

	for _, r := range results {
		switch r.Status {
		case StatusPass:
			cr.PassedRules++
		case StatusFail:
			cr.FailedRules++
			if r.Severity == taxonomy.SeverityCritical {
				cr.CriticalIssues = append(cr.CriticalIssues, r)
			}
		case StatusWarning:
			cr.WarningRules++
		}
	}

	cr.ComplianceScore = score(cr.PassedRules, cr.TotalRules)
	switch {
	case cr.FailedRules > 0:
		cr.OverallStatus = NonCompliant
	case cr.WarningRules > 0:
		cr.OverallStatus = Partial
	default:
		cr.OverallStatus = Compliant
	}

	cr.Recommendations = categoryRecommendations(cat, results, c.MaxRecommendations)
	cr.PriorityActions = priorityActions(results, c.MaxPriorityActions)
	return cr
}

// score is round(passed/total*100); an empty set scores 100.
func score(passed, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}
