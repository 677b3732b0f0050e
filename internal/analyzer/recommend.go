package analyzer

import (
	"fmt"
	"strings"

	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// adviceDedupPrefix is how much of a static advice line must already appear
// in a collected recommendation for the advice to be skipped.
const adviceDedupPrefix = 20

// categoryRecommendations lists the recommendations of failed results, then
// the category's static advice, capped at limit.
func categoryRecommendations(cat taxonomy.Category, results []Result, limit int) []string {
	recs := []string{}
	seen := make(map[string]bool)
	for _, r := range results {
		if r.Status != StatusFail || r.Recommendation == "" || seen[r.Recommendation] {
			continue
		}
		seen[r.Recommendation] = true
		recs = append(recs, r.Recommendation)
	}

	for _, advice := range taxonomy.Advice(cat) {
		prefix := runePrefix(advice, adviceDedupPrefix)
		covered := false
		for _, rec := range recs {
			if strings.Contains(rec, prefix) {
				covered = true
				break
			}
		}
		if !covered {
			recs = append(recs, advice)
		}
	}

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// priorityActions lists critical failures, then high-severity failures.
func priorityActions(results []Result, limit int) []string {
	actions := []string{}
	for _, r := range results {
		if r.Status == StatusFail && r.Severity == taxonomy.SeverityCritical {
			actions = append(actions, "🚨 CRITICAL: "+r.Message)
		}
	}
	for _, r := range results {
		if r.Status == StatusFail && r.Severity == taxonomy.SeverityHigh {
			actions = append(actions, "⚡ HIGH: "+r.Message)
		}
	}
	if limit > 0 && len(actions) > limit {
		actions = actions[:limit]
	}
	return actions
}

var standingRecommendations = []string{
	"Review all failed checks and implement suggested improvements",
	"Consider legal review for critical compliance areas",
	"Implement regular compliance audits for ongoing monitoring",
	"Train content creators on compliance best practices",
}

func overallRecommendations(critical, high int) []string {
	var recs []string
	if critical > 0 {
		recs = append(recs, fmt.Sprintf("Address %d critical compliance issues immediately", critical))
	}
	if high > 0 {
		recs = append(recs, fmt.Sprintf("Review and fix %d high-priority issues", high))
	}
	return append(recs, standingRecommendations...)
}

func runePrefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
