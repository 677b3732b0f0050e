package analyzer

import (
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

// Status is the verdict for one rule against one document.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
	// StatusInfo is part of the result vocabulary for informational rules.
	// The built-in checks never produce it.
	StatusInfo    Status = "info"
)

// rank orders statuses for escalation: pass < warning < fail.
func (s Status) rank() int {
	switch s {
	case StatusFail:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// OverallStatus summarizes a category.
type OverallStatus string

const (
	Compliant    OverallStatus = "compliant"
	Partial      OverallStatus = "partial"
	NonCompliant OverallStatus = "non-compliant"
)

// Result is the outcome of evaluating one rule against one document.
type Result struct {
	RuleID         string            `json:"ruleId" yaml:"rule_id"`
	Category       taxonomy.Category `json:"category" yaml:"category"`
	Rule           string            `json:"rule" yaml:"rule"`
	Status         Status            `json:"status" yaml:"status"`
	Severity       taxonomy.Severity `json:"severity" yaml:"severity"`
	Message        string            `json:"message" yaml:"message"`
	Suggestion     string            `json:"suggestion" yaml:"suggestion"`
	Symbol         string            `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Matches        []string          `json:"matches,omitempty" yaml:"matches,omitempty"`
	FailureReason  string            `json:"failureReason,omitempty" yaml:"failure_reason,omitempty"`
	Recommendation string            `json:"recommendation" yaml:"recommendation"`
}

// CategoryResult aggregates the results of one detected category.
type CategoryResult struct {
	Category            taxonomy.Category `json:"category" yaml:"category"`
	CategoryName        string            `json:"categoryName" yaml:"category_name"`
	Icon                string            `json:"icon" yaml:"icon"`
	Color               string            `json:"color" yaml:"color"`
	OverallStatus       OverallStatus     `json:"overallStatus" yaml:"overall_status"`
	ComplianceScore     int               `json:"complianceScore" yaml:"compliance_score"`
	TotalRules          int               `json:"totalRules" yaml:"total_rules"`
	PassedRules         int               `json:"passedRules" yaml:"passed_rules"`
	FailedRules         int               `json:"failedRules" yaml:"failed_rules"`
	WarningRules        int               `json:"warningRules" yaml:"warning_rules"`
	Results             []Result          `json:"results" yaml:"results"`
	Recommendations     []string          `json:"recommendations" yaml:"recommendations"`
	CriticalIssues      []Result          `json:"criticalIssues" yaml:"critical_issues"`
	PriorityActions     []string          `json:"priorityActions" yaml:"priority_actions"`
	AutoDetected        bool              `json:"autoDetected" yaml:"auto_detected"`
	DetectionConfidence float64           `json:"detectionConfidence" yaml:"detection_confidence"`
}

// Breakdown is the compact per-category tally exposed on Summary.
type Breakdown struct {
	Total           int     `json:"total" yaml:"total"`
	Passed          int     `json:"passed" yaml:"passed"`
	Failed          int     `json:"failed" yaml:"failed"`
	Warnings        int     `json:"warnings" yaml:"warnings"`
	ComplianceScore int     `json:"complianceScore" yaml:"compliance_score"`
	AutoDetected    bool    `json:"autoDetected" yaml:"auto_detected"`
	Confidence      float64 `json:"confidence" yaml:"confidence"`
}

// Summary is the full analysis of one document.
type Summary struct {
	TotalRules             int                             `json:"totalRules" yaml:"total_rules"`
	PassedRules            int                             `json:"passedRules" yaml:"passed_rules"`
	FailedRules            int                             `json:"failedRules" yaml:"failed_rules"`
	WarningRules           int                             `json:"warningRules" yaml:"warning_rules"`
	ComplianceScore        int                             `json:"complianceScore" yaml:"compliance_score"`
	PrimaryCategory        taxonomy.Category               `json:"primaryCategory" yaml:"primary_category"`
	CategoryResults        []CategoryResult                `json:"categoryResults" yaml:"category_results"`
	CriticalIssues         []Result                        `json:"criticalIssues" yaml:"critical_issues"`
	HighPriorityIssues     []Result                        `json:"highPriorityIssues" yaml:"high_priority_issues"`
	OverallRecommendations []string                        `json:"overallRecommendations" yaml:"overall_recommendations"`
	CategoryBreakdown      map[taxonomy.Category]Breakdown `json:"categoryBreakdown" yaml:"category_breakdown"`
	AutoDetected           bool                            `json:"autoDetected" yaml:"auto_detected"`
	DetectedStandards      []taxonomy.Category             `json:"detectedStandards" yaml:"detected_standards"`
	DetectionConfidence    map[taxonomy.Category]float64   `json:"detectionConfidence" yaml:"detection_confidence"`
}

// Scored pairs a category with its detection confidence.
type Scored struct {
	Category   taxonomy.Category `json:"category" yaml:"category"`
	Confidence float64           `json:"confidence" yaml:"confidence"`
}

// Detection is the outcome of category auto-detection.
type Detection struct {
	// Confidence holds a 0-100 score for every category.
	Confidence map[taxonomy.Category]float64 `json:"confidence" yaml:"confidence"`
	// Ranked lists the categories above the reporting floor, best first.
	Ranked []Scored `json:"ranked" yaml:"ranked"`
	// Detected lists the categories whose rules apply, best first. Never empty.
	Detected []taxonomy.Category `json:"detectedStandards" yaml:"detected_standards"`
	Primary  taxonomy.Category   `json:"primaryCategory" yaml:"primary_category"`
	// Fallback is set when nothing cleared the threshold and the default
	// category was applied.
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// Classification picks a single category for a document.
type Classification struct {
	Primary      taxonomy.Category `json:"primaryCategory" yaml:"primary_category"`
	Confidence   float64           `json:"confidence" yaml:"confidence"`
	Alternatives []Scored          `json:"alternativeCategories" yaml:"alternative_categories"`
	Reasoning    string            `json:"reasoning" yaml:"reasoning"`
}
