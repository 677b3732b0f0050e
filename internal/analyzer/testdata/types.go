package testdata

import "github.com/neocompliance/neocompliance/internal/taxonomy"

// TestCase is a single document scenario for rule accuracy validation.
//
// Naming convention for IDs:
//
//	TP-<CATEGORY>-<NNN>  True Positive: a non-compliant document is flagged
//	TN-<CATEGORY>-<NNN>  True Negative: a compliant document is not failed
//	FP-<CATEGORY>-<NNN>  False Positive: compliant copy that is still failed
//	FN-<CATEGORY>-<NNN>  False Negative: non-compliant copy that slips through
//
// Example: TP-SEBI-001, TN-IRDAI-001
type TestCase struct {
	// ID is a unique identifier for this test case (e.g., "TP-SEBI-001").
	ID string

	// Text is the document content handed to the engine.
	Text string

	// RuleID is the rule whose verdict this case checks.
	RuleID string

	// ExpectedStatus is the rule's expected verdict: "pass", "warning",
	// "fail", or "absent" when the rule must produce no result at all.
	ExpectedStatus string

	// ExpectedPrimary, when set, is the category detection must rank first.
	ExpectedPrimary taxonomy.Category

	// Classification indicates what this test validates: "TP", "TN", "FP"
	// or "FN". FP and FN cases document known limitations and are skipped.
	Classification string

	// Description explains WHY the expected verdict is correct.
	Description string

	// Tags for filtering tests. Common tags:
	//   "canonical" the most basic case for a rule
	//   "required"  exercises required-term gaps
	//   "prohibited" exercises prohibited-term matches
	//   "pattern"   exercises a regular expression
	//   "custom"    exercises a custom predicate
	//   "fallback"  relies on the default category
	//   "known-gap" documents a detection limitation
	Tags []string
}

// AllClassifications is the set of valid Classification values.
var AllClassifications = []string{"TP", "TN", "FP", "FN"}

// ValidStatuses is the set of valid ExpectedStatus values.
var ValidStatuses = []string{"pass", "warning", "fail", "absent"}
