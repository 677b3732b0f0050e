package testdata

// AllTestCases returns every scenario across all categories.
// Used by the accuracy metrics test to compute aggregate TP/FP/FN/TN counts.
func AllTestCases() []TestCase {
	var all []TestCase
	for _, group := range [][]TestCase{
		AdvertisingCases, AccessibilityCases,
		InsuranceCases, LendingCases, SecuritiesCases,
		HealthCases, ConsumerCases, AICases,
	} {
		all = append(all, group...)
	}
	return all
}
