package testdata

import "github.com/neocompliance/neocompliance/internal/taxonomy"

// ===========================================================================
// Insurance, lending and securities
// ===========================================================================

// InsuranceCases covers IRDAI rules.
var InsuranceCases = []TestCase{
	{
		ID:              "TP-IRDAI-001",
		Text:            "Buy life insurance today. Our insurance policy gives full coverage for a low premium.",
		RuleID:          "irdai-mandatory-disclosure",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.IRDAI,
		Classification:  "TP",
		Description: `Insurance copy without the mandated disclosure sentence.
			Telecom is also detected through "coverage" but IRDAI comes first
			in canonical order.`,
		Tags: []string{"canonical", "required"},
	},
	{
		ID:             "TP-IRDAI-002",
		Text:           "Insurance plan with guaranteed returns and no risk.",
		RuleID:         "irdai-misleading-benefits",
		ExpectedStatus: "fail",
		Classification: "TP",
		Description:    `Absolute benefit promises are prohibited.`,
		Tags:           []string{"prohibited", "pattern"},
	},
	{
		ID: "TN-IRDAI-001",
		Text: "Insurance policy. For more details on risk factors, terms and conditions " +
			"please read sales brochure carefully before concluding a sale.",
		RuleID:         "irdai-mandatory-disclosure",
		ExpectedStatus: "pass",
		Classification: "TN",
		Description: `Every required phrase is present. The rule is still
			reported, as a pass, because it found its required terms.`,
		Tags: []string{"required"},
	},
	{
		ID:             "FP-IRDAI-001",
		Text:           "Insurance policy: no risk factors are hidden, we disclose all risks.",
		RuleID:         "irdai-misleading-benefits",
		ExpectedStatus: "absent",
		Classification: "FP",
		Description: `"no risk" matches inside "no risk factors", which is a
			disclosure rather than a promise. Needs phrase-level context.`,
		Tags: []string{"known-gap", "pattern"},
	},
}

// LendingCases covers Financial rules.
var LendingCases = []TestCase{
	{
		ID:              "TP-FIN-001",
		Text:            "Get an instant personal loan.",
		RuleID:          "financial-interest-disclosure",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.Financial,
		Classification:  "TP",
		Description: `A loan offer that never states a rate. The keyword
			warning is escalated by the custom predicate.`,
		Tags: []string{"canonical", "custom"},
	},
	{
		ID:             "TN-FIN-001",
		Text:           "Personal loan at 10.99% interest rate per annum.",
		RuleID:         "financial-interest-disclosure",
		ExpectedStatus: "warning",
		Classification: "TN",
		Description: `The rate is disclosed so the custom predicate stays
			quiet; "loan" and "interest" remain keywords worth a warning.`,
		Tags: []string{"custom"},
	},
	{
		ID:             "TP-FIN-002",
		Text:           "Zero interest EMI on phones.",
		RuleID:         "financial-zero-interest",
		ExpectedStatus: "fail",
		Classification: "TP",
		Description: `Zero-interest claim without terms or processing fee
			disclosure. Both the pattern and the required check fail.`,
		Tags: []string{"pattern", "required"},
	},
}

// SecuritiesCases covers SEBI rules.
var SecuritiesCases = []TestCase{
	{
		ID:             "TP-SEBI-001",
		Text:           "This mutual fund offers guaranteed returns.",
		RuleID:         "sebi-guarantee-prohibition",
		ExpectedStatus: "fail",
		Classification: "TP",
		Description:    `"guaranteed returns" is a prohibited term for securities.`,
		Tags:           []string{"canonical", "prohibited"},
	},
	{
		ID:             "TP-SEBI-002",
		Text:           "A famous celebrity recommends this mutual fund.",
		RuleID:         "sebi-celebrity-endorsement",
		ExpectedStatus: "warning",
		Classification: "TP",
		Description: `Endorsement keywords without a prohibited phrase produce a
			warning.`,
		Tags: []string{"canonical"},
	},
	{
		ID:             "TP-SEBI-003",
		Text:           "Our star recommends this mutual fund.",
		RuleID:         "sebi-celebrity-endorsement",
		ExpectedStatus: "fail",
		Classification: "TP",
		Description:    `"star recommends" is prohibited and escalates to fail.`,
		Tags:           []string{"prohibited"},
	},
	{
		ID:             "TP-SEBI-004",
		Text:           "The mutual fund delivered 24% returns.",
		RuleID:         "sebi-performance-format",
		ExpectedStatus: "fail",
		Classification: "TP",
		Description:    `Absolute performance figure instead of CAGR.`,
		Tags:           []string{"pattern", "custom"},
	},
	{
		ID: "TN-SEBI-001",
		Text: "Mutual fund investments are subject to market risks, " +
			"read all scheme related documents carefully.",
		RuleID:         "sebi-risk-disclosure",
		ExpectedStatus: "warning",
		Classification: "TN",
		Description: `The mandatory risk sentence is present so the required
			check passes; the scheme keywords still raise a warning.`,
		Tags: []string{"required"},
	},
	{
		ID:             "TN-SEBI-002",
		Text:           "Mutual fund returns depend on market conditions.",
		RuleID:         "sebi-guarantee-prohibition",
		ExpectedStatus: "absent",
		Classification: "TN",
		Description:    `Neutral wording about returns triggers nothing.`,
		Tags:           []string{"prohibited"},
	},
	{
		ID:             "FN-SEBI-001",
		Text:           "Returns are guaranteed for this mutual fund.",
		RuleID:         "sebi-guarantee-prohibition",
		ExpectedStatus: "fail",
		Classification: "FN",
		Description: `Reversed word order evades both the prohibited phrase
			and the pattern, which expects the guarantee word first.`,
		Tags: []string{"known-gap"},
	},
}
