package testdata

import "github.com/neocompliance/neocompliance/internal/taxonomy"

// ===========================================================================
// Health, consumer goods, telecom, property and AI
// ===========================================================================

// HealthCases covers Pharma and Food rules.
var HealthCases = []TestCase{
	{
		ID:              "TP-PHARMA-001",
		Text:            "This medicine treats migraines fast.",
		RuleID:          "pharma-clinical-evidence",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.Pharma,
		Classification:  "TP",
		Description: `A therapeutic claim with no clinical study, approval or
			research data referenced.`,
		Tags: []string{"canonical", "required"},
	},
	{
		ID:              "TP-FOOD-001",
		Text:            "This organic juice cures disease naturally.",
		RuleID:          "food-health-benefits",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.Food,
		Classification:  "TP",
		Description: `A food product claiming to cure disease. Detected through
			"organic"; "naturally" and "cures" are not whole-word keywords.`,
		Tags: []string{"canonical", "prohibited", "pattern"},
	},
}

// ConsumerCases covers Telecom, Automotive and RealEstate rules.
var ConsumerCases = []TestCase{
	{
		ID:              "TP-TEL-001",
		Text:            "Unlimited internet plan with 100 Mbps speed.",
		RuleID:          "telecom-data-speed",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.Telecom,
		Classification:  "TP",
		Description:     `A headline speed figure is matched by the speed pattern.`,
		Tags:            []string{"canonical", "pattern"},
	},
	{
		ID:              "TP-AUTO-001",
		Text:            "This car gives a mileage of 25 kmpl.",
		RuleID:          "automotive-fuel-efficiency",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.Automotive,
		Classification:  "TP",
		Description:     `Mileage claim without ARAI certification wording.`,
		Tags:            []string{"canonical", "required"},
	},
	{
		ID:             "TN-AUTO-001",
		Text:           "This car gives 25 kmpl mileage, ARAI certified under test conditions.",
		RuleID:         "automotive-fuel-efficiency",
		ExpectedStatus: "warning",
		Classification: "TN",
		Description: `Certified figure with test conditions; only the mileage
			keywords remain as a warning.`,
		Tags: []string{"required"},
	},
	{
		ID:              "TP-RE-001",
		Text:            "New apartment project launching soon.",
		RuleID:          "realestate-rera-number",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.RealEstate,
		Classification:  "TP",
		Description:     `Property advertisement without a RERA registration.`,
		Tags:            []string{"canonical", "required"},
	},
	{
		ID:             "TN-RE-001",
		Text:           "New apartment project, RERA registration number PRM/KA/1251.",
		RuleID:         "realestate-rera-number",
		ExpectedStatus: "warning",
		Classification: "TN",
		Description:    `The registration is displayed; "project" remains a keyword.`,
		Tags:           []string{"required"},
	},
}

// AICases covers AICompliance rules.
var AICases = []TestCase{
	{
		ID:             "TP-AI-001",
		Text:           "Our chatbot writes marketing copy using artificial intelligence.",
		RuleID:         "ai-content-disclosure",
		ExpectedStatus: "fail",
		Classification: "TP",
		Description: `AI-produced copy with no disclosure. ASCI is primary via
			"marketing" but AICompliance rules still run.`,
		Tags: []string{"canonical", "required"},
	},
	{
		ID:             "TN-AI-001",
		Text:           "AI-generated content, generated by AI with AI-assisted review, built with machine learning.",
		RuleID:         "ai-content-disclosure",
		ExpectedStatus: "warning",
		Classification: "TN",
		Description: `All three disclosure phrases are present; the machine
			learning keyword still warrants a warning.`,
		Tags: []string{"required"},
	},
}
