package testdata

import "github.com/neocompliance/neocompliance/internal/taxonomy"

// ===========================================================================
// General advertising and accessibility
// ===========================================================================
//
// Short documents (under 100 words) are normalized as if they had 100 words,
// so a single whole-word keyword hit is enough to detect a category. When
// several categories are detected with equal confidence the canonical order
// decides the primary.

// AdvertisingCases covers ASCI rules, including the default-category
// fallback.
var AdvertisingCases = []TestCase{
	{
		ID:              "TP-ASCI-001",
		Text:            "The best and fastest service in town.",
		RuleID:          "asci-misleading-claims",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.ASCI,
		Classification:  "TP",
		Description: `Unsubstantiated superlatives. "best" detects ASCI and the
			misleading-claims pattern matches both "best" and "fastest".`,
		Tags: []string{"canonical", "pattern"},
	},
	{
		ID:              "TP-ASCI-002",
		Text:            "Clinically proven cream.",
		RuleID:          "asci-substantiation",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.ASCI,
		Classification:  "TP",
		Description: `No category keyword is present, so detection falls back to
			ASCI. The keyword "clinically proven" raises a warning and the
			custom predicate escalates to fail: a claim word with no
			evidence phrase.`,
		Tags: []string{"custom", "fallback"},
	},
	{
		ID:             "TP-ASCI-003",
		Text:           "Limited time offer on all shoes!",
		RuleID:         "asci-disclaimers",
		ExpectedStatus: "fail",
		Classification: "TP",
		Description: `An offer with no terms, conditions or eligibility
			language. Only the custom predicate fires.`,
		Tags: []string{"custom"},
	},
	{
		ID:             "TN-ASCI-001",
		Text:           "Limited time offer, terms and conditions apply.",
		RuleID:         "asci-disclaimers",
		ExpectedStatus: "warning",
		Classification: "TN",
		Description: `The same offer with a disclaimer. The custom predicate no
			longer fires; "conditions apply" is still a keyword worth a
			warning.`,
		Tags: []string{"custom"},
	},
	{
		ID:              "TN-ASCI-002",
		Text:            "The weather is pleasant near the lake.",
		RuleID:          "asci-misleading-claims",
		ExpectedStatus:  "absent",
		ExpectedPrimary: taxonomy.ASCI,
		Classification:  "TN",
		Description: `No keyword of any category. Detection falls back to ASCI
			and no ASCI rule finds anything, so every rule is suppressed.`,
		Tags: []string{"fallback"},
	},
}

// AccessibilityCases covers WCAG rules.
var AccessibilityCases = []TestCase{
	{
		ID:              "TP-WCAG-001",
		Text:            `Visit our website: <img src="hero.png">`,
		RuleID:          "wcag-alt-text",
		ExpectedStatus:  "fail",
		ExpectedPrimary: taxonomy.WCAG,
		Classification:  "TP",
		Description:     `An image tag without alt text.`,
		Tags:            []string{"canonical", "pattern"},
	},
	{
		ID:             "TN-WCAG-001",
		Text:           `Our website banner: <img src="hero.png" alt="Summer sale banner">`,
		RuleID:         "wcag-alt-text",
		ExpectedStatus: "absent",
		Classification: "TN",
		Description: `The image carries alt text, so the match is excluded and
			the pattern-only rule is suppressed.`,
		Tags: []string{"pattern"},
	},
}
