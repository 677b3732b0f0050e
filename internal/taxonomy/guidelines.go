package taxonomy

import (
	"fmt"
	"math"
)

var guidelines = map[Category]GuidelineInfo{
	ASCI: {
		ID:                ASCI,
		Name:              "Advertising Standards Council of India",
		Description:       "Ensures ads are legal, decent, honest, truthful, and not hazardous to consumers",
		ApplicableSectors: []string{"All sectors", "Consumer goods", "Services", "Digital advertising"},
		KeyRequirements: []string{
			"Claims must be substantiated with evidence",
			"Ads must be truthful and not misleading",
			"Fair competition practices",
			"No harmful or offensive content",
			"Proper disclaimers and disclosures",
		},
		Icon:  "⚖️",
		Color: "from-red-400 to-red-600",
	},
	WCAG: {
		ID:                WCAG,
		Name:              "Web Content Accessibility Guidelines",
		Description:       "Ensures digital content is accessible to people with disabilities",
		ApplicableSectors: []string{"Digital/Web advertising", "Online platforms", "Mobile apps"},
		KeyRequirements: []string{
			"Alternative text for images",
			"Sufficient color contrast (4.5:1 minimum)",
			"Keyboard navigation support",
			"Screen reader compatibility",
			"Responsive design for all devices",
		},
		Icon:  "♿",
		Color: "from-green-400 to-green-600",
	},
	IRDAI: {
		ID:                IRDAI,
		Name:              "Insurance Regulatory and Development Authority",
		Description:       "Regulates insurance advertisement and marketing practices",
		ApplicableSectors: []string{"Life Insurance", "General Insurance", "Health Insurance"},
		KeyRequirements: []string{
			`Mandatory disclosure: "For more details on risk factors, terms and conditions please read sales brochure carefully before concluding a sale"`,
			"Risk factor warnings prominently displayed",
			"Clear terms and conditions",
			"No misleading benefit claims",
			"Premium calculation transparency",
		},
		Icon:  "🛡️",
		Color: "from-emerald-400 to-emerald-600",
	},
	Financial: {
		ID:                Financial,
		Name:              "Financial Advertisement Guidelines (RBI)",
		Description:       "RBI and general financial advertising regulations",
		ApplicableSectors: []string{"Banking", "Financial Services", "Credit Cards", "Loans"},
		KeyRequirements: []string{
			"Clear interest rate disclosure with APR",
			"No zero-interest claims without proper context",
			"Transparent fee structure display",
			"Risk warnings for investments",
			"Cooling-off period information",
		},
		Icon:  "🏦",
		Color: "from-rose-400 to-rose-600",
	},
	SEBI: {
		ID:                SEBI,
		Name:              "Securities and Exchange Board of India",
		Description:       "Regulates mutual fund and securities advertising",
		ApplicableSectors: []string{"Mutual Funds", "Securities", "Stock Trading", "Investment Advisory"},
		KeyRequirements: []string{
			"Performance presented as CAGR for 1, 3, 5 years, and since inception",
			"Celebrity endorsement restrictions (not allowed)",
			`Risk disclosure: "Mutual fund investments are subject to market risks"`,
			"Past performance disclaimers",
			"No guarantee of returns",
		},
		Icon:  "📈",
		Color: "from-red-500 to-green-500",
	},
	Pharma: {
		ID:                Pharma,
		Name:              "Pharmaceutical Advertising Guidelines",
		Description:       "Regulates pharmaceutical and medical device advertising",
		ApplicableSectors: []string{"Pharmaceuticals", "Medical Devices", "Healthcare Products"},
		KeyRequirements: []string{
			"Clinical evidence for therapeutic claims",
			"Side effects disclosure",
			"Dosage and administration warnings",
			"Contraindications clearly stated",
			"Professional consultation advice",
		},
		Icon:  "💊",
		Color: "from-blue-400 to-blue-600",
	},
	Food: {
		ID:                Food,
		Name:              "Food & Nutrition Advertisement Guidelines",
		Description:       "FSSAI regulations for food and nutrition advertising",
		ApplicableSectors: []string{"Food & Beverages", "Nutrition Supplements", "Functional Foods"},
		KeyRequirements: []string{
			"Nutritional claims substantiation",
			"No false health benefits",
			"Clear ingredient disclosure",
			"Allergen warnings",
			"FSSAI approval references",
		},
		Icon:  "🍎",
		Color: "from-orange-400 to-orange-600",
	},
	Telecom: {
		ID:                Telecom,
		Name:              "Telecom Regulatory Authority Guidelines",
		Description:       "TRAI guidelines for telecom service advertising",
		ApplicableSectors: []string{"Telecommunications", "Internet Services", "Mobile Services"},
		KeyRequirements: []string{
			"Transparent pricing with all charges",
			"Service availability disclaimers",
			"Terms and conditions clarity",
			"Data speed claims verification",
			"Fair usage policy disclosure",
		},
		Icon:  "📱",
		Color: "from-purple-400 to-purple-600",
	},
	Automotive: {
		ID:                Automotive,
		Name:              "Automotive Advertising Standards",
		Description:       "Guidelines for automotive industry advertising",
		ApplicableSectors: []string{"Automobile Manufacturing", "Auto Finance", "Insurance"},
		KeyRequirements: []string{
			"Fuel efficiency claims verification",
			"Safety rating disclosure",
			"Pricing transparency with taxes",
			"Feature availability clarity",
			"Performance claims substantiation",
		},
		Icon:  "🚗",
		Color: "from-gray-400 to-gray-600",
	},
	RealEstate: {
		ID:                RealEstate,
		Name:              "Real Estate Advertising Regulations",
		Description:       "RERA and real estate advertising guidelines",
		ApplicableSectors: []string{"Real Estate Development", "Property Investment", "Construction"},
		KeyRequirements: []string{
			"RERA registration number display",
			"Project approval status",
			"Actual vs. projected delivery dates",
			"Amenities availability timeline",
			"Legal clearances disclosure",
		},
		Icon:  "🏠",
		Color: "from-teal-400 to-teal-600",
	},
	AICompliance: {
		ID:                AICompliance,
		Name:              "AI Ethics & Compliance Guidelines",
		Description:       "Emerging standards for AI-generated content and algorithmic transparency",
		ApplicableSectors: []string{"AI/ML Companies", "Tech Platforms", "Automated Content", "Digital Services"},
		KeyRequirements: []string{
			"AI-generated content disclosure",
			"Algorithm transparency requirements",
			"Data privacy and protection",
			"Bias prevention measures",
			"User consent for AI processing",
			"Explainable AI practices",
		},
		Icon:  "🤖",
		Color: "from-cyan-400 to-blue-600",
	},
}

// Fallback display values for a category without metadata.
const (
	FallbackIcon  = "📋"
	FallbackColor = "from-gray-400 to-gray-600"
)

// Info returns the metadata for c. The boolean is false when c has none.
func Info(c Category) (GuidelineInfo, bool) {
	info, ok := guidelines[c]
	return info, ok
}

// Guidelines returns metadata for every category in canonical order.
func Guidelines() []GuidelineInfo {
	out := make([]GuidelineInfo, 0, len(allCategories))
	for _, c := range allCategories {
		out = append(out, guidelines[c])
	}
	return out
}

// categoryAdvice is the generic per-category guidance appended after
// rule-specific recommendations.
var categoryAdvice = map[Category][]string{
	ASCI: {
		"Ensure all claims are substantiated with evidence",
		"Add proper disclaimers for offers and conditions",
		"Avoid superlative claims without proof",
		"Use factual comparisons only",
		"Include source references for claims",
	},
	WCAG: {
		"Add alternative text for all images",
		"Ensure sufficient color contrast (4.5:1 minimum)",
		"Make content keyboard accessible",
		"Test with screen readers",
		"Implement responsive design",
	},
	IRDAI: {
		"Include mandatory IRDAI disclosure statement",
		"Prominently display risk factors",
		"Avoid misleading benefit claims",
		"Clarify policy terms and conditions",
		"Show transparent premium calculations",
	},
	Financial: {
		"Display interest rates with APR clearly",
		"Include investment risk warnings",
		"Mention cooling-off period information",
		"Show transparent fee structure",
		"Add regulatory compliance statements",
	},
	SEBI: {
		"Present performance as CAGR for specified periods",
		"Remove celebrity endorsements",
		"Include mandatory risk disclosure",
		"Add past performance disclaimers",
		"Avoid guarantee language",
	},
	Pharma: {
		"Provide clinical evidence for therapeutic claims",
		"Include side effects and contraindications",
		"Add professional consultation advice",
		"Show dosage and administration warnings",
		"Include regulatory approval references",
	},
	Food: {
		"Substantiate nutritional claims",
		"Include allergen warnings",
		"Avoid false health benefit claims",
		"Add FSSAI approval references",
		"Show clear ingredient disclosure",
	},
	Telecom: {
		"Display transparent pricing with all charges",
		"Include service availability disclaimers",
		"Mention fair usage policy",
		"Show realistic speed claims",
		"Add network coverage information",
	},
	Automotive: {
		"Provide ARAI certified mileage figures",
		"Include official safety ratings",
		"Show pricing with tax breakdown",
		"Specify feature availability by variant",
		"Add performance claim substantiation",
	},
	RealEstate: {
		"Display RERA registration number",
		"Mention all necessary approvals",
		"Provide realistic delivery timelines",
		"Show amenities availability schedule",
		"Include legal clearances information",
	},
	AICompliance: {
		"Clearly disclose AI-generated content",
		"Provide algorithm transparency information",
		"Ensure robust data privacy measures",
		"Implement bias prevention protocols",
		"Obtain explicit user consent for AI processing",
		"Enable explainable AI features",
	},
}

// Advice returns the generic guidance list for c.
func Advice(c Category) []string {
	return append([]string(nil), categoryAdvice[c]...)
}

var classificationReasons = map[Category]string{
	ASCI:         "Contains general advertising content with marketing claims",
	WCAG:         "Contains digital/web accessibility related content",
	IRDAI:        "Contains insurance-related terms and policy information",
	Financial:    "Contains financial services, banking, or loan-related content",
	SEBI:         "Contains investment, mutual fund, or securities-related content",
	Pharma:       "Contains pharmaceutical, medical, or healthcare-related content",
	Food:         "Contains food, nutrition, or dietary supplement-related content",
	Telecom:      "Contains telecommunications or mobile service-related content",
	Automotive:   "Contains automotive, vehicle, or transportation-related content",
	RealEstate:   "Contains real estate, property, or construction-related content",
	AICompliance: "Contains AI, machine learning, or automated system-related content",
}

// Reasoning explains why a document was classified under c.
func Reasoning(c Category, confidence float64) string {
	reason, ok := classificationReasons[c]
	if !ok {
		reason = fmt.Sprintf("Contains %s-related content", c)
	}
	return fmt.Sprintf("%s (Confidence: %d%%)", reason, int(math.Round(confidence)))
}
