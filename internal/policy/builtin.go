package policy

import "github.com/neocompliance/neocompliance/internal/taxonomy"

// CatalogVersion is the version stamp of the built-in catalog.
const CatalogVersion = "1.0"

// DefaultCatalog returns the built-in rule catalog. Each call returns a
// fresh copy that callers may extend.
func DefaultCatalog() *Catalog {
	var rules []Rule
	for _, group := range [][]Rule{
		asciRules(), wcagRules(), irdaiRules(), financialRules(), sebiRules(), pharmaRules(),
		foodRules(), telecomRules(), automotiveRules(), realEstateRules(), aiRules(),
	} {
		rules = append(rules, group...)
	}
	return &Catalog{Version: CatalogVersion, Rules: rules}
}

func asciRules() []Rule {
	return []Rule{
		{
			ID:         "asci-misleading-claims",
			Category:   taxonomy.ASCI,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Potentially misleading claim detected",
			Suggestion: "Ensure all claims are substantiated with credible evidence. Avoid superlatives without proof.",
			Symbol:     "⚠️",
			Match: Match{
				Pattern:    `\b(guaranteed|100%|best|#1|fastest|cheapest|risk-free|instant|miracle|magic)\b`,
				Prohibited: []string{"guaranteed profit", "risk-free investment", "100% safe", "no side effects", "instant results"},
			},
		},
		{
			ID:         "asci-substantiation",
			Category:   taxonomy.ASCI,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Claims require substantiation",
			Suggestion: "Provide credible source or evidence for claims. Include disclaimers where appropriate.",
			Symbol:     "🔍",
			Match: Match{
				Keywords: []string{"proven", "scientifically tested", "clinically proven", "award-winning"},
				Custom: &CustomMatch{
					AnyOf:  []string{"proven", "tested", "certified", "approved"},
					NoneOf: []string{"based on", "according to", "study shows", "research indicates"},
				},
			},
		},
		{
			ID:         "asci-comparison",
			Category:   taxonomy.ASCI,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Competitive comparison requires fair representation",
			Suggestion: "Ensure comparisons are fair, factual, and not disparaging to competitors.",
			Symbol:     "⚖️",
			Match: Match{
				Keywords: []string{"better than", "superior to", "vs", "compared to", "unlike others"},
				Pattern:  `\b(better than|superior to|unlike others|vs\.?|compared to)\b`,
			},
		},
		{
			ID:         "asci-disclaimers",
			Category:   taxonomy.ASCI,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Important disclaimers missing or insufficient",
			Suggestion: "Include clear, prominent disclaimers for conditions, limitations, or exceptions.",
			Symbol:     "📝",
			Match: Match{
				Keywords: []string{"terms apply", "conditions apply", "subject to", "eligibility"},
				Custom: &CustomMatch{
					AnyOf:  []string{"free", "discount", "offer", "limited time"},
					NoneOf: []string{"terms", "conditions", "subject to", "eligibility"},
				},
			},
		},
	}
}

func wcagRules() []Rule {
	return []Rule{
		{
			ID:         "wcag-alt-text",
			Category:   taxonomy.WCAG,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Images require alternative text for accessibility",
			Suggestion: `Add descriptive alt text for all images. Use empty alt="" for decorative images.`,
			Symbol:     "🖼️",
			Match: Match{
				Pattern:        `<img[^>]*`,
				PatternExclude: `alt=`,
			},
		},
		{
			ID:         "wcag-color-contrast",
			Category:   taxonomy.WCAG,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Ensure sufficient color contrast for readability",
			Suggestion: "Maintain minimum 4.5:1 contrast ratio for normal text, 3:1 for large text.",
			Symbol:     "🎨",
			Match:      Match{Keywords: []string{"color", "contrast", "text color", "background"}},
		},
		{
			ID:         "wcag-keyboard-navigation",
			Category:   taxonomy.WCAG,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Ensure keyboard accessibility",
			Suggestion: "All interactive elements must be accessible via keyboard navigation.",
			Symbol:     "⌨️",
			Match:      Match{Keywords: []string{"click here", "mouse over", "hover"}},
		},
		{
			ID:         "wcag-responsive-design",
			Category:   taxonomy.WCAG,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Content must be responsive and mobile-friendly",
			Suggestion: "Ensure ad content adapts to different screen sizes and orientations.",
			Symbol:     "📱",
			Match:      Match{Keywords: []string{"mobile", "responsive", "viewport", "device"}},
		},
	}
}

func irdaiRules() []Rule {
	return []Rule{
		{
			ID:         "irdai-mandatory-disclosure",
			Category:   taxonomy.IRDAI,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Missing mandatory IRDAI disclosure statement",
			Suggestion: `Include: "For more details on risk factors, terms and conditions please read sales brochure carefully before concluding a sale"`,
			Symbol:     "🛡️",
			Match: Match{
				Required: []string{"For more details on risk factors", "terms and conditions", "sales brochure", "before concluding a sale"},
			},
		},
		{
			ID:         "irdai-risk-factors",
			Category:   taxonomy.IRDAI,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Risk factors must be prominently disclosed",
			Suggestion: "Clearly mention all relevant risk factors associated with the insurance product.",
			Symbol:     "⚠️",
			Match: Match{
				Keywords: []string{"insurance", "policy", "coverage", "premium"},
				Required: []string{"risk factors", "risks"},
			},
		},
		{
			ID:         "irdai-misleading-benefits",
			Category:   taxonomy.IRDAI,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Potentially misleading benefit claims",
			Suggestion: "Avoid absolute statements about benefits. Include conditions and limitations.",
			Symbol:     "🚫",
			Match: Match{
				Prohibited: []string{"guaranteed returns", "assured income", "no risk", "complete protection"},
				Pattern:    `\b(guaranteed returns|assured income|no risk|complete protection)\b`,
			},
		},
		{
			ID:         "irdai-premium-clarity",
			Category:   taxonomy.IRDAI,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Premium information should be clear and transparent",
			Suggestion: "Provide clear information about premium amounts, payment terms, and any additional charges.",
			Symbol:     "💰",
			Match:      Match{Keywords: []string{"premium", "payment", "charges", "fees"}},
		},
	}
}

func financialRules() []Rule {
	return []Rule{
		{
			ID:         "financial-interest-disclosure",
			Category:   taxonomy.Financial,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Interest rates must be clearly disclosed",
			Suggestion: "Display interest rates prominently with APR. Include all applicable charges.",
			Symbol:     "💳",
			Match: Match{
				Keywords: []string{"interest", "loan", "credit", "financing"},
				Custom: &CustomMatch{
					AnyOf:  []string{"loan", "credit", "financing", "borrow"},
					NoneOf: []string{"interest rate", "apr", "%", "per annum"},
				},
			},
		},
		{
			ID:         "financial-zero-interest",
			Category:   taxonomy.Financial,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Zero-interest claims require proper context",
			Suggestion: "Clearly explain terms and conditions for zero-interest offers. Include processing fees if applicable.",
			Symbol:     "🏷️",
			Match: Match{
				Pattern:  `\b(zero.{0,5}interest|0%.{0,10}interest|no.{0,5}interest)\b`,
				Required: []string{"terms and conditions", "processing fee"},
			},
		},
		{
			ID:         "financial-investment-risk",
			Category:   taxonomy.Financial,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Investment products must include risk warnings",
			Suggestion: `Include clear risk disclosure: "Investments are subject to market risks. Please read all documents carefully."`,
			Symbol:     "⚠️",
			Match: Match{
				Keywords: []string{"investment", "returns", "portfolio", "wealth"},
				Required: []string{"market risks", "read all documents"},
			},
		},
		{
			ID:         "financial-cooling-off",
			Category:   taxonomy.Financial,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Mention cooling-off period for financial products",
			Suggestion: "Inform customers about their right to cancel within the cooling-off period.",
			Symbol:     "⏰",
			Match: Match{
				Keywords: []string{"financial product", "investment", "insurance"},
				Required: []string{"cooling-off period", "right to cancel"},
			},
		},
	}
}

// performancePattern matches absolute performance figures such as "18% returns".
const performancePattern = `(\d+\.?\d*%\s*(?:return|growth|gain))`

func sebiRules() []Rule {
	return []Rule{
		{
			ID:         "sebi-performance-format",
			Category:   taxonomy.SEBI,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Performance must be shown as CAGR for specified periods",
			Suggestion: "Present returns as CAGR for 1, 3, 5 years, and since inception. Avoid absolute returns.",
			Symbol:     "📊",
			Match: Match{
				Pattern: performancePattern,
				Custom: &CustomMatch{
					Regex:    performancePattern,
					NotRegex: `CAGR.*(?:1\s*year|3\s*years|5\s*years|since\s*inception)`,
				},
			},
		},
		{
			ID:         "sebi-celebrity-endorsement",
			Category:   taxonomy.SEBI,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Celebrity endorsements not allowed for mutual funds",
			Suggestion: "Remove any celebrity endorsements or testimonials from mutual fund advertisements.",
			Symbol:     "🌟",
			Match: Match{
				Keywords:   []string{"celebrity", "star", "endorses", "recommends", "testimonial"},
				Prohibited: []string{"celebrity endorsement", "star recommends", "famous personality"},
			},
		},
		{
			ID:         "sebi-risk-disclosure",
			Category:   taxonomy.SEBI,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Missing mandatory risk disclosure",
			Suggestion: `Include: "Mutual fund investments are subject to market risks. Please read all scheme related documents carefully."`,
			Symbol:     "⚠️",
			Match: Match{
				Keywords: []string{"mutual fund", "investment", "scheme"},
				Required: []string{"subject to market risks", "read all scheme related documents"},
			},
		},
		{
			ID:         "sebi-past-performance",
			Category:   taxonomy.SEBI,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Past performance disclaimer required",
			Suggestion: `Include disclaimer: "Past performance is not indicative of future results."`,
			Symbol:     "⏮️",
			Match: Match{
				Keywords: []string{"performance", "returns", "past"},
				Required: []string{"past performance", "not indicative of future"},
			},
		},
		{
			ID:         "sebi-guarantee-prohibition",
			Category:   taxonomy.SEBI,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Guarantee of returns is prohibited",
			Suggestion: "Remove any language suggesting guaranteed returns or assured profits.",
			Symbol:     "🚫",
			Match: Match{
				Prohibited: []string{"guaranteed returns", "assured returns", "guaranteed profit", "assured profit"},
				Pattern:    `\b(guaranteed|assured).{0,10}(returns|profit|income)\b`,
			},
		},
	}
}

func pharmaRules() []Rule {
	return []Rule{
		{
			ID:         "pharma-clinical-evidence",
			Category:   taxonomy.Pharma,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Therapeutic claims require clinical evidence",
			Suggestion: "Provide clinical trial data or regulatory approval for all therapeutic claims.",
			Symbol:     "🧪",
			Match: Match{
				Keywords: []string{"treats", "cures", "prevents", "therapeutic", "medical benefit"},
				Required: []string{"clinical study", "FDA approved", "research data"},
			},
		},
		{
			ID:         "pharma-side-effects",
			Category:   taxonomy.Pharma,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Side effects disclosure required",
			Suggestion: "Clearly state possible side effects and contraindications.",
			Symbol:     "⚠️",
			Match: Match{
				Keywords: []string{"medicine", "drug", "pharmaceutical", "treatment"},
				Required: []string{"side effects", "contraindications", "adverse reactions"},
			},
		},
		{
			ID:         "pharma-dosage-warnings",
			Category:   taxonomy.Pharma,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Dosage and administration warnings needed",
			Suggestion: "Include proper dosage instructions and administration guidelines.",
			Symbol:     "💊",
			Match: Match{
				Keywords: []string{"dosage", "administration", "prescription"},
				Required: []string{"consult doctor", "as directed by physician"},
			},
		},
		{
			ID:         "pharma-professional-consultation",
			Category:   taxonomy.Pharma,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Professional consultation advice required",
			Suggestion: "Include statement about consulting healthcare professionals.",
			Symbol:     "\U0001F468\u200D\u2695\uFE0F",
			Match: Match{
				Keywords: []string{"health", "medical", "treatment", "therapy"},
				Required: []string{"consult your doctor", "healthcare professional"},
			},
		},
	}
}

func foodRules() []Rule {
	return []Rule{
		{
			ID:         "food-nutritional-claims",
			Category:   taxonomy.Food,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Nutritional claims require substantiation",
			Suggestion: "Provide scientific evidence for all nutritional and health claims.",
			Symbol:     "🍎",
			Match: Match{
				Keywords: []string{"nutritious", "healthy", "vitamin", "mineral", "protein"},
				Required: []string{"FSSAI approved", "nutritional facts"},
			},
		},
		{
			ID:         "food-health-benefits",
			Category:   taxonomy.Food,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Health benefit claims must be verified",
			Suggestion: "Avoid false health claims. Stick to verified nutritional benefits.",
			Symbol:     "🚫",
			Match: Match{
				Prohibited: []string{"cures disease", "prevents illness", "medical treatment"},
				Pattern:    `\b(cures|prevents|treats).{0,10}(disease|illness|condition)\b`,
			},
		},
		{
			ID:         "food-allergen-warnings",
			Category:   taxonomy.Food,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Allergen warnings required",
			Suggestion: "Clearly mention all allergens present in the product.",
			Symbol:     "⚠️",
			Match: Match{
				Keywords: []string{"contains", "may contain", "allergen"},
				Required: []string{"allergen information", "contains nuts", "gluten free"},
			},
		},
		{
			ID:         "food-ingredient-disclosure",
			Category:   taxonomy.Food,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Clear ingredient disclosure needed",
			Suggestion: "List all ingredients clearly and prominently.",
			Symbol:     "📋",
			Match:      Match{Keywords: []string{"ingredients", "contains", "made with"}},
		},
	}
}

func telecomRules() []Rule {
	return []Rule{
		{
			ID:         "telecom-pricing-transparency",
			Category:   taxonomy.Telecom,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Transparent pricing with all charges required",
			Suggestion: "Display all charges including taxes, activation fees, and hidden costs.",
			Symbol:     "💰",
			Match: Match{
				Keywords: []string{"price", "plan", "tariff", "charges"},
				Required: []string{"all taxes included", "total cost"},
			},
		},
		{
			ID:         "telecom-service-availability",
			Category:   taxonomy.Telecom,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Service availability disclaimers needed",
			Suggestion: "Mention service availability limitations and coverage areas.",
			Symbol:     "📶",
			Match: Match{
				Keywords: []string{"available", "coverage", "network"},
				Required: []string{"subject to coverage", "network availability"},
			},
		},
		{
			ID:         "telecom-data-speed",
			Category:   taxonomy.Telecom,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Data speed claims require verification",
			Suggestion: "Provide realistic speed claims with disclaimers about actual speeds.",
			Symbol:     "⚡",
			Match: Match{
				Keywords: []string{"speed", "mbps", "download", "upload"},
				Pattern:  `\d+\s*(mbps|gbps|kb|mb)`,
			},
		},
		{
			ID:         "telecom-fair-usage",
			Category:   taxonomy.Telecom,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Fair usage policy disclosure required",
			Suggestion: "Clearly explain fair usage policy and data limitations.",
			Symbol:     "📊",
			Match: Match{
				Keywords: []string{"unlimited", "fair usage", "data limit"},
				Required: []string{"fair usage policy", "terms apply"},
			},
		},
	}
}

func automotiveRules() []Rule {
	return []Rule{
		{
			ID:         "automotive-fuel-efficiency",
			Category:   taxonomy.Automotive,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Fuel efficiency claims require verification",
			Suggestion: "Provide official ARAI certified mileage figures.",
			Symbol:     "⛽",
			Match: Match{
				Keywords: []string{"mileage", "fuel efficiency", "kmpl", "fuel economy"},
				Required: []string{"ARAI certified", "under test conditions"},
			},
		},
		{
			ID:         "automotive-safety-rating",
			Category:   taxonomy.Automotive,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Safety rating disclosure required",
			Suggestion: "Mention official safety ratings from recognized authorities.",
			Symbol:     "🛡️",
			Match: Match{
				Keywords: []string{"safety", "crash test", "star rating"},
				Required: []string{"safety rating", "crash test results"},
			},
		},
		{
			ID:         "automotive-pricing",
			Category:   taxonomy.Automotive,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Pricing transparency with taxes needed",
			Suggestion: "Show ex-showroom price and on-road price separately.",
			Symbol:     "💰",
			Match: Match{
				Keywords: []string{"price", "cost", "starting at"},
				Required: []string{"ex-showroom price", "taxes extra"},
			},
		},
		{
			ID:         "automotive-features",
			Category:   taxonomy.Automotive,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Feature availability clarity required",
			Suggestion: "Specify which features are standard vs optional.",
			Symbol:     "🔧",
			Match: Match{
				Keywords: []string{"features", "equipped with", "comes with"},
				Required: []string{"variant specific", "optional"},
			},
		},
	}
}

func realEstateRules() []Rule {
	return []Rule{
		{
			ID:         "realestate-rera-number",
			Category:   taxonomy.RealEstate,
			Severity:   taxonomy.SeverityCritical,
			Message:    "RERA registration number must be displayed",
			Suggestion: "Display valid RERA registration number prominently.",
			Symbol:     "🏠",
			Match: Match{
				Keywords: []string{"project", "development", "construction"},
				Required: []string{"RERA registration", "registration number"},
			},
		},
		{
			ID:         "realestate-approvals",
			Category:   taxonomy.RealEstate,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Project approval status required",
			Suggestion: "Mention all necessary approvals and clearances obtained.",
			Symbol:     "✅",
			Match: Match{
				Keywords: []string{"approved", "sanctioned", "clearance"},
				Required: []string{"approvals obtained", "clearances"},
			},
		},
		{
			ID:         "realestate-delivery-dates",
			Category:   taxonomy.RealEstate,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Realistic delivery dates required",
			Suggestion: "Provide realistic possession dates with disclaimers.",
			Symbol:     "📅",
			Match: Match{
				Keywords: []string{"possession", "delivery", "ready to move"},
				Required: []string{"tentative delivery", "subject to approvals"},
			},
		},
		{
			ID:         "realestate-amenities",
			Category:   taxonomy.RealEstate,
			Severity:   taxonomy.SeverityMedium,
			Message:    "Amenities availability timeline needed",
			Suggestion: "Specify when advertised amenities will be available.",
			Symbol:     "\U0001F3CA\u200D\u2642\uFE0F",
			Match: Match{
				Keywords: []string{"amenities", "facilities", "clubhouse"},
				Required: []string{"proposed amenities", "timeline"},
			},
		},
	}
}

func aiRules() []Rule {
	return []Rule{
		{
			ID:         "ai-content-disclosure",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityCritical,
			Message:    "AI-generated content must be disclosed",
			Suggestion: "Clearly indicate when content is generated or assisted by AI systems.",
			Symbol:     "🤖",
			Match: Match{
				Keywords: []string{"AI generated", "artificial intelligence", "machine learning", "automated content"},
				Required: []string{"AI-generated", "generated by AI", "AI-assisted"},
			},
		},
		{
			ID:         "ai-algorithm-transparency",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Algorithm transparency required for decision-making",
			Suggestion: "Provide information about how AI algorithms make decisions that affect users.",
			Symbol:     "📊",
			Match: Match{
				Keywords: []string{"algorithm", "automated decision", "AI system", "machine learning model"},
				Required: []string{"how it works", "decision criteria", "algorithm explanation"},
			},
		},
		{
			ID:         "ai-data-privacy",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityCritical,
			Message:    "Data privacy and protection measures required",
			Suggestion: "Clearly explain how user data is collected, processed, and protected by AI systems.",
			Symbol:     "🔒",
			Match: Match{
				Keywords: []string{"user data", "personal information", "data collection", "privacy"},
				Required: []string{"data protection", "privacy policy", "user consent"},
			},
		},
		{
			ID:         "ai-bias-prevention",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Bias prevention and fairness measures needed",
			Suggestion: "Demonstrate efforts to prevent algorithmic bias and ensure fair treatment.",
			Symbol:     "⚖️",
			Match: Match{
				Keywords: []string{"fair", "unbiased", "equal treatment", "discrimination"},
				Required: []string{"bias testing", "fairness measures", "equal opportunity"},
			},
		},
		{
			ID:         "ai-user-consent",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityCritical,
			Message:    "User consent required for AI processing",
			Suggestion: "Obtain explicit user consent before processing data with AI systems.",
			Symbol:     "✅",
			Match: Match{
				Keywords: []string{"consent", "agree to AI", "opt-in", "user permission"},
				Required: []string{"user consent", "explicit agreement", "opt-in consent"},
			},
		},
		{
			ID:         "ai-explainable",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityMedium,
			Message:    "AI decisions should be explainable",
			Suggestion: "Provide explanations for AI-driven recommendations or decisions.",
			Symbol:     "💡",
			Match: Match{
				Keywords: []string{"recommendation", "AI decision", "suggested", "personalized"},
				Required: []string{"explanation available", "how we decide", "reasoning provided"},
			},
		},
		{
			ID:         "ai-human-oversight",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityHigh,
			Message:    "Human oversight and intervention capability required",
			Suggestion: "Ensure human oversight is available for AI-driven processes.",
			Symbol:     "👥",
			Match: Match{
				Keywords: []string{"automated", "AI system", "machine decision"},
				Required: []string{"human oversight", "manual review", "human intervention"},
			},
		},
		{
			ID:         "ai-performance-monitoring",
			Category:   taxonomy.AICompliance,
			Severity:   taxonomy.SeverityMedium,
			Message:    "AI system performance monitoring and reporting needed",
			Suggestion: "Regularly monitor and report on AI system performance and accuracy.",
			Symbol:     "📈",
			Match: Match{
				Keywords: []string{"AI performance", "system accuracy", "model performance"},
				Required: []string{"performance metrics", "accuracy reporting", "system monitoring"},
			},
		},
	}
}
