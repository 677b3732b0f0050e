package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/neocompliance/neocompliance/internal/normalize"
	"github.com/neocompliance/neocompliance/internal/taxonomy"
)

func detect(text string) Detection {
	d := NewDetector(DefaultProfiles(), DefaultThresholds())
	return d.Detect(normalize.NewCaseFold().Prepare(text))
}

func TestDefaultProfiles_CoverEveryCategory(t *testing.T) {
	profiles := DefaultProfiles()
	if len(profiles) != len(taxonomy.All()) {
		t.Fatalf("expected %d profiles, got %d", len(taxonomy.All()), len(profiles))
	}
	for i, c := range taxonomy.All() {
		if profiles[i].Category != c {
			t.Errorf("profile %d: expected %s, got %s", i, c, profiles[i].Category)
		}
		if w := profiles[i].Weight; w < 1.0 || w > 1.6 {
			t.Errorf("%s: weight %v out of range", c, w)
		}
	}
	if err := validateProfiles(profiles); err != nil {
		t.Errorf("default profiles invalid: %v", err)
	}
}

func TestDetect_EmptyText(t *testing.T) {
	det := detect("")
	if !reflect.DeepEqual(det.Detected, []taxonomy.Category{taxonomy.ASCI}) {
		t.Errorf("detected = %v, want [ASCI]", det.Detected)
	}
	if det.Primary != taxonomy.ASCI || !det.Fallback {
		t.Errorf("primary = %s fallback = %v", det.Primary, det.Fallback)
	}
	if det.Confidence[taxonomy.ASCI] != 25 {
		t.Errorf("ASCI confidence = %v, want 25", det.Confidence[taxonomy.ASCI])
	}
	if len(det.Ranked) != 0 {
		t.Errorf("expected nothing ranked, got %v", det.Ranked)
	}
	if len(det.Confidence) != len(taxonomy.All()) {
		t.Errorf("confidence map should hold every category, got %d", len(det.Confidence))
	}
}

func TestDetect_ShortTextIsNormalizedTo100Words(t *testing.T) {
	// One IRDAI hit in a short text: 1.5 / 1 * 100 = 150, capped at 100.
	det := detect("insurance")
	if got := det.Confidence[taxonomy.IRDAI]; got != 100 {
		t.Errorf("IRDAI confidence = %v, want 100", got)
	}
	if det.Primary != taxonomy.IRDAI || det.Fallback {
		t.Errorf("primary = %s fallback = %v", det.Primary, det.Fallback)
	}
}

func TestDetect_LongTextNormalization(t *testing.T) {
	filler := func(n int) string { return strings.Repeat("word ", n) }

	tests := []struct {
		name         string
		text         string
		wantIRDAI    float64
		wantDetected []taxonomy.Category
		wantPrimary  taxonomy.Category
		wantRanked   int
	}{
		{
			// 200 words: 1.5 / 2 * 100 = 75
			name:         "detected",
			text:         "insurance " + filler(199),
			wantIRDAI:    75,
			wantDetected: []taxonomy.Category{taxonomy.IRDAI},
			wantPrimary:  taxonomy.IRDAI,
			wantRanked:   1,
		},
		{
			// 1000 words: 1.5 / 10 * 100 = 15, ranked but not above 15
			name:         "ranked only",
			text:         "insurance " + filler(999),
			wantIRDAI:    15,
			wantDetected: []taxonomy.Category{taxonomy.ASCI},
			wantPrimary:  taxonomy.ASCI,
			wantRanked:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := detect(tt.text)
			if got := det.Confidence[taxonomy.IRDAI]; got != tt.wantIRDAI {
				t.Errorf("IRDAI confidence = %v, want %v", got, tt.wantIRDAI)
			}
			if !reflect.DeepEqual(det.Detected, tt.wantDetected) {
				t.Errorf("detected = %v, want %v", det.Detected, tt.wantDetected)
			}
			if det.Primary != tt.wantPrimary {
				t.Errorf("primary = %s, want %s", det.Primary, tt.wantPrimary)
			}
			if len(det.Ranked) != tt.wantRanked {
				t.Errorf("ranked = %v", det.Ranked)
			}
		})
	}
}

func TestDetect_RankingAndTies(t *testing.T) {
	// Both capped at 100; canonical order puts IRDAI before Telecom.
	det := detect("Buy insurance with full network coverage")
	want := []taxonomy.Category{taxonomy.IRDAI, taxonomy.Telecom}
	if !reflect.DeepEqual(det.Detected, want) {
		t.Errorf("detected = %v, want %v", det.Detected, want)
	}

	// 300 words. IRDAI: 3 hits * 1.5 / 3 * 100 = 150 -> 100.
	// SEBI: 1 hit * 1.4 / 3 * 100 = 46.67.
	text := "insurance insurance insurance stock " + strings.Repeat("word ", 296)
	det = detect(text)
	if det.Ranked[0].Category != taxonomy.IRDAI || det.Ranked[1].Category != taxonomy.SEBI {
		t.Errorf("ranked = %v", det.Ranked)
	}
	if c := det.Ranked[1].Confidence; c < 46.6 || c > 46.7 {
		t.Errorf("SEBI confidence = %v", c)
	}
}

func TestDetect_WholeWordsOnly(t *testing.T) {
	// "maintain" contains "ai" and "carpet" contains "car"; neither counts.
	det := detect("maintain the carpet")
	if !det.Fallback {
		t.Errorf("expected fallback, got %v", det.Detected)
	}
}

func TestDetect_ConfidenceBounds(t *testing.T) {
	texts := []string{
		"",
		strings.Repeat("AI AI-powered chatbot ", 200),
		"mutual fund SIP NAV CAGR returns",
		strings.Repeat("x ", 5000),
	}
	for _, text := range texts {
		for cat, conf := range detect(text).Confidence {
			if conf < 0 || conf > 100 {
				t.Errorf("%s confidence %v out of bounds", cat, conf)
			}
		}
	}
}

func TestDetect_CustomThresholds(t *testing.T) {
	th := DefaultThresholds()
	th.DefaultCategory = taxonomy.WCAG
	th.DefaultConfidence = 40
	d := NewDetector(DefaultProfiles(), th)

	det := d.Detect(normalize.NewCaseFold().Prepare("nothing to see"))
	if det.Primary != taxonomy.WCAG || det.Confidence[taxonomy.WCAG] != 40 {
		t.Errorf("primary = %s confidence = %v", det.Primary, det.Confidence[taxonomy.WCAG])
	}
}

func TestClassify(t *testing.T) {
	d := NewDetector(DefaultProfiles(), DefaultThresholds())

	c := d.Classify(normalize.NewCaseFold().Prepare("Buy insurance with a loan from our bank website, see the stock chart and drug label"))
	if c.Primary != taxonomy.WCAG {
		t.Errorf("primary = %s, want WCAG", c.Primary)
	}
	if len(c.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %v", c.Alternatives)
	}
	want := []taxonomy.Category{taxonomy.IRDAI, taxonomy.Financial, taxonomy.SEBI}
	for i, alt := range c.Alternatives {
		if alt.Category != want[i] {
			t.Errorf("alternative %d = %s, want %s", i, alt.Category, want[i])
		}
	}
	if !strings.HasSuffix(c.Reasoning, "(Confidence: 100%)") {
		t.Errorf("reasoning = %q", c.Reasoning)
	}
}

func TestClassify_Fallback(t *testing.T) {
	d := NewDetector(DefaultProfiles(), DefaultThresholds())
	c := d.Classify(normalize.NewCaseFold().Prepare(""))
	if c.Primary != taxonomy.ASCI || c.Confidence != 25 || len(c.Alternatives) != 0 {
		t.Errorf("unexpected classification %+v", c)
	}
	want := "Contains general advertising content with marketing claims (Confidence: 25%)"
	if c.Reasoning != want {
		t.Errorf("reasoning = %q", c.Reasoning)
	}
}
