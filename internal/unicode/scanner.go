package unicode

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Finding is one hidden or look-alike character found in a document.
type Finding struct {
	Kind        string `json:"kind"` // e.g. "zero-width", "bidi-override", "homoglyph-cyrillic", "control-char", "tag-char"
	Description string `json:"description"`
	Position    int    `json:"position"`  // byte offset in the input
	Codepoint   string `json:"codepoint"` // e.g. "U+200B"
	Action      string `json:"action"`    // "removed", "replaced" or "kept"
}

const (
	ActionRemoved  = "removed"
	ActionReplaced = "replaced"
	ActionKept     = "kept"
)

// ScanResult holds the output of a Unicode scan.
type ScanResult struct {
	Clean    bool      `json:"clean"`
	Findings []Finding `json:"findings,omitempty"`
	// Sanitized is the input with invisible characters removed and
	// look-alike letters inside Latin words mapped back to Latin, so that
	// keyword matching sees the words a reader sees.
	Sanitized string `json:"-"`
	Removed   int    `json:"removed"`
	Replaced  int    `json:"replaced"`
}

// Scan inspects document text for characters that hide content from
// keyword matching or make the displayed text differ from the stored one.
func Scan(input string) ScanResult {
	result := ScanResult{Clean: true}
	var sanitized strings.Builder
	sanitized.Grow(len(input))

	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])

		if r == utf8.RuneError && size == 1 {
			result.add(Finding{
				Kind:        "invalid-utf8",
				Description: "Invalid UTF-8 byte sequence",
				Position:    i,
				Codepoint:   fmt.Sprintf("0x%02X", input[i]),
				Action:      ActionRemoved,
			})
			i++
			continue
		}

		if f, found := classifyRune(r, i); found {
			if f.Action == ActionReplaced {
				sanitized.WriteByte(' ')
			}
			result.add(f)
			i += size
			continue
		}

		if latin, ok := homoglyphOf(r); ok {
			f := homoglyphFinding(r, latin, i)
			// Only words mixing scripts are rewritten; genuine Cyrillic or
			// Greek prose is left alone.
			if wordHasLatin(input, i, size) {
				f.Action = ActionReplaced
				sanitized.WriteRune(latin)
			} else {
				f.Action = ActionKept
				sanitized.WriteRune(r)
			}
			result.add(f)
			i += size
			continue
		}

		sanitized.WriteRune(r)
		i += size
	}

	result.Sanitized = sanitized.String()
	return result
}

func (s *ScanResult) add(f Finding) {
	s.Findings = append(s.Findings, f)
	switch f.Action {
	case ActionRemoved:
		s.Removed++
		s.Clean = false
	case ActionReplaced:
		s.Replaced++
		s.Clean = false
	}
}

// Kinds returns the distinct finding kinds in order of first appearance.
func (s ScanResult) Kinds() []string {
	var kinds []string
	seen := make(map[string]bool)
	for _, f := range s.Findings {
		if !seen[f.Kind] {
			seen[f.Kind] = true
			kinds = append(kinds, f.Kind)
		}
	}
	return kinds
}

func classifyRune(r rune, pos int) (Finding, bool) {
	cp := fmt.Sprintf("U+%04X", r)

	if isZeroWidth(r) {
		return Finding{
			Kind:        "zero-width",
			Description: fmt.Sprintf("Zero-width character %s can split words so required phrases go unmatched", cp),
			Position:    pos,
			Codepoint:   cp,
			Action:      ActionRemoved,
		}, true
	}

	if r == '\u00AD' {
		return Finding{
			Kind:        "soft-hyphen",
			Description: fmt.Sprintf("Soft hyphen %s is invisible unless the word wraps", cp),
			Position:    pos,
			Codepoint:   cp,
			Action:      ActionRemoved,
		}, true
	}

	if isBidiOverride(r) {
		return Finding{
			Kind:        "bidi-override",
			Description: fmt.Sprintf("Bidirectional override %s can make displayed text differ from stored text", cp),
			Position:    pos,
			Codepoint:   cp,
			Action:      ActionRemoved,
		}, true
	}

	// U+E0001..U+E007F
	if isTagCharacter(r) {
		return Finding{
			Kind:        "tag-char",
			Description: fmt.Sprintf("Unicode tag character %s carries invisible text", cp),
			Position:    pos,
			Codepoint:   cp,
			Action:      ActionRemoved,
		}, true
	}

	if isUnsafeControl(r) {
		return Finding{
			Kind:        "control-char",
			Description: fmt.Sprintf("Control character %s should not appear in document text", cp),
			Position:    pos,
			Codepoint:   cp,
			Action:      ActionRemoved,
		}, true
	}

	if isSpaceVariant(r) {
		return Finding{
			Kind:        "space-variant",
			Description: fmt.Sprintf("Non-standard space %s was normalized to a plain space", cp),
			Position:    pos,
			Codepoint:   cp,
			Action:      ActionReplaced,
		}, true
	}

	return Finding{}, false
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200B', // ZERO WIDTH SPACE
		'\u200C', // ZERO WIDTH NON-JOINER
		'\u200D', // ZERO WIDTH JOINER
		'\uFEFF', // ZERO WIDTH NO-BREAK SPACE (BOM)
		'\u2060', // WORD JOINER
		'\u180E', // MONGOLIAN VOWEL SEPARATOR
		'\u200E', // LEFT-TO-RIGHT MARK
		'\u200F': // RIGHT-TO-LEFT MARK
		return true
	}
	return false
}

func isBidiOverride(r rune) bool {
	switch r {
	case '\u202A', // LEFT-TO-RIGHT EMBEDDING
		'\u202B', // RIGHT-TO-LEFT EMBEDDING
		'\u202C', // POP DIRECTIONAL FORMATTING
		'\u202D', // LEFT-TO-RIGHT OVERRIDE
		'\u202E', // RIGHT-TO-LEFT OVERRIDE
		'\u2066', // LEFT-TO-RIGHT ISOLATE
		'\u2067', // RIGHT-TO-LEFT ISOLATE
		'\u2068', // FIRST STRONG ISOLATE
		'\u2069': // POP DIRECTIONAL ISOLATE
		return true
	}
	return false
}

func isTagCharacter(r rune) bool {
	return r >= 0xE0001 && r <= 0xE007F
}

func isSpaceVariant(r rune) bool {
	switch r {
	case '\u00A0', // NO-BREAK SPACE
		'\u2007', // FIGURE SPACE
		'\u202F', // NARROW NO-BREAK SPACE
		'\u3000': // IDEOGRAPHIC SPACE
		return true
	}
	return false
}

func isUnsafeControl(r rune) bool {
	// Whitespace controls survive text extraction legitimately.
	switch r {
	case '\t', '\n', '\r', '\f', '\v':
		return false
	}
	// C0, DEL, C1
	return r <= 0x1F || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

func homoglyphOf(r rune) (rune, bool) {
	if unicode.Is(unicode.Cyrillic, r) {
		latin, ok := cyrillicHomoglyphs[r]
		return latin, ok
	}
	if unicode.Is(unicode.Greek, r) {
		latin, ok := greekHomoglyphs[r]
		return latin, ok
	}
	return 0, false
}

func homoglyphFinding(r, latin rune, pos int) Finding {
	cp := fmt.Sprintf("U+%04X", r)
	script := "greek"
	if unicode.Is(unicode.Cyrillic, r) {
		script = "cyrillic"
	}
	return Finding{
		Kind:        "homoglyph-" + script,
		Description: fmt.Sprintf("%s %s looks like Latin '%c'", strings.ToUpper(script[:1])+script[1:], cp, latin),
		Position:    pos,
		Codepoint:   cp,
	}
}

// wordHasLatin reports whether the letter run around input[pos:pos+size]
// contains an ASCII letter.
func wordHasLatin(input string, pos, size int) bool {
	for i := pos - 1; i >= 0; {
		r, n := utf8.DecodeLastRuneInString(input[:i+1])
		if !unicode.IsLetter(r) {
			break
		}
		if r < utf8.RuneSelf {
			return true
		}
		i -= n
	}
	for i := pos + size; i < len(input); {
		r, n := utf8.DecodeRuneInString(input[i:])
		if !unicode.IsLetter(r) {
			break
		}
		if r < utf8.RuneSelf {
			return true
		}
		i += n
	}
	return false
}

// Cyrillic characters that are visually confusable with Latin characters
var cyrillicHomoglyphs = map[rune]rune{
	'а': 'a', // CYRILLIC SMALL LETTER A
	'А': 'A', // CYRILLIC CAPITAL LETTER A
	'В': 'B', // CYRILLIC CAPITAL LETTER VE
	'с': 'c', // CYRILLIC SMALL LETTER ES
	'С': 'C', // CYRILLIC CAPITAL LETTER ES
	'е': 'e', // CYRILLIC SMALL LETTER IE
	'Е': 'E', // CYRILLIC CAPITAL LETTER IE
	'Н': 'H', // CYRILLIC CAPITAL LETTER EN
	'і': 'i', // CYRILLIC SMALL LETTER BYELORUSSIAN-UKRAINIAN I
	'І': 'I', // CYRILLIC CAPITAL LETTER BYELORUSSIAN-UKRAINIAN I
	'К': 'K', // CYRILLIC CAPITAL LETTER KA
	'М': 'M', // CYRILLIC CAPITAL LETTER EM
	'о': 'o', // CYRILLIC SMALL LETTER O
	'О': 'O', // CYRILLIC CAPITAL LETTER O
	'р': 'p', // CYRILLIC SMALL LETTER ER
	'Р': 'P', // CYRILLIC CAPITAL LETTER ER
	'Т': 'T', // CYRILLIC CAPITAL LETTER TE
	'х': 'x', // CYRILLIC SMALL LETTER HA
	'Х': 'X', // CYRILLIC CAPITAL LETTER HA
	'у': 'y', // CYRILLIC SMALL LETTER U
	'У': 'Y', // CYRILLIC CAPITAL LETTER U
}

// Greek characters that are visually confusable with Latin characters
var greekHomoglyphs = map[rune]rune{
	'Α': 'A', // GREEK CAPITAL LETTER ALPHA
	'Β': 'B', // GREEK CAPITAL LETTER BETA
	'Ε': 'E', // GREEK CAPITAL LETTER EPSILON
	'Η': 'H', // GREEK CAPITAL LETTER ETA
	'Ι': 'I', // GREEK CAPITAL LETTER IOTA
	'Κ': 'K', // GREEK CAPITAL LETTER KAPPA
	'Μ': 'M', // GREEK CAPITAL LETTER MU
	'Ν': 'N', // GREEK CAPITAL LETTER NU
	'Ο': 'O', // GREEK CAPITAL LETTER OMICRON
	'ο': 'o', // GREEK SMALL LETTER OMICRON
	'Ρ': 'P', // GREEK CAPITAL LETTER RHO
	'Τ': 'T', // GREEK CAPITAL LETTER TAU
	'Χ': 'X', // GREEK CAPITAL LETTER CHI
	'Υ': 'Y', // GREEK CAPITAL LETTER UPSILON
	'Ζ': 'Z', // GREEK CAPITAL LETTER ZETA
}
