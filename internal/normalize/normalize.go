package normalize

import (
	"regexp"
	"strings"
	"sync"
)

// Matcher prepares raw document text for term lookups. It is the single
// place that decides what "the text contains this term" means, so the
// detector and the rule evaluator never compare strings themselves.
type Matcher interface {
	Prepare(text string) Text
}

// Text is a document prepared by a Matcher.
type Text interface {
	// Raw returns the text exactly as supplied.
	Raw() string
	// Contains reports whether term occurs anywhere in the text.
	Contains(term string) bool
	// CountWord counts non-overlapping whole-word occurrences of term.
	CountWord(term string) int
	// WordCount returns the number of whitespace-separated words.
	WordCount() int
}

// CaseFold is the default Matcher: case-insensitive substring containment
// and ASCII word-boundary counting.
type CaseFold struct {
	mu    sync.RWMutex
	words map[string]*regexp.Regexp
}

// NewCaseFold returns a ready CaseFold matcher. Compiled word patterns are
// cached and shared by every Text it prepares.
func NewCaseFold() *CaseFold {
	return &CaseFold{words: make(map[string]*regexp.Regexp)}
}

func (m *CaseFold) Prepare(text string) Text {
	return &foldedText{
		raw:    text,
		folded: strings.ToLower(text),
		words:  len(strings.Fields(text)),
		m:      m,
	}
}

func (m *CaseFold) wordPattern(term string) *regexp.Regexp {
	m.mu.RLock()
	re, ok := m.words[term]
	m.mu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)

	m.mu.Lock()
	m.words[term] = re
	m.mu.Unlock()
	return re
}

type foldedText struct {
	raw    string
	folded string
	words  int
	m      *CaseFold
}

func (t *foldedText) Raw() string { return t.raw }

func (t *foldedText) Contains(term string) bool {
	return strings.Contains(t.folded, strings.ToLower(term))
}

func (t *foldedText) CountWord(term string) int {
	term = strings.ToLower(term)
	if term == "" {
		return 0
	}
	return len(t.m.wordPattern(term).FindAllStringIndex(t.folded, -1))
}

func (t *foldedText) WordCount() int { return t.words }

// Present returns the subset of terms contained in text, preserving order.
func Present(text Text, terms []string) []string {
	var found []string
	for _, term := range terms {
		if text.Contains(term) {
			found = append(found, term)
		}
	}
	return found
}

// Missing returns the subset of terms absent from text, preserving order.
func Missing(text Text, terms []string) []string {
	var missing []string
	for _, term := range terms {
		if !text.Contains(term) {
			missing = append(missing, term)
		}
	}
	return missing
}

// Unique drops repeated strings, keeping the first occurrence.
func Unique(input []string) []string {
	seen := make(map[string]bool, len(input))
	result := make([]string, 0, len(input))
	for _, s := range input {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}
