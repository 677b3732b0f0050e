package redact

import (
	"regexp"
	"strings"
)

type pattern struct {
	kind string
	re   *regexp.Regexp
}

// Order matters: longer digit runs are masked before shorter ones so a card
// number is never half-consumed by the phone pattern.
var sensitivePatterns = []pattern{
	// Credentials pasted into marketing copy or CMS exports
	{"private-key", regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`)},
	{"api-key", regexp.MustCompile(`(?i)(api_key|apikey|api-key|secret_key|access_token|auth_token)\s*[=:]\s*['"]?[A-Za-z0-9_-]{16,}['"]?`)},
	{"bearer", regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_.-]{20,}`)},
	{"aws-key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"stripe-key", regexp.MustCompile(`[sr]k_live_[0-9a-zA-Z]{24}`)},
	{"password", regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`)},
	{"url-credentials", regexp.MustCompile(`https?://[^:/\s]+:[^@/\s]+@`)},

	// Personal data
	{"email", regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
	{"card", regexp.MustCompile(`\b(?:\d[ -]?){12,15}\d\b`)},
	{"aadhaar", regexp.MustCompile(`\b\d{4}[ -]\d{4}[ -]\d{4}\b`)},
	{"pan", regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)},
	{"phone", regexp.MustCompile(`(?:\+91[ -]?|\b0)?\b[6-9]\d{4}[ -]?\d{5}\b`)},
}

const redactedPlaceholder = "[REDACTED]"

// Redact masks secrets and personal data in input.
func Redact(input string) string {
	result := input
	for _, p := range sensitivePatterns {
		result = p.re.ReplaceAllString(result, redactedPlaceholder)
	}
	return result
}

// Kinds lists which kinds of sensitive data appear in input, in pattern
// order. It reports without modifying.
func Kinds(input string) []string {
	var kinds []string
	remaining := input
	for _, p := range sensitivePatterns {
		if p.re.MatchString(remaining) {
			kinds = append(kinds, p.kind)
			remaining = p.re.ReplaceAllString(remaining, redactedPlaceholder)
		}
	}
	return kinds
}

// Excerpt redacts input and returns at most its first n runes, with
// whitespace collapsed so the excerpt fits on one log line.
func Excerpt(input string, n int) string {
	redacted := Redact(strings.Join(strings.Fields(input), " "))
	r := []rune(redacted)
	if n > 0 && len(r) > n {
		return string(r[:n]) + "…"
	}
	return redacted
}
