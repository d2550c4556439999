package fields

import (
	"regexp"
	"strings"
)

// Phone patterns, Moroccan formats first, then a generic grouped-digit form.
// All matching happens on the raw text; candidates are normalized afterwards.
var phonePatterns = []*regexp.Regexp{
	// +212 6 XX XX XX XX / 06XXXXXXXX and dash/space-grouped variants
	regexp.MustCompile(`(?:\+212|0)[\s-]*[67][\s-]*\d{2}[\s-]*\d{2}[\s-]*\d{2}[\s-]*\d{2}`),
	regexp.MustCompile(`\+212[\s-]*[67]?[\s-]*\d{2}[\s-]*\d{3}[\s-]*\d{3}`),
	// generic grouped digits (international CVs)
	regexp.MustCompile(`\b\d{2,4}[\s-]?\d{2,4}[\s-]?\d{2,4}[\s-]?\d{2,4}\b`),
}

var reNonPhone = regexp.MustCompile(`[^\d+]`)

// Phones returns the phone numbers found in the text, normalized to bare
// digits (keeping a leading +) and deduplicated preserving first-seen order.
// A candidate is accepted only when its digit-only length is at least 9.
// Order is deterministic: first match by document order wins, so callers
// wanting a primary phone can take element zero.
func Phones(text string) []string {
	var candidates []string
	for _, re := range phonePatterns {
		candidates = append(candidates, re.FindAllString(text, -1)...)
	}

	var out []string
	for _, c := range candidates {
		phone := normalizePhone(c)
		if digitCount(phone) >= 9 {
			out = append(out, phone)
		}
	}
	return dedupe(out)
}

func normalizePhone(s string) string {
	s = strings.TrimSpace(s)
	cleaned := reNonPhone.ReplaceAllString(s, "")
	// keep "+" only in leading position
	if i := strings.LastIndex(cleaned, "+"); i > 0 {
		cleaned = strings.ReplaceAll(cleaned[1:], "+", "")
		cleaned = "+" + cleaned
	}
	return cleaned
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
