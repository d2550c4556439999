package fields

import "regexp"

// Free-text date patterns: day-first numeric, year-first numeric, and
// month-name forms (English or French, abbreviated or full).
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:jan|feb|fev|fév|mar|apr|avr|may|mai|jun|juin|jul|juil|aug|aou|août|sep|oct|nov|dec|déc)[a-zûé]*\.?\s+\d{2,4}\b`),
}

// Dates returns the raw date-shaped substrings found in the text,
// unnormalized. Results are concatenated pattern by pattern (first-match
// order within each pattern), not merged or sorted.
func Dates(text string) []string {
	var out []string
	for _, re := range datePatterns {
		out = append(out, re.FindAllString(text, -1)...)
	}
	return out
}
