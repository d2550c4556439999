// Package fields holds the individual extractors of the pipeline. Each one is
// a pure function over the acquired lines or their lowercase concatenation,
// so every field stays independently extractable and testable.
package fields

import "regexp"

var reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Emails returns the email-shaped matches found in the text, deduplicated
// preserving first-seen order. No validation beyond the pattern.
func Emails(text string) []string {
	return dedupe(reEmail.FindAllString(text, -1))
}

// dedupe removes duplicates while preserving first-seen order; empty input
// stays nil.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
