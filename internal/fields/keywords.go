package fields

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsTerm reports whether term occurs in text as a whole token:
// case-insensitive, with no letter or digit touching either side of the
// match. Plain substring containment would fire on terms embedded in longer
// words ("go" inside "algorithm"), which is exactly the false-positive class
// this guards against. Terms that start or end with symbols ("C++", ".NET")
// only need the boundary check on their alphanumeric side.
func ContainsTerm(text, term string) bool {
	text = strings.ToLower(text)
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}

	for from := 0; ; {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return false
		}
		i += from
		if boundaryOK(text, i, len(term)) {
			return true
		}
		from = i + 1
	}
}

func boundaryOK(text string, start, length int) bool {
	first, _ := utf8.DecodeRuneInString(text[start:])
	last, _ := utf8.DecodeLastRuneInString(text[:start+length])

	if isWordRune(first) && start > 0 {
		if prev, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(prev) {
			return false
		}
	}
	if isWordRune(last) && start+length < len(text) {
		if next, _ := utf8.DecodeRuneInString(text[start+length:]); isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FindVocabulary returns the vocabulary terms present in the text as whole
// tokens, in vocabulary order.
func FindVocabulary(text string, vocabulary []string) []string {
	var found []string
	for _, term := range vocabulary {
		if ContainsTerm(text, term) {
			found = append(found, term)
		}
	}
	return found
}
