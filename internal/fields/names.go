package fields

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cosumar-digital/docextract/internal/extract"
)

// nameWindow is how many header lines of a CV are scanned for a name. CV
// headers have no structural anchor like the ID card's "né le" marker, so the
// extractor guesses from typography alone.
const nameWindow = 7

// The four capitalization layouts a CV header name can take. Each shape
// normalizes to "FirstName LastName".
var (
	reLastFirst  = regexp.MustCompile(`^([A-Z]{2,}) ([A-Z][a-z]+)$`) // LASTNAME Firstname
	reFirstLast  = regexp.MustCompile(`^([A-Z][a-z]+) ([A-Z]{2,})$`) // Firstname LASTNAME
	reBothTitled = regexp.MustCompile(`^([A-Z][a-z]+) ([A-Z][a-z]+)$`)
	reBothCaps   = regexp.MustCompile(`^([A-Z]{2,}) ([A-Z]{2,})$`)
)

// CandidateNames scans the first lines of a CV and collects every string the
// four layouts recognize as a plausible "First Last" name, deduplicated
// preserving first-seen order. Disambiguation is left to ResolveName.
func CandidateNames(lines []string) []string {
	var names []string
	limit := nameWindow
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)

		if m := reLastFirst.FindStringSubmatch(line); m != nil {
			names = append(names, m[2]+" "+titleCase(m[1]))
		}
		if m := reFirstLast.FindStringSubmatch(line); m != nil {
			names = append(names, m[1]+" "+titleCase(m[2]))
		}
		if m := reBothTitled.FindStringSubmatch(line); m != nil {
			names = append(names, m[1]+" "+m[2])
		}
		if m := reBothCaps.FindStringSubmatch(line); m != nil {
			names = append(names, titleCase(m[1])+" "+titleCase(m[2]))
		}
	}
	return dedupe(names)
}

// ResolveName selects one canonical name from the collected candidates. When
// an entity recognizer is available, the first span it tags as a person wins;
// otherwise (or when nothing is tagged) the first candidate in document order
// is kept. The name splits into first token = given name, remaining tokens =
// family name.
func ResolveName(candidates []string, ner extract.EntityRecognizer) (fullName, firstName, lastName string) {
	candidates = dedupe(candidates)
	if len(candidates) == 0 {
		return "", "", ""
	}

	fullName = candidates[0]
	if ner != nil {
		if ents, err := ner.Entities(strings.Join(candidates, " ")); err == nil {
			for _, e := range ents {
				if e.Label == "PERSON" && strings.TrimSpace(e.Text) != "" {
					fullName = strings.TrimSpace(e.Text)
					break
				}
			}
		}
	}

	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", "", ""
	}
	firstName = parts[0]
	lastName = strings.Join(parts[1:], " ")
	return fullName, firstName, lastName
}

// titleCase uppercases the first letter of each whitespace-separated word and
// lowercases the rest. Narrower than a locale-aware title casing but enough
// for latin-script names off an OCR line.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
