package fields

import (
	"regexp"
	"strings"
	"time"
)

var (
	reCIN        = regexp.MustCompile(`^[A-Z]{1,2}\d{5,6}$`)
	reDottedDate = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
)

const dottedDateLayout = "02.01.2006"

// CIN returns the first line matching the Moroccan identity-card number
// pattern (one or two letters followed by five or six digits), scanning in
// document line order. Returns "" when no line matches the full-line pattern.
func CIN(lines []string) string {
	for _, line := range lines {
		if s := strings.TrimSpace(line); reCIN.MatchString(s) {
			return s
		}
	}
	return ""
}

// birthMarkerIndex finds the first line carrying the "né le"/"née le" marker
// printed above the birth date on the card. Returns -1 when absent.
func birthMarkerIndex(lines []string) int {
	for i, line := range lines {
		l := strings.ToLower(line)
		if strings.Contains(l, "né le") || strings.Contains(l, "née le") {
			return i
		}
	}
	return -1
}

// BirthDate extracts the card holder's birth date and normalizes it to ISO
// YYYY-MM-DD. The date is read from the line following the "né le" marker,
// first as a strict DD.MM.YYYY token, else as that line's first word. Without
// a marker, every DD.MM.YYYY substring in the document is collected and the
// earliest chronological one is kept; if any of them fails to parse, the
// first collected match is kept instead. An unparsable result yields "".
func BirthDate(lines []string) string {
	raw := ""
	if i := birthMarkerIndex(lines); i >= 0 {
		if i+1 < len(lines) {
			after := strings.ToLower(strings.TrimSpace(lines[i+1]))
			if m := reDottedDate.FindString(after); m != "" {
				raw = m
			} else if words := strings.Fields(after); len(words) > 0 {
				raw = words[0]
			}
		}
	} else {
		var dates []string
		for _, line := range lines {
			dates = append(dates, reDottedDate.FindAllString(line, -1)...)
		}
		raw = earliestDate(dates)
	}

	if raw == "" {
		return ""
	}
	t, err := time.Parse(dottedDateLayout, raw)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// earliestDate returns the chronologically smallest DD.MM.YYYY string, or the
// first collected one when any candidate fails to parse.
func earliestDate(dates []string) string {
	if len(dates) == 0 {
		return ""
	}
	best := ""
	var bestT time.Time
	for _, d := range dates {
		t, err := time.Parse(dottedDateLayout, d)
		if err != nil {
			return dates[0]
		}
		if best == "" || t.Before(bestT) {
			best, bestT = d, t
		}
	}
	return best
}

// IDCardName reads the holder's name off the fixed card layout, anchored to
// the "né le" marker: the surname sits on the line immediately above it, the
// given name three lines above. Returns ("", "") when the marker is missing
// or not enough lines precede it.
func IDCardName(lines []string) (firstName, lastName string) {
	i := birthMarkerIndex(lines)
	if i < 3 {
		return "", ""
	}
	lastName = titleCase(strings.TrimSpace(lines[i-1]))
	firstName = titleCase(strings.TrimSpace(lines[i-3]))
	return firstName, lastName
}
