package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish  = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b`)
	reEmailish = regexp.MustCompile(`\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
	rePhoneish = regexp.MustCompile(`(\+212|0)[\s-]*[67][\d\s-]{7,}`)
)

// HeuristicConfidence is a naive quality score for one page of decoded text,
// boosted when it shows the artifacts a CV or ID card should carry
// (date-ish, email-ish, phone-ish). Each adds a fixed increment.
func HeuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reDateish.MatchString(txtL) {
		score += 0.2
	}
	if reEmailish.MatchString(txtL) {
		score += 0.2
	}
	if rePhoneish.MatchString(txtL) {
		score += 0.2
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
