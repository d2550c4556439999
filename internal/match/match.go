// Package match scores extracted text against a position's two-tier keyword
// profile.
package match

import (
	"strings"

	"github.com/cosumar-digital/docextract/internal/entity"
	"github.com/cosumar-digital/docextract/internal/fields"
)

// Keywords returns the domain keywords present in the text and the relevance
// ratio: keywords found in the text AND listed on the position, divided by
// the position's keyword count. A position with no keywords scores 0 by
// convention. The ratio is monotonic in the overlap for a fixed position
// list; it is not comparable across positions with different list sizes.
func Keywords(text string, profile entity.KeywordProfile) (found []string, ratio float64) {
	position := make(map[string]struct{}, len(profile.PositionKeywords))
	for _, kw := range profile.PositionKeywords {
		position[strings.ToLower(strings.TrimSpace(kw))] = struct{}{}
	}

	overlap := 0
	for _, kw := range profile.DomainKeywords {
		if !fields.ContainsTerm(text, kw) {
			continue
		}
		found = append(found, kw)
		if _, ok := position[strings.ToLower(strings.TrimSpace(kw))]; ok {
			overlap++
		}
	}

	if len(profile.PositionKeywords) == 0 {
		return found, 0
	}
	return found, float64(overlap) / float64(len(profile.PositionKeywords))
}
