package langdetect

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Unknown is the sentinel returned when a page cannot be classified.
const Unknown = "unknown"

// Detector classifies text with whatlanggo. Stateless and safe for
// concurrent use.
type Detector struct{}

func New() *Detector { return &Detector{} }

// Detect returns the ISO 639-1 code of the dominant language, or Unknown for
// empty text or a low-confidence classification. It never returns an error:
// inconclusive detection is a data-quality condition, not a failure.
func (d *Detector) Detect(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown, nil
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return Unknown, nil
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return Unknown, nil
	}
	return code, nil
}
