package entity

// Page is one OCR'd document page: recognized text lines in top-to-bottom
// reading order, as produced by the OCR engine. Lines are not reflowed into
// paragraphs. Immutable after acquisition.
type Page struct {
	Lines    []string `json:"lines"`
	Language string   `json:"language"` // detected language, "unknown" if inconclusive
}

// Document is an ordered sequence of pages, built once per extraction request
// and discarded when the pipeline finishes.
type Document struct {
	Pages []Page `json:"pages"`
	// Language is the last non-"unknown" page-level detection, "unknown"
	// when no page could be classified.
	Language string `json:"language"`
}

// AllLines returns every line of the document in page order.
func (d *Document) AllLines() []string {
	var out []string
	for _, p := range d.Pages {
		out = append(out, p.Lines...)
	}
	return out
}
