package ner

import (
	"fmt"

	"github.com/jdkato/prose/v2"

	"github.com/cosumar-digital/docextract/internal/extract"
)

// PersonLabel is the entity label prose assigns to people.
const PersonLabel = "PERSON"

// Recognizer wraps prose NER. Name resolution uses it to pick the candidate
// string most likely to be a person; it is optional and any failure simply
// falls back to document order.
type Recognizer struct{}

func New() *Recognizer { return &Recognizer{} }

func (r *Recognizer) Entities(text string) ([]extract.Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("ner: %w", err)
	}
	ents := doc.Entities()
	out := make([]extract.Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, extract.Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
