package fields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cosumar-digital/docextract/internal/extract"
)

func TestCandidateNames_Shapes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"last then first", "ZRIOUAL Othmane", []string{"Othmane Zrioual"}},
		{"first then last", "Othmane ZRIOUAL", []string{"Othmane Zrioual"}},
		{"both titled", "Othmane Zrioual", []string{"Othmane Zrioual"}},
		{"both caps", "OTHMANE ZRIOUAL", []string{"Othmane Zrioual"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CandidateNames([]string{tt.line}))
		})
	}
}

func TestCandidateNames_WindowLimit(t *testing.T) {
	lines := []string{
		"Curriculum vitae", "", "tel: 0612345678", "", "", "", "",
		"Othmane Zrioual", // line 8, past the scanned header
	}
	assert.Empty(t, CandidateNames(lines))
}

func TestCandidateNames_DedupeAcrossLines(t *testing.T) {
	lines := []string{"OTHMANE ZRIOUAL", "Othmane Zrioual"}
	assert.Equal(t, []string{"Othmane Zrioual"}, CandidateNames(lines))
}

func TestCandidateNames_IgnoresNonNameLines(t *testing.T) {
	lines := []string{"Ingénieur logiciel senior", "0612345678", "RABAT"}
	assert.Empty(t, CandidateNames(lines))
}

type stubNER struct {
	ents []extract.Entity
	err  error
}

func (s stubNER) Entities(string) ([]extract.Entity, error) { return s.ents, s.err }

func TestResolveName_NoRecognizerFallsBackToFirstCandidate(t *testing.T) {
	full, first, last := ResolveName([]string{"Othmane Zrioual", "Jane Doe"}, nil)
	assert.Equal(t, "Othmane Zrioual", full)
	assert.Equal(t, "Othmane", first)
	assert.Equal(t, "Zrioual", last)
}

func TestResolveName_RecognizerPicksPerson(t *testing.T) {
	ner := stubNER{ents: []extract.Entity{
		{Text: "Rabat", Label: "GPE"},
		{Text: "Jane Doe", Label: "PERSON"},
	}}
	full, first, last := ResolveName([]string{"Othmane Zrioual", "Jane Doe"}, ner)
	assert.Equal(t, "Jane Doe", full)
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Doe", last)
}

func TestResolveName_RecognizerErrorKeepsFirstCandidate(t *testing.T) {
	ner := stubNER{err: errors.New("model unavailable")}
	full, _, _ := ResolveName([]string{"Othmane Zrioual"}, ner)
	assert.Equal(t, "Othmane Zrioual", full)
}

func TestResolveName_Empty(t *testing.T) {
	full, first, last := ResolveName(nil, nil)
	assert.Equal(t, "", full)
	assert.Equal(t, "", first)
	assert.Equal(t, "", last)
}

func TestResolveName_MultiTokenSurname(t *testing.T) {
	full, first, last := ResolveName([]string{"Jean Le Goff"}, nil)
	assert.Equal(t, "Jean Le Goff", full)
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Le Goff", last)
}
