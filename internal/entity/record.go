package entity

import (
	"encoding/json"
	"time"
)

// ExtractedRecord is the flat, JSON-serializable output of an extraction.
// Every field is independently optional: a missing field never prevents the
// others from being populated.
type ExtractedRecord struct {
	ExtractionDate   string   `json:"extraction_date,omitempty"`
	DetectedLanguage string   `json:"detected_language,omitempty"`
	Emails           []string `json:"emails,omitempty"`
	Phones           []string `json:"phones,omitempty"`
	Dates            []string `json:"dates,omitempty"`
	CIN              string   `json:"cin,omitempty"`
	BirthDate        string   `json:"birth_date,omitempty"` // ISO YYYY-MM-DD
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	PotentialName    string   `json:"potential_name,omitempty"`
	KeywordsFound    []string `json:"keywords_found,omitempty"`
	LanguagesFound   []string `json:"languages_found,omitempty"`
	MatchRatio       float64  `json:"match_ratio"`
}

// Stamp sets the extraction date metadata. Kept separate from field
// extraction so two runs over the same bytes compare equal once the
// stamp is cleared.
func (r *ExtractedRecord) Stamp(now time.Time) {
	r.ExtractionDate = now.UTC().Format(time.RFC3339)
}

// MarshalMap returns the record as a generic JSON-compatible mapping,
// the shape handed to the persistence collaborator.
func (r *ExtractedRecord) MarshalMap() (map[string]any, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
