package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecordJSON_FullRecord(t *testing.T) {
	rec := ExtractedRecord{
		DetectedLanguage: "fr",
		Emails:           []string{"jane.doe@example.com"},
		Phones:           []string{"0612345678"},
		Dates:            []string{"01/02/2023"},
		CIN:              "A123456",
		BirthDate:        "1995-03-12",
		FirstName:        "Othmane",
		LastName:         "Zrioual",
		PotentialName:    "Othmane Zrioual",
		KeywordsFound:    []string{"python"},
		LanguagesFound:   []string{"python", "sql"},
		MatchRatio:       0.5,
	}
	rec.Stamp(time.Now())

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NoError(t, ValidateRecordJSON(b))
}

func TestValidateRecordJSON_EmptyRecordStillValid(t *testing.T) {
	b, err := json.Marshal(ExtractedRecord{})
	require.NoError(t, err)
	assert.NoError(t, ValidateRecordJSON(b))
}

func TestValidateRecordJSON_BadCIN(t *testing.T) {
	assert.Error(t, ValidateRecordJSON([]byte(`{"cin":"123ABC","match_ratio":0}`)))
}

func TestValidateRecordJSON_BadBirthDateFormat(t *testing.T) {
	assert.Error(t, ValidateRecordJSON([]byte(`{"birth_date":"12.03.1995","match_ratio":0}`)))
}

func TestValidateRecordJSON_MatchRatioOutOfRange(t *testing.T) {
	assert.Error(t, ValidateRecordJSON([]byte(`{"match_ratio":1.5}`)))
}

func TestValidateRecordJSON_MissingMatchRatio(t *testing.T) {
	assert.Error(t, ValidateRecordJSON([]byte(`{"detected_language":"fr"}`)))
}

func TestValidateRecordJSON_UnknownFieldRejected(t *testing.T) {
	assert.Error(t, ValidateRecordJSON([]byte(`{"match_ratio":0,"surprise":true}`)))
}

func TestStamp_RFC3339UTC(t *testing.T) {
	var rec ExtractedRecord
	rec.Stamp(time.Date(2024, 5, 1, 14, 30, 0, 0, time.FixedZone("WET", 3600)))
	assert.Equal(t, "2024-05-01T13:30:00Z", rec.ExtractionDate)
}

func TestMarshalMap_OmitsEmptyFields(t *testing.T) {
	m, err := (&ExtractedRecord{CIN: "A123456"}).MarshalMap()
	require.NoError(t, err)
	assert.Equal(t, "A123456", m["cin"])
	assert.Contains(t, m, "match_ratio")
	assert.NotContains(t, m, "emails")
	assert.NotContains(t, m, "first_name")
}
