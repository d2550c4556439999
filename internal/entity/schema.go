package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// extracted record, as a generic map. Used locally to validate records before
// they are handed to the persistence collaborator.
func BuildRecordJSONSchema() map[string]any {
	props := map[string]any{
		"extraction_date":   map[string]any{"type": "string"},
		"detected_language": map[string]any{"type": "string"},
		"emails":            stringListProp(),
		"phones":            stringListProp(),
		"dates":             stringListProp(),
		"cin":               map[string]any{"type": "string", "pattern": `^[A-Z]{1,2}\d{5,6}$`},
		"birth_date":        map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"first_name":        map[string]any{"type": "string"},
		"last_name":         map[string]any{"type": "string"},
		"potential_name":    map[string]any{"type": "string"},
		"keywords_found":    stringListProp(),
		"languages_found":   stringListProp(),
		"match_ratio":       map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"match_ratio"},
	}
}

func stringListProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}

// ValidateRecordJSON validates serialized record bytes against the schema.
func ValidateRecordJSON(data []byte) error {
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
