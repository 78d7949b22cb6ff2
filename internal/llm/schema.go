package llm

import (
	"github.com/agrodesk/docextract/constants"
)

// BuildFieldJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is passed to the completion service as a structured-output
// constraint and used locally to validate the response.
func BuildFieldJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.CanonicalFields)+1)
	for _, name := range constants.CanonicalFields {
		if constants.IsNumericField(name) {
			// tolerate numbers or numeric strings; normalization happens after parse
			props[name] = map[string]any{
				"anyOf": []any{
					map[string]any{"type": "number"},
					map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`},
				},
			}
			continue
		}
		props[name] = map[string]any{"type": "string", "minLength": 1}
	}
	props["confidence"] = map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		// nothing is required: a sparse document legitimately yields few fields
	}
}
