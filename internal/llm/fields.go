package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

// FieldsFromJSON converts a validated model response into a FieldSet.
// Unknown keys are ignored, empty values dropped, numerics normalized. The
// model's self-reported confidence is returned separately; it is advisory
// only and never becomes the stored score.
func FieldsFromJSON(data []byte) (extract.FieldSet, float32, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, 0, nil, fmt.Errorf("decode fields: %w", err)
	}

	var advisory float32
	if v, ok := m["confidence"].(float64); ok {
		advisory = float32(v)
	}

	fields := make(extract.FieldSet)
	var dropped []string
	for _, name := range constants.CanonicalFields {
		v, ok := m[name]
		if !ok {
			continue
		}

		var value string
		switch t := v.(type) {
		case string:
			value = strings.TrimSpace(t)
		case float64:
			value = strconv.FormatFloat(t, 'f', -1, 64)
		case nil:
			dropped = append(dropped, name+"(null)")
			continue
		default:
			dropped = append(dropped, name+"(type)")
			continue
		}
		if value == "" {
			dropped = append(dropped, name+"(empty)")
			continue
		}

		f := extract.Field{
			Name:   name,
			Value:  value,
			Source: constants.SourceAIModel,
		}
		if constants.IsNumericField(name) {
			normalized := strings.ReplaceAll(value, ",", ".")
			num, err := strconv.ParseFloat(normalized, 64)
			if err != nil {
				dropped = append(dropped, name+"(non-numeric)")
				continue
			}
			f.Value = normalized
			f.Numeric = &num
		}
		fields[name] = f
	}
	return fields, advisory, dropped, nil
}
