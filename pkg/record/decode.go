package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode parses a JSON array of flat objects into records. Scalar values keep
// their textual form: strings verbatim, numbers as written, booleans as
// "true"/"false" and null as "". Nested arrays or objects are stored as their
// compact JSON text.
func Decode(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("record: decode rows: %w", err)
	}

	out := make([]Record, 0, len(rows))
	for idx, row := range rows {
		rec := make(Record, len(row))
		for key, value := range row {
			text, err := Stringify(value)
			if err != nil {
				return nil, fmt.Errorf("record: row %d field %q: %w", idx, key, err)
			}
			rec[key] = text
		}
		out = append(out, rec)
	}
	return out, nil
}

// Stringify converts a decoded JSON value into its display string.
func Stringify(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}
