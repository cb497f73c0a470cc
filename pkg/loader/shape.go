package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// recordListSchema is the only shape accepted from the endpoint: an array of
// flat objects. Field names and value types are left open.
var recordListSchema = openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema())

func checkShape(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty body")
	}
	var payload any
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if err := recordListSchema.VisitJSON(payload); err != nil {
		return fmt.Errorf("validate shape: %w", err)
	}
	return nil
}
