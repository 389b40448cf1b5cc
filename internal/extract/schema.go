package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// envelopeSchema returns a JSON-Schema (draft 2020-12 subset) for the
// response envelope as a generic map. Validated locally before the payload
// is trusted.
func envelopeSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"success":          map[string]any{"type": "boolean"},
			"error":            map[string]any{"type": []string{"string", "null"}},
			"raw_llama_output": map[string]any{"type": []string{"string", "null"}},
		},
		"required": []string{"success"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
