package widgets

import (
	"bytes"
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// compileSchema turns a descriptor config schema into a compiled JSON Schema.
func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// ValidateConfiguration checks a per-widget configuration payload against the
// descriptor's schema. Descriptors without a schema accept any payload.
func (c *Catalog) ValidateConfiguration(key string, payload map[string]any) error {
	descriptor, ok := c.Lookup(key)
	if !ok || descriptor.Schema == nil {
		return nil
	}
	compiled, err := compileSchema(descriptor.Schema)
	if err != nil {
		return err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return compiled.Validate(payload)
}
