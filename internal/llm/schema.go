package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition a parsed response must satisfy.
type Schema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Decode checks value against schema and converts it into out. Shape
// violations and conversion failures are returned as *SchemaMismatchError.
func Decode(value any, schema *Schema, out any) error {
	name := "response"
	if schema != nil {
		name = schema.Name

		compiled, err := compileSchema(schema)
		if err != nil {
			return &SchemaMismatchError{Schema: name, Err: fmt.Errorf("compile schema: %w", err)}
		}
		if err := compiled.Validate(value); err != nil {
			return &SchemaMismatchError{Schema: name, Err: err}
		}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return &SchemaMismatchError{Schema: name, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &SchemaMismatchError{Schema: name, Err: err}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a generic JSON value, not map[string]any with Go slices.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
