package serialize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaFromDocument loads an OpenAPI document and returns the named
// component schema, for use with ValidatedJSON.
func SchemaFromDocument(ctx context.Context, raw []byte, component string) (*openapi3.Schema, error) {
	component = strings.TrimSpace(component)
	if component == "" {
		return nil, fmt.Errorf("serialize: component schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("serialize: load document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("serialize: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("serialize: schema %q not found", component)
	}
	return ref.Value, nil
}

// ValidatedJSON wraps the default JSON serializer with an OpenAPI schema
// check: the model is validated before encoding and a non-conforming value
// fails serialization, surfacing as a request-handling failure.
func ValidatedJSON(schema *openapi3.Schema) Func {
	encode := JSON()
	return func(v any) (string, error) {
		if schema == nil {
			return encode(v)
		}

		payload, err := encode(v)
		if err != nil {
			return "", err
		}

		// VisitJSON expects the generic decoded shape, not the original
		// struct, so validate the encoded payload round-tripped.
		var decoded any
		if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
			return "", fmt.Errorf("serialize: decode for validation: %w", err)
		}
		if err := schema.VisitJSON(decoded); err != nil {
			return "", fmt.Errorf("serialize: model does not match schema: %w", err)
		}
		return payload, nil
	}
}
