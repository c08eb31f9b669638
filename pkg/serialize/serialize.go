// Package serialize turns a form's bound data object into the JSON text the
// submit widget returns as its AJAX response. The conversion is an injected
// strategy (Func) so callers can swap encodings without subtyping anything;
// JSON is the default.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Func converts a bound model object to its JSON text form. It must be total
// over the caller's valid model values; a returned error surfaces to the
// submitting client as a request-handling failure.
type Func func(v any) (string, error)

// JSON returns the default serializer: encoding/json without HTML escaping,
// since the payload is data for a client template, not markup.
func JSON() Func {
	return func(v any) (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", fmt.Errorf("serialize: encode json: %w", err)
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	}
}
