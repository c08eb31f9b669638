package ajax

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Hook parameter shells. Snippet code is wrapped so it receives the same
// arguments the client runtime passes to registered handler functions.
const (
	beforeParams       = "attrs, jqXHR, settings"
	preconditionParams = "attrs"
	completeParams     = "attrs, jqXHR, textStatus"
	successParams      = "attrs, jqXHR, data, textStatus"
)

// CallAttributes describes one client-side AJAX call: where to send the
// request, how to interpret the response, and which lifecycle hooks run
// around it. The zero value is usable; unset fields are omitted from the
// serialized payload.
type CallAttributes struct {
	// URL receives the request.
	URL string
	// Method is the HTTP method, typically POST for form submits.
	Method string
	// FormID names the form element whose fields are submitted with the call.
	FormID string
	// Channel serializes concurrent calls on the client ("0|s" style).
	Channel string
	// DataType tells the client runtime how to parse the response body.
	// "json" makes the runtime hand parsed JSON to success hooks.
	DataType string
	// ProcessEnvelope controls the runtime's default response processing.
	// When false the response is handed to the hooks untouched, which is
	// required when the body is not the runtime's own envelope format.
	ProcessEnvelope bool
	// Listeners are the lifecycle hooks attached to the call.
	Listeners []CallListener
}

// MarshalScript serializes the attributes to the compact object literal the
// client runtime consumes. String fields are JSON-quoted; hook code is either
// wrapped in a function shell (snippets) or emitted verbatim (functions), so
// the output is an executable object literal rather than strict JSON.
//
// Key order is fixed, making the output deterministic for a given value.
func (a CallAttributes) MarshalScript() (string, error) {
	var b strings.Builder
	b.WriteByte('{')

	first := true
	field := func(key, value string) error {
		if value == "" {
			return nil
		}
		quoted, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("ajax: marshal attribute %q: %w", key, err)
		}
		writeKey(&b, &first, key)
		b.Write(quoted)
		return nil
	}

	if err := field("u", a.URL); err != nil {
		return "", err
	}
	if err := field("m", a.Method); err != nil {
		return "", err
	}
	if err := field("f", a.FormID); err != nil {
		return "", err
	}
	if err := field("ch", a.Channel); err != nil {
		return "", err
	}
	if err := field("dt", a.DataType); err != nil {
		return "", err
	}
	if !a.ProcessEnvelope {
		writeKey(&b, &first, "raw")
		b.WriteString("true")
	}

	hooks := collectHooks(a.Listeners)
	for _, group := range []struct {
		key    string
		params string
		code   []Code
	}{
		{key: "bh", params: beforeParams, code: hooks.before},
		{key: "pre", params: preconditionParams, code: hooks.precondition},
		{key: "sh", params: successParams, code: hooks.success},
		{key: "coh", params: completeParams, code: hooks.complete},
	} {
		if len(group.code) == 0 {
			continue
		}
		writeKey(&b, &first, group.key)
		b.WriteByte('[')
		for i, code := range group.code {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(renderHook(code, group.params))
		}
		b.WriteByte(']')
	}

	b.WriteByte('}')
	return b.String(), nil
}

type hookSet struct {
	before       []Code
	precondition []Code
	success      []Code
	complete     []Code
}

func collectHooks(listeners []CallListener) hookSet {
	var set hookSet
	for _, l := range listeners {
		if !l.Before.IsZero() {
			set.before = append(set.before, l.Before)
		}
		if !l.Precondition.IsZero() {
			set.precondition = append(set.precondition, l.Precondition)
		}
		if !l.Success.IsZero() {
			set.success = append(set.success, l.Success)
		}
		if !l.Complete.IsZero() {
			set.complete = append(set.complete, l.Complete)
		}
	}
	return set
}

func renderHook(code Code, params string) string {
	if code.Verbatim() {
		return code.String()
	}
	return "function(" + params + "){" + code.String() + "}"
}

func writeKey(b *strings.Builder, first *bool, key string) {
	if !*first {
		b.WriteByte(',')
	}
	*first = false
	b.WriteByte('"')
	b.WriteString(key)
	b.WriteString(`":`)
}
