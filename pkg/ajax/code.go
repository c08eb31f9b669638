package ajax

import "strings"

// Code is a fragment of client-side script bound to a call lifecycle hook.
// Snippet code is wrapped in a function shell with the hook's canonical
// parameter list when the attributes are serialized; function code is emitted
// verbatim, exactly as provided.
type Code struct {
	body     string
	verbatim bool
}

// Script returns a Code value holding a plain statement list. The serializer
// wraps it in a function shell so the snippet receives the hook parameters.
func Script(body string) Code {
	return Code{body: strings.TrimSpace(body)}
}

// Function returns a Code value holding a complete function source. It is
// rendered verbatim into the attribute payload, without quoting or wrapping,
// so the client runtime receives executable code rather than a string.
func Function(src string) Code {
	return Code{body: strings.TrimSpace(src), verbatim: true}
}

// IsZero reports whether the code fragment is empty.
func (c Code) IsZero() bool {
	return c.body == ""
}

// Verbatim reports whether the fragment is emitted as-is.
func (c Code) Verbatim() bool {
	return c.verbatim
}

func (c Code) String() string {
	return c.body
}
