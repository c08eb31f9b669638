package template

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var filtersOnce sync.Once

func registerDefaultFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("trim") {
			_ = pongo2.RegisterFilter("trim", filterTrim)
		}
		if !pongo2.FilterExists("jsstr") {
			_ = pongo2.RegisterFilter("jsstr", filterJSString)
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// jsstr escapes a value for interpolation inside a single- or double-quoted
// script string literal. The result is marked safe so HTML auto-escaping does
// not mangle it a second time.
func filterJSString(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(EscapeJSString(in.String())), nil
}

var jsStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	" ", ` `,
	" ", ` `,
	"</", `<\/`,
)

// EscapeJSString escapes s for embedding inside a script string literal.
func EscapeJSString(s string) string {
	return jsStringEscaper.Replace(s)
}
