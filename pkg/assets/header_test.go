package assets

import (
	"strings"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(DefaultRefs("")...)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return reg
}

func TestHeaderResponse_DependenciesFirstAndOnce(t *testing.T) {
	h := NewHeaderResponse(testRegistry(t))

	if err := h.Render(HandlebarsRef); err != nil {
		t.Fatalf("render: %v", err)
	}
	// Contributing again within the same render must be a no-op.
	if err := h.Render(HandlebarsRef); err != nil {
		t.Fatalf("render again: %v", err)
	}

	tags := h.ScriptTags()
	if got := strings.Count(tags, "handlebars.runtime.js"); got != 1 {
		t.Fatalf("expected handlebars exactly once, got %d:\n%s", got, tags)
	}
	if got := strings.Count(tags, "query.runtime.js"); got != 1 {
		t.Fatalf("expected query utility exactly once, got %d:\n%s", got, tags)
	}
	if strings.Index(tags, "query.runtime.js") > strings.Index(tags, "handlebars.runtime.js") {
		t.Fatalf("query utility must load before handlebars:\n%s", tags)
	}
}

func TestHeaderResponse_DiamondDependency(t *testing.T) {
	h := NewHeaderResponse(testRegistry(t))

	if err := h.Render(HandlebarsRef); err != nil {
		t.Fatalf("render handlebars: %v", err)
	}
	if err := h.Render(RuntimeRef); err != nil {
		t.Fatalf("render runtime: %v", err)
	}

	tags := h.ScriptTags()
	if got := strings.Count(tags, "query.runtime.js"); got != 1 {
		t.Fatalf("shared dependency emitted %d times:\n%s", got, tags)
	}
}

func TestHeaderResponse_UnknownRef(t *testing.T) {
	h := NewHeaderResponse(testRegistry(t))
	if err := h.Render("nope"); err == nil {
		t.Fatalf("expected error for unknown ref")
	}
}

func TestHeaderResponse_ResolverOverridesURL(t *testing.T) {
	h := NewHeaderResponse(testRegistry(t), WithURLResolver(staticResolver{
		HandlebarsRef: "/themes/acme/hb.js",
	}))

	if err := h.Render(HandlebarsRef); err != nil {
		t.Fatalf("render: %v", err)
	}

	tags := h.ScriptTags()
	if !strings.Contains(tags, "/themes/acme/hb.js") {
		t.Fatalf("expected themed url, got:\n%s", tags)
	}
	// The dependency has no themed mapping and keeps its registry path.
	if !strings.Contains(tags, "query.runtime.js") {
		t.Fatalf("expected fallback url for dependency, got:\n%s", tags)
	}
}

type staticResolver map[string]string

func (r staticResolver) ResolveAsset(name string) string { return r[name] }
