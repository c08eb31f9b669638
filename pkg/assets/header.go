package assets

import (
	"fmt"
	"html"
	"strings"
)

// URLResolver maps a script ref name to the URL it should be served from.
// Returning "" falls back to the ref's own path.
type URLResolver interface {
	ResolveAsset(name string) string
}

// HeaderOption configures a HeaderResponse.
type HeaderOption func(*HeaderResponse)

// WithURLResolver routes script URLs through a resolver, typically a theme.
func WithURLResolver(resolver URLResolver) HeaderOption {
	return func(h *HeaderResponse) {
		h.resolver = resolver
	}
}

// HeaderResponse collects script contributions for a single page render.
// Each ref is emitted at most once, with its dependencies ordered first.
// A HeaderResponse is not safe for concurrent use; build one per render.
type HeaderResponse struct {
	registry *Registry
	resolver URLResolver
	seen     map[string]bool
	tags     []string
}

// NewHeaderResponse builds a collector over the given registry.
func NewHeaderResponse(registry *Registry, options ...HeaderOption) *HeaderResponse {
	h := &HeaderResponse{
		registry: registry,
		seen:     make(map[string]bool),
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Render contributes the named script ref and, transitively, everything it
// depends on. Contributing the same ref twice is a no-op.
func (h *HeaderResponse) Render(name string) error {
	if h == nil || h.registry == nil {
		return fmt.Errorf("assets: header response has no registry")
	}
	name = strings.TrimSpace(name)
	ref, ok := h.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("assets: unknown script ref %q", name)
	}
	if h.seen[ref.Name] {
		return nil
	}

	// Mark before descending; the registry already rejects cycles, this
	// just keeps diamond dependencies single-shot.
	h.seen[ref.Name] = true
	for _, dep := range ref.DependsOn {
		if err := h.Render(dep); err != nil {
			return err
		}
	}
	h.tags = append(h.tags, scriptTag(h.url(ref)))
	return nil
}

// Contributed reports whether the named ref has been emitted in this render.
func (h *HeaderResponse) Contributed(name string) bool {
	if h == nil {
		return false
	}
	return h.seen[strings.TrimSpace(name)]
}

// ScriptTags returns the collected script tags, one per line, in load order.
func (h *HeaderResponse) ScriptTags() string {
	if h == nil || len(h.tags) == 0 {
		return ""
	}
	return strings.Join(h.tags, "\n")
}

func (h *HeaderResponse) url(ref Ref) string {
	if h.resolver != nil {
		if resolved := strings.TrimSpace(h.resolver.ResolveAsset(ref.Name)); resolved != "" {
			return resolved
		}
	}
	return ref.Path
}

func scriptTag(url string) string {
	return `<script type="text/javascript" src="` + html.EscapeString(url) + `"></script>`
}
