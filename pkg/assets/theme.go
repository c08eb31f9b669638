package assets

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeResolver resolves script ref names to themed asset URLs using a
// go-theme selection. Refs without a themed mapping fall back to their
// registry path. The resolver selects once at construction and is read-only
// afterwards.
type ThemeResolver struct {
	prefix string
	files  map[string]string
}

var _ URLResolver = (*ThemeResolver)(nil)

// NewThemeResolver selects the named theme/variant and captures its asset
// mappings.
func NewThemeResolver(selector theme.ThemeSelector, name, variant string) (*ThemeResolver, error) {
	if selector == nil {
		return nil, fmt.Errorf("assets: missing theme selector")
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("assets: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("assets: theme %q has no manifest", name)
	}

	manifest := selection.Manifest
	resolver := &ThemeResolver{
		prefix: strings.TrimRight(manifest.Assets.Prefix, "/"),
		files:  make(map[string]string, len(manifest.Assets.Files)),
	}
	for key, file := range manifest.Assets.Files {
		resolver.files[key] = file
	}
	if v, ok := manifest.Variants[selection.Variant]; ok {
		for key, file := range v.Assets.Files {
			resolver.files[key] = file
		}
	}
	return resolver, nil
}

// ResolveAsset returns the themed URL for the given ref name, or "" when the
// theme does not map it.
func (r *ThemeResolver) ResolveAsset(name string) string {
	if r == nil {
		return ""
	}
	file, ok := r.files[strings.TrimSpace(name)]
	if !ok || file == "" {
		return ""
	}
	if r.prefix == "" {
		return "/" + strings.TrimLeft(file, "/")
	}
	return r.prefix + "/" + strings.TrimLeft(file, "/")
}
