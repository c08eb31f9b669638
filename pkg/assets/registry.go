package assets

import (
	"fmt"
	"sort"
	"strings"
)

// Ref is an immutable script resource reference. Name keys the registry,
// Path is the URL the script is served from, and DependsOn names other refs
// that must load first.
type Ref struct {
	Name      string
	Path      string
	DependsOn []string
}

// Registry is a read-only lookup of script references, built once at startup.
// Construction validates names, dependency edges, and rejects cycles, so a
// Registry that exists is always renderable.
type Registry struct {
	refs  map[string]Ref
	order []string
}

// NewRegistry builds a registry from the given refs. Names must be non-empty
// and unique; every dependency must name another ref in the set.
func NewRegistry(refs ...Ref) (*Registry, error) {
	reg := &Registry{
		refs:  make(map[string]Ref, len(refs)),
		order: make([]string, 0, len(refs)),
	}

	for _, ref := range refs {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			return nil, fmt.Errorf("assets: script ref with empty name")
		}
		if _, exists := reg.refs[name]; exists {
			return nil, fmt.Errorf("assets: duplicate script ref %q", name)
		}
		clean := Ref{
			Name: name,
			Path: strings.TrimSpace(ref.Path),
		}
		if clean.Path == "" {
			return nil, fmt.Errorf("assets: script ref %q has no path", name)
		}
		for _, dep := range ref.DependsOn {
			dep = strings.TrimSpace(dep)
			if dep == "" {
				continue
			}
			clean.DependsOn = append(clean.DependsOn, dep)
		}
		reg.refs[name] = clean
		reg.order = append(reg.order, name)
	}

	for _, name := range reg.order {
		for _, dep := range reg.refs[name].DependsOn {
			if _, ok := reg.refs[dep]; !ok {
				return nil, fmt.Errorf("assets: script ref %q depends on unknown ref %q", name, dep)
			}
		}
	}

	if err := reg.checkCycles(); err != nil {
		return nil, err
	}
	return reg, nil
}

// Lookup returns the ref registered under name.
func (r *Registry) Lookup(name string) (Ref, bool) {
	if r == nil {
		return Ref{}, false
	}
	ref, ok := r.refs[strings.TrimSpace(name)]
	return ref, ok
}

// Names returns the registered ref names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := append([]string(nil), r.order...)
	sort.Strings(out)
	return out
}

func (r *Registry) checkCycles() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(r.refs))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("assets: dependency cycle through script ref %q", name)
		}
		state[name] = visiting
		for _, dep := range r.refs[name].DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, name := range r.order {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
