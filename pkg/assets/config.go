package assets

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

type configDocument struct {
	Scripts []configRef `yaml:"scripts"`
}

type configRef struct {
	Name      string   `yaml:"name"`
	Path      string   `yaml:"path"`
	DependsOn []string `yaml:"depends_on"`
}

// LoadConfig parses a YAML script-registry document:
//
//	scripts:
//	  - name: querylib
//	    path: /assets/query.runtime.js
//	  - name: handlebars
//	    path: /assets/handlebars.runtime.js
//	    depends_on: [querylib]
//
// The resulting registry is validated exactly like NewRegistry.
func LoadConfig(data []byte) (*Registry, error) {
	var doc configDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("assets: parse config: %w", err)
	}
	if len(doc.Scripts) == 0 {
		return nil, fmt.Errorf("assets: config declares no scripts")
	}

	refs := make([]Ref, 0, len(doc.Scripts))
	for _, entry := range doc.Scripts {
		refs = append(refs, Ref{
			Name:      entry.Name,
			Path:      entry.Path,
			DependsOn: entry.DependsOn,
		})
	}
	return NewRegistry(refs...)
}

// LoadConfigFS reads and parses a registry config file from fsys.
func LoadConfigFS(fsys fs.FS, path string) (*Registry, error) {
	if fsys == nil {
		return nil, fmt.Errorf("assets: missing filesystem")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read config %s: %w", path, err)
	}
	return LoadConfig(data)
}
