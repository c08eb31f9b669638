package assets

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRegistry_LookupAndNames(t *testing.T) {
	reg, err := NewRegistry(
		Ref{Name: "base", Path: "/js/base.js"},
		Ref{Name: "plugin", Path: "/js/plugin.js", DependsOn: []string{"base"}},
	)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	ref, ok := reg.Lookup("plugin")
	if !ok {
		t.Fatalf("expected plugin ref")
	}
	if diff := cmp.Diff(Ref{Name: "plugin", Path: "/js/plugin.js", DependsOn: []string{"base"}}, ref); diff != "" {
		t.Fatalf("ref mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"base", "plugin"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistry_RejectsInvalidRefs(t *testing.T) {
	cases := []struct {
		name string
		refs []Ref
		want string
	}{
		{
			name: "empty name",
			refs: []Ref{{Name: "  ", Path: "/js/a.js"}},
			want: "empty name",
		},
		{
			name: "missing path",
			refs: []Ref{{Name: "a"}},
			want: "has no path",
		},
		{
			name: "duplicate",
			refs: []Ref{{Name: "a", Path: "/js/a.js"}, {Name: "a", Path: "/js/b.js"}},
			want: "duplicate",
		},
		{
			name: "unknown dependency",
			refs: []Ref{{Name: "a", Path: "/js/a.js", DependsOn: []string{"missing"}}},
			want: "unknown ref",
		},
		{
			name: "cycle",
			refs: []Ref{
				{Name: "a", Path: "/js/a.js", DependsOn: []string{"b"}},
				{Name: "b", Path: "/js/b.js", DependsOn: []string{"a"}},
			},
			want: "cycle",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.refs...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	config := []byte(`
scripts:
  - name: querylib
    path: /assets/query.runtime.js
  - name: handlebars
    path: /assets/handlebars.runtime.js
    depends_on: [querylib]
`)
	reg, err := LoadConfig(config)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ref, ok := reg.Lookup("handlebars")
	if !ok {
		t.Fatalf("expected handlebars ref")
	}
	if len(ref.DependsOn) != 1 || ref.DependsOn[0] != "querylib" {
		t.Fatalf("unexpected dependencies: %#v", ref.DependsOn)
	}
}

func TestLoadConfig_EmptyDocument(t *testing.T) {
	if _, err := LoadConfig([]byte("scripts: []")); err == nil {
		t.Fatalf("expected error for empty config")
	}
}
