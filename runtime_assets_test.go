package ajaxform

import (
	"io/fs"
	"strings"
	"testing"
)

func TestClientAssetsFSContainsRuntime(t *testing.T) {
	fsys := ClientAssetsFS()
	data, err := fs.ReadFile(fsys, "ajaxform.runtime.js")
	if err != nil {
		t.Fatalf("expected runtime script to be readable: %v", err)
	}
	if !strings.Contains(string(data), "AjaxForm.ajax") && !strings.Contains(string(data), "ajax: ajax") {
		t.Fatalf("expected runtime script to register AjaxForm.ajax")
	}
}

func TestClientAssetsFSContainsTemplatingEngine(t *testing.T) {
	fsys := ClientAssetsFS()
	data, err := fs.ReadFile(fsys, "handlebars.runtime.js")
	if err != nil {
		t.Fatalf("expected templating engine to be readable: %v", err)
	}
	if !strings.Contains(string(data), "compile") {
		t.Fatalf("expected templating engine to expose compile")
	}
}
