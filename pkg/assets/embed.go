package assets

import (
	"embed"
	"io/fs"
)

//go:embed dist/*.js
var embeddedScripts embed.FS

// Default script ref names. DefaultRegistry wires them with the load-order
// edges the submit widget requires: the templating engine and the AJAX
// runtime both depend on the base query utility.
const (
	QueryLibRef   = "querylib"
	HandlebarsRef = "handlebars"
	RuntimeRef    = "ajaxform"
)

// DefaultMountPath is the URL prefix DefaultRegistry assumes the embedded
// scripts are served under.
const DefaultMountPath = "/assets/ajaxform"

// FS exposes the embedded client scripts so applications can serve them
// without a frontend build step.
//
// Typical mount:
//
//	mux.Handle("/assets/ajaxform/",
//	  http.StripPrefix("/assets/ajaxform/",
//	    http.FileServerFS(assets.FS()),
//	  ),
//	)
func FS() fs.FS {
	sub, err := fs.Sub(embeddedScripts, "dist")
	if err != nil {
		return embeddedScripts
	}
	return sub
}

// DefaultRefs returns the script references for the embedded client runtimes,
// served under mountPath (DefaultMountPath when empty).
func DefaultRefs(mountPath string) []Ref {
	if mountPath == "" {
		mountPath = DefaultMountPath
	}
	return []Ref{
		{Name: QueryLibRef, Path: mountPath + "/query.runtime.js"},
		{Name: HandlebarsRef, Path: mountPath + "/handlebars.runtime.js", DependsOn: []string{QueryLibRef}},
		{Name: RuntimeRef, Path: mountPath + "/ajaxform.runtime.js", DependsOn: []string{QueryLibRef}},
	}
}

// DefaultRegistry builds a registry over the embedded client runtimes.
func DefaultRegistry(mountPath string) (*Registry, error) {
	return NewRegistry(DefaultRefs(mountPath)...)
}
