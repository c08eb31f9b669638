// Package assets manages the client script resources a page render needs:
// a read-only registry of script references with dependency edges, a
// per-render header collector that emits each reference exactly once in load
// order, optional theme-based URL resolution, and the embedded demo runtimes
// (query utility, templating engine, AJAX runtime).
//
// The registry is initialized once at startup, either in code (NewRegistry,
// DefaultRegistry) or from a YAML config file (LoadConfig), and is safe for
// concurrent reads.
package assets
