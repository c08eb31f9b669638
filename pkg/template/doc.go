// Package template wraps a pongo2-backed template set behind the
// github.com/goliatone/go-template rendering surface (Render, RenderTemplate,
// RenderString). The widget packages use it to render client callback scripts
// and component markup from embedded template files.
package template
