// Package ajaxform wires a form-submit button to a client-side template: on
// submission the form's bound object is serialized to JSON, returned as the
// complete AJAX response, and rendered into a target element by a generated
// client callback.
//
// The root package re-exports the pieces most integrations need; the
// underlying packages (components/submit, pkg/ajax, pkg/assets,
// pkg/serialize) remain importable for finer control.
package ajaxform

import (
	"github.com/goliatone/go-ajaxform/components/submit"
	"github.com/goliatone/go-ajaxform/pkg/assets"
	"github.com/goliatone/go-ajaxform/pkg/serialize"
)

// Component is the templated AJAX submit button.
type Component = submit.Component

// Options configures a Component.
type Options = submit.Options

// OptionFn mutates Options during construction.
type OptionFn = submit.OptionFn

// Serializer converts a bound model object to JSON text.
type Serializer = serialize.Func

// Ref is a script resource reference for head contributions.
type Ref = assets.Ref

// Registry is the read-only script resource lookup.
type Registry = assets.Registry

// New constructs a submit component. See submit.New.
func New(id, templateID, targetSelector string, fns ...OptionFn) (*Component, error) {
	return submit.New(id, templateID, targetSelector, fns...)
}

// JSONSerializer returns the default JSON serializer.
func JSONSerializer() Serializer {
	return serialize.JSON()
}

// DefaultScriptRefs returns the script references for the embedded client
// runtimes served under mountPath.
func DefaultScriptRefs(mountPath string) []Ref {
	return assets.DefaultRefs(mountPath)
}
