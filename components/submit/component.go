package submit

import (
	"fmt"

	"github.com/goliatone/go-ajaxform/pkg/ajax"
	"github.com/goliatone/go-ajaxform/pkg/assets"
	"github.com/goliatone/go-ajaxform/pkg/script"
	"github.com/goliatone/go-ajaxform/pkg/template"
)

// Component is a form-submit button that returns the form's bound object as
// a JSON response and renders it client-side through a named template.
//
// All state is fixed at construction; a Component is safe for concurrent
// requests without synchronization.
type Component struct {
	id             string
	templateID     string
	targetSelector string
	opts           Options
	success        ajax.Code
	registry       *assets.Registry
}

// New constructs the component. id names the button element, templateID the
// client template element, and targetSelector the element that receives the
// rendered markup. All three must be non-empty; a violation returns
// *ArgumentError and no component.
//
// The client success callback is rendered here, once, and never changes for
// the component's lifetime.
func New(id, templateID, targetSelector string, fns ...OptionFn) (*Component, error) {
	id, err := notEmpty("id", id)
	if err != nil {
		return nil, err
	}
	templateID, err = notEmpty("templateId", templateID)
	if err != nil {
		return nil, err
	}
	targetSelector, err = notEmpty("targetSelector", targetSelector)
	if err != nil {
		return nil, err
	}

	opts := NewOptions(fns...)

	success, err := script.RenderCallback(templateID, targetSelector)
	if err != nil {
		return nil, fmt.Errorf("submit: build success callback: %w", err)
	}

	registry := opts.Registry
	if registry == nil {
		registry, err = assets.DefaultRegistry("")
		if err != nil {
			return nil, fmt.Errorf("submit: build default asset registry: %w", err)
		}
	}

	return &Component{
		id:             id,
		templateID:     templateID,
		targetSelector: targetSelector,
		opts:           opts,
		success:        success,
		registry:       registry,
	}, nil
}

// ID returns the component id.
func (c *Component) ID() string { return c.id }

// TemplateID returns the client template element id bound at construction.
func (c *Component) TemplateID() string { return c.templateID }

// TargetSelector returns the CSS selector bound at construction.
func (c *Component) TargetSelector() string { return c.targetSelector }

// SuccessCallback returns the pre-rendered client success callback.
func (c *Component) SuccessCallback() ajax.Code { return c.success }

// FormID returns the id of the form element the client runtime binds.
func (c *Component) FormID() string {
	if c.opts.FormID != "" {
		return c.opts.FormID
	}
	return c.id + "-form"
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// CallAttributes builds the AJAX call configuration for one render: JSON
// response parsing, envelope processing off, and the four lifecycle hooks.
// The before and complete hooks only log diagnostics client-side; the
// precondition always lets the call proceed and exists as a gating point.
func (c *Component) CallAttributes() ajax.CallAttributes {
	prefix := template.EscapeJSString(c.opts.ClientLogPrefix)

	listener := ajax.CallListener{
		Before:       ajax.Script("AjaxForm.Log.info('" + prefix + ": executing a before handler');"),
		Complete:     ajax.Script("AjaxForm.Log.info('" + prefix + ": executing a complete handler. Status: ' + textStatus);"),
		Precondition: ajax.Script("return true;"),
		Success:      c.success,
	}

	return ajax.CallAttributes{
		URL:             c.opts.RoutePath,
		Method:          c.opts.Method,
		FormID:          c.FormID(),
		Channel:         c.opts.Channel,
		DataType:        "json",
		ProcessEnvelope: false,
		Listeners:       []ajax.CallListener{listener},
	}
}

// RenderHead contributes the component's client script dependencies to the
// page head: the templating engine and the AJAX runtime, each declared over
// the base query utility so load order places the utility first.
func (c *Component) RenderHead(h *assets.HeaderResponse) error {
	for _, name := range c.opts.HeadRefs {
		if err := h.Render(name); err != nil {
			return fmt.Errorf("submit: contribute %q: %w", name, err)
		}
	}
	return nil
}

// HeadTags is a convenience for single-component pages: it runs RenderHead
// against a fresh collector over the component's registry and returns the
// script tag block. Pages with several components should share one
// HeaderResponse and call RenderHead instead.
func (c *Component) HeadTags() (string, error) {
	var headerOpts []assets.HeaderOption
	if c.opts.Resolver != nil {
		headerOpts = append(headerOpts, assets.WithURLResolver(c.opts.Resolver))
	}
	h := assets.NewHeaderResponse(c.registry, headerOpts...)
	if err := c.RenderHead(h); err != nil {
		return "", err
	}
	return h.ScriptTags(), nil
}
