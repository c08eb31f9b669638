// Package script generates the client-side callback code the submit widget
// wires as its AJAX success hook. The callback skeleton lives in an embedded
// template with two substitution points: the id of the client template element
// and the CSS selector of the element that receives the rendered markup.
package script

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-ajaxform/pkg/ajax"
	"github.com/goliatone/go-ajaxform/pkg/template"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const callbackTemplate = "render-callback.js"

var (
	defaultEngineOnce sync.Once
	defaultEngine     *template.Engine
	defaultEngineErr  error
)

// TemplatesFS exposes the embedded callback template bundle.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// RenderCallback renders the success-callback skeleton with the given
// template id and target selector bound, returning the result as verbatim
// code. Output is deterministic for a given pair of parameters.
func RenderCallback(templateID, targetSelector string) (ajax.Code, error) {
	engine, err := sharedEngine()
	if err != nil {
		return ajax.Code{}, err
	}
	return RenderCallbackWith(engine, templateID, targetSelector)
}

// RenderCallbackWith renders the callback through a caller-supplied engine,
// which must be able to resolve the "render-callback.js" template.
func RenderCallbackWith(engine *template.Engine, templateID, targetSelector string) (ajax.Code, error) {
	if engine == nil {
		return ajax.Code{}, fmt.Errorf("script: missing template engine")
	}

	templateID = strings.TrimSpace(templateID)
	targetSelector = strings.TrimSpace(targetSelector)
	if templateID == "" {
		return ajax.Code{}, fmt.Errorf("script: template id is required")
	}
	if targetSelector == "" {
		return ajax.Code{}, fmt.Errorf("script: target selector is required")
	}

	rendered, err := engine.RenderTemplate(callbackTemplate, map[string]any{
		"templateId":     templateID,
		"targetSelector": targetSelector,
	})
	if err != nil {
		return ajax.Code{}, fmt.Errorf("script: render callback: %w", err)
	}
	return ajax.Function(rendered), nil
}

func sharedEngine() (*template.Engine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = template.New(template.WithFS(TemplatesFS()))
	})
	if defaultEngineErr != nil {
		return nil, fmt.Errorf("script: build template engine: %w", defaultEngineErr)
	}
	return defaultEngine, nil
}
