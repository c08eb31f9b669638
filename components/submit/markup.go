package submit

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-ajaxform/pkg/template"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const buttonTemplate = "button.html"

var (
	markupEngineOnce sync.Once
	markupEngine     *template.Engine
	markupEngineErr  error

	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// TemplatesFS exposes the embedded markup templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Markup renders the button element together with the script that registers
// its AJAX call attributes with the client runtime. The label is sanitized
// before it is embedded.
func (c *Component) Markup() (string, error) {
	engine, err := c.engine()
	if err != nil {
		return "", err
	}

	attrs, err := c.CallAttributes().MarshalScript()
	if err != nil {
		return "", fmt.Errorf("submit: marshal call attributes: %w", err)
	}

	rendered, err := engine.RenderTemplate(buttonTemplate, map[string]any{
		"id":    c.id,
		"label": sanitizeLabel(c.opts.Label),
		"attrs": attrs,
	})
	if err != nil {
		return "", fmt.Errorf("submit: render markup: %w", err)
	}
	return rendered, nil
}

func (c *Component) engine() (*template.Engine, error) {
	if c.opts.Engine != nil {
		return c.opts.Engine, nil
	}
	markupEngineOnce.Do(func() {
		markupEngine, markupEngineErr = template.New(template.WithFS(TemplatesFS()))
	})
	if markupEngineErr != nil {
		return nil, fmt.Errorf("submit: build markup engine: %w", markupEngineErr)
	}
	return markupEngine, nil
}

func sanitizeLabel(label string) string {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.UGCPolicy()
	})
	return labelPolicy.Sanitize(label)
}
