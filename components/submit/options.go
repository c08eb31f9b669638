package submit

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-ajaxform/pkg/assets"
	"github.com/goliatone/go-ajaxform/pkg/serialize"
	"github.com/goliatone/go-ajaxform/pkg/template"
)

// GuardFunc runs before the model is read. Returning an error rejects the
// submission; wrap with StatusError to pick the response code.
type GuardFunc func(r *http.Request) error

// ModelFunc reads the form's current bound object from the request.
type ModelFunc func(r *http.Request) (any, error)

type Options struct {
	// RoutePath is the submit endpoint path, relative to the mount base.
	RoutePath string
	// Method is the HTTP method of the AJAX call.
	Method string
	// FormID names the form element the client runtime binds. Empty derives
	// "<component id>-form".
	FormID string
	// Channel serializes concurrent calls client-side.
	Channel string
	// Label is the button label; HTML is sanitized before rendering.
	Label string
	// ClientLogPrefix prefixes the diagnostic messages the before/complete
	// hooks log in the browser console.
	ClientLogPrefix string
	// HeadRefs are the script refs the component contributes to the page
	// head. Dependencies are pulled in automatically.
	HeadRefs []string

	Serializer serialize.Func
	Model      ModelFunc
	Guard      GuardFunc
	Engine     *template.Engine
	Registry   *assets.Registry
	Resolver   assets.URLResolver
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/submit",
		Method:          http.MethodPost,
		Channel:         "0|s",
		Label:           "Submit",
		ClientLogPrefix: "[ajaxform]",
		HeadRefs:        []string{assets.HandlebarsRef, assets.RuntimeRef},
		Serializer:      serialize.JSON(),
		Model:           FormValues,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/submit"
	}
	if opts.Method == "" {
		opts.Method = http.MethodPost
	}
	if opts.Label == "" {
		opts.Label = "Submit"
	}
	if opts.Serializer == nil {
		opts.Serializer = serialize.JSON()
	}
	if opts.Model == nil {
		opts.Model = FormValues
	}
	if opts.HeadRefs != nil {
		opts.HeadRefs = append([]string{}, opts.HeadRefs...)
	}
	return opts
}

// FormValues is the default ModelFunc: the submitted form fields as a map,
// single-valued fields as strings and repeated fields as string slices.
func FormValues(r *http.Request) (any, error) {
	if err := r.ParseForm(); err != nil {
		return nil, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("submit: parse form: %w", err)}
	}
	out := make(map[string]any, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) == 1 {
			out[key] = values[0]
			continue
		}
		out[key] = append([]string{}, values...)
	}
	return out, nil
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithMethod(method string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Method = method
	}
}

func WithFormID(id string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormID = id
	}
}

func WithChannel(channel string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Channel = channel
	}
}

func WithLabel(label string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Label = label
	}
}

func WithClientLogPrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ClientLogPrefix = prefix
	}
}

func WithHeadRefs(refs ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HeadRefs = append([]string{}, refs...)
	}
}

func WithSerializer(fn serialize.Func) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Serializer = fn
	}
}

func WithModel(fn ModelFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Model = fn
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithEngine(engine *template.Engine) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Engine = engine
	}
}

func WithRegistry(registry *assets.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Registry = registry
	}
}

func WithURLResolver(resolver assets.URLResolver) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Resolver = resolver
	}
}
