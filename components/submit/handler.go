package submit

import (
	"errors"
	"io"
	"net/http"
)

// Handler returns the submit endpoint. It reads the form's bound object,
// serializes it, and writes the JSON text as the complete response body,
// replacing any default response handling. Exactly one response per request,
// no retries; a serialization failure surfaces as a 500.
func (c *Component) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != c.opts.Method {
			w.Header().Set("Allow", c.opts.Method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if c.opts.Guard != nil {
			if err := c.opts.Guard(r); err != nil {
				writeError(w, err, http.StatusForbidden)
				return
			}
		}

		model, err := c.opts.Model(r)
		if err != nil {
			writeError(w, err, http.StatusBadRequest)
			return
		}

		payload, err := c.opts.Serializer(model)
		if err != nil {
			writeError(w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, payload)
	})
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		if status := httpErr.StatusCode(); status > 0 {
			code = status
		}
	}
	http.Error(w, http.StatusText(code), code)
}
