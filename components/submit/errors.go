package submit

import (
	"fmt"
	"net/http"
	"strings"
)

// ArgumentError reports a constructor argument that failed validation. No
// component instance exists when one is returned.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must not be empty"
	}
	return fmt.Sprintf("submit: argument %q %s", e.Name, reason)
}

func notEmpty(name, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ArgumentError{Name: name}
	}
	return trimmed, nil
}

// HTTPError lets guard and model errors carry the status code the handler
// should respond with.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError pairs an error with an HTTP status code.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}
