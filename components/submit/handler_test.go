package submit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-ajaxform/pkg/serialize"
)

func newTestComponent(t *testing.T, fns ...OptionFn) *Component {
	t.Helper()
	c, err := New("save", "profile-template", "#profile-card", fns...)
	if err != nil {
		t.Fatalf("new component: %v", err)
	}
	return c
}

func postForm(h http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ServesModelAsJSON(t *testing.T) {
	type profile struct {
		Name string `json:"name"`
	}
	c := newTestComponent(t, WithModel(func(*http.Request) (any, error) {
		return profile{Name: "Ada"}, nil
	}))

	rec := postForm(c.Handler(), nil)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json; charset=UTF-8" {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if body := rec.Body.String(); body != `{"name":"Ada"}` {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestHandler_DefaultModelEchoesFormValues(t *testing.T) {
	c := newTestComponent(t)

	rec := postForm(c.Handler(), url.Values{
		"name": {"Ada"},
		"tag":  {"math", "engines"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"name":"Ada"`) {
		t.Fatalf("expected single value as string: %s", body)
	}
	if !strings.Contains(body, `"tag":["math","engines"]`) {
		t.Fatalf("expected repeated values as array: %s", body)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	c := newTestComponent(t)

	req := httptest.NewRequest(http.MethodGet, "/api/submit", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestHandler_SerializationFailureIsServerError(t *testing.T) {
	c := newTestComponent(t, WithSerializer(func(any) (string, error) {
		return "", fmt.Errorf("unsupported object shape")
	}))

	rec := postForm(c.Handler(), url.Values{"name": {"Ada"}})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestHandler_GuardRejectsWithStatus(t *testing.T) {
	c := newTestComponent(t, WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: fmt.Errorf("no session")}
	}))

	rec := postForm(c.Handler(), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandler_GuardDefaultIsForbidden(t *testing.T) {
	c := newTestComponent(t, WithGuard(func(*http.Request) error {
		return fmt.Errorf("nope")
	}))

	rec := postForm(c.Handler(), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestHandler_ValidatedSerializerRejectsBadModel(t *testing.T) {
	schema, err := serialize.SchemaFromDocument(context.Background(), []byte(`
openapi: 3.0.3
info:
  title: profiles
  version: 1.0.0
paths: {}
components:
  schemas:
    Profile:
      type: object
      required: [name]
      properties:
        name:
          type: string
`), "Profile")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	c := newTestComponent(t, WithSerializer(serialize.ValidatedJSON(schema)))

	rec := postForm(c.Handler(), url.Values{"name": {"Ada"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected conforming submission to pass, got %d", rec.Code)
	}

	rec = postForm(c.Handler(), url.Values{"other": {"x"}})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected non-conforming submission to fail, got %d", rec.Code)
	}
}
