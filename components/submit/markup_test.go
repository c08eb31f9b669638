package submit

import (
	"strings"
	"testing"
)

func TestMarkup_ButtonAndRegistrationScript(t *testing.T) {
	c, err := New("save", "profile-template", "#profile-card", WithRoutePath("/api/profile"))
	if err != nil {
		t.Fatalf("new component: %v", err)
	}

	out, err := c.Markup()
	if err != nil {
		t.Fatalf("markup: %v", err)
	}

	if !strings.Contains(out, `<button type="submit" id="save" name="save">`) {
		t.Fatalf("expected button element: %s", out)
	}
	if !strings.Contains(out, "AjaxForm.ajax({") {
		t.Fatalf("expected runtime registration call: %s", out)
	}
	if !strings.Contains(out, `"u":"/api/profile"`) {
		t.Fatalf("expected route path in attributes: %s", out)
	}
	if !strings.Contains(out, "profile-template") || !strings.Contains(out, "#profile-card") {
		t.Fatalf("expected callback parameters in attributes: %s", out)
	}
}

func TestMarkup_SanitizesLabel(t *testing.T) {
	c, err := New("save", "tpl", ".target",
		WithLabel(`<em>Save</em><script>steal()</script>`))
	if err != nil {
		t.Fatalf("new component: %v", err)
	}

	out, err := c.Markup()
	if err != nil {
		t.Fatalf("markup: %v", err)
	}

	if !strings.Contains(out, "<em>Save</em>") {
		t.Fatalf("expected benign markup kept: %s", out)
	}
	if strings.Contains(out, "steal()") {
		t.Fatalf("expected script stripped from label: %s", out)
	}
}

func TestMarkup_Deterministic(t *testing.T) {
	c, err := New("save", "tpl", ".target")
	if err != nil {
		t.Fatalf("new component: %v", err)
	}

	first, err := c.Markup()
	if err != nil {
		t.Fatalf("markup: %v", err)
	}
	second, err := c.Markup()
	if err != nil {
		t.Fatalf("markup: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical markup:\n%s\n%s", first, second)
	}
}
