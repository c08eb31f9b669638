package script

import (
	"strings"
	"testing"
)

func TestRenderCallback_SubstitutesBothParameters(t *testing.T) {
	code, err := RenderCallback("profile-template", "#profile-card")
	if err != nil {
		t.Fatalf("render callback: %v", err)
	}
	if !code.Verbatim() {
		t.Fatalf("expected verbatim code")
	}

	src := code.String()
	if !strings.Contains(src, "profile-template") {
		t.Fatalf("template id not substituted: %s", src)
	}
	if !strings.Contains(src, "#profile-card") {
		t.Fatalf("target selector not substituted: %s", src)
	}
	if !strings.HasPrefix(src, "function(attrs, jqXHR, data, textStatus)") {
		t.Fatalf("callback must be a complete function: %s", src)
	}
}

func TestRenderCallback_Deterministic(t *testing.T) {
	first, err := RenderCallback("tpl", ".target")
	if err != nil {
		t.Fatalf("render callback: %v", err)
	}
	second, err := RenderCallback("tpl", ".target")
	if err != nil {
		t.Fatalf("render callback: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("expected deterministic output:\n%s\n%s", first, second)
	}
}

func TestRenderCallback_EscapesQuotes(t *testing.T) {
	code, err := RenderCallback("tpl", `[data-zone="main"]`)
	if err != nil {
		t.Fatalf("render callback: %v", err)
	}
	if !strings.Contains(code.String(), `[data-zone=\"main\"]`) {
		t.Fatalf("selector quotes not escaped: %s", code.String())
	}
}

func TestRenderCallback_RejectsEmptyParameters(t *testing.T) {
	if _, err := RenderCallback("", ".target"); err == nil {
		t.Fatalf("expected error for empty template id")
	}
	if _, err := RenderCallback("tpl", "   "); err == nil {
		t.Fatalf("expected error for blank target selector")
	}
}
