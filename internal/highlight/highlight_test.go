package highlight

import (
	"strings"
	"testing"
)

func TestMarkupProducesSpans(t *testing.T) {
	h := NewMarkup()
	out := h.Highlight("func main() {}", "go", "go")
	if !strings.Contains(out, "<span") || !strings.Contains(out, "main") {
		t.Fatalf("expected tagged markup, got %q", out)
	}
	if strings.Contains(out, "<pre") {
		t.Fatalf("surrounding pre must be suppressed: %q", out)
	}
}

func TestMarkupEscapesSource(t *testing.T) {
	out := NewMarkup().Highlight("<b>hi</b>", "html", "html")
	if strings.Contains(out, "<b>") {
		t.Fatalf("source markup must be escaped: %q", out)
	}
}

func TestHighlightIsDeterministic(t *testing.T) {
	h := NewTerminal("dracula", "terminal256")
	a := h.Highlight("x = 1\n", "python", "python")
	b := h.Highlight("x = 1\n", "python", "python")
	if a != b {
		t.Fatalf("highlighting must be pure")
	}
	if !strings.Contains(a, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", a)
	}
}

func TestUnknownGrammarFallsBack(t *testing.T) {
	h := NewTerminal("no-such-style", "no-such-formatter")
	out := h.Highlight("plain words", "no-such-grammar", "nope")
	if !strings.Contains(out, "plain") {
		t.Fatalf("fallback lost the text: %q", out)
	}
}

func TestPlain(t *testing.T) {
	if Plain.Highlight("a\tb", "go", "go") != "a\tb" {
		t.Fatalf("plain must be identity")
	}
}
