package textedit

import "testing"

func at(s string, caret int) *Buffer {
	b := New(s)
	b.SetCaret(caret)
	return b
}

func TestIndentInsertsAtCaret(t *testing.T) {
	b := at("ab", 1)
	b.Indent()
	if b.Value() != "a  b" || b.Caret() != 3 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestIndentAtOffsetZero(t *testing.T) {
	b := at("ab", 0)
	b.Indent()
	if b.Value() != "  ab" || b.Caret() != 2 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestIndentEmptyBuffer(t *testing.T) {
	var b Buffer
	b.Indent()
	if b.Value() != "  " || b.Caret() != 2 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestOutdentRemovesUnit(t *testing.T) {
	b := at("  ab", 4)
	if !b.Outdent() {
		t.Fatalf("expected outdent to apply")
	}
	if b.Value() != "ab" || b.Caret() != 2 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestOutdentPartialUnitIsNoop(t *testing.T) {
	b := at(" ab", 3)
	if b.Outdent() {
		t.Fatalf("expected no-op")
	}
	if b.Value() != " ab" || b.Caret() != 3 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestOutdentCaretAtZero(t *testing.T) {
	b := at("  ab", 0)
	if !b.Outdent() {
		t.Fatalf("expected outdent to apply")
	}
	if b.Value() != "ab" || b.Caret() != 0 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestOutdentCaretInsideUnitClampsToLineStart(t *testing.T) {
	b := at("x\n  ab", 3)
	if !b.Outdent() {
		t.Fatalf("expected outdent to apply")
	}
	if b.Value() != "x\nab" || b.Caret() != 2 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestOutdentCaretInsidePartialUnitIsNoop(t *testing.T) {
	b := at("x\n ab", 3)
	if b.Outdent() {
		t.Fatalf("expected no-op")
	}
	if b.Value() != "x\n ab" || b.Caret() != 3 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
}

func TestOutdentOnlyTouchesCaretLine(t *testing.T) {
	b := at("  one\n    two\nthree", 10)
	if !b.Outdent() {
		t.Fatalf("expected outdent to apply")
	}
	if b.Value() != "  one\n  two\nthree" || b.Caret() != 8 {
		t.Fatalf("got %q caret %d", b.Value(), b.Caret())
	}
	b.SetCaret(b.Len())
	if b.Outdent() {
		t.Fatalf("last line has no indentation")
	}
}

func TestOutdentShortLine(t *testing.T) {
	b := at("a\n ", 3)
	if b.Outdent() || b.Value() != "a\n " {
		t.Fatalf("short line must not be outdented: %q", b.Value())
	}
}

func TestIndentOutdentRoundTrip(t *testing.T) {
	b := at("func main() {\nreturn\n}", 20)
	b.Home()
	b.Indent()
	b.Indent()
	if !b.Outdent() || !b.Outdent() {
		t.Fatalf("expected two outdents")
	}
	if b.Value() != "func main() {\nreturn\n}" {
		t.Fatalf("got %q", b.Value())
	}
	if b.Outdent() {
		t.Fatalf("third outdent must be a no-op")
	}
}
