package diff

import (
    "strings"
    "testing"

    "codetool/internal/tui/state"
)

func TestUnchanged(t *testing.T) {
    out := NewDiffView().View(state.UIState{NoColor: true}, "a\nb", "a\nb")
    if !strings.Contains(out, "No changes") { t.Fatalf("expected no-changes marker: %q", out) }
}

func TestReplacedLine(t *testing.T) {
    out := NewDiffView().View(state.UIState{NoColor: true}, "a\nb\nc", "a\nx\nc")
    want := "SAVED vs CURRENT\n  a\n- b\n+ x\n  c\n"
    if out != want { t.Fatalf("got:\n%s\nwant:\n%s", out, want) }
}

func TestAddedAndRemoved(t *testing.T) {
    out := NewDiffView().View(state.UIState{NoColor: true}, "keep\ngone\n", "keep\nnew1\nnew2\n")
    for _, w := range []string{"  keep", "- gone", "+ new1", "+ new2"} {
        if !strings.Contains(out, w) { t.Fatalf("expected %q in:\n%s", w, out) }
    }
}

func TestCharLevelPair(t *testing.T) {
    out := NewDiffView().View(state.UIState{NoColor: true}, "x := 1", "x := 2")
    if !strings.Contains(out, "- x := 1\n") || !strings.Contains(out, "+ x := 2\n") {
        t.Fatalf("unexpected pair output:\n%s", out)
    }
}
