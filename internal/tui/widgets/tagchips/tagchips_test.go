package tagchips

import (
    "testing"

    "codetool/internal/tui/state"
)

func TestPlainChips(t *testing.T) {
    tags := []state.Tag{
        {Kind: state.LANGUAGE, Label: "Rust"},
        {Kind: state.MODE, Label: "EDIT"},
        {Kind: state.MODIFIED},
        {Kind: state.LINES, Value: 3},
    }
    got := View(tags, true)
    want := "[Rust] [EDIT] [Modified] [3 lines]"
    if got != want { t.Fatalf("got %q want %q", got, want) }
}

func TestSingleLineAndReadOnly(t *testing.T) {
    got := View([]state.Tag{{Kind: state.READ_ONLY}, {Kind: state.LINES, Value: 1}}, true)
    if got != "[Read-only] [1 line]" { t.Fatalf("unexpected %q", got) }
}

func TestEmpty(t *testing.T) {
    if View(nil, false) != "" { t.Fatalf("expected empty output") }
}
