package block

import (
    "strings"
    "testing"

    "codetool/internal/tui/state"
    "codetool/internal/tui/util"
)

func TestRenderTagsIntegration(t *testing.T) {
    s := util.BlockStatus{Language: "Python", Mode: state.Edit, Saved: "a", Current: "a\nb"}
    out := RenderTags(s, true) // noColor

    wants := []string{"[Python]", "[EDIT]", "[Modified]", "[2 lines]"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
}

func TestRenderTagsReadOnly(t *testing.T) {
    s := util.BlockStatus{Language: "Bash", ReadOnly: true, Mode: state.Read, Saved: "x", Current: "x"}
    out := RenderTags(s, true)
    if out != "[Bash] [Read-only] [1 line]" {
        t.Fatalf("unexpected output: %s", out)
    }
}
