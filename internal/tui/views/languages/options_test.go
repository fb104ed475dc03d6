package languages

import (
    "strings"
    "testing"
)

func TestRenderOptions(t *testing.T) {
    opts := RenderOptions()
    if len(opts) != 9 { t.Fatalf("expected 9 options, got %d", len(opts)) }
    if !strings.HasPrefix(opts[0], "language-markup") || !strings.HasSuffix(opts[0], "(default)") {
        t.Fatalf("first option must be the default markup entry: %q", opts[0])
    }
    if !strings.HasPrefix(opts[3], "language-go") { t.Fatalf("picker order changed: %q", opts[3]) }
    if strings.Contains(opts[1], "(default)") { t.Fatalf("only one default allowed") }
}
