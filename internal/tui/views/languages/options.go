package languages

import (
    "fmt"

    "codetool/internal/lang"
)

// RenderOptions returns the picker entries in menu order as
// "<id>  <display name>" lines, with the default marked.
func RenderOptions() []string {
    all := lang.All()
    width := 0
    for _, l := range all {
        if n := len(l.ID()); n > width {
            width = n
        }
    }
    out := make([]string, 0, len(all))
    for _, l := range all {
        line := fmt.Sprintf("%-*s  %s", width, l.ID(), l.DisplayName())
        if l == lang.Default {
            line += " (default)"
        }
        out = append(out, line)
    }
    return out
}
