package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "codetool/internal/tui/state"
    "codetool/internal/tui/util"
)

// View renders block status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.LANGUAGE:
        return t.Label
    case state.READ_ONLY:
        return "Read-only"
    case state.MODE:
        return t.Label
    case state.MODIFIED:
        return "Modified"
    case state.LINES:
        if t.Value == 1 {
            return "1 line"
        }
        return fmt.Sprintf("%d lines", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    switch t.Kind {
    case state.LANGUAGE:
        return p.Chip(p.Primary)
    case state.READ_ONLY:
        return p.Chip(p.Danger)
    case state.MODE:
        return p.Chip(p.Success)
    case state.MODIFIED:
        return p.Chip(p.Warning)
    case state.LINES:
        return p.Chip(p.Muted)
    default:
        return p.Chip(p.MutedDark)
    }
}
