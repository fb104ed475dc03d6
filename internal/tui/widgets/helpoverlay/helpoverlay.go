package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/bubbles/key"

    "codetool/internal/tui/state"
)

// Section is one titled group of bindings.
type Section struct {
    Title string
    Keys  []key.Binding
}

type HelpOverlay struct {
    h help.Model
}

func NewHelpOverlay() HelpOverlay {
    h := help.New()
    h.ShowAll = true
    return HelpOverlay{h: h}
}

// View returns grouped keys help with the current mode indicated.
func (o HelpOverlay) View(s state.UIState, mode state.Mode, sections []Section) string {
    h := o.h
    h.Width = s.Width
    if s.NoColor {
        h.Styles = help.Styles{}
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
    for _, sec := range sections {
        if len(sec.Keys) == 0 {
            continue
        }
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        b.WriteString(h.FullHelpView([][]key.Binding{sec.Keys}))
        b.WriteString("\n")
    }
    return b.String()
}

// ShortView renders a one-line hint from km.
func (o HelpOverlay) ShortView(s state.UIState, km help.KeyMap) string {
    h := o.h
    h.Width = s.Width
    if s.NoColor {
        h.Styles = help.Styles{}
    }
    return h.ShortHelpView(km.ShortHelp())
}
