// Package settings renders the code block's settings surface: a language
// picker and an icon-only mode toggle. It holds no block state of its own;
// every change is forwarded to the owning block through callbacks.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codetool/internal/lang"
	"codetool/internal/tui/state"
)

// Icons shown on the mode toggle. The icon names the mode the toggle leads
// to, not the current one.
const (
	ViewIcon = "◉"
	EditIcon = "✎"
)

// Option is one entry of the language picker.
type Option struct {
	Language lang.Language
	Label    string
}

// Toggle is the mode toggle control.
type Toggle struct {
	Mode state.Mode
}

// Icon returns the glyph for the toggle in its current mode.
func (t Toggle) Icon() string {
	if t.Mode == state.Edit {
		return ViewIcon
	}
	return EditIcon
}

// Callbacks wire the controls to the block.
type Callbacks struct {
	Select func(lang.Language) bool
	Toggle func() state.Mode
}

// Model is the settings surface for one block.
type Model struct {
	Options  []Option
	Selected int
	Cursor   int
	Toggle   *Toggle // nil when the block is pinned read-only
	Disabled bool    // language picker is read-only

	cb Callbacks
}

// New builds the controls for a block currently showing current in vs.
func New(current lang.Language, vs state.ViewState, cb Callbacks) *Model {
	m := &Model{cb: cb, Disabled: vs.ReadOnlyFixed}
	for i, l := range lang.All() {
		m.Options = append(m.Options, Option{Language: l, Label: l.DisplayName()})
		if l == current {
			m.Selected = i
		}
	}
	m.Cursor = m.Selected
	if vs.CanToggle() {
		m.Toggle = &Toggle{Mode: vs.Mode}
	}
	return m
}

// Current returns the language the picker shows as selected.
func (m *Model) Current() lang.Language { return m.Options[m.Selected].Language }

// Select is the picker's change event.
func (m *Model) Select(l lang.Language) bool {
	if m.Disabled || m.cb.Select == nil {
		return false
	}
	if !m.cb.Select(l) {
		return false
	}
	for i, o := range m.Options {
		if o.Language == l {
			m.Selected, m.Cursor = i, i
		}
	}
	return true
}

// Click is the toggle's click event.
func (m *Model) Click() bool {
	if m.Toggle == nil || m.cb.Toggle == nil {
		return false
	}
	m.Toggle.Mode = m.cb.Toggle()
	return true
}

// Up and Down move the picker cursor; Choose selects the entry under it.
func (m *Model) Up() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

func (m *Model) Down() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

func (m *Model) Choose() bool { return m.Select(m.Options[m.Cursor].Language) }

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	buttonStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// View renders the picker list and the toggle button.
func (m *Model) View(noColor bool) string {
	var b strings.Builder
	title := "Language"
	if m.Disabled {
		title += " (read-only)"
	}
	if noColor {
		b.WriteString(title + "\n")
	} else {
		b.WriteString(titleStyle.Render(title) + "\n")
	}
	for i, o := range m.Options {
		mark := "( )"
		if i == m.Selected {
			mark = "(•)"
		}
		line := fmt.Sprintf("  %s %s", mark, o.Label)
		if i == m.Cursor && !m.Disabled {
			if noColor {
				line = "> " + line[2:]
			} else {
				line = selStyle.Render("> " + line[2:])
			}
		}
		b.WriteString(line + "\n")
	}
	if m.Toggle != nil {
		btn := m.Toggle.Icon()
		if noColor {
			btn = "[" + btn + "]"
		} else {
			btn = buttonStyle.Render(btn)
		}
		b.WriteString("\n" + btn + "\n")
	}
	if !m.Disabled {
		hint := "↑/↓: move   enter: select   esc: close"
		if noColor {
			b.WriteString("\n" + hint + "\n")
		} else {
			b.WriteString("\n" + faintStyle.Render(hint) + "\n")
		}
	}
	return b.String()
}
