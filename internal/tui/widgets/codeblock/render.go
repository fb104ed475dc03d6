package codeblock

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codetool/internal/tui/state"
)

var (
	surfaceStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	readSurfaceStyle = surfaceStyle.BorderForeground(lipgloss.AdaptiveColor{Light: "63", Dark: "99"})
	disabledStyle    = surfaceStyle.BorderForeground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"})
	placeholderStyle = lipgloss.NewStyle().Faint(true)
	gutterStyle      = lipgloss.NewStyle().Faint(true)
)

// SetSize fits the terminal presentation into width x height cells.
func (w *Widget) SetSize(width, height int) {
	w.width = width
	w.vp.Width = max(width-4, 1)
	w.vp.Height = max(height, 1)
	w.syncViewport()
}

// Update forwards non-key messages (mouse wheel, for one) to the read
// surface. Keys go through HandleKey.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	if w.view.Mode != state.Read {
		return nil
	}
	var cmd tea.Cmd
	w.vp, cmd = w.vp.Update(msg)
	return cmd
}

// View renders whichever surface is visible.
func (w *Widget) View() string {
	if !w.root.Read.Hidden {
		return w.frame(readSurfaceStyle).Render(w.vp.View())
	}
	style := surfaceStyle
	if w.root.Edit.Disabled {
		style = disabledStyle
	}
	return w.frame(style).Render(w.viewEdit())
}

func (w *Widget) frame(s lipgloss.Style) lipgloss.Style {
	if w.noColor {
		s = s.UnsetBorderForeground()
	}
	return s.Width(max(w.width-2, 1))
}

func (w *Widget) viewEdit() string {
	edit := w.root.Edit
	text := []rune(edit.Buffer.Value())
	if len(text) == 0 {
		var b strings.Builder
		if edit.Focused {
			w.cursor.SetChar(" ")
			b.WriteString(w.cursor.View())
		}
		if w.noColor {
			b.WriteString(edit.Placeholder)
		} else {
			b.WriteString(placeholderStyle.Render(edit.Placeholder))
		}
		return b.String()
	}
	if !edit.Focused {
		return string(text)
	}
	caret := edit.Buffer.Caret()
	var b strings.Builder
	b.WriteString(string(text[:caret]))
	under := " "
	rest := caret
	if caret < len(text) && text[caret] != '\n' {
		under = string(text[caret])
		rest++
	}
	w.cursor.SetChar(under)
	b.WriteString(w.cursor.View())
	b.WriteString(string(text[rest:]))
	return b.String()
}

func (w *Widget) scrollRead(msg tea.KeyMsg) bool {
	km := w.vp.KeyMap
	if !key.Matches(msg, km.Up, km.Down, km.PageUp, km.PageDown, km.HalfPageUp, km.HalfPageDown) {
		return false
	}
	w.vp, _ = w.vp.Update(msg)
	return true
}

// syncViewport loads the read surface content into the viewport, adding a
// line-number gutter when the surface is numbered.
func (w *Widget) syncViewport() {
	read := w.root.Read
	content := strings.TrimRight(read.Content, "\n")
	if read.Numbered() {
		lines := strings.Split(content, "\n")
		width := len(fmt.Sprint(len(lines)))
		for i, l := range lines {
			n := fmt.Sprintf("%*d │ ", width, i+1)
			if !w.noColor {
				n = gutterStyle.Render(n)
			}
			lines[i] = n + l
		}
		content = strings.Join(lines, "\n")
	}
	w.vp.SetContent(content)
}
