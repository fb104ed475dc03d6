package codeblock

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"codetool/internal/tui/state"
)

// KeyMap holds the editable surface's bindings.
type KeyMap struct {
	Indent    key.Binding
	Outdent   key.Binding
	Newline   key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
}

// DefaultKeyMap returns the default editing bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Indent:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),
		Newline:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
	}
}

// ShortHelp lists the bindings worth showing in a help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Indent, k.Outdent, k.Newline}
}

// KeyEvent is a key press delivered to the block. Handlers mark it the way
// a DOM handler would, so the host can tell whether to react as well.
type KeyEvent struct {
	Msg tea.KeyMsg

	prevented bool
	stopped   bool
}

// NewKeyEvent wraps a key message.
func NewKeyEvent(msg tea.KeyMsg) *KeyEvent { return &KeyEvent{Msg: msg} }

// PreventDefault suppresses the platform's own handling (focus moves).
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// StopPropagation keeps the event from reaching the host's key handling.
func (e *KeyEvent) StopPropagation() { e.stopped = true }

func (e *KeyEvent) DefaultPrevented() bool   { return e.prevented }
func (e *KeyEvent) PropagationStopped() bool { return e.stopped }

// HandleKey runs the block's key handling. Keys the block does not use are
// left unmarked for the host.
func (w *Widget) HandleKey(ev *KeyEvent) {
	msg := ev.Msg
	if w.view.Mode == state.Read {
		if w.scrollRead(msg) {
			ev.StopPropagation()
		}
		return
	}
	edit := w.root.Edit
	if !edit.Focused || edit.Hidden {
		return
	}
	buf := edit.Buffer
	switch {
	case key.Matches(msg, w.keys.Indent):
		ev.StopPropagation()
		ev.PreventDefault()
		buf.Indent()
	case key.Matches(msg, w.keys.Outdent):
		ev.StopPropagation()
		ev.PreventDefault()
		buf.Outdent()
	case key.Matches(msg, w.keys.Newline):
		if !EnableLineBreaks {
			return
		}
		ev.StopPropagation()
		buf.Insert("\n")
	case key.Matches(msg, w.keys.Backspace):
		ev.StopPropagation()
		buf.Backspace()
	case key.Matches(msg, w.keys.Delete):
		ev.StopPropagation()
		buf.Delete()
	case key.Matches(msg, w.keys.Left):
		ev.StopPropagation()
		buf.Left()
	case key.Matches(msg, w.keys.Right):
		ev.StopPropagation()
		buf.Right()
	case key.Matches(msg, w.keys.Up):
		ev.StopPropagation()
		buf.Up()
	case key.Matches(msg, w.keys.Down):
		ev.StopPropagation()
		buf.Down()
	case key.Matches(msg, w.keys.Home):
		ev.StopPropagation()
		buf.Home()
	case key.Matches(msg, w.keys.End):
		ev.StopPropagation()
		buf.End()
	case msg.Type == tea.KeySpace:
		ev.StopPropagation()
		buf.Insert(" ")
	case msg.Type == tea.KeyRunes:
		ev.StopPropagation()
		buf.Insert(string(msg.Runes))
	}
}

// InsertText puts plain text at the caret, as typing or a plain-text paste
// would. It is a no-op unless the editable surface has focus.
func (w *Widget) InsertText(s string) bool {
	edit := w.root.Edit
	if !edit.Focused || edit.Hidden {
		return false
	}
	edit.Buffer.Insert(s)
	return true
}

// Keys returns the block's editing bindings.
func (w *Widget) Keys() KeyMap { return w.keys }
