// Package codeblock is a document block holding one language-tagged code
// sample. It shows either a raw editable surface or a highlighted read
// surface; the editable surface always holds the authoritative text.
package codeblock

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"

	"codetool/internal/block"
	"codetool/internal/highlight"
	"codetool/internal/lang"
	"codetool/internal/paste"
	"codetool/internal/textedit"
	"codetool/internal/tui/state"
	"codetool/internal/tui/widgets/settings"
)

// Widget is one code block instance. All methods run on the host's event
// loop; none of them block or fail.
type Widget struct {
	api         HostAPI
	placeholder string
	lang        lang.Language
	view        state.ViewState
	root        *View

	hl   highlight.Highlighter
	logf func(format string, args ...any)
	keys KeyMap

	// terminal presentation
	cursor  cursor.Model
	vp      viewport.Model
	width   int
	noColor bool
}

// Option customizes a Widget.
type Option func(*Widget)

// WithHighlighter replaces the highlighting engine.
func WithHighlighter(h highlight.Highlighter) Option {
	return func(w *Widget) { w.hl = h }
}

// WithLogger sets a debug logger.
func WithLogger(logf func(string, ...any)) Option {
	return func(w *Widget) {
		if logf != nil {
			w.logf = logf
		}
	}
}

// WithNoColor renders the terminal view without styling.
func WithNoColor(noColor bool) Option {
	return func(w *Widget) { w.noColor = noColor }
}

// New builds a block from saved data. A missing or unknown language falls
// back to the registry default without complaint.
func New(data block.Data, cfg Config, api HostAPI, readOnly bool, opts ...Option) *Widget {
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	w := &Widget{
		api:         api,
		placeholder: api.t(placeholder),
		view:        state.Initial(readOnly),
		logf:        func(string, ...any) {},
		keys:        DefaultKeyMap(),
		cursor:      cursor.New(),
		vp:          viewport.New(80, 12),
		width:       80,
	}
	for _, o := range opts {
		o(w)
	}
	if w.hl == nil {
		w.hl = highlight.NewTerminal(highlight.DefaultStyle, highlight.DefaultFormatter)
	}
	w.cursor.SetMode(cursor.CursorStatic)
	w.root = w.draw()
	w.SetData(data)
	w.apply(w.view)
	return w
}

func (w *Widget) draw() *View {
	root := &View{
		Edit: &EditSurface{Buffer: textedit.New(""), Placeholder: w.placeholder},
		Read: &ReadSurface{},
	}
	root.Classes.Add(w.api.Styles.Block, classWrapper)
	root.Edit.Classes.Add(classTextarea, w.api.Styles.Input)
	root.Read.Classes.Add(classTextarea, w.api.Styles.Input, classVisualBlock, w.lang.Class())
	return root
}

// Render returns the root of the view tree.
func (w *Widget) Render() *View { return w.root }

// Save extracts the block data from root. The code always comes from the
// editable surface, whichever surface is visible.
func (w *Widget) Save(root *View) block.Data {
	if root == nil || root.Edit == nil {
		root = w.root
	}
	return block.Data{Code: root.Edit.Value(), SelectedLanguage: w.lang.ID()}
}

// Data returns the current block data.
func (w *Widget) Data() block.Data { return w.Save(w.root) }

// SetData replaces the block data. The code goes into the editable surface
// and the read surface is regenerated for the (coalesced) language.
func (w *Widget) SetData(d block.Data) {
	next := lang.Coalesce(d.SelectedLanguage)
	if d.SelectedLanguage != "" && d.SelectedLanguage != next.ID() {
		w.logf("codeblock: language %q not in registry, using %s", d.SelectedLanguage, next.ID())
	}
	w.root.Edit.Buffer.SetValue(d.Code)
	w.retag(next)
}

// OnPaste takes over a pasted element: the whole record is replaced by the
// element's text and the language goes back to the default.
func (w *Widget) OnPaste(ev paste.Event) {
	if w.view.ReadOnlyFixed {
		w.logf("codeblock: paste ignored on read-only block")
		return
	}
	w.logf("codeblock: paste from <%s> replaces %d runes", ev.Tag, w.root.Edit.Buffer.Len())
	w.SetData(block.Data{Code: ev.Data.TextContent})
}

// Language returns the selected language.
func (w *Widget) Language() lang.Language { return w.lang }

// ViewState returns the current presentation state.
func (w *Widget) ViewState() state.ViewState { return w.view }

// Mode returns the current presentation mode.
func (w *Widget) Mode() state.Mode { return w.view.Mode }

// ReadOnly reports whether the block is pinned to Read.
func (w *Widget) ReadOnly() bool { return w.view.ReadOnlyFixed }

// ToggleMode switches between Edit and Read. It returns false when the
// block is read-only.
func (w *Widget) ToggleMode() bool {
	next, ok := state.Toggle(w.view)
	if !ok {
		return false
	}
	w.apply(next)
	w.logf("codeblock: mode -> %s", next.Mode)
	return true
}

// SelectLanguage switches the language and re-highlights the read surface
// in one step. Read-only blocks and invalid languages are left alone.
func (w *Widget) SelectLanguage(l lang.Language) bool {
	if w.view.ReadOnlyFixed || !l.Valid() {
		return false
	}
	prev := w.lang
	w.retag(l)
	w.logf("codeblock: language %s -> %s", prev.ID(), l.ID())
	return true
}

// Settings returns the settings surface wired to this block.
func (w *Widget) Settings() *settings.Model {
	return settings.New(w.lang, w.view, settings.Callbacks{
		Select: w.SelectLanguage,
		Toggle: func() state.Mode {
			w.ToggleMode()
			return w.view.Mode
		},
	})
}

// retag moves the read surface to language l: drop the old class, switch,
// re-highlight, add the new class.
func (w *Widget) retag(l lang.Language) {
	read := w.root.Read
	read.Classes.Remove(w.lang.Class())
	w.lang = l
	read.Content = w.highlight()
	read.Classes.Add(w.lang.Class())
	w.syncViewport()
}

// apply is the only place surface visibility changes.
func (w *Widget) apply(next state.ViewState) {
	w.view = next
	edit, read := w.root.Edit, w.root.Read
	edit.Disabled = next.ReadOnlyFixed
	switch next.Mode {
	case state.Read:
		edit.Hidden, edit.Focused = true, false
		read.Hidden = false
		read.Content = w.highlight()
		read.Classes.Add(classNumbered)
		w.cursor.Blur()
		w.syncViewport()
		w.vp.GotoTop()
	default:
		edit.Hidden = false
		read.Hidden = true
		edit.Focused = !next.ReadOnlyFixed
		if edit.Focused {
			w.cursor.Focus()
		}
	}
}

func (w *Widget) highlight() string {
	return w.hl.Highlight(w.root.Edit.Value(), w.lang.Grammar(), w.lang.Name())
}
