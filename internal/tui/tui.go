package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codetool/internal/block"
	"codetool/internal/highlight"
	"codetool/internal/paste"
	"codetool/internal/tui/state"
	"codetool/internal/tui/util"
	blockview "codetool/internal/tui/views/block"
	helpview "codetool/internal/tui/views/help"
	"codetool/internal/tui/widgets/codeblock"
	diffview "codetool/internal/tui/widgets/diff"
	"codetool/internal/tui/widgets/helpoverlay"
	"codetool/internal/tui/widgets/settings"
	"codetool/internal/tui/widgets/statusbar"
)

// Options configures a host session around one block.
type Options struct {
	Path        string // shown in the header and save notices
	ReadOnly    bool
	Config      codeblock.Config
	API         codeblock.HostAPI
	Highlighter highlight.Highlighter
	Width       int
	Height      int
	NoColor     bool
	Logf        func(format string, args ...any)

	// Save persists the block. A nil Save keeps saves in memory only.
	Save func(block.Data) error
}

// Result is what the session ends with.
type Result struct {
	Data  block.Data // block data at exit, saved or not
	Saved bool       // at least one save succeeded
}

// Clipboard access, replaced in tests.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// Run opens the block editor on data and blocks until the user quits.
func Run(data block.Data, opts Options) (Result, error) {
	m := newModel(data, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run tui: %w", err)
	}
	fm := final.(*model)
	return Result{Data: fm.w.Data(), Saved: fm.everSaved}, nil
}

// ===== Model =====

// chrome is the number of rows used around the block: header, blank,
// status and help lines.
const chrome = 4

type model struct {
	opts Options
	w    *codeblock.Widget

	// saved snapshot used for the modified flag and the diff overlay
	saved     block.Data
	everSaved bool

	ui     state.UIState
	keys   keyMap
	picker *settings.Model

	status statusbar.StatusBar
	diff   diffview.DiffView
	help   helpoverlay.HelpOverlay
}

func newModel(data block.Data, opts Options) *model {
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}
	wopts := []codeblock.Option{
		codeblock.WithLogger(opts.Logf),
		codeblock.WithNoColor(opts.NoColor),
	}
	if opts.Highlighter != nil {
		wopts = append(wopts, codeblock.WithHighlighter(opts.Highlighter))
	}
	w := codeblock.New(data, opts.Config, opts.API, opts.ReadOnly, wopts...)
	m := &model{
		opts:   opts,
		w:      w,
		saved:  w.Data(),
		ui:     state.UIState{NoColor: opts.NoColor},
		keys:   defaultKeyMap(),
		status: statusbar.NewStatusBar(),
		diff:   diffview.NewDiffView(),
		help:   helpoverlay.NewHelpOverlay(),
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	m.resize(width, height)
	return m
}

func (m *model) Init() tea.Cmd { return nil }

// Update routes keys to the block first; only keys it leaves unmarked reach
// the host bindings.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if msg.Paste {
			m.pasteText(string(msg.Runes))
			return m, nil
		}
		if m.ui.Picking {
			m.updatePicker(msg)
			return m, nil
		}
		if m.ui.ShowHelp || m.ui.ShowDiff {
			switch {
			case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Help) && m.ui.ShowHelp:
				m.ui.ShowHelp, m.ui.ShowDiff = false, false
			case key.Matches(msg, m.keys.Diff):
				m.ui = state.ToggleDiff(m.ui)
			case key.Matches(msg, m.keys.Help):
				m.ui = state.ToggleHelp(m.ui)
			}
			return m, nil
		}

		ev := codeblock.NewKeyEvent(msg)
		m.w.HandleKey(ev)
		if ev.PropagationStopped() {
			m.refresh()
			return m, nil
		}
		m.handleHostKey(msg)
		return m, nil
	}

	return m, m.w.Update(msg)
}

func (m *model) handleHostKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Toggle):
		if !m.w.ToggleMode() {
			m.ui = state.Notify(m.ui, "Block is read-only")
			return
		}
		m.ui = state.Notify(m.ui, "")
	case key.Matches(msg, m.keys.Language):
		m.picker = m.w.Settings()
		m.ui.Picking = true
	case key.Matches(msg, m.keys.Paste):
		s, err := readClipboard()
		if err != nil {
			m.opts.Logf("tui: clipboard read: %v", err)
			m.ui = state.Notify(m.ui, "Clipboard unavailable")
			return
		}
		m.pasteText(s)
	case key.Matches(msg, m.keys.Copy):
		if err := writeClipboard(m.w.Data().Code); err != nil {
			m.opts.Logf("tui: clipboard write: %v", err)
			m.ui = state.Notify(m.ui, "Clipboard unavailable")
			return
		}
		m.ui = state.Notify(m.ui, "Copied code")
	case key.Matches(msg, m.keys.Diff):
		m.ui = state.ToggleDiff(m.ui)
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
	}
}

func (m *model) updatePicker(msg tea.KeyMsg) {
	switch strings.ToLower(msg.String()) {
	case "up", "k":
		m.picker.Up()
	case "down", "j":
		m.picker.Down()
	case "enter":
		if m.picker.Choose() {
			m.ui = state.Notify(m.ui, "Language: "+m.w.Language().DisplayName())
		}
		m.closePicker()
	case "t":
		m.picker.Click()
	case "esc", "ctrl+l":
		m.closePicker()
	}
	m.refresh()
}

func (m *model) closePicker() {
	m.picker = nil
	m.ui.Picking = false
}

// pasteText ingests clipboard or bracketed-paste content. Markup holding a
// declared tag replaces the block; anything else is typed at the caret.
func (m *model) pasteText(s string) {
	if s == "" {
		return
	}
	if m.w.ReadOnly() {
		m.ui = state.Notify(m.ui, "Block is read-only")
		return
	}
	if paste.LooksLikeHTML(s) {
		if ev, ok := paste.Match(s, codeblock.PasteConfig); ok {
			m.w.OnPaste(ev)
			m.ui = state.Notify(m.ui, fmt.Sprintf("Pasted <%s>", strings.ToLower(ev.Tag)))
			m.refresh()
			return
		}
	}
	if !m.w.InsertText(s) {
		m.ui = state.Notify(m.ui, "Switch to edit mode to paste")
		return
	}
	m.refresh()
}

func (m *model) save() {
	d := m.w.Data()
	if m.opts.Save != nil {
		if err := m.opts.Save(d); err != nil {
			m.opts.Logf("tui: save: %v", err)
			m.ui = state.Notify(m.ui, "Save failed: "+err.Error())
			return
		}
	}
	m.saved = d
	m.everSaved = true
	m.ui = state.MarkSaved(m.ui, m.opts.Path)
}

func (m *model) refresh() {
	m.ui.Modified = m.w.Data() != m.saved
}

func (m *model) resize(width, height int) {
	m.ui = state.Resize(m.ui, width, height)
	m.w.SetSize(m.ui.Width, max(m.ui.Height-chrome-2, 1))
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader() + "\n\n")
	switch {
	case m.ui.ShowHelp:
		b.WriteString(helpview.RenderHelp(m.ui, m.w.Mode(), m.helpSections()))
	case m.ui.ShowDiff:
		b.WriteString(m.diff.View(m.ui, m.saved.Code, m.w.Data().Code))
	case m.ui.Picking && m.picker != nil:
		b.WriteString(m.picker.View(m.ui.NoColor))
	default:
		b.WriteString(m.w.View())
	}
	b.WriteString("\n")
	b.WriteString(m.viewStatus() + "\n")
	b.WriteString(m.help.ShortView(m.ui, m.keys))
	return b.String()
}

func (m *model) viewHeader() string {
	title := "codetool"
	if m.opts.Path != "" {
		title += ": " + m.opts.Path
	}
	if !m.ui.NoColor {
		title = titleStyle.Render(title)
	}
	chips := blockview.RenderTags(util.BlockStatus{
		Language: m.w.Language().DisplayName(),
		ReadOnly: m.w.ReadOnly(),
		Mode:     m.w.Mode(),
		Saved:    m.saved.Code,
		Current:  m.w.Data().Code,
	}, m.ui.NoColor)
	return title + "  " + chips
}

func (m *model) viewStatus() string {
	line, col := m.w.Render().Edit.Buffer.Position()
	s := m.status.View(m.ui, statusbar.Block{
		Mode:     m.w.Mode(),
		Language: m.w.Language().ID(),
		ReadOnly: m.w.ReadOnly(),
		Line:     line,
		Col:      col,
	})
	if m.ui.NoColor {
		return s
	}
	return faintStyle.Render(s)
}

func (m *model) helpSections() []helpoverlay.Section {
	k := m.keys
	return []helpoverlay.Section{
		{Title: "Editing", Keys: m.w.Keys().ShortHelp()},
		{Title: "Block", Keys: []key.Binding{k.Save, k.Toggle, k.Language, k.Diff}},
		{Title: "Clipboard", Keys: []key.Binding{k.Paste, k.Copy}},
		{Title: "General", Keys: []key.Binding{k.Help, k.Close, k.Quit}},
	}
}
