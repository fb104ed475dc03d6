package settings

import (
	"strings"
	"testing"

	"codetool/internal/lang"
	"codetool/internal/tui/state"
)

func TestNewPreselectsCurrentLanguage(t *testing.T) {
	m := New(lang.Rust, state.Initial(false), Callbacks{})
	if m.Current() != lang.Rust || m.Options[m.Cursor].Language != lang.Rust {
		t.Fatalf("expected rust preselected, got %v", m.Current())
	}
	if len(m.Options) != len(lang.All()) {
		t.Fatalf("expected one option per registry row")
	}
	if m.Toggle == nil || m.Toggle.Icon() != ViewIcon {
		t.Fatalf("edit mode must offer the view icon")
	}
}

func TestReadOnlyHasNoToggle(t *testing.T) {
	m := New(lang.Go, state.Initial(true), Callbacks{
		Select: func(lang.Language) bool { t.Fatalf("select must not fire"); return false },
	})
	if m.Toggle != nil || m.Click() {
		t.Fatalf("read-only settings must not offer a toggle")
	}
	if m.Select(lang.Bash) {
		t.Fatalf("read-only picker must be disabled")
	}
	if strings.Contains(m.View(true), "[") {
		t.Fatalf("no toggle button expected in read-only view")
	}
}

func TestSelectForwardsToCallback(t *testing.T) {
	var got lang.Language = -1
	m := New(lang.Markup, state.Initial(false), Callbacks{
		Select: func(l lang.Language) bool { got = l; return true },
	})
	m.Down()
	m.Down()
	if !m.Choose() {
		t.Fatalf("expected choose to select")
	}
	if got != lang.JavaScript || m.Current() != lang.JavaScript {
		t.Fatalf("expected javascript, got %v / %v", got, m.Current())
	}
}

func TestClickReflectsNewMode(t *testing.T) {
	mode := state.Edit
	m := New(lang.Go, state.Initial(false), Callbacks{
		Toggle: func() state.Mode {
			if mode == state.Edit {
				mode = state.Read
			} else {
				mode = state.Edit
			}
			return mode
		},
	})
	if !m.Click() || m.Toggle.Icon() != EditIcon {
		t.Fatalf("after switching to read the toggle must offer edit")
	}
	m.Click()
	if m.Toggle.Icon() != ViewIcon {
		t.Fatalf("after switching back the toggle must offer view")
	}
}

func TestViewMarksSelection(t *testing.T) {
	m := New(lang.Python, state.Initial(false), Callbacks{})
	out := m.View(true)
	if !strings.Contains(out, "(•) Python") || !strings.Contains(out, "[◉]") {
		t.Fatalf("unexpected view:\n%s", out)
	}
}
