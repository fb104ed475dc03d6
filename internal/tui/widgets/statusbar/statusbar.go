package statusbar

import (
    "fmt"
    "strings"

    "codetool/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// Block is the per-block part of the status line.
type Block struct {
    Mode     state.Mode
    Language string
    ReadOnly bool
    Line     int // zero-based
    Col      int // zero-based
}

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, b Block) string {
    mode := "[" + b.Mode.String() + "]"
    if b.ReadOnly {
        mode = "[READ-ONLY]"
    }
    parts := []string{mode, b.Language}
    if b.Mode == state.Edit {
        parts = append(parts, fmt.Sprintf("Ln %d, Col %d", b.Line+1, b.Col+1))
    }
    if s.Modified {
        parts = append(parts, "*")
    }
    parts = append(parts, fmt.Sprintf("W:%d", s.Width))
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
