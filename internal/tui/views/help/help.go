package help

import (
    "codetool/internal/tui/state"
    overlay "codetool/internal/tui/widgets/helpoverlay"
)

// RenderHelp returns the grouped keys overlay content for the block editor.
func RenderHelp(s state.UIState, mode state.Mode, sections []overlay.Section) string {
    h := overlay.NewHelpOverlay()
    return h.View(s, mode, sections)
}
