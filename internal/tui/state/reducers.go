package state

// Toggle is the mode transition. It returns the next state and whether a
// transition happened; a read-only block never leaves Read.
func Toggle(s ViewState) (ViewState, bool) {
    if s.ReadOnlyFixed {
        if s.Mode != Read {
            s.Mode = Read
            return s, true
        }
        return s, false
    }
    if s.Mode == Edit {
        s.Mode = Read
    } else {
        s.Mode = Edit
    }
    return s, true
}

// ToggleHelp flips the help overlay and hides the diff overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    if s.ShowHelp {
        s.ShowDiff = false
    }
    return s
}

// ToggleDiff flips the unsaved-changes overlay and hides the help overlay.
func ToggleDiff(s UIState) UIState {
    s.ShowDiff = !s.ShowDiff
    if s.ShowDiff {
        s.ShowHelp = false
    }
    return s
}

// Resize records the terminal size; tiny sizes are clamped so layouts never
// compute negative widths.
func Resize(s UIState, width, height int) UIState {
    if width < 20 {
        width = 20
    }
    if height < 5 {
        height = 5
    }
    s.Width, s.Height = width, height
    return s
}

// MarkSaved clears the modified flag and sets a notice.
func MarkSaved(s UIState, path string) UIState {
    s.Modified = false
    s.Notice = "Saved " + path
    return s
}

// Notify replaces the ephemeral notice.
func Notify(s UIState, msg string) UIState {
    s.Notice = msg
    return s
}
