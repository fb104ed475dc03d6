package state

// Mode is the code block's presentation mode.
type Mode int

const (
    Edit Mode = iota
    Read
)

func (m Mode) String() string {
    if m == Read {
        return "READ"
    }
    return "EDIT"
}

// ViewState is the transient, never persisted presentation state of one
// code block. ReadOnlyFixed pins the block to Read.
type ViewState struct {
    Mode          Mode
    ReadOnlyFixed bool
}

// Initial returns the state a freshly constructed block starts in.
func Initial(readOnly bool) ViewState {
    if readOnly {
        return ViewState{Mode: Read, ReadOnlyFixed: true}
    }
    return ViewState{Mode: Edit}
}

// CanToggle reports whether the mode toggle is offered at all.
func (s ViewState) CanToggle() bool { return !s.ReadOnlyFixed }

// UIState holds host-level UI state shared by the status bar, help overlay
// and diff view.
type UIState struct {
    // Layout
    Width  int
    Height int

    // Overlays
    ShowHelp bool
    ShowDiff bool
    Picking  bool

    // Block status
    Modified bool
    NoColor  bool

    // Notices and ephemeral messages
    Notice string
}
