package util

import (
    "strings"

    "codetool/internal/tui/state"
)

// BlockStatus is what the status chips are computed from.
type BlockStatus struct {
    Language string // display name
    ReadOnly bool
    Mode     state.Mode
    Saved    string // code as last loaded or saved
    Current  string // code on the editable surface
}

// ComputeTags returns the chips for a block in a stable order:
//   Language, Read-only, Mode, Modified, Lines
//
// Rules:
// - Read-only only appears for blocks pinned to Read.
// - Mode is omitted for read-only blocks since it can never change.
// - Modified compares the current code against the saved snapshot exactly.
// - Lines is always present; an empty block has one line.
func ComputeTags(s BlockStatus) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    tags = append(tags, state.Tag{Kind: state.LANGUAGE, Label: s.Language})

    if s.ReadOnly {
        tags = append(tags, state.Tag{Kind: state.READ_ONLY})
    } else {
        tags = append(tags, state.Tag{Kind: state.MODE, Label: s.Mode.String()})
    }

    if Modified(s.Saved, s.Current) {
        tags = append(tags, state.Tag{Kind: state.MODIFIED})
    }

    tags = append(tags, state.Tag{Kind: state.LINES, Value: LineCount(s.Current)})
    return tags
}

// Modified reports whether current differs from saved.
func Modified(saved, current string) bool {
    return saved != current
}

// LineCount returns the number of lines in s; a trailing newline opens a
// new (empty) line, as on the editable surface.
func LineCount(s string) int {
    return strings.Count(s, "\n") + 1
}
