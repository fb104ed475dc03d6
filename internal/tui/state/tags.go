package state

// TagKind enumerates the status chips shown for a code block.
type TagKind int

const (
    // Stable ordering for display: Language, Read-only, Mode, Modified, Lines
    LANGUAGE TagKind = iota
    READ_ONLY
    MODE
    MODIFIED
    LINES
)

// Tag represents a single status chip. Label carries text for the language
// and mode chips; Value is used for numeric counters.
type Tag struct {
    Kind  TagKind
    Label string
    Value int
}
