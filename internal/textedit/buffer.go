// Package textedit implements the editable surface of a code block: a rune
// buffer with a single caret, plain editing operations, and the Tab/Shift+Tab
// indentation algorithm.
//
// Offsets are rune offsets into the text.
package textedit

import "strings"

// Unit is the indentation inserted by Indent and removed by Outdent.
const Unit = "  "

var unitRunes = []rune(Unit)

// Buffer is the authoritative text of a code block plus its caret.
// The zero value is an empty buffer with the caret at 0.
type Buffer struct {
	text  []rune
	caret int
}

// New returns a buffer holding s with the caret at the end.
func New(s string) *Buffer {
	b := &Buffer{}
	b.SetValue(s)
	return b
}

// Value returns the current text.
func (b *Buffer) Value() string { return string(b.text) }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Caret returns the caret offset.
func (b *Buffer) Caret() int { return b.caret }

// SetValue replaces the whole text and moves the caret to the end.
func (b *Buffer) SetValue(s string) {
	b.text = []rune(s)
	b.caret = len(b.text)
}

// SetCaret moves the caret, clamped to [0, Len()].
func (b *Buffer) SetCaret(pos int) {
	b.caret = clamp(pos, 0, len(b.text))
}

// Insert inserts s at the caret and advances the caret past it.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	r := []rune(s)
	out := make([]rune, 0, len(b.text)+len(r))
	out = append(out, b.text[:b.caret]...)
	out = append(out, r...)
	out = append(out, b.text[b.caret:]...)
	b.text = out
	b.caret += len(r)
}

// Backspace removes the rune before the caret.
func (b *Buffer) Backspace() bool {
	if b.caret == 0 {
		return false
	}
	b.text = append(b.text[:b.caret-1], b.text[b.caret:]...)
	b.caret--
	return true
}

// Delete removes the rune after the caret.
func (b *Buffer) Delete() bool {
	if b.caret >= len(b.text) {
		return false
	}
	b.text = append(b.text[:b.caret], b.text[b.caret+1:]...)
	return true
}

func (b *Buffer) Left() {
	if b.caret > 0 {
		b.caret--
	}
}

func (b *Buffer) Right() {
	if b.caret < len(b.text) {
		b.caret++
	}
}

// Home moves the caret to the start of its line.
func (b *Buffer) Home() { b.caret = LineStart(b.text, b.caret) }

// End moves the caret to the end of its line.
func (b *Buffer) End() { b.caret = LineEnd(b.text, b.caret) }

// Up moves the caret to the previous line, keeping the column when the line
// is long enough.
func (b *Buffer) Up() {
	start := LineStart(b.text, b.caret)
	if start == 0 {
		b.caret = 0
		return
	}
	col := b.caret - start
	prevStart := LineStart(b.text, start-1)
	prevLen := start - 1 - prevStart
	b.caret = prevStart + min(col, prevLen)
}

// Down moves the caret to the next line, keeping the column when the line is
// long enough.
func (b *Buffer) Down() {
	end := LineEnd(b.text, b.caret)
	if end >= len(b.text) {
		b.caret = len(b.text)
		return
	}
	col := b.caret - LineStart(b.text, b.caret)
	nextStart := end + 1
	nextLen := LineEnd(b.text, nextStart) - nextStart
	b.caret = nextStart + min(col, nextLen)
}

// Position returns the zero-based line and column of the caret.
func (b *Buffer) Position() (line, col int) {
	for _, r := range b.text[:b.caret] {
		if r == '\n' {
			line++
		}
	}
	return line, b.caret - LineStart(b.text, b.caret)
}

// Lines splits the text on newlines. An empty buffer has one empty line.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.text), "\n")
}

// LineStart returns the offset of the first rune of the line containing pos:
// one past the nearest '\n' before pos, or 0 on the first line.
func LineStart(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for i := pos - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// LineEnd returns the offset of the '\n' ending the line containing pos, or
// len(text) on the last line.
func LineEnd(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for i := pos; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	return len(text)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
