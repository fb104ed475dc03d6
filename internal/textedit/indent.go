package textedit

// Indent inserts one indentation unit at the caret. It never reformats
// anything else on the line.
func (b *Buffer) Indent() {
	b.Insert(Unit)
}

// Outdent removes one indentation unit from the start of the caret's line.
// When the line does not begin with a full unit nothing changes and false is
// returned. The caret moves back by the unit length but never before the
// line start.
func (b *Buffer) Outdent() bool {
	start := LineStart(b.text, b.caret)
	end := start + len(unitRunes)
	if end > len(b.text) || string(b.text[start:end]) != Unit {
		return false
	}
	b.text = append(b.text[:start], b.text[end:]...)
	b.caret = max(start, b.caret-len(unitRunes))
	return true
}
