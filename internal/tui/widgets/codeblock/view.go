package codeblock

import (
	"slices"
	"strings"

	"codetool/internal/textedit"
)

// Class names owned by the tool.
const (
	classWrapper     = "ce-code"
	classTextarea    = "ce-code__textarea"
	classVisualBlock = "ce-code__visublock"
	classNumbered    = "line-numbers"
)

// ClassList is an ordered set of class names.
type ClassList []string

func (c *ClassList) Add(names ...string) {
	for _, n := range names {
		if n != "" && !c.Has(n) {
			*c = append(*c, n)
		}
	}
}

func (c *ClassList) Remove(name string) {
	*c = slices.DeleteFunc(*c, func(s string) bool { return s == name })
}

func (c ClassList) Has(name string) bool { return slices.Contains(c, name) }

func (c ClassList) String() string { return strings.Join(c, " ") }

// EditSurface is the raw editable element. Its buffer is the only source of
// the block's code.
type EditSurface struct {
	Buffer      *textedit.Buffer
	Placeholder string
	Classes     ClassList
	Hidden      bool
	Disabled    bool
	Focused     bool
}

// Value returns the surface text.
func (e *EditSurface) Value() string { return e.Buffer.Value() }

// ReadSurface is the highlighted element. Content is derived from the edit
// surface on demand and never read back.
type ReadSurface struct {
	Content string
	Classes ClassList
	Hidden  bool
}

// Numbered reports whether line numbers are displayed.
func (r *ReadSurface) Numbered() bool { return r.Classes.Has(classNumbered) }

// View is the root of a block's view tree.
type View struct {
	Classes ClassList
	Read    *ReadSurface
	Edit    *EditSurface
}
