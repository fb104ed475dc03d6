// Package lang holds the fixed table of languages a code block can be tagged
// with. The table is built once and never mutated.
package lang

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Language is a member of the closed language set.
type Language int

const (
	Markup Language = iota
	Java
	JavaScript
	Cpp
	Go
	Rust
	Python
	PHP
	Bash

	numLanguages
)

// Default is used whenever a saved identifier is missing or unknown.
const Default = Markup

// Entry describes one registry row.
//
// ID is the persisted selectedLanguage value. Name is the short grammar name
// handed to the highlighter and used for the language-<Name> display class.
// Grammar is the highlighting engine's lexer name.
type Entry struct {
	ID          string
	Name        string
	DisplayName string
	Grammar     string
}

var table = [numLanguages]Entry{
	Markup:     {ID: "language-markup", Name: "html", DisplayName: "Html/Xml/MathML", Grammar: "html"},
	Java:       {ID: "language-java", Name: "java", DisplayName: "Java", Grammar: "java"},
	JavaScript: {ID: "language-javascript", Name: "javascript", DisplayName: "Javascript", Grammar: "javascript"},
	Cpp:        {ID: "language-cpp", Name: "cpp", DisplayName: "C/C++", Grammar: "c++"},
	Go:         {ID: "language-go", Name: "go", DisplayName: "Go", Grammar: "go"},
	Rust:       {ID: "language-rust", Name: "rust", DisplayName: "Rust", Grammar: "rust"},
	Python:     {ID: "language-python", Name: "python", DisplayName: "Python", Grammar: "python"},
	PHP:        {ID: "language-php", Name: "php", DisplayName: "Php", Grammar: "php"},
	Bash:       {ID: "language-bash", Name: "bash", DisplayName: "Bash", Grammar: "bash"},
}

// pickerOrder is the order languages are offered in the settings menu.
var pickerOrder = [numLanguages]Language{Markup, Java, JavaScript, Go, Cpp, Python, PHP, Rust, Bash}

var byID = func() map[string]Language {
	m := make(map[string]Language, numLanguages)
	for i, e := range table {
		m[e.ID] = Language(i)
	}
	return m
}()

// Valid reports whether l is a member of the set.
func (l Language) Valid() bool { return l >= 0 && l < numLanguages }

// Entry returns the registry row for l. Out-of-range values map to Default.
func (l Language) Entry() Entry {
	if !l.Valid() {
		return table[Default]
	}
	return table[l]
}

func (l Language) ID() string          { return l.Entry().ID }
func (l Language) Name() string        { return l.Entry().Name }
func (l Language) DisplayName() string { return l.Entry().DisplayName }
func (l Language) Grammar() string     { return l.Entry().Grammar }

// Class is the display class tag applied to the read surface.
func (l Language) Class() string { return "language-" + l.Name() }

func (l Language) String() string { return l.ID() }

// Lookup finds a language by its persisted identifier.
func Lookup(id string) (Language, bool) {
	l, ok := byID[id]
	return l, ok
}

// Coalesce returns the language for id, or Default when id is empty or not
// in the registry.
func Coalesce(id string) Language {
	if l, ok := byID[id]; ok {
		return l
	}
	return Default
}

// All returns every language in picker order.
func All() []Language {
	out := make([]Language, len(pickerOrder))
	copy(out, pickerOrder[:])
	return out
}

// Suggest returns the registry identifier closest to input. Bare names such
// as "go" or "python" are matched against the language-<name> form too.
func Suggest(input string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return Default.ID()
	}
	best := Default
	bestDist := -1
	for _, l := range pickerOrder {
		e := l.Entry()
		d := levenshtein.ComputeDistance(in, e.ID)
		if nd := levenshtein.ComputeDistance(in, e.Name); nd < d {
			d = nd
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best.ID()
}
