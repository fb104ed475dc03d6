// Package highlight adapts the chroma tokenizer to the code block's
// highlighting contract: source text plus a grammar in, tagged text out.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
)

// Highlighter turns source text into tagged output for a grammar. It must be
// pure: the same inputs always give the same output and nothing else changes.
type Highlighter interface {
	Highlight(src, grammar, languageName string) string
}

// Func adapts a plain function to Highlighter.
type Func func(src, grammar, languageName string) string

func (f Func) Highlight(src, grammar, languageName string) string { return f(src, grammar, languageName) }

const (
	DefaultStyle     = "dracula"
	DefaultFormatter = "terminal256"
)

// Chroma highlights with a chroma formatter and style. Tokenize or format
// failures fall back to the escaped source so callers never see an error.
type Chroma struct {
	formatter chroma.Formatter
	style     *chroma.Style
	escape    func(string) string
}

// NewTerminal returns a highlighter producing ANSI-colored text. Unknown
// style or formatter names fall back to chroma's defaults.
func NewTerminal(style, formatter string) *Chroma {
	f := formatters.Get(formatter)
	if f == nil {
		f = formatters.Get(DefaultFormatter)
	}
	if f == nil {
		f = formatters.Fallback
	}
	return &Chroma{formatter: f, style: getStyle(style), escape: func(s string) string { return s }}
}

// NewMarkup returns a highlighter producing HTML spans with CSS classes, the
// shape a browser-side read surface expects inside <code>.
func NewMarkup() *Chroma {
	f := chtml.New(chtml.WithClasses(true), chtml.PreventSurroundingPre(true))
	return &Chroma{formatter: f, style: getStyle(DefaultStyle), escape: html.EscapeString}
}

func (c *Chroma) Highlight(src, grammar, languageName string) string {
	lex := lexers.Get(grammar)
	if lex == nil {
		lex = lexers.Get(languageName)
	}
	if lex == nil {
		lex = lexers.Fallback
	}
	lex = chroma.Coalesce(lex)
	it, err := lex.Tokenise(nil, src)
	if err != nil {
		return c.escape(src)
	}
	var b strings.Builder
	if err := c.formatter.Format(&b, c.style, it); err != nil {
		return c.escape(src)
	}
	return b.String()
}

// Plain returns src unchanged. It is used when color output is disabled.
var Plain = Func(func(src, _, _ string) string { return src })

func getStyle(name string) *chroma.Style {
	if s := styles.Get(name); s != nil {
		return s
	}
	return styles.Fallback
}
