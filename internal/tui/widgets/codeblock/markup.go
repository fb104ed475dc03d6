package codeblock

import (
	"fmt"

	"codetool/internal/block"
	"codetool/internal/highlight"
)

// MarkupHTML renders d the way a browser read surface shows it: the markup
// engine's spans inside a numbered, language-tagged code element.
func MarkupHTML(d block.Data) string {
	return markupHTML(d, highlight.NewMarkup())
}

func markupHTML(d block.Data, hl highlight.Highlighter) string {
	l := d.Language()
	body := hl.Highlight(d.Code, l.Grammar(), l.Name())
	return fmt.Sprintf("<pre><code class=\"%s %s\">%s</code></pre>", l.Class(), classNumbered, body)
}
