// Package paste decides whether pasted rich content is meant for a code block
// and extracts its plain text. This is the host side of the paste contract:
// the widget only ever sees events whose tag it declared interest in.
package paste

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Config lists the element tags a tool wants to receive on paste.
type Config struct {
	Tags []string
}

// Handles reports whether tag is declared in c. Tags compare case-insensitively.
func (c Config) Handles(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Fragment is the pasted element as seen by the tool.
type Fragment struct {
	TextContent string
}

// Event is delivered to a tool's OnPaste.
type Event struct {
	Tag  string
	Data Fragment
}

// Text builds an event carrying plain text, as if it came from a tag the
// tool declared.
func Text(tag, s string) Event {
	return Event{Tag: strings.ToUpper(tag), Data: Fragment{TextContent: s}}
}

// Match parses src as an HTML fragment and returns an event for the first
// element whose tag is declared in cfg. Text content is the concatenation of
// all descendant text nodes, like the DOM textContent property.
func Match(src string, cfg Config) (Event, bool) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return Event{}, false
	}
	for _, n := range nodes {
		if el := find(n, cfg); el != nil {
			return Event{
				Tag:  strings.ToUpper(el.Data),
				Data: Fragment{TextContent: textContent(el)},
			}, true
		}
	}
	return Event{}, false
}

// LooksLikeHTML is a cheap check used before parsing clipboard contents.
func LooksLikeHTML(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "<") && strings.Contains(s, ">")
}

func find(n *html.Node, cfg Config) *html.Node {
	if n.Type == html.ElementNode && cfg.Handles(n.Data) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if el := find(c, cfg); el != nil {
			return el
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
