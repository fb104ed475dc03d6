package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "codetool/internal/tui/state"
)

var (
    delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    delChar = delLine.Underline(true)
    addChar = addLine.Underline(true)
    faint   = lipgloss.NewStyle().Faint(true)
    header  = lipgloss.NewStyle().Bold(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the unsaved changes of a block as a unified diff. Lines are
// matched first; a run of removed lines directly replaced by the same number
// of added lines gets char-level highlights.
func (DiffView) View(s state.UIState, saved, current string) string {
    r := renderer{noColor: s.NoColor}
    var b strings.Builder
    b.WriteString(r.paint(header, "SAVED vs CURRENT") + "\n")
    if saved == current {
        b.WriteString("No changes\n")
        return b.String()
    }

    d := dmp.New()
    a, c, lines := d.DiffLinesToChars(saved, current)
    diffs := d.DiffCharsToLines(d.DiffMain(a, c, false), lines)

    for i := 0; i < len(diffs); i++ {
        df := diffs[i]
        switch df.Type {
        case dmp.DiffEqual:
            for _, l := range splitLines(df.Text) {
                b.WriteString("  " + r.paint(faint, l) + "\n")
            }
        case dmp.DiffDelete:
            del := splitLines(df.Text)
            if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
                ins := splitLines(diffs[i+1].Text)
                i++
                if len(del) == len(ins) {
                    for j := range del {
                        r.pair(&b, d, del[j], ins[j])
                    }
                    continue
                }
                r.lines(&b, "- ", delLine, del)
                r.lines(&b, "+ ", addLine, ins)
                continue
            }
            r.lines(&b, "- ", delLine, del)
        case dmp.DiffInsert:
            r.lines(&b, "+ ", addLine, splitLines(df.Text))
        }
    }
    return b.String()
}

type renderer struct{ noColor bool }

func (r renderer) paint(st lipgloss.Style, s string) string {
    if r.noColor || s == "" {
        return s
    }
    return st.Render(s)
}

func (r renderer) lines(b *strings.Builder, prefix string, st lipgloss.Style, ls []string) {
    for _, l := range ls {
        b.WriteString(r.paint(st, prefix+l) + "\n")
    }
}

// pair writes a changed line twice with the changed runs underlined.
func (r renderer) pair(b *strings.Builder, d *dmp.DiffMatchPatch, before, after string) {
    diffs := d.DiffCleanupSemantic(d.DiffMain(before, after, false))
    b.WriteString(r.paint(delLine, "- "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            b.WriteString(r.paint(delChar, df.Text))
        case dmp.DiffEqual:
            b.WriteString(r.paint(delLine, df.Text))
        }
    }
    b.WriteString("\n")
    b.WriteString(r.paint(addLine, "+ "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            b.WriteString(r.paint(addChar, df.Text))
        case dmp.DiffEqual:
            b.WriteString(r.paint(addLine, df.Text))
        }
    }
    b.WriteString("\n")
}

// splitLines splits a line-mode diff chunk; the chunk's final newline does
// not start another line.
func splitLines(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    return strings.Split(s, "\n")
}
