package main

import (
    "flag"
    "strings"
    "testing"

    "codetool/internal/block"
)

func TestParseWithFile(t *testing.T) {
    fs := flag.NewFlagSet("render", flag.ContinueOnError)
    html := fs.Bool("html", false, "")
    path, err := parseWithFile(fs, []string{"a.json", "--html"})
    if err != nil || path != "a.json" || !*html { t.Fatalf("got %q %v html=%v", path, err, *html) }

    fs = flag.NewFlagSet("render", flag.ContinueOnError)
    if _, err := parseWithFile(fs, nil); err == nil { t.Fatalf("expected missing FILE error") }

    fs = flag.NewFlagSet("render", flag.ContinueOnError)
    if _, err := parseWithFile(fs, []string{"a", "b"}); err == nil { t.Fatalf("expected error for two files") }
}

func TestApplyLanguage(t *testing.T) {
    var d block.Data
    if err := applyLanguage(&d, "rust"); err != nil || d.SelectedLanguage != "language-rust" { t.Fatalf("bare name: %v %q", err, d.SelectedLanguage) }
    if err := applyLanguage(&d, "language-go"); err != nil || d.SelectedLanguage != "language-go" { t.Fatalf("full id: %v %q", err, d.SelectedLanguage) }
    err := applyLanguage(&d, "pyhton")
    if err == nil || !strings.Contains(err.Error(), "language-python") { t.Fatalf("expected suggestion, got %v", err) }
    if d.SelectedLanguage != "language-go" { t.Fatalf("failed lookup must not change data") }
}

func TestNumbered(t *testing.T) {
    got := numbered("a\nb\n")
    if got != "1 │ a\n2 │ b" { t.Fatalf("unexpected %q", got) }
}

func TestLoggersGate(t *testing.T) {
    var b strings.Builder
    info, debug := newLoggers(1, nil, &b)
    info("hello %d", 1)
    debug("hidden")
    out := b.String()
    if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "hello 1") { t.Fatalf("missing info line: %q", out) }
    if strings.Contains(out, "hidden") { t.Fatalf("debug must be gated at -v") }
}
