package config

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/google/go-cmp/cmp"
)

func isolate(t *testing.T) string {
    t.Helper()
    dir := t.TempDir()
    t.Setenv("HOME", dir)
    wd, err := os.Getwd()
    if err != nil { t.Fatal(err) }
    if err := os.Chdir(dir); err != nil { t.Fatal(err) }
    t.Cleanup(func() { _ = os.Chdir(wd) })
    return dir
}

func TestDefaults(t *testing.T) {
    isolate(t)
    c, err := Load("")
    if err != nil { t.Fatalf("load: %v", err) }
    if c.Theme != "dracula" || c.Formatter != "terminal256" || c.NoColor { t.Fatalf("unexpected defaults: %+v", c) }
    if len(c.Dict()) != 0 { t.Fatalf("expected no translations") }
}

func TestFileAndEnv(t *testing.T) {
    dir := isolate(t)
    p := filepath.Join(dir, "codetool.toml")
    body := `placeholder = "Snippet"
theme = "monokai"
width = 72

[[strings]]
msg = "Code ..."
text = "Код ..."
`
    if err := os.WriteFile(p, []byte(body), 0o644); err != nil { t.Fatal(err) }
    t.Setenv("CODETOOL_WIDTH", "100")
    t.Setenv("CODETOOL_NO_COLOR", "true")

    c, err := Load("")
    if err != nil { t.Fatalf("load: %v", err) }
    if c.Placeholder != "Snippet" || c.Theme != "monokai" { t.Fatalf("file values not read: %+v", c) }
    if c.Width != 100 || !c.NoColor { t.Fatalf("env must override file: %+v", c) }
    if diff := cmp.Diff(map[string]string{"Code ...": "Код ..."}, c.Dict()); diff != "" {
        t.Fatalf("dict mismatch (-want +got):\n%s", diff)
    }
    if Used("") != filepath.Join(".", "codetool.toml") { t.Fatalf("unexpected used path %q", Used("")) }
}

func TestExplicitMissing(t *testing.T) {
    dir := isolate(t)
    if _, err := Load(filepath.Join(dir, "nope.toml")); err == nil { t.Fatalf("expected error for missing explicit file") }
}

func TestNegativeSize(t *testing.T) {
    isolate(t)
    t.Setenv("CODETOOL_HEIGHT", "-1")
    if _, err := Load(""); err == nil { t.Fatalf("expected error for negative height") }
}
