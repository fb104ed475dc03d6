package lang

import "testing"

func TestLookupKnownIDs(t *testing.T) {
	for _, l := range All() {
		got, ok := Lookup(l.ID())
		if !ok || got != l {
			t.Fatalf("lookup %q: got %v ok=%v", l.ID(), got, ok)
		}
	}
}

func TestCoalesceUnknownFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "language-nonexistent", "go", "LANGUAGE-GO"} {
		if got := Coalesce(id); got != Default {
			t.Fatalf("coalesce %q: got %v, want default", id, got)
		}
	}
	if Coalesce("language-rust") != Rust {
		t.Fatalf("expected rust")
	}
}

func TestDefaultIsMarkup(t *testing.T) {
	if Default.ID() != "language-markup" || Default.Class() != "language-html" {
		t.Fatalf("unexpected default %q / %q", Default.ID(), Default.Class())
	}
}

func TestPickerOrderCoversRegistry(t *testing.T) {
	all := All()
	if len(all) != int(numLanguages) {
		t.Fatalf("expected %d languages, got %d", numLanguages, len(all))
	}
	seen := map[Language]bool{}
	for _, l := range all {
		if seen[l] {
			t.Fatalf("duplicate %v", l)
		}
		seen[l] = true
	}
	if all[3] != Go || all[4] != Cpp {
		t.Fatalf("picker order changed: %v", all)
	}
	// All returns a copy.
	all[0] = Bash
	if All()[0] != Markup {
		t.Fatalf("All must not expose the table")
	}
}

func TestInvalidLanguageEntry(t *testing.T) {
	if Language(99).ID() != Default.ID() || Language(-1).Valid() {
		t.Fatalf("out of range languages must map to default")
	}
}

func TestSuggest(t *testing.T) {
	cases := map[string]string{
		"go":             "language-go",
		"pyhton":         "language-python",
		"language-rusty": "language-rust",
		"javascrpt":      "language-javascript",
		"":               "language-markup",
	}
	for in, want := range cases {
		if got := Suggest(in); got != want {
			t.Fatalf("suggest %q: got %q want %q", in, got, want)
		}
	}
}
