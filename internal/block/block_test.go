package block

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDataJSONShape(t *testing.T) {
	out, err := json.Marshal(Data{Code: "x := 1", SelectedLanguage: "language-go"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"code":"x := 1","selectedLanguage":"language-go"}`
	if string(out) != want {
		t.Fatalf("got %s want %s", out, want)
	}
}

func TestNormalize(t *testing.T) {
	d := Data{Code: "a", SelectedLanguage: "language-nonexistent"}.Normalize()
	if d.SelectedLanguage != "language-markup" || d.Code != "a" {
		t.Fatalf("unexpected %+v", d)
	}
	d = Data{SelectedLanguage: "language-php"}.Normalize()
	if d.SelectedLanguage != "language-php" {
		t.Fatalf("valid language must be kept: %+v", d)
	}
}

func TestDecodeEnvelope(t *testing.T) {
	raw := `{"id":"abc","type":"code","data":{"code":"print(1)","selectedLanguage":"language-python"}}`
	env, err := Decode([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	want := Envelope{ID: "abc", Type: "code", Data: Data{Code: "print(1)", SelectedLanguage: "language-python"}}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Fatalf("envelope mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBareDataAssignsID(t *testing.T) {
	env, err := Decode([]byte(`{"code":"ls -la"}`))
	if err != nil {
		t.Fatal(err)
	}
	if env.ID == "" || env.Type != Type || env.Data.Code != "ls -la" {
		t.Fatalf("unexpected %+v", env)
	}
	if env.Data.SelectedLanguage != "" {
		t.Fatalf("decode must not coalesce the language")
	}
}

func TestDecodeRejectsOtherTypes(t *testing.T) {
	_, err := Decode([]byte(`{"type":"paragraph","data":{"code":""}}`))
	if err == nil || !strings.Contains(err.Error(), "paragraph") {
		t.Fatalf("expected type error, got %v", err)
	}
	if _, err := Decode([]byte(`nope`)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadMissingAndSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "block.json")
	env, created, err := Load(path)
	if err != nil || !created {
		t.Fatalf("expected new block, err=%v created=%v", err, created)
	}
	env.Data = Data{Code: "fn main() {}\n", SelectedLanguage: "language-rust"}
	if err := Save(path, env); err != nil {
		t.Fatal(err)
	}
	got, created, err := Load(path)
	if err != nil || created {
		t.Fatalf("reload: err=%v created=%v", err, created)
	}
	if diff := cmp.Diff(env, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "bad.json") {
		t.Fatalf("expected error naming the file, got %v", err)
	}
}
