// Package block defines the persisted shape of a code block and the file
// format the terminal host keeps it in.
package block

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"codetool/internal/lang"
)

// Type is the block type name written into envelopes.
const Type = "code"

// Data is the only persisted entity of a code block.
type Data struct {
	Code             string `json:"code"`
	SelectedLanguage string `json:"selectedLanguage"`
}

// Normalize returns d with an unknown or missing language replaced by the
// registry default.
func (d Data) Normalize() Data {
	d.SelectedLanguage = lang.Coalesce(d.SelectedLanguage).ID()
	return d
}

// Language returns the registry member for d.SelectedLanguage.
func (d Data) Language() lang.Language { return lang.Coalesce(d.SelectedLanguage) }

// Envelope wraps Data the way an editor document stores a block.
type Envelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data Data   `json:"data"`
}

// Wrap returns a new envelope with a fresh id.
func Wrap(d Data) Envelope {
	return Envelope{ID: uuid.NewString(), Type: Type, Data: d}
}

// Decode parses either an envelope or a bare data object. Missing ids are
// generated and the language is not validated here; the widget coalesces it.
func Decode(raw []byte) (Envelope, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Envelope{}, fmt.Errorf("parse block JSON: %w", err)
	}
	var env Envelope
	if _, ok := probe["data"]; ok {
		if err := json.Unmarshal(raw, &env); err != nil {
			return Envelope{}, fmt.Errorf("parse block envelope: %w", err)
		}
	} else if err := json.Unmarshal(raw, &env.Data); err != nil {
		return Envelope{}, fmt.Errorf("parse block data: %w", err)
	}
	if env.Type == "" {
		env.Type = Type
	}
	if env.Type != Type {
		return Envelope{}, fmt.Errorf("block type %q is not %q", env.Type, Type)
	}
	if env.ID == "" {
		env.ID = uuid.NewString()
	}
	return env, nil
}

// Encode renders an envelope as indented JSON.
func Encode(env Envelope) ([]byte, error) {
	if env.Type == "" {
		env.Type = Type
	}
	return json.MarshalIndent(env, "", "  ")
}

// Load reads a block file. A missing file yields an empty block and
// created=true so the host can start from scratch.
func Load(path string) (env Envelope, created bool, err error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Wrap(Data{}), true, nil
	}
	if err != nil {
		return Envelope{}, false, fmt.Errorf("read block: %w", err)
	}
	env, err = Decode(raw)
	if err != nil {
		return Envelope{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return env, false, nil
}

// Save writes env to path, creating parent directories as needed.
func Save(path string, env Envelope) error {
	data, err := Encode(env)
	if err != nil {
		return fmt.Errorf("encode block: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create block dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write block: %w", err)
	}
	return nil
}
