package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// WriteJSON marshals the value with indentation and writes it to the given
// writer, closing it afterwards.
func WriteJSON[X any](value X, w io.WriteCloser) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return w.Close()
}

// LoadJSON reads a JSON file into a fresh value of type X.
func LoadJSON[X any](inputPath string) (*X, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", inputPath, err)
	}
	defer f.Close()
	var value X
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", inputPath, err)
	}
	return &value, nil
}

// WriteTOML marshals the value as TOML and writes it to the given writer,
// closing it afterwards.
func WriteTOML[X any](value X, w io.WriteCloser) error {
	if err := toml.NewEncoder(w).Encode(value); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return w.Close()
}

// LoadTOML reads a TOML file into a fresh value of type X.
func LoadTOML[X any](inputPath string) (*X, error) {
	var value X
	if _, err := toml.DecodeFile(inputPath, &value); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", inputPath, err)
	}
	return &value, nil
}
