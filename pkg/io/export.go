package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteJSON encodes d as indented JSON. The output can be re-imported with
// [ReadJSON].
func WriteJSON(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromDocument(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes d as YAML. The output can be re-imported with
// [ReadYAML].
func WriteYAML(d *Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromDocument(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Write encodes d as format, which is "yaml", "yml" or "json".
func Write(d *Document, w io.Writer, format string) error {
	switch format {
	case "yaml", "yml":
		return WriteYAML(d, w)
	case "json":
		return WriteJSON(d, w)
	}
	return fmt.Errorf("unsupported document format %q", format)
}

// ExportFile writes d to path, choosing the encoder from the extension.
func ExportFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f, FormatOf(path))
}
