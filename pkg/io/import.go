package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartlabel/pkg/errors"
)

// ReadYAML decodes a YAML chart document from r.
//
// ReadYAML returns an INVALID_DOCUMENT error for malformed YAML and the
// chart's validation error for charts that cannot be drawn. It does not
// close r.
func ReadYAML(r io.Reader) (*Document, error) {
	var data document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "empty document")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode yaml")
	}
	return data.toDocument()
}

// ReadJSON decodes a JSON chart document from r. Unknown fields are
// rejected. It does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var data document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
	}
	return data.toDocument()
}

// Read decodes r as format, which is "yaml", "yml" or "json".
func Read(r io.Reader, format string) (*Document, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return ReadYAML(r)
	case "json":
		return ReadJSON(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
}

// FormatOf returns the document format implied by path's extension.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// ImportFile reads the chart document at path, choosing the decoder from
// the file extension.
func ImportFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, FormatOf(path))
}
