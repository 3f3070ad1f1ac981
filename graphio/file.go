// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format names a document codec.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks the codec from path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Decode parses data with the codec for f.
func Decode(f Format, data []byte) (*Document, error) {
	switch f {
	case JSON:
		return DecodeJSON(data)
	case YAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Encode serializes d with the codec for f.
func Encode(f Format, d *Document) ([]byte, error) {
	switch f {
	case JSON:
		return EncodeJSON(d)
	case YAML:
		return EncodeYAML(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}
	doc, err := Decode(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Save encodes d and writes it to path, replacing any existing file.
func Save(path string, d *Document) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}

	return nil
}
