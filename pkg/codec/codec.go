// Package codec serializes form definitions. JSON is the wire shape the
// persistence collaborator exchanges; YAML is offered for fixtures and
// hand-authored definitions. Decoded forms are sanitized before they reach
// the editing surface.
package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intake/pkg/schema"
)

// ErrUnknownFormat is returned for files whose extension is neither JSON nor
// YAML.
var ErrUnknownFormat = errors.New("codec: unknown definition format")

// EncodeJSON renders a form definition as indented JSON.
func EncodeJSON(form schema.Form) ([]byte, error) {
	data, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}
	return data, nil
}

// DecodeJSON parses and sanitizes a JSON form definition.
func DecodeJSON(data []byte) (schema.Form, error) {
	var form schema.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return schema.Form{}, fmt.Errorf("codec: decode json: %w", err)
	}
	form.Sanitize()
	return form, nil
}

// EncodeYAML renders a form definition as YAML.
func EncodeYAML(form schema.Form) ([]byte, error) {
	data, err := yaml.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return data, nil
}

// DecodeYAML parses and sanitizes a YAML form definition.
func DecodeYAML(data []byte) (schema.Form, error) {
	var form schema.Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return schema.Form{}, fmt.Errorf("codec: decode yaml: %w", err)
	}
	form.Sanitize()
	return form, nil
}

// Decode picks the parser from a file name's extension.
func Decode(name string, data []byte) (schema.Form, error) {
	switch ext(name) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return schema.Form{}, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// Load reads a form definition from disk.
func Load(path string) (schema.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Form{}, fmt.Errorf("codec: read %s: %w", path, err)
	}
	return Decode(path, data)
}

// LoadFS reads a form definition from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (schema.Form, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return schema.Form{}, fmt.Errorf("codec: read %s: %w", path, err)
	}
	return Decode(path, data)
}

// Write serializes a form to disk, picking the format from the extension.
func Write(path string, form schema.Form) error {
	var (
		data []byte
		err  error
	)
	switch ext(path) {
	case ".json":
		data, err = EncodeJSON(form)
	case ".yaml", ".yml":
		data, err = EncodeYAML(form)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}
	return nil
}

func ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
