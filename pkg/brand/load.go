package brand

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and validates one brand document from a YAML file.
func LoadFile(path string) (*Brand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand file %q: %w", path, err)
	}

	return Parse(data)
}

// Parse deserializes and validates one brand document. Only structured
// YAML/JSON is accepted; brand documents are data, never executable
// source.
func Parse(data []byte) (*Brand, error) {
	var b Brand
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse brand document: %w", err)
	}

	if err := Validate(&b); err != nil {
		return nil, err
	}

	return &b, nil
}

// LoadDir loads every .yaml/.yml brand document in a directory,
// non-recursively. A file that fails to parse or validate fails the
// whole load so a broken document is caught at startup rather than
// silently skipped.
func LoadDir(dir string) ([]*Brand, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand directory %q: %w", dir, err)
	}

	var brands []*Brand
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		b, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("brand file %q: %w", entry.Name(), err)
		}
		brands = append(brands, b)
	}

	return brands, nil
}
