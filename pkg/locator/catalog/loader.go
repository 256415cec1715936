package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifest is the on-disk document shape.
type manifest struct {
	Capabilities []Declaration `yaml:"capabilities" json:"capabilities"`
}

// FromFile loads a catalog from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog file extension: %s", ext)
	}
}

// FromYAML parses a YAML manifest into a Catalog.
func FromYAML(data []byte) (*Catalog, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m.Capabilities...)
}

// FromJSON parses a JSON manifest into a Catalog.
func FromJSON(data []byte) (*Catalog, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return New(m.Capabilities...)
}
