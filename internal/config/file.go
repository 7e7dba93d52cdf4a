package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the root of an optional YAML configuration file. It supplies
// package-wide defaults plus per-type options; directive arguments on the
// declaration itself override both.
type File struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Defaults apply to every value object type.
	Defaults Options `yaml:"defaults,omitempty"`

	// Types maps a type name to its options.
	Types map[string]Options `yaml:"types,omitempty"`
}

// DefaultFileName is looked up next to the processed package when no -config
// flag is given.
const DefaultFileName = "valueobject.yaml"

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if f.Version == "" {
		f.Version = "1"
	}
	return &f, nil
}

// For resolves the file-level options for the named type: defaults overlaid
// with the type's entry. The result still needs the declaration's directive
// merged on top.
func (f *File) For(typeName string) Options {
	if f == nil {
		return Options{}
	}
	return f.Defaults.Merge(f.Types[typeName])
}
