package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSchema is the on-disk YAML layout for a schema override.
type fileSchema struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Columns     []Column `yaml:"columns"`
}

// LoadYAML reads a schema definition from a YAML file, replacing the
// built-in registry. Column order in the file becomes schema order.
func LoadYAML(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse schema file %s: %w", path, err)
	}
	if len(fs.Columns) == 0 {
		return nil, fmt.Errorf("schema file %s defines no columns", path)
	}
	if fs.Name == "" {
		fs.Name = "Dataset"
	}

	for i := range fs.Columns {
		if fs.Columns[i].Type == "" {
			fs.Columns[i].Type = TypeString
		}
	}

	return New(fs.Name, fs.Description, fs.Columns)
}
