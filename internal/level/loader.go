package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML layout from path. Fields missing from the file keep the
// values of Default(); a file that lists obstacles replaces the default set.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("level: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (Layout, error) {
	l := Default()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("level: unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Marshal encodes a layout in the same format Load understands.
func Marshal(l Layout) ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("level: marshal: %w", err)
	}
	return data, nil
}
