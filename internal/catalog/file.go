package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Vehicles []Vehicle `yaml:"vehicles"`
}

// LoadFile reads a YAML catalog. Type and status values are normalised the
// same way the other sources normalise them.
func LoadFile(path string) ([]Vehicle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseYAML(raw)
}

// ParseYAML decodes a catalog document.
func ParseYAML(raw []byte) ([]Vehicle, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range doc.Vehicles {
		doc.Vehicles[i].Type = ParseType(string(doc.Vehicles[i].Type))
		doc.Vehicles[i].Status = ParseStatus(string(doc.Vehicles[i].Status))
	}
	return doc.Vehicles, nil
}
