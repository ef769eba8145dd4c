package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type snapshot struct {
	Source    string    `yaml:"source"`
	FetchedAt time.Time `yaml:"fetched_at"`
	Bodies    []Body    `yaml:"bodies"`
}

// LoadFile reads a catalog snapshot written by SaveFile.
func LoadFile(path string) ([]Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Normalize(snap.Bodies)
}

// SaveFile writes bodies as a YAML snapshot.
func SaveFile(path, source string, bodies []Body) error {
	data, err := yaml.Marshal(snapshot{
		Source:    source,
		FetchedAt: time.Now().UTC(),
		Bodies:    bodies,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
