package desc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a whole scene description file: models (with nested links,
// visuals and lights) plus world-level lights. Entity ids come from the
// upstream authority and are carried verbatim in the file.
type Document struct {
	Name   string       `yaml:"name"`
	Models []ModelEntry `yaml:"models"`
	Lights []LightEntry `yaml:"lights"`
}

// ModelEntry is a model plus its id and children. Models may nest.
type ModelEntry struct {
	ID     uint64 `yaml:"id"`
	Model  `yaml:",inline"`
	Links  []LinkEntry  `yaml:"links"`
	Models []ModelEntry `yaml:"models"`
}

// LinkEntry is a link plus its id and children.
type LinkEntry struct {
	ID      uint64 `yaml:"id"`
	Link    `yaml:",inline"`
	Visuals []VisualEntry `yaml:"visuals"`
	Lights  []LightEntry  `yaml:"lights"`
}

// VisualEntry is a visual plus its id.
type VisualEntry struct {
	ID     uint64 `yaml:"id"`
	Visual `yaml:",inline"`
}

// LightEntry is a light plus its id.
type LightEntry struct {
	ID    uint64 `yaml:"id"`
	Light `yaml:",inline"`
}

// LoadDocument reads and parses a scene description file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return &doc, nil
}

// EntityCount returns the number of entities the document declares.
func (d *Document) EntityCount() int {
	n := len(d.Lights)
	for _, m := range d.Models {
		n += m.count()
	}
	return n
}

func (m *ModelEntry) count() int {
	n := 1
	for _, l := range m.Links {
		n += 1 + len(l.Visuals) + len(l.Lights)
	}
	for _, sub := range m.Models {
		n += sub.count()
	}
	return n
}
