// Package fixtures loads the fixture manifest describing each benchmark
// fixture's display label, query-pattern category and ORM style.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Query-pattern categories.
const (
	CategorySchema = "schema"
	CategoryQuery  = "query"
)

// ORM styles. The generated-client style uses monomorphic per-table code;
// the inferred styles instantiate generics per query, either through nested
// relationship declarations or an explicit builder chain.
const (
	StyleGeneratedClient    = "generated-client"
	StyleInferredRelational = "inferred-relational"
	StyleInferredBuilder    = "inferred-builder"
)

// Fixture describes one fixture file. The expected instantiation count is
// not part of the manifest; it lives in the snapshot store.
type Fixture struct {
	File     string `yaml:"file"`
	Label    string `yaml:"label"`
	Category string `yaml:"category"`
	Style    string `yaml:"style"`
}

// Manifest is the set of declared fixtures.
type Manifest struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks the manifest for errors.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Fixtures))

	for i, f := range m.Fixtures {
		if f.File == "" {
			return fmt.Errorf("fixture %d: file is required", i)
		}

		if _, exists := seen[f.File]; exists {
			return fmt.Errorf("fixture %d: duplicate file %q", i, f.File)
		}

		seen[f.File] = struct{}{}

		if f.Label == "" {
			return fmt.Errorf("fixture %q: label is required", f.File)
		}

		switch f.Category {
		case CategorySchema, CategoryQuery:
		default:
			return fmt.Errorf("fixture %q: unknown category %q", f.File, f.Category)
		}

		switch f.Style {
		case StyleGeneratedClient, StyleInferredRelational, StyleInferredBuilder:
		default:
			return fmt.Errorf("fixture %q: unknown style %q", f.File, f.Style)
		}
	}

	return nil
}

// Lookup returns the fixture declared for the given path, matching on the
// file name.
func (m *Manifest) Lookup(path string) (*Fixture, bool) {
	name := filepath.Base(path)

	for i := range m.Fixtures {
		if m.Fixtures[i].File == name {
			return &m.Fixtures[i], true
		}
	}

	return nil, false
}

// LabelFor returns a display label for path, falling back to the file name
// for fixtures missing from the manifest.
func (m *Manifest) LabelFor(path string) string {
	if f, ok := m.Lookup(path); ok {
		return fmt.Sprintf("%s (%s)", f.Label, strings.TrimPrefix(f.Style, "inferred-"))
	}

	return filepath.Base(path)
}
