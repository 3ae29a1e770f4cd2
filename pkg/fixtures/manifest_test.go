package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const validManifest = `
fixtures:
  - file: query_inferred_builder.bench.go
    label: Orders with joins
    category: query
    style: inferred-builder
  - file: schema_generated_client.bench.go
    label: Northwind schema
    category: schema
    style: generated-client
`

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, validManifest))

	require.NoError(t, err)
	require.Len(t, m.Fixtures, 2)
	assert.Equal(t, "query", m.Fixtures[0].Category)
	assert.Equal(t, "inferred-builder", m.Fixtures[0].Style)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantErr  string
	}{
		{
			name: "valid",
			manifest: Manifest{Fixtures: []Fixture{
				{File: "a.bench.go", Label: "A", Category: CategorySchema, Style: StyleInferredBuilder},
			}},
		},
		{
			name: "missing file",
			manifest: Manifest{Fixtures: []Fixture{
				{Label: "A", Category: CategorySchema, Style: StyleInferredBuilder},
			}},
			wantErr: "file is required",
		},
		{
			name: "duplicate file",
			manifest: Manifest{Fixtures: []Fixture{
				{File: "a.bench.go", Label: "A", Category: CategorySchema, Style: StyleInferredBuilder},
				{File: "a.bench.go", Label: "B", Category: CategoryQuery, Style: StyleInferredBuilder},
			}},
			wantErr: "duplicate file",
		},
		{
			name: "missing label",
			manifest: Manifest{Fixtures: []Fixture{
				{File: "a.bench.go", Category: CategorySchema, Style: StyleInferredBuilder},
			}},
			wantErr: "label is required",
		},
		{
			name: "unknown category",
			manifest: Manifest{Fixtures: []Fixture{
				{File: "a.bench.go", Label: "A", Category: "migration", Style: StyleInferredBuilder},
			}},
			wantErr: "unknown category",
		},
		{
			name: "unknown style",
			manifest: Manifest{Fixtures: []Fixture{
				{File: "a.bench.go", Label: "A", Category: CategoryQuery, Style: "raw-sql"},
			}},
			wantErr: "unknown style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLookup(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, validManifest))
	require.NoError(t, err)

	f, ok := m.Lookup("/some/dir/schema_generated_client.bench.go")
	require.True(t, ok)
	assert.Equal(t, "Northwind schema", f.Label)

	_, ok = m.Lookup("unknown.bench.go")
	assert.False(t, ok)
}

func TestLabelFor(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, validManifest))
	require.NoError(t, err)

	assert.Equal(t, "Orders with joins (builder)",
		m.LabelFor("query_inferred_builder.bench.go"))
	assert.Equal(t, "unknown.bench.go", m.LabelFor("/x/unknown.bench.go"))
}
