package prober

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

// writeModule creates a minimal module root with a go.mod and returns its
// path.
func writeModule(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	gomod := "module fixturetest\n\ngo 1.24\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))

	return dir
}

func writeFixture(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	return path
}

func TestProbe_MissingFile(t *testing.T) {
	dir := writeModule(t)
	p := New(newTestLogger(), dir)

	m := p.Probe(filepath.Join(dir, "nope.bench.go"))

	assert.False(t, m.Success)
	assert.NotEmpty(t, m.Error)
	assert.Contains(t, m.Error, "not found")
	assert.Zero(t, m.TypeCheckTime)
	assert.Zero(t, m.TotalTime)
}

func TestProbe_NoModuleConfig(t *testing.T) {
	// No go.mod anywhere between the temp dir and the filesystem root.
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "a.bench.go", "package a\n")

	m := New(newTestLogger(), dir).Probe(fixture)

	assert.False(t, m.Success)
	assert.Contains(t, m.Error, "go.mod")
}

func TestProbe_TimingInvariants(t *testing.T) {
	dir := writeModule(t)
	fixture := writeFixture(t, dir, "a.bench.go", `package a

type row struct {
	id   int64
	name string
}

var records []row
`)

	m := New(newTestLogger(), dir).Probe(fixture)

	require.True(t, m.Success, "probe failed: %s", m.Error)
	assert.GreaterOrEqual(t, m.TypeCheckTime.Nanoseconds(), int64(0))
	assert.GreaterOrEqual(t, m.TotalTime, m.TypeCheckTime)
	assert.Zero(t, m.Diagnostics)
	assert.Zero(t, m.Instantiations)
}

func TestProbe_CountsInstantiations(t *testing.T) {
	dir := writeModule(t)
	fixture := writeFixture(t, dir, "generic.bench.go", `package generic

func identity[T any](v T) T { return v }

type pair[K comparable, V any] struct {
	key K
	val V
}

var a = identity(1)
var b = identity("x")
var c = pair[string, int]{key: "a", val: 1}
`)

	m := New(newTestLogger(), dir).Probe(fixture)

	require.True(t, m.Success, "probe failed: %s", m.Error)
	assert.Equal(t, 3, m.Instantiations)
}

func TestProbe_CountsDiagnostics(t *testing.T) {
	dir := writeModule(t)
	fixture := writeFixture(t, dir, "broken.bench.go", `package broken

var x int = "not an int"
`)

	m := New(newTestLogger(), dir).Probe(fixture)

	// Diagnostics are informational; a fixture with type errors still
	// probes successfully.
	require.True(t, m.Success)
	assert.GreaterOrEqual(t, m.Diagnostics, 1)
}

func TestProbe_UnparsableFixture(t *testing.T) {
	dir := writeModule(t)
	fixture := writeFixture(t, dir, "garbage.bench.go", "this is not go code")

	m := New(newTestLogger(), dir).Probe(fixture)

	assert.False(t, m.Success)
	assert.Contains(t, m.Error, "parsing")
	assert.GreaterOrEqual(t, m.Diagnostics, 1)
}

func TestFindGoMod_WalksUpward(t *testing.T) {
	root := writeModule(t)
	nested := filepath.Join(root, "benchdata", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := findGoMod(nested)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "go.mod"), found)
}
