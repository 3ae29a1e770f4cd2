// Package prober measures the cost of type-checking a single fixture file
// with go/types. It reports wall-clock timings, diagnostic counts and the
// number of generic instantiations the checker performed.
package prober

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/mod/modfile"
)

// Measurement is a single observation of type-checking one fixture file.
// It is never mutated after Probe returns.
type Measurement struct {
	Path           string        `json:"path"`
	TypeCheckTime  time.Duration `json:"type_check_time"`
	TotalTime      time.Duration `json:"total_time"`
	Diagnostics    int           `json:"diagnostics"`
	Instantiations int           `json:"instantiations"`
	Success        bool          `json:"success"`
	Error          string        `json:"error,omitempty"`
}

// Prober type-checks fixture files one at a time. The module configuration
// (go.mod) is resolved by walking upward from workDir, the same way the go
// tool resolves it.
type Prober struct {
	log     logrus.FieldLogger
	workDir string
}

// New creates a Prober that resolves the module configuration relative to
// workDir.
func New(log logrus.FieldLogger, workDir string) *Prober {
	return &Prober{
		log:     log.WithField("component", "prober"),
		workDir: workDir,
	}
}

// Probe type-checks the fixture at path and returns a Measurement. Errors
// never escape: a failed probe is reported as a Measurement with Success
// set to false and the error message captured. Timings stay zero when the
// fixture or the module configuration cannot be resolved.
//
// TotalTime covers the whole probe including configuration resolution and
// importer setup. TypeCheckTime covers only parsing (syntactic diagnostics)
// and checking (semantic diagnostics), which is the cost being compared
// across fixtures.
func (p *Prober) Probe(path string) (m *Measurement) {
	m = &Measurement{Path: path}

	defer func() {
		if r := recover(); r != nil {
			m.Success = false
			m.Error = fmt.Sprintf("type checker panic: %v", r)
		}
	}()

	start := time.Now()

	abs, err := filepath.Abs(path)
	if err != nil {
		m.Error = fmt.Sprintf("resolving path %q: %v", path, err)

		return m
	}

	if fi, statErr := os.Stat(abs); statErr != nil || fi.IsDir() {
		m.Error = fmt.Sprintf("fixture file not found: %s", abs)

		return m
	}

	goVersion, err := p.resolveGoVersion()
	if err != nil {
		m.Error = err.Error()

		return m
	}

	src, err := os.ReadFile(abs)
	if err != nil {
		m.Error = fmt.Sprintf("reading fixture: %v", err)

		return m
	}

	fset := token.NewFileSet()
	imp := importer.ForCompiler(fset, "source", nil)

	// Construction ends here. Parsing and checking below are the measured
	// type-check cost; their diagnostics form the reported union.
	checkStart := time.Now()

	file, parseErr := parser.ParseFile(
		fset, abs, src, parser.AllErrors|parser.SkipObjectResolution,
	)
	if parseErr != nil {
		if list, ok := parseErr.(scanner.ErrorList); ok {
			m.Diagnostics += len(list)
		} else {
			m.Diagnostics++
		}
	}

	if file == nil {
		m.TypeCheckTime = time.Since(checkStart)
		m.TotalTime = time.Since(start)
		m.Error = fmt.Sprintf("parsing fixture: %v", parseErr)

		return m
	}

	conf := types.Config{
		Importer:  imp,
		GoVersion: goVersion,
		Error: func(error) {
			m.Diagnostics++
		},
	}

	info := &types.Info{
		Instances: make(map[*ast.Ident]types.Instance),
	}

	// With an Error handler installed the checker keeps going after the
	// first problem; the returned error duplicates a diagnostic that the
	// handler already counted.
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, info)

	m.TypeCheckTime = time.Since(checkStart)
	m.TotalTime = time.Since(start)
	m.Instantiations = len(info.Instances)
	m.Success = true

	p.log.WithFields(logrus.Fields{
		"fixture":        filepath.Base(abs),
		"type_check_ms":  float64(m.TypeCheckTime) / float64(time.Millisecond),
		"diagnostics":    m.Diagnostics,
		"instantiations": m.Instantiations,
	}).Debug("Probe completed")

	return m
}

// resolveGoVersion reads the go directive of the nearest go.mod so the
// checker applies the same language version the go tool would.
func (p *Prober) resolveGoVersion() (string, error) {
	modPath, err := findGoMod(p.workDir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(modPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", modPath, err)
	}

	mf, err := modfile.Parse(modPath, data, nil)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", modPath, err)
	}

	if mf.Go == nil || mf.Go.Version == "" {
		// No go directive: let the checker use its default version.
		return "", nil
	}

	return "go" + mf.Go.Version, nil
}

// findGoMod walks upward from dir until it finds a go.mod file.
func findGoMod(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}

	for current := abs; ; {
		candidate := filepath.Join(current, "go.mod")
		if fi, statErr := os.Stat(candidate); statErr == nil && fi.Mode().IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found walking up from %s", abs)
		}

		current = parent
	}
}
