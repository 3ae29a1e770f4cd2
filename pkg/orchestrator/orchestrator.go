// Package orchestrator discovers fixture files, optionally regenerates the
// typed client code, runs each fixture's assertion in an isolated
// subprocess and aggregates the outcomes.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// UpdateSnapshotsEnv tells a fixture subprocess to overwrite its recorded
// baseline instead of comparing against it.
const UpdateSnapshotsEnv = "TYPECHECKOOR_UPDATE_SNAPSHOTS"

// Outcome is the result of one fixture's assertion run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeSkipped Outcome = "skipped"
)

// FixtureResult pairs a fixture with its outcome.
type FixtureResult struct {
	Name    string
	Outcome Outcome
}

// SpawnFunc runs the self-contained assertion for one fixture in an
// isolated subprocess. A non-nil error marks the fixture failed.
type SpawnFunc func(ctx context.Context, path string, update bool) error

// Config contains orchestrator settings. ConfigFile and LogLevel are
// forwarded to every spawned subprocess so children resolve the same
// snapshot store and log at the same level as the parent.
type Config struct {
	BenchDir        string
	FixtureSuffix   string
	GenerateCommand []string
	UpdateSnapshots bool
	Filter          string
	ConfigFile      string
	LogLevel        string
}

// Orchestrator runs a batch of fixture assertions sequentially.
type Orchestrator struct {
	log   logrus.FieldLogger
	cfg   *Config
	spawn SpawnFunc
}

// New creates an Orchestrator. A nil spawn function defaults to re-executing
// this binary's check subcommand per fixture.
func New(log logrus.FieldLogger, cfg *Config, spawn SpawnFunc) *Orchestrator {
	o := &Orchestrator{
		log:   log.WithField("component", "orchestrator"),
		cfg:   cfg,
		spawn: spawn,
	}

	if o.spawn == nil {
		o.spawn = o.spawnCheck
	}

	return o
}

// Generate invokes the external code generator with inherited standard
// streams. A failure here is unrecoverable for the batch run; callers are
// expected to abort on error.
func (o *Orchestrator) Generate(ctx context.Context) error {
	argv := o.cfg.GenerateCommand
	if len(argv) == 0 {
		return fmt.Errorf("no generate command configured")
	}

	o.log.WithField("command", strings.Join(argv, " ")).Info("Running code generator")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running code generator: %w", err)
	}

	return nil
}

// DiscoverFixtures lists regular files in the bench dir whose name ends
// with the fixture suffix. os.ReadDir returns entries sorted by file name,
// which keeps run order and comparison output stable across filesystems.
func (o *Orchestrator) DiscoverFixtures() ([]string, error) {
	entries, err := os.ReadDir(o.cfg.BenchDir)
	if err != nil {
		return nil, fmt.Errorf("listing bench dir: %w", err)
	}

	paths := make([]string, 0, len(entries))

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), o.cfg.FixtureSuffix) {
			continue
		}

		paths = append(paths, filepath.Join(o.cfg.BenchDir, entry.Name()))
	}

	return paths, nil
}

// Run executes every discovered fixture's assertion, one isolated
// subprocess at a time. Fixtures not matching the filter are recorded as
// skipped. A fixture failure never aborts its siblings.
func (o *Orchestrator) Run(ctx context.Context) ([]FixtureResult, error) {
	paths, err := o.DiscoverFixtures()
	if err != nil {
		return nil, err
	}

	results := make([]FixtureResult, 0, len(paths))

	for _, path := range paths {
		name := filepath.Base(path)

		if o.cfg.Filter != "" && !strings.Contains(name, o.cfg.Filter) {
			results = append(results, FixtureResult{Name: name, Outcome: OutcomeSkipped})

			continue
		}

		o.log.WithField("fixture", name).Info("Running fixture")

		if err := o.spawn(ctx, path, o.cfg.UpdateSnapshots); err != nil {
			o.log.WithError(err).WithField("fixture", name).Error("Fixture failed")
			results = append(results, FixtureResult{Name: name, Outcome: OutcomeFailure})

			continue
		}

		results = append(results, FixtureResult{Name: name, Outcome: OutcomeSuccess})
	}

	return results, nil
}

// checkArgs builds the child argv for one fixture, forwarding the parent's
// config file and log level so the child loads the same configuration.
func (o *Orchestrator) checkArgs(path string) []string {
	args := []string{"check", path}

	if o.cfg.ConfigFile != "" {
		args = append(args, "--config", o.cfg.ConfigFile)
	}

	if o.cfg.LogLevel != "" {
		args = append(args, "--log-level", o.cfg.LogLevel)
	}

	return args
}

// spawnCheck re-executes this binary's check subcommand for one fixture,
// passing the update flag through the environment. Standard streams are
// inherited for live visibility; only the exit code is interpreted.
func (o *Orchestrator) spawnCheck(ctx context.Context, path string, update bool) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable: %w", err)
	}

	cmd := exec.CommandContext(ctx, exe, o.checkArgs(path)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%t", UpdateSnapshotsEnv, update))

	return cmd.Run()
}

// Failed reports whether any result is a failure. Skips never count.
func Failed(results []FixtureResult) bool {
	for _, r := range results {
		if r.Outcome == OutcomeFailure {
			return true
		}
	}

	return false
}

// PrintSummary renders the outcome table for a batch run.
func PrintSummary(w io.Writer, results []FixtureResult) {
	var sb strings.Builder

	sb.WriteString("\n## Fixtures\n\n")
	sb.WriteString("| Fixture | Outcome |\n")
	sb.WriteString("|---|---|\n")

	var passed, failed, skipped int

	for _, r := range results {
		mark := "✅ success"

		switch r.Outcome {
		case OutcomeFailure:
			mark = "❌ failure"
			failed++
		case OutcomeSkipped:
			mark = "⏭️ skipped"
			skipped++
		case OutcomeSuccess:
			passed++
		}

		fmt.Fprintf(&sb, "| %s | %s |\n", r.Name, mark)
	}

	fmt.Fprintf(&sb, "\n%d passed, %d failed, %d skipped\n",
		passed, failed, skipped)

	fmt.Fprint(w, sb.String())
}
