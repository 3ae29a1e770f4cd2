// Package runner drives repeated type-check measurements over a set of
// fixtures and aggregates them into a comparative summary.
package runner

import (
	"sort"
	"time"

	"github.com/ethpandaops/typecheckoor/pkg/prober"
	"github.com/sirupsen/logrus"
)

// DefaultIterations is the number of measured probes per fixture.
const DefaultIterations = 5

// Prober is the measurement source for the runner. Implemented by
// prober.Prober; stubbed in tests.
type Prober interface {
	Probe(path string) *prober.Measurement
}

// FixtureStats aggregates the measured iterations of one fixture.
type FixtureStats struct {
	Path           string
	Iterations     int
	Avg            time.Duration
	Min            time.Duration
	Max            time.Duration
	Diagnostics    int
	Instantiations int
	Err            string
}

// ComparisonRow relates one fixture's average time to the fastest fixture
// of the same run. Rows are derived per run and never persisted.
type ComparisonRow struct {
	Path     string
	Avg      time.Duration
	Ratio    float64
	Delta    time.Duration
	Baseline bool
}

// Summary is the outcome of one runner invocation.
type Summary struct {
	Stats      []FixtureStats
	Comparison []ComparisonRow
}

// Runner measures fixtures sequentially: one discarded warm-up probe per
// fixture, then a fixed number of measured iterations.
type Runner struct {
	log        logrus.FieldLogger
	prober     Prober
	iterations int
}

// New creates a Runner. A non-positive iteration count falls back to
// DefaultIterations.
func New(log logrus.FieldLogger, p Prober, iterations int) *Runner {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &Runner{
		log:        log.WithField("component", "runner"),
		prober:     p,
		iterations: iterations,
	}
}

// Run measures every fixture and returns the aggregated summary. It is a
// reporting tool and never fails as a whole; per-fixture errors are carried
// in the stats.
func (r *Runner) Run(paths []string) *Summary {
	// Warm-up pass. The first probe pays one-off costs (stdlib export data,
	// page cache) that would skew the first fixture's numbers, so every
	// fixture is probed once and the result discarded.
	r.log.WithField("fixtures", len(paths)).Info("Warming up")

	for _, path := range paths {
		r.prober.Probe(path)
	}

	r.log.WithField("iterations", r.iterations).Info("Measuring")

	stats := make([]FixtureStats, 0, len(paths))
	for _, path := range paths {
		stats = append(stats, r.measure(path))
	}

	return &Summary{
		Stats:      stats,
		Comparison: Compare(stats),
	}
}

// measure runs the configured number of iterations for one fixture,
// stopping at the first failed measurement.
func (r *Runner) measure(path string) FixtureStats {
	s := FixtureStats{Path: path}

	var total time.Duration

	for i := 0; i < r.iterations; i++ {
		m := r.prober.Probe(path)
		if !m.Success {
			s.Err = m.Error
			r.log.WithField("fixture", path).
				WithField("error", m.Error).
				Error("Measurement failed")

			break
		}

		if i == 0 {
			// Diagnostics and instantiations are stable across iterations
			// since the fixture content does not change.
			s.Diagnostics = m.Diagnostics
			s.Instantiations = m.Instantiations
		}

		s.Iterations++
		total += m.TypeCheckTime

		if s.Iterations == 1 || m.TypeCheckTime < s.Min {
			s.Min = m.TypeCheckTime
		}

		if m.TypeCheckTime > s.Max {
			s.Max = m.TypeCheckTime
		}
	}

	if s.Iterations > 0 {
		s.Avg = total / time.Duration(s.Iterations)
	}

	return s
}

// Compare derives comparison rows against the fastest fixture. Fixtures
// without a single successful iteration are excluded. The baseline row has
// ratio exactly 1; rows are sorted ascending by delta.
func Compare(stats []FixtureStats) []ComparisonRow {
	var (
		fastest time.Duration
		found   bool
	)

	for _, s := range stats {
		if s.Iterations == 0 {
			continue
		}

		if !found || s.Avg < fastest {
			fastest = s.Avg
			found = true
		}
	}

	if !found {
		return nil
	}

	rows := make([]ComparisonRow, 0, len(stats))

	// Only the first fixture at the fastest average is the baseline; ties
	// get ratio 1 but no baseline mark.
	baselineMarked := false

	for _, s := range stats {
		if s.Iterations == 0 {
			continue
		}

		ratio := 1.0
		if fastest > 0 {
			ratio = float64(s.Avg) / float64(fastest)
		}

		baseline := !baselineMarked && s.Avg == fastest
		if baseline {
			baselineMarked = true
		}

		rows = append(rows, ComparisonRow{
			Path:     s.Path,
			Avg:      s.Avg,
			Ratio:    ratio,
			Delta:    s.Avg - fastest,
			Baseline: baseline,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Delta < rows[j].Delta
	})

	return rows
}
