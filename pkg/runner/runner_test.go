package runner

import (
	"io"
	"testing"
	"time"

	"github.com/ethpandaops/typecheckoor/pkg/prober"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

// stubProber scripts measurements per path and call number (1-based,
// warm-up included).
type stubProber struct {
	calls  map[string]int
	script func(path string, call int) *prober.Measurement
}

func newStubProber(script func(path string, call int) *prober.Measurement) *stubProber {
	return &stubProber{
		calls:  make(map[string]int),
		script: script,
	}
}

func (s *stubProber) Probe(path string) *prober.Measurement {
	s.calls[path]++

	return s.script(path, s.calls[path])
}

func ok(d time.Duration) *prober.Measurement {
	return &prober.Measurement{
		TypeCheckTime: d,
		TotalTime:     d + time.Millisecond,
		Success:       true,
	}
}

func TestRun_WarmupPlusIterations(t *testing.T) {
	stub := newStubProber(func(string, int) *prober.Measurement {
		return ok(10 * time.Millisecond)
	})

	r := New(newTestLogger(), stub, 3)
	sum := r.Run([]string{"a.bench.go"})

	// One discarded warm-up probe, then exactly 3 measured iterations.
	assert.Equal(t, 4, stub.calls["a.bench.go"])
	require.Len(t, sum.Stats, 1)
	assert.Equal(t, 3, sum.Stats[0].Iterations)
	assert.Empty(t, sum.Stats[0].Err)
}

func TestRun_FailFastPerFixture(t *testing.T) {
	stub := newStubProber(func(path string, call int) *prober.Measurement {
		if path == "bad.bench.go" {
			return &prober.Measurement{Success: false, Error: "no go.mod found"}
		}

		return ok(5 * time.Millisecond)
	})

	r := New(newTestLogger(), stub, 5)
	sum := r.Run([]string{"good.bench.go", "bad.bench.go"})

	// The failing fixture stops after its first measured probe (warm-up
	// failures are discarded like any other warm-up result).
	assert.Equal(t, 2, stub.calls["bad.bench.go"])
	assert.Equal(t, 6, stub.calls["good.bench.go"])

	require.Len(t, sum.Stats, 2)
	assert.Empty(t, sum.Stats[0].Err)
	assert.Equal(t, "no go.mod found", sum.Stats[1].Err)
	assert.Zero(t, sum.Stats[1].Iterations)

	// Errored fixtures are excluded from the comparison.
	require.Len(t, sum.Comparison, 1)
	assert.Equal(t, "good.bench.go", sum.Comparison[0].Path)
	assert.True(t, sum.Comparison[0].Baseline)
}

func TestRun_Aggregates(t *testing.T) {
	durations := []time.Duration{
		99 * time.Millisecond, // warm-up, discarded
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
	}

	stub := newStubProber(func(path string, call int) *prober.Measurement {
		m := ok(durations[call-1])
		if call == 2 {
			// First measured iteration carries the reported diagnostic and
			// instantiation counts.
			m.Diagnostics = 7
			m.Instantiations = 42
		}

		return m
	})

	r := New(newTestLogger(), stub, 3)
	sum := r.Run([]string{"a.bench.go"})

	require.Len(t, sum.Stats, 1)
	s := sum.Stats[0]

	assert.Equal(t, 20*time.Millisecond, s.Avg)
	assert.Equal(t, 10*time.Millisecond, s.Min)
	assert.Equal(t, 30*time.Millisecond, s.Max)
	assert.Equal(t, 7, s.Diagnostics)
	assert.Equal(t, 42, s.Instantiations)
}

func TestNew_DefaultsIterations(t *testing.T) {
	stub := newStubProber(func(string, int) *prober.Measurement {
		return ok(time.Millisecond)
	})

	r := New(newTestLogger(), stub, 0)
	r.Run([]string{"a.bench.go"})

	assert.Equal(t, DefaultIterations+1, stub.calls["a.bench.go"])
}

func TestCompare(t *testing.T) {
	stats := []FixtureStats{
		{Path: "slow.bench.go", Iterations: 5, Avg: 40 * time.Millisecond},
		{Path: "fast.bench.go", Iterations: 5, Avg: 10 * time.Millisecond},
		{Path: "mid.bench.go", Iterations: 5, Avg: 25 * time.Millisecond},
		{Path: "broken.bench.go", Iterations: 0, Err: "boom"},
	}

	rows := Compare(stats)

	require.Len(t, rows, 3)

	// Baseline first (sorted ascending by delta), ratio exactly 1.
	assert.Equal(t, "fast.bench.go", rows[0].Path)
	assert.True(t, rows[0].Baseline)
	assert.Equal(t, 1.0, rows[0].Ratio)
	assert.Zero(t, rows[0].Delta)

	assert.Equal(t, "mid.bench.go", rows[1].Path)
	assert.Equal(t, "slow.bench.go", rows[2].Path)
	assert.Equal(t, 15*time.Millisecond, rows[1].Delta)
	assert.Equal(t, 30*time.Millisecond, rows[2].Delta)

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.Ratio, 1.0)
	}
}

func TestCompare_TiedFastest(t *testing.T) {
	stats := []FixtureStats{
		{Path: "first.bench.go", Iterations: 5, Avg: 10 * time.Millisecond},
		{Path: "second.bench.go", Iterations: 5, Avg: 10 * time.Millisecond},
		{Path: "slow.bench.go", Iterations: 5, Avg: 20 * time.Millisecond},
	}

	rows := Compare(stats)

	require.Len(t, rows, 3)

	// Both tied fixtures sit at ratio 1, but only the first is the baseline.
	assert.Equal(t, "first.bench.go", rows[0].Path)
	assert.True(t, rows[0].Baseline)
	assert.Equal(t, 1.0, rows[0].Ratio)

	assert.Equal(t, "second.bench.go", rows[1].Path)
	assert.False(t, rows[1].Baseline)
	assert.Equal(t, 1.0, rows[1].Ratio)

	assert.False(t, rows[2].Baseline)
}

func TestCompare_AllErrored(t *testing.T) {
	stats := []FixtureStats{
		{Path: "a.bench.go", Err: "boom"},
		{Path: "b.bench.go", Err: "boom"},
	}

	assert.Nil(t, Compare(stats))
}
