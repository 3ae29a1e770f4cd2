package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// LabelFunc maps a fixture path to a display label. May be nil, in which
// case the file name is used.
type LabelFunc func(path string) string

// PrintSummary renders the measurement and comparison tables. Output is
// markdown so it can be pasted into issues and CI summaries as-is.
func PrintSummary(w io.Writer, sum *Summary, labelFor LabelFunc) {
	var sb strings.Builder

	sb.Grow(4096)

	writeHost(&sb)
	writeMeasurements(&sb, sum.Stats, labelFor)
	writeComparison(&sb, sum.Comparison, labelFor)

	fmt.Fprint(w, sb.String())
}

func writeHost(sb *strings.Builder) {
	sb.WriteString("## Host\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|---|---|\n")

	if hi, err := host.Info(); err == nil {
		fmt.Fprintf(sb, "| Hostname | %s |\n", hi.Hostname)
		fmt.Fprintf(sb, "| OS | %s %s |\n", hi.Platform, hi.PlatformVersion)
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		fmt.Fprintf(sb, "| CPU | %s |\n", infos[0].ModelName)
	}

	fmt.Fprintf(sb, "| Cores | %d |\n", runtime.NumCPU())

	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(sb, "| Memory | %.1f GB |\n",
			float64(vm.Total)/(1024*1024*1024))
	}

	fmt.Fprintf(sb, "| Go | %s |\n", runtime.Version())

	sb.WriteByte('\n')
}

func writeMeasurements(sb *strings.Builder, stats []FixtureStats, labelFor LabelFunc) {
	sb.WriteString("## Measurements\n\n")
	sb.WriteString("| Fixture | Size | Avg (ms) | Min (ms) | Max (ms) | Diagnostics | Instantiations |\n")
	sb.WriteString("|---|---|---|---|---|---|---|\n")

	for _, s := range stats {
		if s.Iterations == 0 {
			fmt.Fprintf(sb, "| %s | %s | ERROR | - | - | - | - |\n",
				displayName(s.Path, labelFor), fixtureSize(s.Path))

			continue
		}

		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s | %d | %d |\n",
			displayName(s.Path, labelFor),
			fixtureSize(s.Path),
			formatMs(s.Avg),
			formatMs(s.Min),
			formatMs(s.Max),
			s.Diagnostics,
			s.Instantiations,
		)
	}

	sb.WriteByte('\n')

	// Errors go below the table so the message is not truncated.
	for _, s := range stats {
		if s.Err != "" {
			fmt.Fprintf(sb, "- `%s`: %s\n", displayName(s.Path, labelFor), s.Err)
		}
	}
}

func writeComparison(sb *strings.Builder, rows []ComparisonRow, labelFor LabelFunc) {
	if len(rows) == 0 {
		return
	}

	sb.WriteString("## Relative speed\n\n")
	sb.WriteString("| Fixture | Avg (ms) | vs fastest | Delta (ms) |\n")
	sb.WriteString("|---|---|---|---|\n")

	for _, row := range rows {
		relative := fmt.Sprintf("%.2fx", row.Ratio)
		if row.Baseline {
			relative = "baseline"
		}

		fmt.Fprintf(sb, "| %s | %s | %s | +%s |\n",
			displayName(row.Path, labelFor),
			formatMs(row.Avg),
			relative,
			formatMs(row.Delta),
		)
	}

	sb.WriteByte('\n')
}

func displayName(path string, labelFor LabelFunc) string {
	if labelFor != nil {
		if label := labelFor(path); label != "" {
			return label
		}
	}

	return filepath.Base(path)
}

func fixtureSize(path string) string {
	fi, err := os.Stat(path)
	if err != nil {
		return "-"
	}

	return units.HumanSize(float64(fi.Size()))
}

func formatMs(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d)/float64(time.Millisecond))
}
