package main

import (
	"fmt"
	"os"

	"github.com/ethpandaops/typecheckoor/pkg/config"
	"github.com/ethpandaops/typecheckoor/pkg/fixtures"
	"github.com/ethpandaops/typecheckoor/pkg/prober"
	"github.com/ethpandaops/typecheckoor/pkg/runner"
	"github.com/spf13/cobra"
)

var iterations int

var probeCmd = &cobra.Command{
	Use:   "probe <file> [file...]",
	Short: "Measure type-check timings for fixture files",
	Long: `Probe one or more fixture files with go/types and print timing,
diagnostic and instantiation tables, plus a relative-speed comparison
against the fastest fixture. This is a diagnostic tool: it never fails a
run, only reports.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().IntVar(&iterations, "iterations", runner.DefaultIterations,
		"measured iterations per fixture (after one discarded warm-up)")
}

// effectiveIterations prefers an explicit --iterations flag over the
// configured value.
func effectiveIterations(flagSet bool, flagVal, cfgVal int) int {
	if flagSet {
		return flagVal
	}

	return cfgVal
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	// Labels are cosmetic; a missing manifest falls back to file names.
	var labelFor runner.LabelFunc

	if manifest, mErr := fixtures.LoadManifest(cfg.Benchmark.Manifest); mErr == nil {
		labelFor = manifest.LabelFor
	}

	p := prober.New(log, wd)
	r := runner.New(log, p, effectiveIterations(
		cmd.Flags().Changed("iterations"), iterations, cfg.Benchmark.Iterations,
	))

	summary := r.Run(args)
	runner.PrintSummary(os.Stdout, summary, labelFor)

	return nil
}
