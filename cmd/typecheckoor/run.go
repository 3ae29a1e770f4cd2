package main

import (
	"fmt"
	"os"

	"github.com/ethpandaops/typecheckoor/pkg/config"
	"github.com/ethpandaops/typecheckoor/pkg/orchestrator"
	"github.com/spf13/cobra"
)

var (
	updateSnapshots bool
	onlyGenerate    bool
	skipGenerate    bool
)

var runCmd = &cobra.Command{
	Use:   "run [filter]",
	Short: "Run all fixture assertions against recorded snapshots",
	Long: `Discover fixture files, regenerate the typed client code, then run
each fixture's instantiation-count assertion in an isolated subprocess.
An optional positional argument filters fixtures by name substring.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&updateSnapshots, "update-snapshots", "u", false,
		"overwrite recorded instantiation counts with freshly measured ones")
	runCmd.Flags().BoolVar(&onlyGenerate, "only-generate", false,
		"run the code generator and exit without running fixtures")
	runCmd.Flags().BoolVar(&skipGenerate, "skip-generate", false,
		"bypass the code generation step")
}

// validateRunFlags rejects conflicting invocation flags before anything
// runs.
func validateRunFlags(only, skip bool) error {
	if only && skip {
		return fmt.Errorf("--only-generate and --skip-generate are mutually exclusive")
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := validateRunFlags(onlyGenerate, skipGenerate); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	var filter string
	if len(args) > 0 {
		filter = args[0]
	}

	o := orchestrator.New(log, &orchestrator.Config{
		BenchDir:        cfg.Benchmark.Dir,
		FixtureSuffix:   cfg.Benchmark.FixtureSuffix,
		GenerateCommand: cfg.Generate.Command,
		UpdateSnapshots: updateSnapshots,
		Filter:          filter,
		ConfigFile:      cfgFile,
		LogLevel:        logLevel,
	}, nil)

	if !skipGenerate {
		// Generation failure is unrecoverable for the whole run.
		if err := o.Generate(cmd.Context()); err != nil {
			return err
		}
	}

	if onlyGenerate {
		return nil
	}

	results, err := o.Run(cmd.Context())
	if err != nil {
		return err
	}

	orchestrator.PrintSummary(os.Stdout, results)

	if orchestrator.Failed(results) {
		return fmt.Errorf("one or more fixtures failed")
	}

	return nil
}
