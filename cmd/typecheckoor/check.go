package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ethpandaops/typecheckoor/pkg/config"
	"github.com/ethpandaops/typecheckoor/pkg/fixtures"
	"github.com/ethpandaops/typecheckoor/pkg/orchestrator"
	"github.com/ethpandaops/typecheckoor/pkg/prober"
	"github.com/ethpandaops/typecheckoor/pkg/snapshot"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkUpdate bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Assert one fixture's instantiation count against its snapshot",
	Long: `Type-check a single fixture, count generic instantiations and
compare the count against the recorded snapshot. In update mode the
snapshot is overwritten instead. This is what "run" spawns per fixture.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkUpdate, "update-snapshots", "u", false,
		"overwrite the recorded instantiation count")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	update := checkUpdate
	if v := os.Getenv(orchestrator.UpdateSnapshotsEnv); v != "" {
		if parsed, parseErr := strconv.ParseBool(v); parseErr == nil && parsed {
			update = true
		}
	}

	path := args[0]
	name := filepath.Base(path)

	entry := log.WithField("fixture", name)

	if manifest, mErr := fixtures.LoadManifest(cfg.Benchmark.Manifest); mErr == nil {
		if f, ok := manifest.Lookup(path); ok {
			entry = entry.WithFields(logrus.Fields{
				"category": f.Category,
				"style":    f.Style,
			})
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	m := prober.New(log, wd).Probe(path)
	if !m.Success {
		return fmt.Errorf("probing %s: %s", path, m.Error)
	}

	store := snapshot.NewStore(log, &cfg.Snapshots)
	if err := store.Start(cmd.Context()); err != nil {
		return fmt.Errorf("starting snapshot store: %w", err)
	}

	defer func() {
		if err := store.Stop(); err != nil {
			log.WithError(err).Warn("Failed to close snapshot store")
		}
	}()

	if err := store.Assert(cmd.Context(), name, m.Instantiations, update); err != nil {
		return err
	}

	entry.WithFields(logrus.Fields{
		"instantiations": m.Instantiations,
		"type_check_ms":  float64(m.TypeCheckTime) / float64(time.Millisecond),
		"diagnostics":    m.Diagnostics,
	}).Info("Fixture passed")

	return nil
}
