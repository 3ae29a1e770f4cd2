// Package config loads and validates the typecheckoor configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultBenchDir is the default directory holding fixture files.
	DefaultBenchDir = "./benchdata"

	// DefaultFixtureSuffix identifies fixture files inside the bench dir.
	DefaultFixtureSuffix = ".bench.go"

	// DefaultIterations is the default number of measured probes per fixture.
	DefaultIterations = 5

	// DefaultSnapshotDriver is the default snapshot store backend.
	DefaultSnapshotDriver = "sqlite"
)

// Config is the root configuration for typecheckoor.
type Config struct {
	Global    GlobalConfig    `yaml:"global"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Generate  GenerateConfig  `yaml:"generate"`
	Snapshots SnapshotConfig  `yaml:"snapshots"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"`
}

// BenchmarkConfig contains fixture discovery and measurement settings.
type BenchmarkConfig struct {
	Dir           string `yaml:"dir"`
	FixtureSuffix string `yaml:"fixture_suffix"`
	Iterations    int    `yaml:"iterations"`
	Manifest      string `yaml:"manifest"`
}

// GenerateConfig describes the external code generator invoked before a
// batch run. The command runs with inherited standard streams.
type GenerateConfig struct {
	Command []string `yaml:"command"`
}

// SnapshotConfig contains snapshot store connection settings.
type SnapshotConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite,omitempty"`
	Postgres PostgresConfig `yaml:"postgres,omitempty"`
}

// SQLiteConfig contains SQLite-specific settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// PostgresConfig contains PostgreSQL connection settings for teams that
// keep a shared baseline instead of the per-checkout sqlite file.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// Load reads and parses a configuration file from the given path. An empty
// path yields the default configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for unspecified configuration options.
func (c *Config) applyDefaults() {
	if c.Global.LogLevel == "" {
		c.Global.LogLevel = DefaultLogLevel
	}

	if c.Benchmark.Dir == "" {
		c.Benchmark.Dir = DefaultBenchDir
	}

	if c.Benchmark.FixtureSuffix == "" {
		c.Benchmark.FixtureSuffix = DefaultFixtureSuffix
	}

	if c.Benchmark.Iterations == 0 {
		c.Benchmark.Iterations = DefaultIterations
	}

	if c.Benchmark.Manifest == "" {
		c.Benchmark.Manifest = filepath.Join(c.Benchmark.Dir, "fixtures.yaml")
	}

	if len(c.Generate.Command) == 0 {
		// A no-op unless benchdata declares a go:generate directive; setups
		// with an external client generator override generate.command.
		c.Generate.Command = []string{"go", "generate", "./benchdata"}
	}

	if c.Snapshots.Driver == "" {
		c.Snapshots.Driver = DefaultSnapshotDriver
	}

	if c.Snapshots.Driver == "sqlite" && c.Snapshots.SQLite.Path == "" {
		c.Snapshots.SQLite.Path = filepath.Join(c.Benchmark.Dir, "snapshots.db")
	}

	if c.Snapshots.Driver == "postgres" && c.Snapshots.Postgres.SSLMode == "" {
		c.Snapshots.Postgres.SSLMode = "disable"
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Benchmark.Iterations < 0 {
		return fmt.Errorf("benchmark.iterations must be positive, got %d",
			c.Benchmark.Iterations)
	}

	if len(c.Generate.Command) == 0 {
		return fmt.Errorf("generate.command must not be empty")
	}

	switch c.Snapshots.Driver {
	case "sqlite":
		if c.Snapshots.SQLite.Path == "" {
			return fmt.Errorf("snapshots.sqlite.path is required")
		}
	case "postgres":
		if c.Snapshots.Postgres.Host == "" {
			return fmt.Errorf("snapshots.postgres.host is required")
		}

		if c.Snapshots.Postgres.Database == "" {
			return fmt.Errorf("snapshots.postgres.database is required")
		}
	default:
		return fmt.Errorf("unsupported snapshot driver: %s", c.Snapshots.Driver)
	}

	return nil
}
