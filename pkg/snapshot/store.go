// Package snapshot persists expected type-instantiation counts per fixture
// and asserts measured counts against them.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethpandaops/typecheckoor/pkg/config"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Snapshot is the recorded baseline for one fixture, keyed by file name.
type Snapshot struct {
	Name           string `gorm:"primaryKey"`
	Instantiations int    `gorm:"not null"`
	UpdatedAt      time.Time
}

// Store provides persistence for fixture baselines.
type Store interface {
	Start(ctx context.Context) error
	Stop() error

	Get(ctx context.Context, name string) (*Snapshot, error)
	Put(ctx context.Context, snap *Snapshot) error
	List(ctx context.Context) ([]Snapshot, error)

	// Assert compares a measured instantiation count against the recorded
	// baseline. In update mode it overwrites the baseline instead.
	Assert(ctx context.Context, name string, measured int, update bool) error
}

// Compile-time interface check.
var _ Store = (*store)(nil)

type store struct {
	log logrus.FieldLogger
	cfg *config.SnapshotConfig
	db  *gorm.DB
}

// NewStore creates a new Store backed by the configured database driver.
func NewStore(log logrus.FieldLogger, cfg *config.SnapshotConfig) Store {
	return &store{
		log: log.WithField("component", "snapshot"),
		cfg: cfg,
	}
}

// Start opens the database connection and runs migrations.
func (s *store) Start(ctx context.Context) error {
	var dialector gorm.Dialector

	gormCfg := &gorm.Config{
		Logger: logger.Discard,
	}

	switch s.cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(s.cfg.SQLite.Path)
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			s.cfg.Postgres.Host,
			s.cfg.Postgres.Port,
			s.cfg.Postgres.User,
			s.cfg.Postgres.Password,
			s.cfg.Postgres.Database,
			s.cfg.Postgres.SSLMode,
		)
		dialector = postgres.Open(dsn)
	default:
		return fmt.Errorf("unsupported snapshot driver: %s", s.cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}

	s.db = db

	if err := s.db.WithContext(ctx).AutoMigrate(&Snapshot{}); err != nil {
		return fmt.Errorf("migrating snapshot store: %w", err)
	}

	return nil
}

// Stop closes the database connection.
func (s *store) Stop() error {
	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting database handle: %w", err)
	}

	return sqlDB.Close()
}

func (s *store) Get(ctx context.Context, name string) (*Snapshot, error) {
	var snap Snapshot
	if err := s.db.WithContext(ctx).First(&snap, "name = ?", name).Error; err != nil {
		return nil, err
	}

	return &snap, nil
}

func (s *store) Put(ctx context.Context, snap *Snapshot) error {
	snap.UpdatedAt = time.Now()

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(snap).Error
}

func (s *store) List(ctx context.Context) ([]Snapshot, error) {
	var snaps []Snapshot
	if err := s.db.WithContext(ctx).Order("name").Find(&snaps).Error; err != nil {
		return nil, err
	}

	return snaps, nil
}

func (s *store) Assert(ctx context.Context, name string, measured int, update bool) error {
	if update {
		if err := s.Put(ctx, &Snapshot{Name: name, Instantiations: measured}); err != nil {
			return fmt.Errorf("updating snapshot %q: %w", name, err)
		}

		s.log.WithFields(logrus.Fields{
			"fixture":        name,
			"instantiations": measured,
		}).Info("Snapshot updated")

		return nil
	}

	snap, err := s.Get(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(
			"no recorded snapshot for %q: run with --update-snapshots to record a baseline",
			name,
		)
	}

	if err != nil {
		return fmt.Errorf("reading snapshot %q: %w", name, err)
	}

	if snap.Instantiations != measured {
		return fmt.Errorf(
			"instantiation count mismatch for %q: expected %d, got %d",
			name, snap.Instantiations, measured,
		)
	}

	return nil
}
