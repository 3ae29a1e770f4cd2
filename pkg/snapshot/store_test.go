package snapshot

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/ethpandaops/typecheckoor/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.SnapshotConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "snapshots.db"),
		},
	}

	store := NewStore(log, cfg)
	require.NoError(t, store.Start(context.Background()))

	t.Cleanup(func() {
		require.NoError(t, store.Stop())
	})

	return store
}

func TestStart_UnsupportedDriver(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := NewStore(log, &config.SnapshotConfig{Driver: "mysql"})

	err := store.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot driver")
}

func TestPut_Upserts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, &Snapshot{Name: "a.bench.go", Instantiations: 10}))
	require.NoError(t, store.Put(ctx, &Snapshot{Name: "a.bench.go", Instantiations: 12}))

	snap, err := store.Get(ctx, "a.bench.go")
	require.NoError(t, err)
	assert.Equal(t, 12, snap.Instantiations)

	snaps, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}

func TestAssert(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Update mode records a fresh baseline.
	require.NoError(t, store.Assert(ctx, "q.bench.go", 37, true))

	tests := []struct {
		name     string
		fixture  string
		measured int
		update   bool
		wantErr  string
	}{
		{
			name:     "exact match passes",
			fixture:  "q.bench.go",
			measured: 37,
		},
		{
			name:     "mismatch fails",
			fixture:  "q.bench.go",
			measured: 38,
			wantErr:  "mismatch",
		},
		{
			name:     "missing baseline fails",
			fixture:  "unknown.bench.go",
			measured: 1,
			wantErr:  "no recorded snapshot",
		},
		{
			name:     "update overwrites instead of comparing",
			fixture:  "q.bench.go",
			measured: 99,
			update:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Assert(ctx, tt.fixture, tt.measured, tt.update)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}

	// The last update left 99 as the recorded baseline.
	snap, err := store.Get(ctx, "q.bench.go")
	require.NoError(t, err)
	assert.Equal(t, 99, snap.Instantiations)
}
