package datastore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DataStore {
	t.Helper()
	cfg := DefaultConfig(filepath.Join(t.TempDir(), "store.json"))
	cfg.AutoSaveInterval = 0 // no background flushing in tests
	cfg.BackupCount = 0

	ds, err := NewWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { ds.Close() })
	return ds
}

func TestSetGetDelete(t *testing.T) {
	ds := newTestStore(t)

	ds.Set("levels", "g1:u1", map[string]any{"total_xp": 42})

	v, ok := ds.Get("levels", "g1:u1")
	require.True(t, ok)
	assert.NotNil(t, v)

	_, ok = ds.Get("levels", "g1:u2")
	assert.False(t, ok)

	_, ok = ds.Get("config", "g1:u1")
	assert.False(t, ok, "tables must be isolated")

	ds.Delete("levels", "g1:u1")
	_, ok = ds.Get("levels", "g1:u1")
	assert.False(t, ok)
}

func TestKeysAndAll(t *testing.T) {
	ds := newTestStore(t)

	ds.Set("levels", "g1:u1", 1)
	ds.Set("levels", "g1:u2", 2)
	ds.Set("config", "g1", 3)

	assert.ElementsMatch(t, []string{"g1:u1", "g1:u2"}, ds.Keys("levels"))
	assert.Len(t, ds.All("levels"), 2)
	assert.Len(t, ds.All("config"), 1)
	assert.Empty(t, ds.All("missing"))
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	cfg := DefaultConfig(path)
	cfg.AutoSaveInterval = 0
	cfg.BackupCount = 0

	ds, err := NewWithConfig(cfg)
	require.NoError(t, err)
	ds.Set("levels", "g1:u1", map[string]any{"level": float64(3)})
	require.NoError(t, ds.Close())

	reopened, err := NewWithConfig(&Config{FilePath: path, AutoSaveInterval: 0})
	require.NoError(t, err)
	defer reopened.Close()

	v, ok := reopened.Get("levels", "g1:u1")
	require.True(t, ok)
	record, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), record["level"])
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	cfg := DefaultConfig(filepath.Join(t.TempDir(), "store.json"))
	cfg.AutoSaveInterval = time.Hour
	ds, err := NewWithConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, ds.Close())

	ds.Set("levels", "k", 1)
	_, ok := ds.Get("levels", "k")
	assert.False(t, ok)
	assert.Error(t, ds.SaveToFile())
	assert.NoError(t, ds.Close(), "double close is a no-op")
}
