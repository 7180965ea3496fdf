package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bguard/internal/structures"
	"bguard/internal/testutil"
)

func fileStoreConfig(path string) *structures.Config {
	return &structures.Config{
		Persistence: structures.Persistence{FilePath: path},
	}
}

func newTestFileStore(t *testing.T, path string) Store {
	t.Helper()
	st, err := NewFileStore(fileStoreConfig(path), &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, err)
	return st
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.zst")
	st := newTestFileStore(t, path)
	assert.Equal(t, 0, st.Len())
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.zst")

	st := newTestFileStore(t, path)
	require.NoError(t, st.Set("auth_users", `[{"role":"owner"}]`))
	require.NoError(t, st.Set("data_fingerprint", "2:7:1"))

	reopened := newTestFileStore(t, path)
	val, ok := reopened.Get("data_fingerprint")
	assert.True(t, ok)
	assert.Equal(t, "2:7:1", val)
	assert.Equal(t, 2, reopened.Len())
}

func TestFileStore_DeletePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.zst")

	st := newTestFileStore(t, path)
	require.NoError(t, st.Set("k", "v"))
	require.NoError(t, st.Delete("k"))

	reopened := newTestFileStore(t, path)
	assert.False(t, reopened.Has("k"))
}

func TestFileStore_DeleteMissingIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.zst")
	st := newTestFileStore(t, path)

	assert.NoError(t, st.Delete("absent"))
	// No snapshot file should have been written for a no-op delete.
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_CorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.zst")
	require.NoError(t, os.WriteFile(path, []byte("not a snapshot"), 0644))

	logger := &testutil.MockLogger{}
	st, err := NewFileStore(fileStoreConfig(path), &testutil.MockCompressor{}, logger)
	require.NoError(t, err)

	assert.Equal(t, 0, st.Len())
	assert.True(t, logger.HasLevel("warn"))
}

func TestFileStore_NullSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.zst")
	// The identity MockCompressor hands the literal bytes to the JSON
	// decoder; "null" unmarshals into a nil map without error.
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))

	st := newTestFileStore(t, path)
	assert.Equal(t, 0, st.Len())

	// The store must stay writable after loading the degenerate snapshot.
	require.NoError(t, st.Set("k", "v"))
	val, ok := st.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestFileStore_ZstdRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.zst")

	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	st, err := NewFileStore(fileStoreConfig(path), comp, &testutil.MockLogger{})
	require.NoError(t, err)
	require.NoError(t, st.Set("snooker_settings", `{"customers":[]}`))

	// On-disk bytes must not be the raw JSON.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "snooker_settings")

	reopened, err := NewFileStore(fileStoreConfig(path), comp, &testutil.MockLogger{})
	require.NoError(t, err)
	val, ok := reopened.Get("snooker_settings")
	assert.True(t, ok)
	assert.Equal(t, `{"customers":[]}`, val)
}

func TestFileStore_NoTmpFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.zst")

	st := newTestFileStore(t, path)
	require.NoError(t, st.Set("k", "v"))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
