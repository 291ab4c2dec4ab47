package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesTimestampedArtifact(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("Courses", "csv", []byte("Title\nAlgebra I\n"))
	require.NoError(t, err)

	assert.Regexp(t, `courses-\d{8}-\d{6}\.csv$`, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title\nAlgebra I\n", string(data))
}

func TestSaveSanitizesResourceName(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("../Job Listings", "pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.Regexp(t, `job-listings-\d{8}-\d{6}\.pdf$`, filepath.Base(path))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewArtifactStore(dir)
	require.NoError(t, err)

	_, err = store.Save("courses", "csv", []byte("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), ".tmp-")
}

func TestCleanupOlderThanRemovesStaleArtifacts(t *testing.T) {
	dir := t.TempDir()
	store, err := NewArtifactStore(dir)
	require.NoError(t, err)

	stale := filepath.Join(dir, "old-export.csv")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh, err := store.Save("courses", "csv", []byte("y"))
	require.NoError(t, err)

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []string{"old-export.csv"}, deleted)
	assert.FileExists(t, fresh)
	assert.NoFileExists(t, stale)
}
