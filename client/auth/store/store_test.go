package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(WithValue(TokenKey, "seed"))
	value, ok := s.Lookup(TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "seed", value)

	require.NoError(t, s.Put(TokenKey, "tok123"))
	value, _ = s.Lookup(TokenKey)
	assert.Equal(t, "tok123", value)

	require.NoError(t, s.Remove(TokenKey))
	_, ok = s.Lookup(TokenKey)
	assert.False(t, ok)
	require.NoError(t, s.Remove(TokenKey))
}

func TestFileStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok := s.Lookup(TokenKey)
	assert.False(t, ok)

	require.NoError(t, s.Put(TokenKey, "tok123"))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	value, ok := reloaded.Lookup(TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "tok123", value)

	require.NoError(t, reloaded.Remove(TokenKey))
	again, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok = again.Lookup(TokenKey)
	assert.False(t, ok)
}

func TestFileStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStore_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	s, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok := s.Lookup(TokenKey)
	assert.False(t, ok)
}

func TestFileStore_FailedSaveKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "storage.json"))
	require.NoError(t, err)
	require.NoError(t, s.Put(TokenKey, "tok123"))

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	s.URL = filepath.Join(blocker, "storage.json")

	assert.Error(t, s.Put(TokenKey, "other"))
	value, ok := s.Lookup(TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "tok123", value)

	assert.Error(t, s.Remove(TokenKey))
	value, ok = s.Lookup(TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "tok123", value)
}
