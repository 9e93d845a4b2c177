package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndList(t *testing.T) {
	store := openTestStore(t)

	command := `curl 'https://host.example/a?k=v' -X 'GET' -v`
	entries, err := parser.Parse(command)
	require.NoError(t, err)

	id, err := store.Record(command, entries)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, command, records[0].Command)
	assert.Equal(t, "https://host.example/a?k=v", records[0].URL)
	assert.Equal(t, 3, records[0].EntryCount)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestStore_ListLimit(t *testing.T) {
	store := openTestStore(t)

	entries, err := parser.Parse(`curl 'http://example.com'`)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := store.Record(`curl 'http://example.com'`, entries)
		require.NoError(t, err)
	}

	records, err := store.List(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestStore_Clear(t *testing.T) {
	store := openTestStore(t)

	entries, err := parser.Parse(`curl 'http://example.com'`)
	require.NoError(t, err)
	_, err = store.Record(`curl 'http://example.com'`, entries)
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	records, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.List(0)
	assert.NoError(t, err)
}
