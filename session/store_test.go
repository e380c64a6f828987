package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gahanad/Blogsy-website-front/models"
)

func TestStoreSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path)
	err := store.Save(Session{Token: "tok-1", User: models.User{ID: "u1", Username: "alice"}})
	require.NoError(t, err)

	// A fresh store over the same file picks the session back up.
	reloaded := NewStore(path)
	assert.Equal(t, "tok-1", reloaded.Token())
	current := reloaded.Current()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.User.Username)
}

func TestStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path)
	require.NoError(t, store.Save(Session{Token: "tok-1"}))
	store.Clear()

	assert.Nil(t, store.Current())
	assert.Equal(t, "", store.Token())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStoreCorruptFileMeansNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(path)
	assert.Nil(t, store.Current())
	assert.Equal(t, "", store.Token())
}

func TestStoreMissingFileMeansNoSession(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	assert.Nil(t, store.Current())
}

func TestStoreEmptyPathDisablesPersistence(t *testing.T) {
	store := NewStore("")
	require.NoError(t, store.Save(Session{Token: "tok-1"}))

	// In-memory state still works for the lifetime of the store.
	assert.Equal(t, "tok-1", store.Token())
	store.Clear()
	assert.Nil(t, store.Current())
}

func TestStoreCurrentReturnsCopy(t *testing.T) {
	store := NewStore("")
	require.NoError(t, store.Save(Session{Token: "tok-1", User: models.User{Username: "alice"}}))

	first := store.Current()
	first.User.Username = "mallory"
	assert.Equal(t, "alice", store.Current().User.Username)
}
