package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"femee-arena-client/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func testSession() Session {
	return Session{
		User: model.AuthUser{
			UserID:      7,
			Email:       "capita@femee.gg",
			Nome:        "Capitã Aurora",
			TipoUsuario: model.Capitao,
		},
		Token:     "tok-abc123",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(testSession()))

	loaded := store.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-abc123", loaded.Token)
	assert.Equal(t, "capita@femee.gg", loaded.User.Email)
	assert.Equal(t, model.Capitao, loaded.User.TipoUsuario)
	assert.True(t, store.HasToken())
	assert.Equal(t, "tok-abc123", store.Token())
}

func TestStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	assert.Nil(t, store.Load())
	assert.False(t, store.HasToken())
	assert.Empty(t, store.Token())
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(testSession()))

	store.Clear()
	store.Clear()

	assert.Nil(t, store.Load())
	assert.False(t, store.HasToken())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(testSession()))

	reopened, err := New(dir)
	require.NoError(t, err)
	loaded := reopened.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-abc123", loaded.Token)
}

func TestStore_CorruptProfileReadsAsNoSession(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

	reopened, err := New(dir)
	require.NoError(t, err)
	assert.Nil(t, reopened.Load())
	assert.False(t, reopened.HasToken())
	assert.Empty(t, reopened.Token())
}

func TestStore_ProfileWithoutTokenReadsAsNoSession(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, os.Remove(filepath.Join(dir, "token")))

	reopened, err := New(dir)
	require.NoError(t, err)
	assert.Nil(t, reopened.Load())
	assert.False(t, reopened.HasToken())
}
