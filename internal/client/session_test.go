package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileSessionStore(path)

	// No file yet means no session, not an error.
	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)

	saved := &Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         UserInfo{ID: "u-1", Username: "admin", Email: "admin@example.com"},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, loaded)

	require.NoError(t, store.Clear())
	session, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}
