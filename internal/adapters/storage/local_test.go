package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	t.Run("writes the file and returns the relative path", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewLocalStore(dir)
		require.NoError(t, err)

		path, err := store.Save(strings.NewReader("png-bytes"), "party.png")
		require.NoError(t, err)
		require.Equal(t, "uploads/party.png", path)

		data, err := os.ReadFile(filepath.Join(dir, "party.png"))
		require.NoError(t, err)
		require.Equal(t, "png-bytes", string(data))
	})

	t.Run("same filename overwrites, last write wins", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewLocalStore(dir)
		require.NoError(t, err)

		_, err = store.Save(strings.NewReader("first"), "party.png")
		require.NoError(t, err)
		path, err := store.Save(strings.NewReader("second"), "party.png")
		require.NoError(t, err)
		require.Equal(t, "uploads/party.png", path)

		data, err := os.ReadFile(filepath.Join(dir, "party.png"))
		require.NoError(t, err)
		require.Equal(t, "second", string(data))
	})

	t.Run("directory components are stripped from the name", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewLocalStore(dir)
		require.NoError(t, err)

		path, err := store.Save(strings.NewReader("x"), "../../etc/party.png")
		require.NoError(t, err)
		require.Equal(t, "uploads/party.png", path)

		_, err = os.Stat(filepath.Join(dir, "party.png"))
		require.NoError(t, err)
	})

	t.Run("missing upload directory is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		_, err := NewLocalStore(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})
}
