package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	t.Run("missing key", func(t *testing.T) {
		_, ok := store.Get("search.serpapi_api_key")
		assert.False(t, ok)
		assert.Empty(t, store.GetString("search.serpapi_api_key"))
	})

	t.Run("set persists immediately", func(t *testing.T) {
		require.NoError(t, store.Set("search.serpapi_api_key", "sk-123"))

		assert.Equal(t, "sk-123", store.GetString("search.serpapi_api_key"))

		// A fresh store sees the persisted value.
		reopened, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "sk-123", reopened.GetString("search.serpapi_api_key"))
	})

	t.Run("config file has restricted permissions", func(t *testing.T) {
		require.NoError(t, store.Set("search.bing_api_key", "bk-456"))

		info, err := os.Stat(filepath.Join(dir, "config.toml"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("GetInt handles toml integers", func(t *testing.T) {
		require.NoError(t, store.Set("search.timeout_seconds", int64(15)))
		assert.Equal(t, 15, store.GetInt("search.timeout_seconds"))
		assert.Zero(t, store.GetInt("search.missing"))
	})

	t.Run("GetString ignores non-strings", func(t *testing.T) {
		require.NoError(t, store.Set("search.flag", true))
		assert.Empty(t, store.GetString("search.flag"))
	})
}

func TestConfigStore_Load(t *testing.T) {
	t.Run("missing file starts empty", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Load())
		_, ok := store.Get("anything")
		assert.False(t, ok)
	})

	t.Run("nested tables flatten to dot notation", func(t *testing.T) {
		dir := t.TempDir()
		content := "[search]\nserpapi_api_key = \"sk-789\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

		store, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "sk-789", store.GetString("search.serpapi_api_key"))
	})
}
