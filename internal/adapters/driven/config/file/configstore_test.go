package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_EnvDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(ConfigDirEnv, tmpDir)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetPersistsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("export.format", "yaml"))
	require.NoError(t, store.Set("intake.max_bytes", 2048))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[export]")
	assert.Contains(t, string(data), "[intake]")
	assert.Contains(t, string(data), "max_bytes = 2048")
}

func TestConfigStore_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("export.format", "pdf"))
	require.NoError(t, store.Set("export.directory", "/srv/manifests"))
	require.NoError(t, store.Set("intake.max_bytes", 4096))
	require.NoError(t, store.Set("intake.extensions", []string{".csv", ".tsv"}))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "pdf", reloaded.GetString("export.format"))
	assert.Equal(t, "/srv/manifests", reloaded.GetString("export.directory"))
	assert.Equal(t, 4096, reloaded.GetInt("intake.max_bytes"))
	assert.Equal(t, []string{".csv", ".tsv"}, reloaded.GetStringSlice("intake.extensions"))
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[export]
format = "json"

[server]
address = "127.0.0.1:9999"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "json", store.GetString("export.format"))
	assert.Equal(t, "127.0.0.1:9999", store.GetString("server.address"))
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[[broken"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
	assert.Nil(t, store.GetStringSlice("nope"))
}

func TestFlattenAndNestMap(t *testing.T) {
	flat := map[string]any{
		"export.format":    "csv",
		"export.directory": ".",
		"server.address":   ":8080",
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"export": map[string]any{"format": "csv", "directory": "."},
		"server": map[string]any{"address": ":8080"},
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}
