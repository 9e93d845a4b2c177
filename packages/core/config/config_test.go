package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "console", cfg.Output)
	assert.False(t, cfg.GetStrict())
	assert.False(t, cfg.GetVerbose())
	assert.False(t, cfg.GetNoColor())
	assert.False(t, cfg.GetSave())
	assert.True(t, cfg.IsDefault())
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curlparse.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":"json","strict":true}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.GetStrict())
	assert.False(t, cfg.GetVerbose())
	assert.False(t, cfg.IsDefault())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFindAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".curlparse.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":"yaml"}`), 0644))

	cfg, err := FindAndLoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestFindAndLoadConfig_Defaults(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.IsDefault())
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()

	merged := base.Merge(&Config{
		Output:  "json",
		Verbose: BoolPtr(true),
	})

	assert.Equal(t, "json", merged.Output)
	assert.True(t, merged.GetVerbose())
	assert.False(t, merged.GetStrict())

	// Merging nil is a no-op
	assert.Equal(t, merged, merged.Merge(nil))
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")

	cfg := &Config{Output: "yaml", Strict: BoolPtr(true), HistoryPath: "/tmp/h.db"}
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", loaded.Output)
	assert.True(t, loaded.GetStrict())
	assert.Equal(t, "/tmp/h.db", loaded.HistoryPath)
}

func TestResolveHistoryPath(t *testing.T) {
	cfg := &Config{HistoryPath: "/tmp/custom.db"}
	assert.Equal(t, "/tmp/custom.db", cfg.ResolveHistoryPath())

	cfg = &Config{}
	assert.NotEmpty(t, cfg.ResolveHistoryPath())
}
