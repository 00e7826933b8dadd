package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gs1scan_config.json")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		SetPath("./gs1scan_config.json")
	})

	SetPath(path)
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	useTempConfig(t)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, c, GetConfig())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := useTempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "catalogEncoding": "utf8", "duplicateWindowSeconds": 60}`), 0644))
	t.Setenv("GS1SCAN_DB_PATH", "/tmp/override.db")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, "utf8", c.CatalogEncoding)
	assert.Equal(t, 60, c.DuplicateWindowSeconds)
	assert.Equal(t, "/tmp/override.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	useTempConfig(t)
	require.NoError(t, os.WriteFile(".env", []byte("GS1SCAN_LOG_LEVEL=debug\n"), 0644))
	t.Setenv("GS1SCAN_LOG_LEVEL", "")
	os.Unsetenv("GS1SCAN_LOG_LEVEL")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	os.Unsetenv("GS1SCAN_LOG_LEVEL")
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	path := useTempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	path := useTempConfig(t)

	require.NoError(t, SaveConfig(Config{Port: 8181}))
	assert.FileExists(t, path)
	assert.Equal(t, 8181, GetConfig().Port)
	assert.Equal(t, 300, GetConfig().DuplicateWindowSeconds)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8181, c.Port)
}
