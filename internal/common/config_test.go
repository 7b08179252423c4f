package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, 8090, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, 8, config.Processing.Concurrency)
	assert.Equal(t, "./data", config.Storage.Badger.Path)
	assert.False(t, config.Synthesis.Enabled)
	assert.Empty(t, config.Classifier.RulesFile)
}

func TestLoadFromFiles_LaterFileOverrides(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	require.NoError(t, os.WriteFile(base, []byte(`
[server]
port = 9000
host = "0.0.0.0"
`), 0o644))

	override := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(override, []byte(`
[server]
port = 9100
`), 0o644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, 9100, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	// Untouched sections keep defaults
	assert.Equal(t, 8, config.Processing.Concurrency)
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/prism.toml")
	assert.Error(t, err)
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	t.Setenv("PRISM_SERVER_PORT", "9999")
	t.Setenv("PRISM_PROCESSING_CONCURRENCY", "2")
	t.Setenv("PRISM_LOG_OUTPUT", "stdout, file")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 9999, config.Server.Port)
	assert.Equal(t, 2, config.Processing.Concurrency)
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 7070, "127.0.0.1")
	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Host)

	// Zero values leave config untouched
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Host)
}
