package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tasklist"), got)

	cfg, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tasklist", "config.json"), cfg)
}

func TestBeside(t *testing.T) {
	cfg := filepath.Join("home", "me", ".config", "tasklist", "config.json")
	assert.Equal(t, filepath.Join("home", "me", ".config", "tasklist", StoreFile), Beside(cfg, StoreFile))
	assert.Equal(t, filepath.Join("home", "me", ".config", "tasklist", LogFile), Beside(cfg, LogFile))
}
