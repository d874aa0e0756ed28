package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolate(t *testing.T) {
	t.Setenv("TURBOTERM_COLOR", "always")

	t.Run("clears and redirects", func(t *testing.T) {
		env := Isolate(t)

		_, set := os.LookupEnv("TURBOTERM_COLOR")
		assert.False(t, set)
		assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
		assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
		assert.Equal(t, filepath.Join(env.ConfigHome, "turboterm", "config.toml"), env.ConfigFile("config.toml"))
		assert.Equal(t, filepath.Join(env.StateHome, "turboterm", "turboterm.log"), env.LogFile())
	})

	assert.Equal(t, "always", os.Getenv("TURBOTERM_COLOR"), "restored after the subtest")
}

func TestCreateAndReadFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "nested/dir/file.txt", "content")
	assert.Equal(t, filepath.Join(dir, "nested", "dir", "file.txt"), path)
	require.FileExists(t, path)
	assert.Equal(t, "content", ReadFile(t, path))
}
