package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Env describes the directories an isolated test runs against.
type Env struct {
	Root       string
	ConfigHome string
	StateHome  string
}

// ConfigFile returns the path of a file in the turboterm config directory.
func (e Env) ConfigFile(name string) string {
	return filepath.Join(e.ConfigHome, "turboterm", name)
}

// LogFile returns the path the logger writes to inside this environment.
func (e Env) LogFile() string {
	return filepath.Join(e.StateHome, "turboterm", "turboterm.log")
}

// Isolate sets XDG_CONFIG_HOME and XDG_STATE_HOME to fresh temporary
// directories and unsets every TURBOTERM_* variable for the duration of the
// test. It must not be used from parallel tests.
func Isolate(t *testing.T) Env {
	t.Helper()

	root := t.TempDir()
	env := Env{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "TURBOTERM_") {
			// Setenv registers the restore, Unsetenv removes it for the test
			t.Setenv(name, "")
			if err := os.Unsetenv(name); err != nil {
				t.Fatalf("Failed to unset %s: %v", name, err)
			}
		}
	}
	return env
}
