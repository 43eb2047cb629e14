package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// ConfigHome points the user config dir (and HOME as a fallback) at a fresh
// temp dir and returns the dossier config dir inside it.
func ConfigHome(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Cleanup(WithEnv(t, "XDG_CONFIG_HOME", tmp))
	t.Cleanup(WithEnv(t, "HOME", tmp))
	base, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir: %v", err)
	}
	return filepath.Join(base, "dossier")
}
