package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// envVars lists the TAB_* variables that tests clear so a developer's shell
// cannot leak into config loading.
var envVars = []string{
	"TAB_STORAGE_BACKEND",
	"TAB_STORAGE_PATH",
	"TAB_UI_PROMPT",
	"TAB_UI_WIDTH",
	"TAB_UI_COLOR",
}

// EnsureHomeDirs creates the default config and data directories under homeDir.
func EnsureHomeDirs(homeDir string) error {
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "tab"), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "share", "tab"), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

// SetupTestHome creates a temp home directory, ensures config/data dirs,
// sets HOME, and blanks the TAB_* variables.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := EnsureHomeDirs(homeDir); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, name := range envVars {
		t.Setenv(name, "")
	}
	return homeDir
}
