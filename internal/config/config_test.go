package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/tab/internal/config"
	"github.com/amonks/tab/internal/testsupport"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != config.BackendJSON {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, config.BackendJSON)
	}
	if cfg.Storage.Path != "" {
		t.Errorf("expected empty Path, got %q", cfg.Storage.Path)
	}
	if cfg.UI.Prompt != config.DefaultPrompt {
		t.Errorf("Prompt = %q, expected %q", cfg.UI.Prompt, config.DefaultPrompt)
	}
	if !cfg.UI.Color {
		t.Error("expected color enabled by default")
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFile), `
[storage]
backend = "sqlite"
path = "data/roster.db"

[ui]
prompt = "ta> "
width = 72
color = false
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != config.BackendSQLite {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, config.BackendSQLite)
	}
	if want := filepath.Join(tmpDir, "data", "roster.db"); cfg.Storage.Path != want {
		t.Errorf("Path = %q, expected %q", cfg.Storage.Path, want)
	}
	if cfg.UI.Prompt != "ta> " {
		t.Errorf("Prompt = %q, expected %q", cfg.UI.Prompt, "ta> ")
	}
	if cfg.UI.Width != 72 {
		t.Errorf("Width = %d, expected 72", cfg.UI.Width)
	}
	if cfg.UI.Color {
		t.Error("expected color disabled")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFile), `this is not valid toml [`)

	_, err := config.Load(tmpDir)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFile), `
[storage]
backend = "csv"
`)

	_, err := config.Load(tmpDir)
	if !errors.Is(err, config.ErrInvalidBackend) {
		t.Fatalf("expected ErrInvalidBackend, got %v", err)
	}
}

func TestLoad_NegativeWidth(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFile), `
[ui]
width = -1
`)

	_, err := config.Load(tmpDir)
	if !errors.Is(err, config.ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(home, ".config", "tab", "config.toml"), `
[storage]
backend = "sqlite"
path = "/srv/tab/roster.db"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != config.BackendSQLite {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, config.BackendSQLite)
	}
	if cfg.Storage.Path != "/srv/tab/roster.db" {
		t.Errorf("Path = %q, expected %q", cfg.Storage.Path, "/srv/tab/roster.db")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(home, ".config", "tab", "config.toml"), `
[storage]
backend = "sqlite"

[ui]
prompt = "global> "
`)
	writeFile(t, filepath.Join(tmpDir, config.ProjectFile), `
[storage]
backend = "json"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != config.BackendJSON {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, config.BackendJSON)
	}
	if cfg.UI.Prompt != "global> " {
		t.Errorf("Prompt = %q, expected %q", cfg.UI.Prompt, "global> ")
	}
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFile), `
[storage]
backend = "json"
path = "roster.json"

[ui]
width = 60
`)

	t.Setenv("TAB_STORAGE_BACKEND", "SQLite")
	t.Setenv("TAB_STORAGE_PATH", "/tmp/env-roster.db")
	t.Setenv("TAB_UI_WIDTH", "100")
	t.Setenv("TAB_UI_COLOR", "false")

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != config.BackendSQLite {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, config.BackendSQLite)
	}
	if cfg.Storage.Path != "/tmp/env-roster.db" {
		t.Errorf("Path = %q, expected %q", cfg.Storage.Path, "/tmp/env-roster.db")
	}
	if cfg.UI.Width != 100 {
		t.Errorf("Width = %d, expected 100", cfg.UI.Width)
	}
	if cfg.UI.Color {
		t.Error("expected color disabled by env")
	}
}

func TestLoad_InvalidEnvWidth(t *testing.T) {
	testsupport.SetupTestHome(t)
	t.Setenv("TAB_UI_WIDTH", "wide")

	if _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("expected error for non-numeric TAB_UI_WIDTH")
	}
}

func TestDataPath(t *testing.T) {
	home := testsupport.SetupTestHome(t)

	t.Run("defaults by backend", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Backend = config.BackendSQLite

		path, err := cfg.DataPath()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := filepath.Join(home, ".local", "share", "tab", "roster.db"); path != want {
			t.Fatalf("expected %s, got %s", want, path)
		}
	})

	t.Run("uses configured path", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Path = "/data/roster.json"

		path, err := cfg.DataPath()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/data/roster.json" {
			t.Fatalf("expected /data/roster.json, got %s", path)
		}
	})
}

func TestParseBackend(t *testing.T) {
	backend, err := config.ParseBackend(" SQLITE ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend != config.BackendSQLite {
		t.Fatalf("expected sqlite, got %q", backend)
	}

	if _, err := config.ParseBackend("yaml"); !errors.Is(err, config.ErrInvalidBackend) {
		t.Fatalf("expected ErrInvalidBackend, got %v", err)
	}
}
