// Package config handles loading tab.toml configuration files.
//
// Settings are merged in increasing precedence: built-in defaults, the global
// file (~/.config/tab/config.toml), the project file (./tab.toml), then
// TAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tab/internal/paths"
	"github.com/amonks/tab/internal/validation"
	"github.com/caarlos0/env/v11"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = "tab.toml"

// DefaultPrompt is the REPL prompt used when none is configured.
const DefaultPrompt = "tab> "

var (
	// ErrInvalidBackend is returned when the storage backend is unknown.
	ErrInvalidBackend = errors.New("invalid storage backend")

	// ErrInvalidWidth is returned when the output width is negative.
	ErrInvalidWidth = errors.New("ui width cannot be negative")
)

// Backend selects the storage implementation.
type Backend string

const (
	// BackendJSON stores the roster as one JSON document.
	BackendJSON Backend = "json"

	// BackendSQLite stores the roster in a SQLite database.
	BackendSQLite Backend = "sqlite"
)

// ValidBackends returns all valid backend values.
func ValidBackends() []Backend {
	return []Backend{BackendJSON, BackendSQLite}
}

// IsValid returns true if the backend is a known value.
func (b Backend) IsValid() bool {
	for _, valid := range ValidBackends() {
		if b == valid {
			return true
		}
	}
	return false
}

// FileExtension returns the default data file extension for the backend.
func (b Backend) FileExtension() string {
	if b == BackendSQLite {
		return "db"
	}
	return "json"
}

// ParseBackend validates a backend name.
func ParseBackend(value string) (Backend, error) {
	backend := Backend(strings.ToLower(strings.TrimSpace(value)))
	if !backend.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidBackend, backend, ValidBackends())
	}
	return backend, nil
}

// Config represents the merged configuration.
type Config struct {
	Storage Storage `toml:"storage"`
	UI      UI      `toml:"ui"`
}

// Storage contains persistence configuration.
type Storage struct {
	// Backend is "json" (default) or "sqlite".
	Backend Backend `toml:"backend"`

	// Path is the data file. Empty means ~/.local/share/tab/roster.<ext>.
	// Relative paths in a project file are resolved against its directory.
	Path string `toml:"path"`
}

// UI contains terminal output configuration.
type UI struct {
	Prompt string `toml:"prompt"`

	// Width wraps feedback at this many columns. Zero uses the terminal width.
	Width int `toml:"width"`

	Color bool `toml:"color"`
}

// envOverrides mirrors Config for TAB_* variables. Pointers stay nil when the
// variable is unset.
type envOverrides struct {
	Backend *string `env:"TAB_STORAGE_BACKEND"`
	Path    *string `env:"TAB_STORAGE_PATH"`
	Prompt  *string `env:"TAB_UI_PROMPT"`
	Width   *int    `env:"TAB_UI_WIDTH"`
	Color   *bool   `env:"TAB_UI_COLOR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: Storage{Backend: BackendJSON},
		UI:      UI{Prompt: DefaultPrompt, Color: true},
	}
}

// Load loads configuration from the global file, the project file in
// workDir, and the environment. Missing files are skipped.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := Default()

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}
	mergeFile(cfg, globalCfg, globalMeta, filepath.Dir(globalPath))

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(workDir, ProjectFile))
	if err != nil {
		return nil, err
	}
	mergeFile(cfg, projectCfg, projectMeta, workDir)

	if err := mergeEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enum and range fields.
func (c *Config) Validate() error {
	if !c.Storage.Backend.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidBackend, c.Storage.Backend, ValidBackends())
	}
	if c.UI.Width < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, c.UI.Width)
	}
	return nil
}

// DataPath returns the configured data file, falling back to the default
// location for the backend.
func (c *Config) DataPath() (string, error) {
	return paths.ResolveWithDefault(c.Storage.Path, func() (string, error) {
		return paths.DefaultDataFile(c.Storage.Backend.FileExtension())
	})
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeFile(dst, src *Config, meta toml.MetaData, baseDir string) {
	if meta.IsDefined("storage", "backend") {
		dst.Storage.Backend = Backend(strings.ToLower(strings.TrimSpace(string(src.Storage.Backend))))
	}
	if meta.IsDefined("storage", "path") {
		dst.Storage.Path = resolvePath(baseDir, src.Storage.Path)
	}
	if meta.IsDefined("ui", "prompt") {
		dst.UI.Prompt = src.UI.Prompt
	}
	if meta.IsDefined("ui", "width") {
		dst.UI.Width = src.UI.Width
	}
	if meta.IsDefined("ui", "color") {
		dst.UI.Color = src.UI.Color
	}
}

func mergeEnv(dst *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if overrides.Backend != nil {
		dst.Storage.Backend = Backend(strings.ToLower(strings.TrimSpace(*overrides.Backend)))
	}
	if overrides.Path != nil {
		dst.Storage.Path = strings.TrimSpace(*overrides.Path)
	}
	if overrides.Prompt != nil {
		dst.UI.Prompt = *overrides.Prompt
	}
	if overrides.Width != nil {
		dst.UI.Width = *overrides.Width
	}
	if overrides.Color != nil {
		dst.UI.Color = *overrides.Color
	}
	return nil
}

func resolvePath(baseDir, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
