// Package jsonfile stores a roster as a single JSON document.
//
// Writes go to a temp file that is renamed over the data file, so readers
// never see a partial document. Update serializes read-modify-write cycles
// across processes with an exclusive flock on a sibling lock file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/amonks/tab/internal/storage"
	"github.com/amonks/tab/roster"
)

// FormatVersion is written to every document.
const FormatVersion = 1

// ErrUnsupportedVersion is returned for documents written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported roster file version")

type document struct {
	Version int                    `json:"version"`
	Modules []storage.ModuleRecord `json:"modules"`
}

// Store manages one roster file.
type Store struct {
	path string
}

var _ storage.Store = (*Store)(nil)
var _ storage.Updater = (*Store)(nil)

// New returns a store for the file at path. The file is created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) lockPath() string {
	return s.path + ".lock"
}

// Load reads the roster from disk. Returns an empty roster if the file doesn't exist.
func (s *Store) Load(ctx context.Context) (*roster.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return roster.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal roster: %w", err)
	}
	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	return storage.Build(doc.Modules)
}

// Save writes the roster to disk.
func (s *Store) Save(ctx context.Context, snapshot roster.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(document{
		Version: FormatVersion,
		Modules: storage.Records(snapshot),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(s.path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read roster file: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp roster file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp roster file: %w", err)
	}

	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename roster file: %w", err)
	}

	return nil
}

// Update atomically reads, modifies, and writes the roster with file locking.
// Nothing is written when fn fails.
func (s *Store) Update(ctx context.Context, fn func(r *roster.Roster) error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	r, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(r); err != nil {
		return err
	}

	return s.Save(ctx, r)
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}
