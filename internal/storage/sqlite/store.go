// Package sqlite stores a roster in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/tab/internal/storage"
	"github.com/amonks/tab/roster"
	_ "modernc.org/sqlite"
)

// Store persists a roster in SQLite.
type Store struct {
	db *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps pragmas and transactions on the same handle.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads every module, student, and task in stored order.
func (s *Store) Load(ctx context.Context) (*roster.Roster, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	modules, err := s.loadModules(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.loadStudents(ctx, modules); err != nil {
		return nil, err
	}
	if err := s.loadTasks(ctx, modules); err != nil {
		return nil, err
	}

	return storage.Build(modules)
}

func (s *Store) loadModules(ctx context.Context) ([]storage.ModuleRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM modules ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}
	defer rows.Close()

	var modules []storage.ModuleRecord
	for rows.Next() {
		var record storage.ModuleRecord
		if err := rows.Scan(&record.Name); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		modules = append(modules, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate modules: %w", err)
	}
	return modules, nil
}

func (s *Store) loadStudents(ctx context.Context, modules []storage.ModuleRecord) error {
	moduleIndex := make(map[string]int, len(modules))
	for i, m := range modules {
		moduleIndex[m.Name] = i
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT module_name, student_id, name, email FROM students ORDER BY module_name, position`)
	if err != nil {
		return fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var moduleName string
		var record storage.StudentRecord
		if err := rows.Scan(&moduleName, &record.ID, &record.Name, &record.Email); err != nil {
			return fmt.Errorf("scan student: %w", err)
		}
		i, ok := moduleIndex[moduleName]
		if !ok {
			return fmt.Errorf("%w: student %s references unknown module %s", storage.ErrCorruptData, record.ID, moduleName)
		}
		modules[i].Students = append(modules[i].Students, record)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate students: %w", err)
	}
	return nil
}

func (s *Store) loadTasks(ctx context.Context, modules []storage.ModuleRecord) error {
	type studentKey struct{ module, student string }
	studentIndex := make(map[studentKey]*storage.StudentRecord)
	for i := range modules {
		for j := range modules[i].Students {
			student := &modules[i].Students[j]
			studentIndex[studentKey{modules[i].Name, student.ID}] = student
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT module_name, student_id, task_id, description, done FROM tasks ORDER BY module_name, student_id, position`)
	if err != nil {
		return fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var moduleName, studentID string
		var record storage.TaskRecord
		if err := rows.Scan(&moduleName, &studentID, &record.ID, &record.Description, &record.Done); err != nil {
			return fmt.Errorf("scan task: %w", err)
		}
		student, ok := studentIndex[studentKey{moduleName, studentID}]
		if !ok {
			return fmt.Errorf("%w: task %s references unknown student %s/%s", storage.ErrCorruptData, record.ID, moduleName, studentID)
		}
		student.Tasks = append(student.Tasks, record)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate tasks: %w", err)
	}
	return nil
}

// Save replaces the stored roster in one transaction.
func (s *Store) Save(ctx context.Context, snapshot roster.Snapshot) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	if err := writeRecords(ctx, tx, storage.Records(snapshot)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func writeRecords(ctx context.Context, tx *sql.Tx, modules []storage.ModuleRecord) error {
	for _, table := range []string{"tasks", "students", "modules"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for mi, m := range modules {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO modules (name, position) VALUES (?, ?)`, m.Name, mi); err != nil {
			return fmt.Errorf("insert module %s: %w", m.Name, err)
		}
		for si, student := range m.Students {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO students (module_name, student_id, name, email, position) VALUES (?, ?, ?, ?, ?)`,
				m.Name, student.ID, student.Name, student.Email, si); err != nil {
				return fmt.Errorf("insert student %s/%s: %w", m.Name, student.ID, err)
			}
			for ti, task := range student.Tasks {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO tasks (module_name, student_id, task_id, description, done, position) VALUES (?, ?, ?, ?, ?, ?)`,
					m.Name, student.ID, task.ID, task.Description, task.Done, ti); err != nil {
					return fmt.Errorf("insert task %s/%s/%s: %w", m.Name, student.ID, task.ID, err)
				}
			}
		}
	}
	return nil
}
