package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/tab/command"
	"github.com/amonks/tab/internal/config"
	"github.com/amonks/tab/internal/console"
	"github.com/amonks/tab/internal/helpdoc"
	"github.com/amonks/tab/internal/paths"
	"github.com/amonks/tab/internal/storage"
	"github.com/amonks/tab/internal/storage/jsonfile"
	"github.com/amonks/tab/internal/storage/sqlite"
	"github.com/amonks/tab/internal/ui"
	"github.com/amonks/tab/model"
	"github.com/amonks/tab/roster"
	"github.com/spf13/cobra"
)

const defaultWidth = 80

// errUnchanged aborts a storage update when a command did not modify the roster.
var errUnchanged = errors.New("roster unchanged")

// session holds everything a command needs: resolved config, the open
// store, and output.
type session struct {
	cfg    *config.Config
	path   string
	store  storage.Store
	logger *console.Logger
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	path, err := cfg.DataPath()
	if err != nil {
		return nil, err
	}

	width := cfg.UI.Width
	if width == 0 {
		width = ui.TerminalWidth(os.Stdout, defaultWidth)
	}
	logger := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), console.Options{
		Width:   width,
		Color:   cfg.UI.Color && ui.ColorEnabled(os.Stdout),
		Verbose: verboseFlag,
	})

	store, err := openStore(cmd.Context(), cfg.Storage.Backend, path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("using %s storage at %s", cfg.Storage.Backend, path)

	return &session{cfg: cfg, path: path, store: store, logger: logger}, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		backend, err := config.ParseBackend(backendFlag)
		if err != nil {
			return nil, err
		}
		cfg.Storage.Backend = backend
	}
	if flags.Changed("data") {
		cfg.Storage.Path = strings.TrimSpace(dataFlag)
	}
	if cfg.Storage.Path != "" && !filepath.IsAbs(cfg.Storage.Path) {
		cfg.Storage.Path = filepath.Join(cwd, cfg.Storage.Path)
	}
	return cfg, nil
}

func openStore(ctx context.Context, backend config.Backend, path string) (storage.Store, error) {
	switch backend {
	case config.BackendSQLite:
		return sqlite.Open(ctx, path)
	case config.BackendJSON:
		return jsonfile.New(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidBackend, backend)
	}
}

func (s *session) Close() error {
	return s.store.Close()
}

// runOnce executes a single command line under one storage update. Nothing is
// written unless the command changed the roster. Feedback is printed only once
// the update has been saved.
func (s *session) runOnce(ctx context.Context, input string) (command.Result, error) {
	var (
		cmd      command.Command
		result   command.Result
		filtered []*roster.Module
	)
	err := storage.Update(ctx, s.store, func(r *roster.Roster) error {
		manager := model.New(r)
		defer manager.Close()

		var err error
		cmd, err = command.Parse(input)
		if err != nil {
			return err
		}
		result, err = cmd.Execute(manager)
		if err != nil {
			return err
		}
		filtered = manager.FilteredModules()
		if !manager.Dirty() {
			return errUnchanged
		}
		s.logger.Debugf("saving %s", r)
		return nil
	})
	if errors.Is(err, errUnchanged) {
		err = nil
	}
	if err != nil {
		return result, err
	}
	s.report(cmd, result, filtered)
	return result, nil
}

// report prints command feedback, the module table after list and find,
// and the help reference.
func (s *session) report(cmd command.Command, result command.Result, filtered []*roster.Module) {
	s.logger.Success(result.Feedback)
	switch cmd.(type) {
	case command.List, command.Find:
		s.logger.Print(ui.FormatModules(filtered, s.logger.Color()))
	}
	if result.ShowHelp {
		s.logger.Print(helpdoc.Render(s.logger.Width()))
	}
}
