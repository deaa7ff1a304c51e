package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/tab/command"
	"github.com/amonks/tab/internal/console"
	"github.com/amonks/tab/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runRepl(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	r, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	manager := model.New(r)
	defer manager.Close()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := isTerminal(in)
	if interactive {
		s.logger.Info(fmt.Sprintf("Loaded %s. Type help for commands, exit to leave.", r))
	}

	failed := false
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, s.cfg.UI.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := s.execute(ctx, manager, line)
		if err != nil {
			failed = true
			s.logger.Error(err)
			continue
		}
		if result.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	// A script fed on stdin reports failure the way a shell script would.
	if failed && !interactive {
		return &console.ExitError{Code: 1}
	}
	return nil
}

// execute runs one line against the long-lived manager, saves when the roster
// changed, and then prints the feedback.
func (s *session) execute(ctx context.Context, manager *model.Manager, line string) (command.Result, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return command.Result{}, err
	}
	result, err := cmd.Execute(manager)
	if err != nil {
		return command.Result{}, err
	}

	if manager.Dirty() {
		if err := s.store.Save(ctx, manager.Roster()); err != nil {
			return command.Result{}, fmt.Errorf("save roster: %w", err)
		}
		manager.MarkSaved()
		s.logger.Debugf("saved %s", manager.Roster())
	}
	s.report(cmd, result, manager.FilteredModules())
	return result, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
