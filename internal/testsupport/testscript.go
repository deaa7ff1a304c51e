package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/tab/internal/storage"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	tabPath   string
	buildErr  error
)

// BuildTab builds the tab binary once and returns its path.
func BuildTab(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tab-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tabPath = filepath.Join(binDir, "tab")
		cmd := exec.Command("go", "build", "-o", tabPath, "./cmd/tab")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tab: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tabPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Data lands in $WORK/home/.local/share/tab unless a script overrides it.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TAB", BuildTab(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTaskDone asserts the completion flag of a task in `tab list --json`
// output. Negated, it asserts the task exists and is not done.
func CmdTaskDone(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 4 {
		ts.Fatalf("usage: taskdone FILE MODULE STUDENT TASK")
	}

	var modules []storage.ModuleRecord
	if err := json.Unmarshal([]byte(ts.ReadFile(args[0])), &modules); err != nil {
		ts.Fatalf("parse module list: %v", err)
	}

	moduleName, studentID, taskID := args[1], args[2], args[3]
	for _, module := range modules {
		if module.Name != moduleName {
			continue
		}
		for _, student := range module.Students {
			if student.ID != studentID {
				continue
			}
			for _, task := range student.Tasks {
				if task.ID != taskID {
					continue
				}
				if task.Done == neg {
					ts.Fatalf("task %s/%s/%s done = %v", moduleName, studentID, taskID, task.Done)
				}
				return
			}
		}
	}

	ts.Fatalf("task %s/%s/%s not found", moduleName, studentID, taskID)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
