//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toolforge-labs/toolforge/internal/scaffold"
	"github.com/toolforge-labs/toolforge/internal/workspace"
)

// testEnv holds paths to an isolated workspace root.
type testEnv struct {
	Root string // directory the user runs toolforge in
}

// setupTestEnv creates an isolated root directory and points TOOLFORGE_HOME
// at a temp dir so user-level config never leaks into tests.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{Root: t.TempDir()}
	t.Setenv("TOOLFORGE_HOME", t.TempDir())
	return env
}

// initWorkspace runs workspace initialization the way the init command does.
func initWorkspace(t *testing.T, root, version string) {
	t.Helper()
	if err := workspace.Init(root, version, false, os.Stdout); err != nil {
		t.Fatalf("workspace.Init: %v", err)
	}
}

// scaffoldTool generates a tool project under the workspace and returns its
// tool and project directories.
func scaffoldTool(t *testing.T, root, name, requirement, category string) (string, string) {
	t.Helper()

	data := scaffold.NewData(name, requirement, category)
	result, err := scaffold.Generate(data, workspace.ToolDir(root, data.Slug))
	if err != nil {
		t.Fatalf("scaffold.Generate(%q): %v", name, err)
	}
	return result.ToolDir, result.ProjectDir
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
