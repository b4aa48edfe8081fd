package readiness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File names inspected by Collect.
const (
	readmeName   = "README.md"
	manifestName = "pyproject.toml"
	licenseName  = "LICENSE"
	ignoreName   = ".gitignore"
)

// Snapshot is a read-only bundle of filesystem facts about one tool
// project, gathered by Collect and handed to Evaluate. Text fields hold
// the empty string when the corresponding file is absent.
type Snapshot struct {
	Root string

	HasReadme     bool
	HasManifest   bool
	HasLicense    bool
	HasSrcDir     bool
	HasTestsDir   bool
	HasIgnoreFile bool

	// TestFileCount is the number of test-convention files under the
	// project's tests directory.
	TestFileCount int

	Readme     string
	License    string
	Manifest   string
	IgnoreFile string
}

// Collect gathers the snapshot for the project rooted at root. Missing
// files and directories are recorded as negative facts, never as errors.
// The ignore file is looked up in the parent directory: generated
// projects live inside a workspace whose repository root owns the ignore
// rules.
func Collect(root string) (Snapshot, error) {
	if root == "" {
		return Snapshot{}, &InputError{Reason: "project root is empty"}
	}
	info, err := os.Stat(root)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading project root: %w", err)
	}
	if !info.IsDir() {
		return Snapshot{}, fmt.Errorf("project root %s is not a directory", root)
	}

	snap := Snapshot{Root: root}
	snap.Readme, snap.HasReadme = readIfPresent(filepath.Join(root, readmeName))
	snap.Manifest, snap.HasManifest = readIfPresent(filepath.Join(root, manifestName))
	snap.License, snap.HasLicense = readIfPresent(filepath.Join(root, licenseName))
	snap.IgnoreFile, snap.HasIgnoreFile = readIfPresent(filepath.Join(filepath.Dir(root), ignoreName))
	snap.HasSrcDir = dirExists(filepath.Join(root, "src"))

	// Prefer tests/ over test/ when both exist, matching the generated
	// project layout.
	for _, name := range []string{"tests", "test"} {
		dir := filepath.Join(root, name)
		if !dirExists(dir) {
			continue
		}
		snap.HasTestsDir = true
		snap.TestFileCount = countTestFiles(dir)
		break
	}
	return snap, nil
}

// readIfPresent returns the file's text and whether it was readable.
func readIfPresent(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// countTestFiles walks dir and counts files following the python test
// naming convention (test_*.py).
func countTestFiles(dir string) int {
	count := 0
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && isTestFile(d.Name()) {
			count++
		}
		return nil
	})
	return count
}

func isTestFile(name string) bool {
	return strings.HasPrefix(name, "test_") && strings.HasSuffix(name, ".py")
}
