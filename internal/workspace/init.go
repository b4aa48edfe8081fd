package workspace

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/toolforge-labs/toolforge/internal/settings"
)

// assistantSections are the template subdirectories installed under the
// assistant config dir, in creation order.
var assistantSections = []string{"system_prompts", "commands", "agents"}

// Init materializes the workspace under root: assistant prompts,
// commands, and agents from the embedded templates, the merged assistant
// settings, and the workspace directory with its ignore rules and config
// marker. Existing template files are kept unless force is set. The
// config marker is always rewritten so it records the current CLI
// version. Progress goes to w, one line per item.
func Init(root, version string, force bool, w io.Writer) error {
	assistantDir := AssistantDir(root)
	if err := ensureDir(w, assistantDir); err != nil {
		return err
	}

	for _, section := range assistantSections {
		destDir := filepath.Join(assistantDir, section)
		if err := ensureDir(w, destDir); err != nil {
			return err
		}
		entries, err := fs.ReadDir(workspaceFS, "templates/claude/"+section)
		if err != nil {
			return fmt.Errorf("reading embedded %s templates: %w", section, err)
		}
		for _, entry := range entries {
			content, err := fs.ReadFile(workspaceFS, "templates/claude/"+section+"/"+entry.Name())
			if err != nil {
				return fmt.Errorf("reading embedded template %s: %w", entry.Name(), err)
			}
			if err := installFile(w, filepath.Join(destDir, entry.Name()), content, force); err != nil {
				return err
			}
		}
	}

	if err := writeSettings(w, assistantDir); err != nil {
		return err
	}

	forgeDir := Dir(root)
	if err := ensureDir(w, forgeDir); err != nil {
		return err
	}
	ignore, err := fs.ReadFile(workspaceFS, "templates/forge/gitignore")
	if err != nil {
		return fmt.Errorf("reading embedded ignore rules: %w", err)
	}
	if err := installFile(w, filepath.Join(forgeDir, ".gitignore"), ignore, force); err != nil {
		return err
	}

	if err := writeConfig(root, version); err != nil {
		return err
	}
	fmt.Fprintf(w, "  [ OK ] Wrote %s (version %s)\n", ConfigPath(root), version)
	return nil
}

// writeSettings creates or merges the assistant settings file. User
// entries always survive; only missing defaults are appended.
func writeSettings(w io.Writer, assistantDir string) error {
	path := filepath.Join(assistantDir, settings.FileName)
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	existed := err == nil

	merged, changed, err := settings.Merge(existing, settings.DefaultSettings())
	if err != nil {
		return fmt.Errorf("merging %s: %w", path, err)
	}
	if existed && !changed {
		fmt.Fprintf(w, "  [SKIP] %s already up to date\n", path)
		return nil
	}
	if err := os.WriteFile(path, append(merged, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if existed {
		fmt.Fprintf(w, "  [ OK ] Updated %s\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	}
	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// installFile writes content to path. An existing file is kept untouched
// unless force is set.
func installFile(w io.Writer, path string, content []byte, force bool) error {
	_, statErr := os.Stat(path)
	if statErr == nil && !force {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if statErr == nil {
		fmt.Fprintf(w, "  [ OK ] Refreshed %s\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	}
	return nil
}
