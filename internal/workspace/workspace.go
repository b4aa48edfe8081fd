package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolforge-labs/toolforge/internal/branding"
)

// ConfigFile is the marker file recording workspace initialization.
const ConfigFile = "config.json"

// Config is the workspace state kept at <workspace>/config.json. Version
// records the CLI that performed the last initialization.
type Config struct {
	Initialized bool   `json:"initialized"`
	Version     string `json:"version"`
}

// Dir returns the workspace directory under root (e.g., root/.forge).
func Dir(root string) string {
	return filepath.Join(root, branding.WorkspaceDir())
}

// AssistantDir returns the assistant config directory under root
// (e.g., root/.claude).
func AssistantDir(root string) string {
	return filepath.Join(root, branding.AssistantDir())
}

// ConfigPath returns the workspace config file path under root.
func ConfigPath(root string) string {
	return filepath.Join(Dir(root), ConfigFile)
}

// ToolDir returns the directory a tool slug occupies under the workspace.
func ToolDir(root, slug string) string {
	return filepath.Join(Dir(root), slug)
}

// ProjectDir returns the Python project directory inside a tool dir.
func ProjectDir(root, slug string) string {
	return filepath.Join(ToolDir(root, slug), "project")
}

// ReadConfig loads the workspace config for root.
func ReadConfig(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading workspace config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing workspace config: %w", err)
	}
	return &cfg, nil
}

// IsInitialized reports whether root carries an initialized workspace.
// Any read or parse problem counts as uninitialized.
func IsInitialized(root string) bool {
	cfg, err := ReadConfig(root)
	return err == nil && cfg.Initialized
}

// writeConfig rewrites the config marker with the current CLI version.
func writeConfig(root, version string) error {
	data, err := json.MarshalIndent(Config{Initialized: true, Version: version}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding workspace config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(root), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing workspace config: %w", err)
	}
	return nil
}
