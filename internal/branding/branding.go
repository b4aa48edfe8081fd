// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's
// //go:embed bakes the values into the binary. Hard defaults cover a
// missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// defaults holds the parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	GitHubRepo   string `yaml:"github_repo"`
	WorkspaceDir string `yaml:"workspace_dir"`
	AssistantDir string `yaml:"assistant_dir"`
	CoachCommand string `yaml:"coach_command"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "toolforge",
			DisplayName:  "Tool-Forge",
			Description:  "Guided tool creation workflow for AI coding assistants",
			HomeDir:      ".toolforge",
			EnvPrefix:    "TOOLFORGE",
			GoModule:     "github.com/toolforge-labs/toolforge",
			GitHubRepo:   "toolforge-labs/toolforge",
			WorkspaceDir: ".forge",
			AssistantDir: ".claude",
			CoachCommand: "claude",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "toolforge").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Tool-Forge").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".toolforge").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TOOLFORGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path recorded for this build.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "toolforge-labs/toolforge").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// WorkspaceDir returns the per-project workspace directory name (e.g., ".forge").
func WorkspaceDir() string { load(); return defaults.WorkspaceDir }

// AssistantDir returns the assistant config directory name (e.g., ".claude").
func AssistantDir() string { load(); return defaults.AssistantDir }

// CoachCommand returns the assistant CLI launched by the bare root command.
func CoachCommand() string { load(); return defaults.CoachCommand }

// EnvVar returns a fully qualified env var name: EnvVar("HOME") yields
// "TOOLFORGE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
