package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/branding"
	"github.com/toolforge-labs/toolforge/internal/workspace"
)

// Build metadata injected via Execute from main's ldflags variables.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` turns a raw tool requirement into a published
package through a coached workflow: scaffold a project, discover existing
solutions, record the build-vs-reuse decision, then iterate until the
readiness checks pass.

Run without arguments to launch the coaching assistant. The subcommands
are the machine surface the coach drives; their output is JSON.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Commands that manage the workspace or never touch it skip the
		// staleness hint. Everything else gets it on stderr, which keeps
		// stdout parseable for the JSON commands.
		switch cmd.Name() {
		case "init", "version", "config", "get", "set", "list",
			"help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return
		}
		cwd, err := os.Getwd()
		if err != nil {
			return
		}
		workspace.CheckAndPrintRefreshHint(os.Stderr, cwd, buildVersion)
	},
	RunE: runCoach,
}

// Execute runs the root command. Build metadata flows in from main, which
// receives it from the linker at release time.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// printJSON writes v as indented JSON followed by a newline. Every
// coach-facing command funnels its output through here.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

type errorOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// printErrorJSON reports a command failure on the machine surface. The
// caller still returns the error so the process exits non-zero.
func printErrorJSON(w io.Writer, msg string) {
	_ = printJSON(w, errorOutput{Status: "error", Message: msg})
}
