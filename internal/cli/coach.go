package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/branding"
	"github.com/toolforge-labs/toolforge/internal/config"
	"github.com/toolforge-labs/toolforge/internal/workspace"
)

// coachCommandKey overrides the assistant CLI launched by the bare command.
const coachCommandKey = "coach.command"

var printPromptFlag bool

func init() {
	rootCmd.Flags().BoolVar(&printPromptFlag, "print-prompt", false, "Print the coach system prompt and exit")
}

// runCoach backs the bare root invocation: it makes sure the workspace is
// initialized, then hands the terminal to the assistant CLI with the coach
// system prompt loaded.
func runCoach(cmd *cobra.Command, args []string) error {
	prompt, err := workspace.SystemPrompt()
	if err != nil {
		return fmt.Errorf("loading coach system prompt: %w", err)
	}

	if printPromptFlag {
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	if !workspace.IsInitialized(cwd) {
		fmt.Fprintln(cmd.OutOrStdout(), "First run in this directory. Initializing workspace...")
		fmt.Fprintln(cmd.OutOrStdout())
		if err := workspace.Init(cwd, buildVersion, false, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("initializing workspace: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	config.Load()
	coach := config.Get(coachCommandKey)
	if coach == "" {
		coach = branding.CoachCommand()
	}

	bin, err := exec.LookPath(coach)
	if err != nil {
		return fmt.Errorf("%s command not found in PATH (install the assistant CLI or set %s with '%s config set')",
			coach, coachCommandKey, branding.CLIName())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Launching %s in tool creation coach mode...\n\n", coach)

	launch := exec.CommandContext(cmd.Context(), bin, "--system-prompt", prompt)
	launch.Stdin = os.Stdin
	launch.Stdout = os.Stdout
	launch.Stderr = os.Stderr
	if err := launch.Run(); err != nil {
		// The assistant owns the session once launched. Its exit status
		// is not a toolforge failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("running %s: %w", coach, err)
	}
	return nil
}
