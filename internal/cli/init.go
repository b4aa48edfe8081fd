package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/branding"
	"github.com/toolforge-labs/toolforge/internal/workspace"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite workspace templates that were edited locally")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the tool creation workspace in the current directory",
	Long: `Init sets up the current directory for coached tool creation. It creates
the assistant configuration (system prompt, slash commands, agents), merges
permission settings, and prepares the ` + branding.WorkspaceDir() + ` workspace directory where
tool projects live.

Running init again refreshes the templates to the current CLI version.
Locally edited templates are kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initializing %s workspace in %s\n\n", branding.DisplayName(), cwd)
		if err := workspace.Init(cwd, buildVersion, initForce, cmd.OutOrStdout()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nWorkspace ready. Run '%s' to start the coach.\n", branding.CLIName())
		return nil
	},
}
