package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/history"
	"github.com/toolforge-labs/toolforge/internal/workspace"
)

var (
	historyLimit int
	historyJSON  bool
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output history as JSON")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <tool>",
	Short: "Show recorded check runs for a tool",
	Long: `History lists past readiness check runs for a tool, newest first. Each
check run records the profile, score, tier, and how many critical and
recommended checks were unmet, so progress across sessions is visible.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		store, err := history.Open(workspace.Dir(cwd))
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		tool := filepath.Base(resolveToolDir(cwd, args[0]))
		entries, err := store.List(cmd.Context(), tool, historyLimit)
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}

		if historyJSON {
			return printJSON(cmd.OutOrStdout(), entries)
		}

		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No check runs recorded for %s yet.\n", tool)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "WHEN\tPROFILE\tSCORE\tTIER\tUNMET CRITICAL\tUNMET RECOMMENDED")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%d\t%d\n",
				e.RecordedAt.Local().Format("2006-01-02 15:04"),
				e.Profile, e.Score, e.Tier, e.UnmetCritical, e.UnmetRecommended)
		}
		return w.Flush()
	},
}
