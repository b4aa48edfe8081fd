package cli

import (
	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/discover"
)

var (
	discoverRequirement string
	discoverCategory    string
	discoverLimit       int
)

func init() {
	discoverCmd.Flags().StringVarP(&discoverRequirement, "requirement", "r", "", "One-sentence description of what the tool must do")
	discoverCmd.Flags().StringVarP(&discoverCategory, "category", "c", "", "Requirement category (e.g., \"Data processing\")")
	discoverCmd.Flags().IntVar(&discoverLimit, "limit", 0, "Maximum GitHub results to request (default 10)")
	_ = discoverCmd.MarkFlagRequired("requirement")
	_ = discoverCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(discoverCmd)
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Search for existing solutions before building",
	Long: `Discover searches GitHub for projects matching the requirement so the
user can weigh reuse against building new. Results carry stars and primary
language for a quick quality read; the report includes the evaluation
criteria the coach walks through.

Search uses the gh CLI when available. Without it the report falls back to
manual search strategies the user can run themselves.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		searcher := &discover.Searcher{Limit: discoverLimit}
		report := searcher.Run(cmd.Context(), discoverRequirement, discoverCategory)
		return printJSON(cmd.OutOrStdout(), report)
	},
}
