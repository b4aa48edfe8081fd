package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/metadata"
)

var decideReason string

func init() {
	decideCmd.Flags().StringVar(&decideReason, "reason", "", "Why this choice was made")
	rootCmd.AddCommand(decideCmd)
}

// decisionGuidance maps each choice to the coach's next move.
var decisionGuidance = map[string]struct {
	nextAction string
	directive  string
}{
	metadata.ChoiceUseExisting: {
		nextAction: "document_usage",
		directive: "Help user adopt the existing solution: record it in evaluation.md " +
			"and document setup and usage in the README.",
	},
	metadata.ChoiceCustomize: {
		nextAction: "fork_and_customize",
		directive: "Help user fork the chosen solution into project/ and track every " +
			"change in development_log.md.",
	},
	metadata.ChoiceBuildNew: {
		nextAction: "select_prompt_template",
		directive: "Guide development inside project/. Complete requirement_analysis.md " +
			"first, then build iteratively and log progress in development_log.md.",
	},
}

type decideOutput struct {
	Status        string `json:"status"`
	Tool          string `json:"tool"`
	Choice        string `json:"choice"`
	NewStatus     string `json:"new_status"`
	TotalSessions int    `json:"total_sessions"`
	NextAction    string `json:"next_action"`
	LLMDirective  string `json:"llm_directive"`
}

var decideCmd = &cobra.Command{
	Use:   "decide <tool> <use_existing|customize|build_new>",
	Short: "Record the build-vs-reuse decision for a tool",
	Long: `Decide records the outcome of solution discovery in the tool's metadata
and moves its status accordingly: use_existing, customize, or build_new.
The decision log keeps the reasoning available across sessions.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		toolDir := resolveToolDir(cwd, args[0])
		metaPath := filepath.Join(toolDir, metadata.FileName)
		meta, err := metadata.Load(metaPath)
		if err != nil {
			printErrorJSON(cmd.OutOrStdout(), fmt.Sprintf("Tool metadata not found: %s", metaPath))
			return fmt.Errorf("loading tool metadata: %w", err)
		}

		choice := args[1]
		if err := meta.RecordDecision(choice, decideReason); err != nil {
			printErrorJSON(cmd.OutOrStdout(), err.Error())
			return err
		}
		if err := meta.Save(metaPath); err != nil {
			return fmt.Errorf("saving tool metadata: %w", err)
		}

		guidance := decisionGuidance[choice]
		return printJSON(cmd.OutOrStdout(), decideOutput{
			Status:        "success",
			Tool:          filepath.Base(toolDir),
			Choice:        choice,
			NewStatus:     meta.Status,
			TotalSessions: meta.TotalSessions,
			NextAction:    guidance.nextAction,
			LLMDirective: fmt.Sprintf("Decision '%s' recorded for %s. Status is now '%s'. %s",
				choice, meta.ToolName, meta.Status, guidance.directive),
		})
	},
}
