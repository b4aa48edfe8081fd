package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/branding"
	"github.com/toolforge-labs/toolforge/internal/scaffold"
	"github.com/toolforge-labs/toolforge/internal/workspace"
)

var (
	newRequirement string
	newCategory    string
)

func init() {
	newCmd.Flags().StringVarP(&newRequirement, "requirement", "r", "", "One-sentence description of what the tool must do")
	newCmd.Flags().StringVarP(&newCategory, "category", "c", "", "Requirement category (e.g., \"Data processing\")")
	_ = newCmd.MarkFlagRequired("requirement")
	_ = newCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(newCmd)
}

type newOutput struct {
	Status            string   `json:"status"`
	ToolName          string   `json:"tool_name"`
	ToolSlug          string   `json:"tool_slug"`
	Directory         string   `json:"directory"`
	ProjectDirectory  string   `json:"project_directory"`
	FilesCreated      []string `json:"files_created"`
	NextAction        string   `json:"next_action"`
	LLMDirective      string   `json:"llm_directive"`
	SuggestedResponse string   `json:"suggested_response"`
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new tool project in the workspace",
	Long: `New creates a tool directory under the workspace with tracking notes
(requirement analysis, development log, evaluation) and a Python project
skeleton ready for development.

Output is JSON for the coach. The scaffolded project intentionally lacks a
LICENSE and tests; the readiness checks drive the user to add them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("tool name is empty")
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		if !workspace.IsInitialized(cwd) {
			return fmt.Errorf("workspace not initialized (run '%s init' first)", branding.CLIName())
		}

		data := scaffold.NewData(name, newRequirement, newCategory)
		result, err := scaffold.Generate(data, workspace.ToolDir(cwd, data.Slug))
		if err != nil {
			printErrorJSON(cmd.OutOrStdout(), err.Error())
			return err
		}

		out := newOutput{
			Status:           "success",
			ToolName:         data.Name,
			ToolSlug:         data.Slug,
			Directory:        result.ToolDir,
			ProjectDirectory: result.ProjectDir,
			FilesCreated:     result.Files,
			NextAction:       "select_prompt_template",
			LLMDirective: fmt.Sprintf("Tool project initialized at %s. Now help user complete "+
				"requirement_analysis.md, then select an appropriate %s prompt template to guide AI "+
				"collaboration for development. Ask user to explain their requirement clearly first, "+
				"then match to the best template.", result.ToolDir, strings.ToLower(data.Category)),
			SuggestedResponse: fmt.Sprintf("✅ Tool project '%s' initialized!\n\nLocation: %s\n\n"+
				"Next steps:\n1. Complete requirement analysis\n2. Select prompt template\n"+
				"3. Start AI collaboration for development\n", data.Name, result.ToolDir),
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}
