package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/toolforge-labs/toolforge/internal/history"
	"github.com/toolforge-labs/toolforge/internal/metadata"
	"github.com/toolforge-labs/toolforge/internal/readiness"
	"github.com/toolforge-labs/toolforge/internal/scaffold"
	"github.com/toolforge-labs/toolforge/internal/style"
	"github.com/toolforge-labs/toolforge/internal/workspace"
)

var checkPretty bool

func init() {
	checkCmd.PersistentFlags().BoolVar(&checkPretty, "pretty", false, "Print a human-readable table instead of JSON")
	checkCmd.AddCommand(qualityCmd)
	checkCmd.AddCommand(publicationCmd)
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run readiness checks against a tool project",
	Long: `Check evaluates a tool's Python project against a fixed battery of
readiness checks covering structure, documentation, testing, licensing,
packaging, and version control.

The quality profile reports a flat checklist with recommendations for the
development loop. The publication profile groups checks by category and
lists the steps to publish. Both record the run in the workspace history.`,
}

// qualityRecommendations maps failed checks to the advice surfaced during
// the development loop. Order here is the output order.
var qualityRecommendations = []struct {
	check  string
	advice string
}{
	{"has_readme", "Add README.md with installation and usage"},
	{"has_manifest", "Create pyproject.toml for installability"},
	{"has_license", "Add LICENSE file (recommend MIT)"},
	{"has_ignore_file", "Add .gitignore covering __pycache__ and build artifacts"},
	{"readme_complete", "Complete README with installation, usage, features"},
	{"has_tests", "Add basic tests for core functionality"},
}

var publicationSteps = []string{
	"1. Create version tag (e.g., v1.0.0)",
	"2. Create GitHub Release with CHANGELOG",
	"3. Test fresh installation: pip install .",
	"4. Optional: Publish to PyPI with twine",
	"5. Share with community (Reddit, forums, etc.)",
}

// recommendationsFor returns the advice for every failed check, in the
// qualityRecommendations order. The result is non-nil so it marshals as an
// empty array.
func recommendationsFor(flat readiness.Results) []string {
	recs := []string{}
	for _, r := range qualityRecommendations {
		if v, ok := flat[r.check].(bool); ok && !v {
			recs = append(recs, r.advice)
		}
	}
	return recs
}

type qualityOutput struct {
	Status          string            `json:"status"`
	ToolDir         string            `json:"tool_dir"`
	ProjectDir      string            `json:"project_dir"`
	Score           float64           `json:"score"`
	Tier            readiness.Tier    `json:"tier"`
	Checks          readiness.Results `json:"checks"`
	Critical        bool              `json:"critical"`
	Recommendations []string          `json:"recommendations"`
	Style           style.Advisory    `json:"style"`
	NextAction      string            `json:"next_action"`
	LLMDirective    string            `json:"llm_directive"`
}

type publicationOutput struct {
	Status                  string                       `json:"status"`
	ToolDir                 string                       `json:"tool_dir"`
	ProjectDir              string                       `json:"project_dir"`
	ReadinessScore          float64                      `json:"readiness_score"`
	Tier                    readiness.Tier               `json:"tier"`
	ReadyForPublication     bool                         `json:"ready_for_publication"`
	FullyReady              bool                         `json:"fully_ready"`
	Checks                  map[string]readiness.Results `json:"checks"`
	CriticalIssues          []string                     `json:"critical_issues"`
	RecommendedImprovements []string                     `json:"recommended_improvements"`
	NextAction              string                       `json:"next_action"`
	LLMDirective            string                       `json:"llm_directive"`
	PublicationSteps        []string                     `json:"publication_steps"`
}

var qualityCmd = &cobra.Command{
	Use:   "quality <tool>",
	Short: "Development-loop checklist with recommendations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolDir, report, err := evaluateTool(cmd, args[0], history.ProfileQuality)
		if err != nil {
			return err
		}

		flat := report.Flat()
		recs := recommendationsFor(flat)

		checker := &style.Checker{}
		advisory := checker.Check(cmd.Context(), report.Root)
		if advisory.Issues {
			recs = append(recs, "Fix code style issues (run: pycodestyle src/)")
		}

		next := "address_issues"
		if report.CriticalSatisfied {
			next = "proceed_to_publication"
		}

		if checkPretty {
			renderPretty(cmd.OutOrStdout(), toolDir, history.ProfileQuality, report,
				adviceSection{"Recommendations", recs})
			return nil
		}

		return printJSON(cmd.OutOrStdout(), qualityOutput{
			Status:          "success",
			ToolDir:         toolDir,
			ProjectDir:      report.Root,
			Score:           report.Score,
			Tier:            report.Tier,
			Checks:          flat,
			Critical:        report.CriticalSatisfied,
			Recommendations: recs,
			Style:           advisory,
			NextAction:      next,
			LLMDirective: fmt.Sprintf("Quality score: %.1f%%. Review checks and help user address "+
				"any critical issues. Once all critical checks pass, proceed to publication checklist.",
				report.Score),
		})
	},
}

var publicationCmd = &cobra.Command{
	Use:   "publication <tool>",
	Short: "Publication checklist grouped by category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolDir, report, err := evaluateTool(cmd, args[0], history.ProfilePublication)
		if err != nil {
			return err
		}

		// Keep the tracked publication flag in line with the latest run.
		// A tool dir without metadata (checked by path) is fine.
		metaPath := filepath.Join(toolDir, metadata.FileName)
		if meta, err := metadata.Load(metaPath); err == nil && meta.PublicationReady != report.CriticalSatisfied {
			meta.PublicationReady = report.CriticalSatisfied
			_ = meta.Save(metaPath)
		}

		steps := []string{}
		next := "address_issues"
		if report.CriticalSatisfied {
			steps = publicationSteps
			next = "publish"
		}

		if checkPretty {
			renderPretty(cmd.OutOrStdout(), toolDir, history.ProfilePublication, report,
				adviceSection{"Critical issues", report.UnmetCritical},
				adviceSection{"Recommended improvements", report.UnmetRecommended},
				adviceSection{"Publication steps", steps})
			return nil
		}

		return printJSON(cmd.OutOrStdout(), publicationOutput{
			Status:                  "success",
			ToolDir:                 toolDir,
			ProjectDir:              report.Root,
			ReadinessScore:          report.Score,
			Tier:                    report.Tier,
			ReadyForPublication:     report.CriticalSatisfied,
			FullyReady:              report.FullyReady,
			Checks:                  report.Categories,
			CriticalIssues:          report.UnmetCritical,
			RecommendedImprovements: report.UnmetRecommended,
			NextAction:              next,
			LLMDirective:            publicationDirective(report),
			PublicationSteps:        steps,
		})
	},
}

func publicationDirective(report *readiness.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Publication readiness: %.1f%%. ", report.Score)
	if report.CriticalSatisfied {
		b.WriteString("Ready for basic publication! ")
	} else {
		b.WriteString("Address critical issues first. ")
	}
	if report.FullyReady {
		b.WriteString("Fully ready for GitHub + PyPI! ")
	} else {
		b.WriteString("Consider improvements for better experience. ")
	}
	b.WriteString("Guide user through remaining steps: ")
	if report.CriticalSatisfied {
		b.WriteString("Create release and publish.")
	} else {
		b.WriteString("Fix critical issues.")
	}
	return b.String()
}

// evaluateTool resolves the tool argument, runs the readiness battery over
// its project directory, and records the run in the workspace history.
func evaluateTool(cmd *cobra.Command, arg, profile string) (string, *readiness.Report, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("getting working directory: %w", err)
	}

	toolDir := resolveToolDir(cwd, arg)
	projectDir := filepath.Join(toolDir, "project")
	if info, err := os.Stat(projectDir); err != nil || !info.IsDir() {
		msg := "Project directory not found: " + projectDir
		printErrorJSON(cmd.OutOrStdout(), msg)
		return "", nil, fmt.Errorf("project directory not found: %s", projectDir)
	}

	snap, err := readiness.Collect(projectDir)
	if err != nil {
		return "", nil, fmt.Errorf("collecting project facts: %w", err)
	}
	report, err := readiness.Evaluate(snap)
	if err != nil {
		return "", nil, fmt.Errorf("evaluating readiness: %w", err)
	}

	recordRun(cmd.Context(), cwd, filepath.Base(toolDir), profile, report)
	return toolDir, report, nil
}

// resolveToolDir accepts either a tool name (looked up in the workspace)
// or an explicit path to a tool directory.
func resolveToolDir(cwd, arg string) string {
	if strings.ContainsRune(arg, '/') || strings.ContainsRune(arg, os.PathSeparator) {
		return filepath.Clean(arg)
	}
	return workspace.ToolDir(cwd, scaffold.Slugify(arg))
}

// recordRun appends the evaluation to the workspace history. History is an
// aid, not a gate: failures here never fail the check.
func recordRun(ctx context.Context, cwd, tool, profile string, report *readiness.Report) {
	store, err := history.Open(workspace.Dir(cwd))
	if err != nil {
		return
	}
	defer store.Close()
	_ = store.Record(ctx, history.Entry{
		Tool:             tool,
		Profile:          profile,
		Score:            report.Score,
		Tier:             string(report.Tier),
		UnmetCritical:    len(report.UnmetCritical),
		UnmetRecommended: len(report.UnmetRecommended),
	})
}

type adviceSection struct {
	label string
	items []string
}

func renderPretty(w io.Writer, toolDir, profile string, report *readiness.Report, sections ...adviceSection) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Tool:\t%s\n", filepath.Base(toolDir))
	fmt.Fprintf(tw, "Profile:\t%s\n", profile)
	fmt.Fprintf(tw, "Score:\t%.1f%%\n", report.Score)
	fmt.Fprintf(tw, "Tier:\t%s\n", report.Tier)
	tw.Flush()
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCHECK\tRESULT")
	for _, cat := range readiness.CategoryNames() {
		results := report.Categories[cat]
		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", cat, name, renderResult(results[name]))
		}
	}
	tw.Flush()

	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", s.label)
		for _, item := range s.items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
}

func renderResult(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "[ OK ]"
		}
		return "[MISS]"
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
