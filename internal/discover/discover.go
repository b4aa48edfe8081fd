package discover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	// defaultLimit is how many repositories the search CLI is asked for.
	defaultLimit = 10
	// maxSolutions caps how many results reach the report.
	maxSolutions = 5
	// defaultTimeout bounds one search subprocess.
	defaultTimeout = 30 * time.Second
)

// CommandRunner executes a search CLI invocation and returns its stdout.
// Tests replace it to avoid spawning real processes.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Searcher finds existing solutions for a requirement. The zero value
// uses the gh CLI with default limit and timeout.
type Searcher struct {
	Runner  CommandRunner
	Limit   int
	Timeout time.Duration
}

// Solution is one discovered candidate in report shape.
type Solution struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Metrics     Metrics `json:"metrics"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
}

// Metrics carries the comparison numbers shown next to a solution.
type Metrics struct {
	Stars    int    `json:"stars"`
	Language string `json:"language"`
}

// Criteria is the fixed five-dimension assessment guide included in
// every report.
type Criteria struct {
	Functionality string `json:"functionality"`
	Quality       string `json:"quality"`
	Usability     string `json:"usability"`
	Customization string `json:"customization"`
	License       string `json:"license"`
}

// Report is the structured discovery output handed to the assistant.
type Report struct {
	Status             string     `json:"status"`
	Requirement        string     `json:"requirement"`
	Category           string     `json:"category"`
	SolutionsFound     int        `json:"solutions_found"`
	Solutions          []Solution `json:"solutions"`
	ManualStrategies   []string   `json:"manual_search_strategies"`
	NextAction         string     `json:"next_action"`
	LLMDirective       string     `json:"llm_directive"`
	EvaluationCriteria Criteria   `json:"evaluation_criteria"`
}

// ghRepo mirrors one entry of `gh search repos --json`.
type ghRepo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	StargazerCount  int    `json:"stargazerCount"`
	URL             string `json:"url"`
	PrimaryLanguage struct {
		Name string `json:"name"`
	} `json:"primaryLanguage"`
}

// Run searches for the requirement and assembles the discovery report.
// Search failures are absorbed: a missing or failing search CLI yields an
// empty solution list and the manual strategies instead of an error.
func (s *Searcher) Run(ctx context.Context, requirement, category string) *Report {
	solutions := s.searchGitHub(ctx, requirement)

	manual := []string{}
	if len(solutions) == 0 {
		manual = ManualStrategies(requirement, category)
	}

	return &Report{
		Status:           "success",
		Requirement:      requirement,
		Category:         category,
		SolutionsFound:   len(solutions),
		Solutions:        solutions,
		ManualStrategies: manual,
		NextAction:       "evaluate_solutions",
		LLMDirective: fmt.Sprintf(
			"Found %d potential solutions. "+
				"Present these to user and guide systematic evaluation using 5-dimensional assessment. "+
				"If no automated results, show manual search strategies and help user search. "+
				"After evaluation, ask user to decide: use existing / customize / build new.",
			len(solutions)),
		EvaluationCriteria: Criteria{
			Functionality: "How well does it match requirements?",
			Quality:       "Is it mature and well-maintained?",
			Usability:     "How easy is it to use?",
			Customization: "Can it be customized if needed?",
			License:       "Is the license suitable for your use case?",
		},
	}
}

// searchGitHub queries the gh CLI and reshapes the matches. Any failure
// along the way returns an empty list.
func (s *Searcher) searchGitHub(ctx context.Context, query string) []Solution {
	runner := s.Runner
	if runner == nil {
		runner = runCLI
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := s.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runner(ctx, "gh", "search", "repos", query,
		"--limit", strconv.Itoa(limit),
		"--json", "name,description,stargazerCount,url,primaryLanguage")
	if err != nil {
		return []Solution{}
	}

	solutions, err := parseRepos(out)
	if err != nil {
		return []Solution{}
	}
	return solutions
}

// parseRepos decodes gh search output and reshapes the top entries into
// report solutions. Empty descriptions and languages get placeholder
// values so the assistant always has something to show.
func parseRepos(data []byte) ([]Solution, error) {
	var repos []ghRepo
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}
	if len(repos) > maxSolutions {
		repos = repos[:maxSolutions]
	}

	solutions := make([]Solution, 0, len(repos))
	for _, r := range repos {
		desc := r.Description
		if desc == "" {
			desc = "No description"
		}
		lang := r.PrimaryLanguage.Name
		if lang == "" {
			lang = "Unknown"
		}
		solutions = append(solutions, Solution{
			Type:        "GitHub Repository",
			Name:        r.Name,
			Description: desc,
			Metrics:     Metrics{Stars: r.StargazerCount, Language: lang},
			URL:         r.URL,
			Source:      "GitHub",
		})
	}
	return solutions, nil
}

// ManualStrategies suggests hand searches for the requirement. The three
// well-known categories get extra pointers.
func ManualStrategies(requirement, category string) []string {
	lower := strings.ToLower(category)
	strategies := []string{
		fmt.Sprintf("Google: '%s open source tool'", requirement),
		fmt.Sprintf("Google: '%s github'", requirement),
		fmt.Sprintf("Google: 'best %s tools %s'", lower, requirement),
		fmt.Sprintf("GitHub: Search with '%s'", firstWord(requirement)),
		fmt.Sprintf("Awesome lists: 'awesome-%s' on GitHub", lower),
	}

	switch category {
	case "Data processing":
		strategies = append(strategies,
			"PyPI: Search for data processing libraries",
			"Check: pandas, polars, dask documentation")
	case "File operations":
		strategies = append(strategies,
			"Check: pathlib, shutil documentation",
			"Search: 'file automation' on GitHub")
	case "Text processing":
		strategies = append(strategies,
			"Check: regex, nltk, spacy documentation",
			"Search: 'text processing' on PyPI")
	}
	return strategies
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "tool"
	}
	return fields[0]
}

// runCLI is the default CommandRunner. A binary missing from PATH is an
// error like any other; callers treat all failures as empty results.
func runCLI(ctx context.Context, name string, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", name, err)
	}
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return stdout.Bytes(), nil
}
