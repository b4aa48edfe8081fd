package discover

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const sampleSearchOutput = `[
  {"name": "photo-sort", "description": "Sort photos by EXIF date", "stargazerCount": 812, "url": "https://github.com/a/photo-sort", "primaryLanguage": {"name": "Python"}},
  {"name": "exif-tool", "description": "", "stargazerCount": 402, "url": "https://github.com/b/exif-tool", "primaryLanguage": {"name": ""}},
  {"name": "pic-renamer", "description": "Rename pictures", "stargazerCount": 77, "url": "https://github.com/c/pic-renamer", "primaryLanguage": {"name": "Rust"}},
  {"name": "four", "description": "d4", "stargazerCount": 4, "url": "https://github.com/d/four", "primaryLanguage": {"name": "Go"}},
  {"name": "five", "description": "d5", "stargazerCount": 5, "url": "https://github.com/e/five", "primaryLanguage": {"name": "Go"}},
  {"name": "six", "description": "d6", "stargazerCount": 6, "url": "https://github.com/f/six", "primaryLanguage": {"name": "Go"}}
]`

func TestParseRepos(t *testing.T) {
	solutions, err := parseRepos([]byte(sampleSearchOutput))
	if err != nil {
		t.Fatalf("parseRepos() error: %v", err)
	}

	if len(solutions) != 5 {
		t.Fatalf("got %d solutions, want 5 (capped)", len(solutions))
	}

	first := solutions[0]
	if first.Type != "GitHub Repository" {
		t.Errorf("Type = %q, want %q", first.Type, "GitHub Repository")
	}
	if first.Name != "photo-sort" {
		t.Errorf("Name = %q, want %q", first.Name, "photo-sort")
	}
	if first.Metrics.Stars != 812 {
		t.Errorf("Stars = %d, want 812", first.Metrics.Stars)
	}
	if first.Metrics.Language != "Python" {
		t.Errorf("Language = %q, want %q", first.Metrics.Language, "Python")
	}
	if first.Source != "GitHub" {
		t.Errorf("Source = %q, want %q", first.Source, "GitHub")
	}

	// Empty fields get placeholders.
	second := solutions[1]
	if second.Description != "No description" {
		t.Errorf("empty description = %q, want placeholder", second.Description)
	}
	if second.Metrics.Language != "Unknown" {
		t.Errorf("empty language = %q, want placeholder", second.Metrics.Language)
	}
}

func TestParseReposMalformed(t *testing.T) {
	if _, err := parseRepos([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed search output")
	}
}

func TestRunWithResults(t *testing.T) {
	var gotName string
	var gotArgs []string
	s := &Searcher{
		Runner: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args
			return []byte(sampleSearchOutput), nil
		},
	}

	report := s.Run(context.Background(), "batch rename photos", "File operations")

	if gotName != "gh" {
		t.Errorf("runner binary = %q, want gh", gotName)
	}
	wantArgs := []string{
		"search", "repos", "batch rename photos",
		"--limit", "10",
		"--json", "name,description,stargazerCount,url,primaryLanguage",
	}
	if len(gotArgs) != len(wantArgs) {
		t.Fatalf("runner args = %v, want %v", gotArgs, wantArgs)
	}
	for i := range wantArgs {
		if gotArgs[i] != wantArgs[i] {
			t.Errorf("arg[%d] = %q, want %q", i, gotArgs[i], wantArgs[i])
		}
	}

	if report.Status != "success" {
		t.Errorf("Status = %q, want success", report.Status)
	}
	if report.SolutionsFound != 5 {
		t.Errorf("SolutionsFound = %d, want 5", report.SolutionsFound)
	}
	if len(report.ManualStrategies) != 0 {
		t.Errorf("manual strategies should be empty when search succeeds, got %v", report.ManualStrategies)
	}
	if report.NextAction != "evaluate_solutions" {
		t.Errorf("NextAction = %q, want evaluate_solutions", report.NextAction)
	}
	if !strings.Contains(report.LLMDirective, "Found 5 potential solutions") {
		t.Errorf("LLMDirective = %q", report.LLMDirective)
	}
	if report.EvaluationCriteria.License == "" {
		t.Error("evaluation criteria missing")
	}
}

func TestRunSearchFailure(t *testing.T) {
	s := &Searcher{
		Runner: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return nil, errors.New("gh: command not found")
		},
	}

	report := s.Run(context.Background(), "merge csv files", "Data processing")

	if report.SolutionsFound != 0 {
		t.Errorf("SolutionsFound = %d, want 0", report.SolutionsFound)
	}
	if report.Solutions == nil || len(report.Solutions) != 0 {
		t.Errorf("Solutions = %v, want empty non-nil list", report.Solutions)
	}
	if len(report.ManualStrategies) == 0 {
		t.Error("manual strategies should be suggested when search fails")
	}
	if !strings.Contains(report.LLMDirective, "Found 0 potential solutions") {
		t.Errorf("LLMDirective = %q", report.LLMDirective)
	}
}

func TestRunMalformedSearchOutput(t *testing.T) {
	s := &Searcher{
		Runner: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("gh exploded"), nil
		},
	}

	report := s.Run(context.Background(), "split logs", "Text processing")
	if report.SolutionsFound != 0 {
		t.Errorf("SolutionsFound = %d, want 0 for unparseable output", report.SolutionsFound)
	}
	if len(report.ManualStrategies) == 0 {
		t.Error("manual strategies should back up unparseable output")
	}
}

func TestManualStrategies(t *testing.T) {
	t.Run("base strategies", func(t *testing.T) {
		got := ManualStrategies("resize images", "Image tooling")
		if len(got) != 5 {
			t.Fatalf("got %d strategies, want 5 for unknown category: %v", len(got), got)
		}
		if !strings.Contains(got[0], "resize images") {
			t.Errorf("strategy[0] = %q, should mention the requirement", got[0])
		}
		if !strings.Contains(got[2], "image tooling") {
			t.Errorf("strategy[2] = %q, should lowercase the category", got[2])
		}
		if !strings.Contains(got[3], "'resize'") {
			t.Errorf("strategy[3] = %q, should use the first requirement word", got[3])
		}
	})

	t.Run("category extensions", func(t *testing.T) {
		tests := []struct {
			category string
			marker   string
		}{
			{"Data processing", "pandas"},
			{"File operations", "pathlib"},
			{"Text processing", "nltk"},
		}
		for _, tt := range tests {
			got := ManualStrategies("anything", tt.category)
			if len(got) != 7 {
				t.Errorf("%s: got %d strategies, want 7", tt.category, len(got))
				continue
			}
			joined := strings.Join(got, "\n")
			if !strings.Contains(joined, tt.marker) {
				t.Errorf("%s strategies missing %q:\n%s", tt.category, tt.marker, joined)
			}
		}
	})

	t.Run("empty requirement", func(t *testing.T) {
		got := ManualStrategies("", "Misc")
		if !strings.Contains(got[3], "'tool'") {
			t.Errorf("strategy[3] = %q, want fallback keyword", got[3])
		}
	})
}

func TestReportJSONShape(t *testing.T) {
	s := &Searcher{
		Runner: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte(`[]`), nil
		},
	}
	report := s.Run(context.Background(), "r", "c")

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshaling report: %v", err)
	}
	for _, key := range []string{
		`"status"`, `"requirement"`, `"category"`, `"solutions_found"`,
		`"solutions"`, `"manual_search_strategies"`, `"next_action"`,
		`"llm_directive"`, `"evaluation_criteria"`, `"functionality"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("report JSON missing key %s:\n%s", key, data)
		}
	}
}
