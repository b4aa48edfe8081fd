package workspace

import (
	"fmt"
	"io/fs"
	"strings"
)

// systemPromptFile is the coach prompt installed into the assistant dir
// and handed to the assistant CLI on launch.
const systemPromptFile = "templates/claude/system_prompts/tool-forge.md"

// SystemPrompt returns the embedded coach prompt with its front matter
// stripped, ready to pass to the assistant CLI.
func SystemPrompt() (string, error) {
	raw, err := fs.ReadFile(workspaceFS, systemPromptFile)
	if err != nil {
		return "", fmt.Errorf("reading embedded system prompt: %w", err)
	}
	return strings.TrimSpace(stripFrontMatter(string(raw))), nil
}

// stripFrontMatter removes a leading front matter block delimited by
// "---" lines. Text without a leading block passes through unchanged, as
// does a block that never closes.
func stripFrontMatter(text string) string {
	lines := strings.Split(text, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start >= len(lines) || strings.TrimSpace(lines[start]) != "---" {
		return text
	}
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[i+1:], "\n")
		}
	}
	return text
}
