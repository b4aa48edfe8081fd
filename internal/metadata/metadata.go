package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// FileName is the tracking file kept at the root of each tool directory.
const FileName = "metadata.json"

// Tool lifecycle statuses. A tool starts in development and moves on once
// the build-vs-reuse decision lands.
const (
	StatusInDevelopment = "in_development"
	StatusUsingExisting = "using_existing"
	StatusCustomizing   = "customizing"
)

// Decision choices recorded after solution discovery.
const (
	ChoiceUseExisting = "use_existing"
	ChoiceCustomize   = "customize"
	ChoiceBuildNew    = "build_new"
)

// statusForChoice maps a recorded decision onto the tool status.
var statusForChoice = map[string]string{
	ChoiceUseExisting: StatusUsingExisting,
	ChoiceCustomize:   StatusCustomizing,
	ChoiceBuildNew:    StatusInDevelopment,
}

// Metadata tracks one tool project under the workspace.
type Metadata struct {
	ToolName         string     `json:"tool_name"`
	Requirement      string     `json:"requirement"`
	Category         string     `json:"category"`
	CreatedAt        time.Time  `json:"created_at"`
	Status           string     `json:"status"`
	PublicationReady bool       `json:"publication_ready"`
	TotalSessions    int        `json:"total_sessions"`
	Decisions        []Decision `json:"decisions"`
}

// Decision is one recorded build-vs-reuse decision.
type Decision struct {
	Choice    string    `json:"choice"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

// New returns the initial metadata for a freshly scaffolded tool.
func New(toolName, requirement, category string) *Metadata {
	return &Metadata{
		ToolName:    toolName,
		Requirement: requirement,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
		Status:      StatusInDevelopment,
		Decisions:   []Decision{},
	}
}

// Load reads and decodes a metadata file.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata %s: %w", path, err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	return &m, nil
}

// Save validates the metadata against the embedded schema and writes it
// with two-space indentation. Invalid metadata never reaches the disk.
func (m *Metadata) Save(path string) error {
	if m.Decisions == nil {
		m.Decisions = []Decision{}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &ValidationError{Issues: result.Issues}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing metadata %s: %w", path, err)
	}
	return nil
}

// RecordDecision appends a build-vs-reuse decision, moves the status
// accordingly, and counts the session.
func (m *Metadata) RecordDecision(choice, reason string) error {
	status, ok := statusForChoice[choice]
	if !ok {
		return fmt.Errorf("unknown decision choice %q (want %s, %s, or %s)",
			choice, ChoiceUseExisting, ChoiceCustomize, ChoiceBuildNew)
	}
	m.Decisions = append(m.Decisions, Decision{
		Choice:    choice,
		Reason:    reason,
		DecidedAt: time.Now().UTC(),
	})
	m.Status = status
	m.TotalSessions++
	return nil
}
