package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// FileName is the history database file inside the workspace dir.
const FileName = "history.db"

// Profile names recorded with each run.
const (
	ProfileQuality     = "quality"
	ProfilePublication = "publication"
)

// Entry is one recorded readiness check run.
type Entry struct {
	ID               int64     `json:"id"`
	Tool             string    `json:"tool"`
	Profile          string    `json:"profile"`
	Score            float64   `json:"score"`
	Tier             string    `json:"tier"`
	UnmetCritical    int       `json:"unmet_critical"`
	UnmetRecommended int       `json:"unmet_recommended"`
	RecordedAt       time.Time `json:"recorded_at"`
}

// Store manages the evaluation history database inside a workspace dir.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the history database under workspaceDir and
// bootstraps the schema.
func Open(workspaceDir string) (*Store, error) {
	dbPath := filepath.Join(workspaceDir, FileName)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	// WAL keeps overlapping check runs from blocking each other.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	store := &Store{db: db, dbPath: dbPath}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Record appends one check run. A zero RecordedAt defaults to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.Tool == "" {
		return fmt.Errorf("history entry needs a tool name")
	}
	when := e.RecordedAt
	if when.IsZero() {
		when = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO check_runs (tool, profile, score, tier, unmet_critical, unmet_recommended, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Tool, e.Profile, e.Score, e.Tier, e.UnmetCritical, e.UnmetRecommended, toMillis(when))
	if err != nil {
		return fmt.Errorf("record check run: %w", err)
	}
	return nil
}

// List returns the runs for one tool, newest first. A non-positive limit
// returns everything. No rows is an empty slice, not an error.
func (s *Store) List(ctx context.Context, tool string, limit int) ([]Entry, error) {
	query := `
SELECT id, tool, profile, score, tier, unmet_critical, unmet_recommended, recorded_at
FROM check_runs
WHERE tool = ?
ORDER BY id DESC`
	args := []any{tool}
	if limit > 0 {
		query += "\nLIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list check runs: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var millis int64
		if err := rows.Scan(&e.ID, &e.Tool, &e.Profile, &e.Score, &e.Tier,
			&e.UnmetCritical, &e.UnmetRecommended, &millis); err != nil {
			return nil, fmt.Errorf("scan check run: %w", err)
		}
		e.RecordedAt = fromMillis(millis)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check runs: %w", err)
	}
	return entries, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
