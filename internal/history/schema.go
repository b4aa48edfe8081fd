package history

// schemaSQL defines the history database schema. One row per readiness
// check run, indexed for the per-tool newest-first listing.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS check_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tool TEXT NOT NULL,
    profile TEXT NOT NULL,
    score REAL NOT NULL,
    tier TEXT NOT NULL,
    unmet_critical INTEGER NOT NULL DEFAULT 0,
    unmet_recommended INTEGER NOT NULL DEFAULT 0,
    recorded_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_check_runs_tool ON check_runs(tool, id DESC);
`

// initSchema creates the tables and indexes if they don't exist.
func (s *Store) initSchema() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}
