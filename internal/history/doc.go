// Package history keeps a per-workspace log of readiness check runs in a
// SQLite database, so score progress across coaching sessions stays
// visible. Recording is best effort from the caller's point of view; a
// broken history store never fails a check.
package history
