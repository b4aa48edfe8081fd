// Package settings manages the assistant permission file
// (.claude/settings.local.json) for initialized workspaces. Defaults are
// produced as fresh values and merged into existing documents without
// disturbing user-added permissions or unknown keys.
package settings
