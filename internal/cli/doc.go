// Package cli defines the Cobra command tree for the toolforge CLI. Each file
// in this package registers one top-level command (init, new, check, etc.)
// with the root command. Command implementations delegate to internal packages
// for business logic and only handle flag parsing, I/O formatting, and user interaction.
//
// Commands meant for the coaching assistant (new, discover, decide, check)
// print a single JSON document on stdout so the assistant can parse the
// next_action and llm_directive fields. Human-facing commands print tables.
package cli
