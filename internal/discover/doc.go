// Package discover searches for existing solutions to a tool requirement
// before anything gets built. Automated search is a pass-through to the
// GitHub CLI; when it finds nothing the report falls back to manual
// search strategies keyed by category.
package discover
