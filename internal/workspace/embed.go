package workspace

import "embed"

// workspaceFS carries the assistant and workspace templates installed by
// Init.
//
//go:embed templates
var workspaceFS embed.FS
