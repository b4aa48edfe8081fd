package scaffold

import "embed"

// Templates for generated tool directories. The .tmpl extension keeps
// editors and the Go toolchain from treating template sources as code.
//
//go:embed templates
var scaffoldFS embed.FS
