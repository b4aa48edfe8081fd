package workspace

import (
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/toolforge-labs/toolforge/internal/branding"
)

// CheckAndPrintRefreshHint prints a one-line hint to w when the
// workspace was initialized by an older CLI. Uninitialized workspaces
// and unparseable versions stay silent; the hint is advisory and never
// blocks a command.
func CheckAndPrintRefreshHint(w io.Writer, root, cliVersion string) {
	cfg, err := ReadConfig(root)
	if err != nil || !cfg.Initialized {
		return
	}
	if IsStale(cfg.Version, cliVersion) {
		fmt.Fprintf(w, "Workspace templates are from %s; run `%s init` to refresh them for %s.\n",
			cfg.Version, branding.CLIName(), cliVersion)
	}
}

// IsStale reports whether recorded is an older semantic version than
// current. Versions that do not parse (e.g., "dev") never count as
// stale.
func IsStale(recorded, current string) bool {
	rv, err := semver.NewVersion(strings.TrimPrefix(recorded, "v"))
	if err != nil {
		return false
	}
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false
	}
	return rv.LessThan(cv)
}
