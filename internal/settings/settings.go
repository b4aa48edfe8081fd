package settings

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/toolforge-labs/toolforge/internal/branding"
)

// FileName is the assistant settings file inside the assistant config dir.
const FileName = "settings.local.json"

// Defaults is the permission configuration granted to the coaching
// assistant inside an initialized workspace.
type Defaults struct {
	Allow         []string
	Deny          []string
	Announcements []string
}

// DefaultSettings returns a fresh copy of the workspace defaults. Callers
// own the returned value; there is no shared package-level state to
// mutate.
func DefaultSettings() Defaults {
	cli := branding.CLIName()
	ws := branding.WorkspaceDir()
	return Defaults{
		Allow: []string{
			fmt.Sprintf("Bash(%s check:*)", cli),
			fmt.Sprintf("Bash(%s new:*)", cli),
			fmt.Sprintf("Bash(%s discover:*)", cli),
			fmt.Sprintf("Bash(%s decide:*)", cli),
			"Bash(ls:*)",
			fmt.Sprintf("Read(%s/**)", ws),
			fmt.Sprintf("Write(%s/**)", ws),
			"Read(**/*.md)",
			"Write(**/*.md)",
		},
		Deny: []string{
			"Bash(rm:*)",
			"Bash(curl:*)",
			"Read(.env)",
			"Read(.env.*)",
			"Write(.env)",
			"Write(.env.*)",
		},
		Announcements: []string{
			fmt.Sprintf("🔨 %s is active! Use /create to start tool creation", branding.DisplayName()),
			"",
			fmt.Sprintf("📋 %s workflow:", branding.DisplayName()),
			"  1. Describe your tool requirement",
			"  2. Review existing solutions (AI will search)",
			"  3. Decide: Use existing / Customize / Build new",
			"  4. Develop with AI assistance (if building)",
			"  5. Publish and share with community",
			"",
			fmt.Sprintf("💡 Run '%s init' to reinitialize", cli),
			fmt.Sprintf("📖 Run '%s --help' for more info", cli),
		},
	}
}

// Merge reconciles an existing settings document with the defaults. A nil
// or blank document yields the defaults verbatim. Otherwise existing
// entries and unknown keys are preserved: default permissions are
// appended only when missing from their list, and announcements are added
// only when the key is absent entirely. The bool reports whether the
// document changed. Invalid JSON is an error; user data is never
// clobbered.
func Merge(existing []byte, d Defaults) ([]byte, bool, error) {
	if len(bytes.TrimSpace(existing)) == 0 {
		out, err := render(map[string]any{
			"permissions": map[string]any{
				"allow": toAny(d.Allow),
				"deny":  toAny(d.Deny),
			},
			"companyAnnouncements": toAny(d.Announcements),
		})
		return out, true, err
	}

	var doc map[string]any
	if err := json.Unmarshal(existing, &doc); err != nil {
		return nil, false, fmt.Errorf("parsing settings: %w", err)
	}

	changed := false
	switch perms := doc["permissions"].(type) {
	case nil:
		doc["permissions"] = map[string]any{
			"allow": toAny(d.Allow),
			"deny":  toAny(d.Deny),
		}
		changed = true
	case map[string]any:
		grewAllow, err := mergeList(perms, "allow", d.Allow)
		if err != nil {
			return nil, false, fmt.Errorf("settings permissions: %w", err)
		}
		grewDeny, err := mergeList(perms, "deny", d.Deny)
		if err != nil {
			return nil, false, fmt.Errorf("settings permissions: %w", err)
		}
		changed = changed || grewAllow || grewDeny
	default:
		return nil, false, fmt.Errorf("settings key %q is not an object", "permissions")
	}

	if _, ok := doc["companyAnnouncements"]; !ok {
		doc["companyAnnouncements"] = toAny(d.Announcements)
		changed = true
	}

	out, err := render(doc)
	return out, changed, err
}

// mergeList appends the default entries missing from perms[key],
// preserving whatever the user already listed.
func mergeList(perms map[string]any, key string, defaults []string) (bool, error) {
	existing, ok := perms[key]
	if !ok || existing == nil {
		perms[key] = toAny(defaults)
		return len(defaults) > 0, nil
	}
	list, ok := existing.([]any)
	if !ok {
		return false, fmt.Errorf("%q is not a list", key)
	}

	changed := false
	for _, perm := range defaults {
		if !containsString(list, perm) {
			list = append(list, perm)
			changed = true
		}
	}
	if changed {
		perms[key] = list
	}
	return changed, nil
}

func containsString(list []any, want string) bool {
	for _, v := range list {
		if s, ok := v.(string); ok && s == want {
			return true
		}
	}
	return false
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func render(doc map[string]any) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return out, nil
}
