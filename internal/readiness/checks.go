package readiness

import "strings"

// entryPointMarker is the pyproject table header that declares console
// entry points.
const entryPointMarker = "[project.scripts]"

type check struct {
	name string
	eval func(Snapshot) bool
}

type category struct {
	name   string
	checks []check
}

// battery is the fixed set of scored checks. Check names must be unique
// across all categories; Evaluate flattens them into one mapping.
var battery = []category{
	{name: "structure", checks: []check{
		{"has_readme", func(s Snapshot) bool { return s.HasReadme }},
		{"has_manifest", func(s Snapshot) bool { return s.HasManifest }},
		{"has_license", func(s Snapshot) bool { return s.HasLicense }},
		{"has_src", func(s Snapshot) bool { return s.HasSrcDir }},
		{"has_tests", func(s Snapshot) bool { return s.HasTestsDir }},
	}},
	{name: "documentation", checks: []check{
		{"has_installation", func(s Snapshot) bool { return readmeHasAny(s, "installation", "install") }},
		{"has_usage", func(s Snapshot) bool { return readmeHasAny(s, "usage", "example") }},
		{"has_examples", func(s Snapshot) bool { return readmeHasAny(s, "```", "example") }},
		{"has_features", func(s Snapshot) bool { return readmeHasAny(s, "feature") }},
		{"readme_complete", func(s Snapshot) bool {
			return readmeHasAny(s, "installation", "install") &&
				readmeHasAny(s, "usage", "example") &&
				readmeHasAny(s, "feature")
		}},
	}},
	{name: "testing", checks: []check{
		{"has_test_files", func(s Snapshot) bool { return s.TestFileCount > 0 }},
	}},
	{name: "license", checks: []check{
		{"license_permissive", func(s Snapshot) bool { return permissive[detectLicense(s)] }},
	}},
	{name: "packaging", checks: []check{
		{"entry_point_defined", func(s Snapshot) bool { return strings.Contains(s.Manifest, entryPointMarker) }},
	}},
	{name: "version_control", checks: []check{
		{"has_ignore_file", func(s Snapshot) bool { return s.HasIgnoreFile }},
		{"ignores_build_artifacts", func(s Snapshot) bool {
			return strings.Contains(s.IgnoreFile, "__pycache__") &&
				(strings.Contains(s.IgnoreFile, "build/") || strings.Contains(s.IgnoreFile, "dist/"))
		}},
	}},
}

// CategoryNames returns the battery's category names in declaration order.
// Report.Categories is a map, so renderers that want stable output use this
// ordering instead.
func CategoryNames() []string {
	names := make([]string, len(battery))
	for i, cat := range battery {
		names[i] = cat.name
	}
	return names
}

// criticalSet lists the checks that keep the tier at blocked while false.
// Declaration order drives Report.UnmetCritical.
var criticalSet = []string{
	"has_readme",
	"has_manifest",
	"has_license",
	"has_ignore_file",
}

// recommendedSet lists the checks that cap the tier at ready while false.
// Declaration order drives Report.UnmetRecommended.
var recommendedSet = []string{
	"entry_point_defined",
	"has_installation",
	"has_usage",
	"has_examples",
	"has_test_files",
}

type valueCheck struct {
	category string
	name     string
	eval     func(Snapshot) string
}

// valueChecks carry informational string results. They appear in the
// report next to the booleans of their category but never count toward
// the score.
var valueChecks = []valueCheck{
	{category: "license", name: "license_type", eval: detectLicense},
}

// licensePriority orders keyword detection. The first match wins, so text
// mentioning both MIT and Apache resolves to MIT. Matching is
// case-sensitive on the canonical spelling.
var licensePriority = []string{"MIT", "Apache", "GPL", "BSD"}

var permissive = map[string]bool{"MIT": true, "Apache": true, "BSD": true}

// detectLicense classifies the LICENSE text. An absent license file maps
// to "none"; a present file with no known keyword maps to "Other".
func detectLicense(s Snapshot) string {
	if !s.HasLicense {
		return "none"
	}
	for _, keyword := range licensePriority {
		if strings.Contains(s.License, keyword) {
			return keyword
		}
	}
	return "Other"
}

// readmeHasAny reports whether the lowercased README text contains any of
// the given substrings.
func readmeHasAny(s Snapshot, subs ...string) bool {
	lower := strings.ToLower(s.Readme)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
