package readiness

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// completeSnapshot describes a project that passes every check.
func completeSnapshot() Snapshot {
	return Snapshot{
		Root:          "/work/.forge/demo/project",
		HasReadme:     true,
		HasManifest:   true,
		HasLicense:    true,
		HasSrcDir:     true,
		HasTestsDir:   true,
		HasIgnoreFile: true,
		TestFileCount: 2,
		Readme: "# Demo\n\n## Installation\n\npip install demo\n\n## Usage\n\n" +
			"## Features\n\n```python\nprint(\"hi\")\n```\n",
		License:    "MIT License\n\nCopyright (c) 2025\n",
		Manifest:   "[project]\nname = \"demo\"\n\n[project.scripts]\ndemo = \"demo.main:main\"\n",
		IgnoreFile: "__pycache__/\nbuild/\ndist/\n",
	}
}

func TestEvaluateCompleteProject(t *testing.T) {
	report, err := Evaluate(completeSnapshot())
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	if report.Score != 100.0 {
		t.Errorf("Score = %v, want 100.0", report.Score)
	}
	if !report.CriticalSatisfied {
		t.Error("CriticalSatisfied = false, want true")
	}
	if !report.FullyReady {
		t.Error("FullyReady = false, want true")
	}
	if report.Tier != TierFullyReady {
		t.Errorf("Tier = %q, want %q", report.Tier, TierFullyReady)
	}
	if len(report.UnmetCritical) != 0 {
		t.Errorf("UnmetCritical = %v, want empty", report.UnmetCritical)
	}
	if len(report.UnmetRecommended) != 0 {
		t.Errorf("UnmetRecommended = %v, want empty", report.UnmetRecommended)
	}
	if got := report.Categories["license"]["license_type"]; got != "MIT" {
		t.Errorf("license_type = %v, want MIT", got)
	}
}

func TestEvaluateEmptyProject(t *testing.T) {
	report, err := Evaluate(Snapshot{Root: "/work/.forge/empty/project"})
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	if report.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", report.Score)
	}
	if report.Tier != TierBlocked {
		t.Errorf("Tier = %q, want %q", report.Tier, TierBlocked)
	}
	wantCritical := []string{"has_readme", "has_manifest", "has_license", "has_ignore_file"}
	if !reflect.DeepEqual(report.UnmetCritical, wantCritical) {
		t.Errorf("UnmetCritical = %v, want %v", report.UnmetCritical, wantCritical)
	}
	if got := report.Categories["license"]["license_type"]; got != "none" {
		t.Errorf("license_type = %v, want none", got)
	}
	// Every boolean in every category must be false.
	for cat, results := range report.Categories {
		for name, v := range results {
			if b, ok := v.(bool); ok && b {
				t.Errorf("%s/%s = true, want false for empty project", cat, name)
			}
		}
	}
}

func TestEvaluateCriticalOnlyProject(t *testing.T) {
	snap := Snapshot{
		Root:          "/work/.forge/partial/project",
		HasReadme:     true,
		HasManifest:   true,
		HasLicense:    true,
		HasIgnoreFile: true,
		Readme:        "# partial\n",
		License:       "MIT License\n",
		Manifest:      "[project]\nname = \"partial\"\n",
		IgnoreFile:    "*.log\n",
	}

	report, err := Evaluate(snap)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	if report.Tier != TierReady {
		t.Errorf("Tier = %q, want %q", report.Tier, TierReady)
	}
	if len(report.UnmetCritical) != 0 {
		t.Errorf("UnmetCritical = %v, want empty", report.UnmetCritical)
	}
	wantRecommended := []string{"entry_point_defined", "has_installation", "has_usage", "has_examples", "has_test_files"}
	if !reflect.DeepEqual(report.UnmetRecommended, wantRecommended) {
		t.Errorf("UnmetRecommended = %v, want %v", report.UnmetRecommended, wantRecommended)
	}
	// 5 of 15 booleans true: the four critical checks plus license_permissive.
	if report.Score != 33.3 {
		t.Errorf("Score = %v, want 33.3", report.Score)
	}
}

func TestCriticalSatisfiedTruthTable(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		snap := Snapshot{
			Root:          "/work/.forge/tt/project",
			HasReadme:     mask&1 != 0,
			HasManifest:   mask&2 != 0,
			HasLicense:    mask&4 != 0,
			HasIgnoreFile: mask&8 != 0,
		}

		report, err := Evaluate(snap)
		if err != nil {
			t.Fatalf("mask %04b: Evaluate() error: %v", mask, err)
		}

		want := mask == 15
		if report.CriticalSatisfied != want {
			t.Errorf("mask %04b: CriticalSatisfied = %v, want %v", mask, report.CriticalSatisfied, want)
		}
		if !report.CriticalSatisfied && report.Tier != TierBlocked {
			t.Errorf("mask %04b: Tier = %q, want %q", mask, report.Tier, TierBlocked)
		}
		if report.FullyReady && !report.CriticalSatisfied {
			t.Errorf("mask %04b: FullyReady without CriticalSatisfied", mask)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	snaps := []Snapshot{
		{Root: "/p"},
		completeSnapshot(),
		{Root: "/p", HasReadme: true, Readme: "## Installation and Usage examples, features"},
		{Root: "/p", HasLicense: true, License: "GPL"},
		{Root: "/p", HasIgnoreFile: true, IgnoreFile: "__pycache__/\ndist/"},
	}

	for i, snap := range snaps {
		report, err := Evaluate(snap)
		if err != nil {
			t.Fatalf("snapshot %d: Evaluate() error: %v", i, err)
		}
		if report.Score < 0 || report.Score > 100 {
			t.Errorf("snapshot %d: Score = %v, want within [0,100]", i, report.Score)
		}
		if report.FullyReady && !report.CriticalSatisfied {
			t.Errorf("snapshot %d: FullyReady without CriticalSatisfied", i)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	for _, snap := range []Snapshot{completeSnapshot(), {Root: "/p", HasReadme: true}} {
		first, err := Evaluate(snap)
		if err != nil {
			t.Fatalf("Evaluate() error: %v", err)
		}
		second, err := Evaluate(snap)
		if err != nil {
			t.Fatalf("Evaluate() error: %v", err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated evaluation differs:\nfirst:  %+v\nsecond: %+v", first, second)
		}

		// The marshaled form must match byte for byte as well.
		a, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		b, err := json.Marshal(second)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(a) != string(b) {
			t.Errorf("marshaled reports differ:\n%s\n%s", a, b)
		}
	}
}

func TestEvaluateEmptyRoot(t *testing.T) {
	_, err := Evaluate(Snapshot{})
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Evaluate() error = %v, want InputError", err)
	}
}

func TestEvaluateEmptyBattery(t *testing.T) {
	// A battery with no boolean checks is a misconfiguration, not a
	// degenerate 0-of-0 score.
	_, err := evaluate(Snapshot{Root: "/p"}, nil)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("evaluate() error = %v, want InputError", err)
	}
}

func TestBatteryIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range battery {
		for _, c := range cat.checks {
			if seen[c.name] {
				t.Errorf("duplicate check name %q", c.name)
			}
			seen[c.name] = true
		}
	}
	for _, vc := range valueChecks {
		if seen[vc.name] {
			t.Errorf("value check %q collides with a boolean check", vc.name)
		}
	}
	for _, name := range criticalSet {
		if !seen[name] {
			t.Errorf("critical check %q is not in the battery", name)
		}
	}
	for _, name := range recommendedSet {
		if !seen[name] {
			t.Errorf("recommended check %q is not in the battery", name)
		}
	}
}
