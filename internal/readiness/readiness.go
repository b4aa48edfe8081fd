package readiness

import "math"

// Tier classifies how close a tool project is to publication.
type Tier string

const (
	// TierBlocked means at least one critical check failed.
	TierBlocked Tier = "blocked"
	// TierReady means every critical check passed but recommended work remains.
	TierReady Tier = "ready"
	// TierFullyReady means every critical and recommended check passed.
	TierFullyReady Tier = "fully_ready"
)

// InputError reports an unusable evaluation input: an empty project root,
// or a battery that produced no boolean checks to score. Absent project
// files are never an InputError; they surface as failed checks.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "readiness: " + e.Reason
}

// Results maps check names to their outcome within one category. Values
// are bool for scored checks and string for informational checks such as
// license_type.
type Results map[string]any

// Report is the outcome of one evaluation. It is complete when Evaluate
// returns and is never mutated afterward.
type Report struct {
	Root              string             `json:"root"`
	Score             float64            `json:"score"`
	CriticalSatisfied bool               `json:"critical_satisfied"`
	FullyReady        bool               `json:"fully_ready"`
	Tier              Tier               `json:"tier"`
	UnmetCritical     []string           `json:"unmet_critical"`
	UnmetRecommended  []string           `json:"unmet_recommended"`
	Categories        map[string]Results `json:"categories"`
}

// Flat merges every category's results into one map keyed by check name.
// Check names are unique across categories, so merging loses nothing.
func (r *Report) Flat() Results {
	out := make(Results)
	for _, results := range r.Categories {
		for name, v := range results {
			out[name] = v
		}
	}
	return out
}

// Evaluate runs the fixed check battery against snap. It performs no I/O:
// every fact it needs is already on the snapshot. Missing files were
// recorded by Collect as negative facts and score as failed checks here.
func Evaluate(snap Snapshot) (*Report, error) {
	return evaluate(snap, battery)
}

func evaluate(snap Snapshot, cats []category) (*Report, error) {
	if snap.Root == "" {
		return nil, &InputError{Reason: "project root is empty"}
	}

	flat := make(map[string]bool)
	categories := make(map[string]Results, len(cats))
	for _, cat := range cats {
		results := make(Results, len(cat.checks))
		for _, c := range cat.checks {
			v := c.eval(snap)
			results[c.name] = v
			flat[c.name] = v
		}
		categories[cat.name] = results
	}
	if len(flat) == 0 {
		return nil, &InputError{Reason: "check battery produced no boolean checks"}
	}

	for _, vc := range valueChecks {
		results, ok := categories[vc.category]
		if !ok {
			results = make(Results, 1)
			categories[vc.category] = results
		}
		results[vc.name] = vc.eval(snap)
	}

	trueCount := 0
	for _, v := range flat {
		if v {
			trueCount++
		}
	}
	score := math.Round(float64(trueCount)/float64(len(flat))*1000) / 10

	unmetCritical := unmet(flat, criticalSet)
	unmetRecommended := unmet(flat, recommendedSet)
	criticalOK := len(unmetCritical) == 0
	fully := criticalOK && len(unmetRecommended) == 0

	return &Report{
		Root:              snap.Root,
		Score:             score,
		CriticalSatisfied: criticalOK,
		FullyReady:        fully,
		Tier:              classify(criticalOK, fully),
		UnmetCritical:     unmetCritical,
		UnmetRecommended:  unmetRecommended,
		Categories:        categories,
	}, nil
}

func classify(criticalOK, fully bool) Tier {
	switch {
	case !criticalOK:
		return TierBlocked
	case fully:
		return TierFullyReady
	default:
		return TierReady
	}
}

// unmet returns the names from the set that are false in flat, preserving
// the set's declaration order. The result is non-nil so callers can
// marshal it as an empty JSON array rather than null.
func unmet(flat map[string]bool, set []string) []string {
	out := make([]string, 0, len(set))
	for _, name := range set {
		if !flat[name] {
			out = append(out, name)
		}
	}
	return out
}
