package conflict

import "strings"

// Pattern is one structural trigger: a conjunction of predicate/value pairs
// that must all be present in a signal for the pattern to hold.
type Pattern map[string]string

// Signal is an externally supplied, already-structured conflict
// description: keyword hits and structural predicate matches extracted by
// upstream collaborators. Classification never extracts these from free
// text itself.
type Signal struct {
	// Keywords are the keyword hits found in the policy text.
	Keywords []string
	// Predicates are the structural facts asserted about the policy.
	Predicates map[string]string
}

// Strategy defines how one conflict type is detected and resolved.
// Strategies are immutable configuration; the taxonomy owns exactly one per
// conflict type.
type Strategy struct {
	// Conflict is the type this strategy detects.
	Conflict Type
	// Priority orders detection; lower is evaluated first and priorities
	// are pairwise distinct across the taxonomy.
	Priority int
	// RequiresOntology marks strategies whose structural signals come from
	// an external containment-judgment collaborator.
	RequiresOntology bool
	// RequiresGraphAnalysis marks strategies whose signals come from
	// graph-cycle analysis.
	RequiresGraphAnalysis bool
	// Keywords trigger the strategy when any of them appears in the signal.
	Keywords []string
	// Patterns trigger the strategy when any one pattern is fully
	// satisfied by the signal's predicates.
	Patterns []Pattern
	// Principle names the resolution principle used for explanatory text.
	Principle Principle
	// Default is the default remediation action.
	Default Action
}

// Matches returns true if the signal satisfies any of the strategy's
// trigger signals.
func (s Strategy) Matches(sig Signal) bool {
	for _, hit := range sig.Keywords {
		normalized := strings.ToLower(strings.TrimSpace(hit))
		for _, kw := range s.Keywords {
			if normalized == strings.ToLower(kw) {
				return true
			}
		}
	}
	for _, pattern := range s.Patterns {
		if pattern.satisfiedBy(sig.Predicates) {
			return true
		}
	}
	return false
}

// satisfiedBy returns true if every predicate/value pair of the pattern is
// present in the signal.
func (p Pattern) satisfiedBy(predicates map[string]string) bool {
	if len(p) == 0 {
		return false
	}
	for key, want := range p {
		if got, ok := predicates[key]; !ok || got != want {
			return false
		}
	}
	return true
}
