package conflict

// Principle is a symbolic key into the resolution-principle explanation
// table. Principles produce explanatory text only; they are not executed by
// this engine.
type Principle string

const (
	// PrincipleSpecificOverGeneral prefers the narrower policy on conflict.
	PrincipleSpecificOverGeneral Principle = "specific_over_general"
	// PrincipleProhibitOnAmbiguity defaults to prohibition when constraints
	// create ambiguity.
	PrincipleProhibitOnAmbiguity Principle = "prohibit_on_ambiguity"
	// PrincipleRejectWithMeasurableAlternative demands objective criteria
	// in place of unmeasurable terms.
	PrincipleRejectWithMeasurableAlternative Principle = "reject_with_measurable_alternative"
	// PrincipleRequireSpecification demands concrete actors, assets, and
	// actions in place of universal quantifiers.
	PrincipleRequireSpecification Principle = "require_specification"
	// PrincipleApplyRoleHierarchy resolves role conflicts through the
	// organizational hierarchy.
	PrincipleApplyRoleHierarchy Principle = "apply_role_hierarchy"
	// PrincipleBreakCycleAtWeakestLink breaks dependency cycles at the
	// least critical approval.
	PrincipleBreakCycleAtWeakestLink Principle = "break_cycle_at_weakest_link"
	// PrincipleFlagAsInactive marks expired policies inactive.
	PrincipleFlagAsInactive Principle = "flag_as_inactive"
	// PrincipleProhibitOnConflict prohibits an action caught between
	// contradictory rules.
	PrincipleProhibitOnConflict Principle = "prohibit_on_conflict"
)

// explanations is the fixed explanation table keyed by principle.
var explanations = map[Principle]string{
	PrincipleSpecificOverGeneral: `When two policies conflict, the more specific policy takes precedence:
- Narrower geographic scope > Broader scope
- Shorter time window > Longer window
- Specific actors > General groups
Example: "Germany only" overrides "All EU countries"`,

	PrincipleProhibitOnAmbiguity: `When temporal or spatial constraints create ambiguity, default to prohibition:
- Overlapping time windows with contradictory rules: prohibit during the overlap
- Conflicting geographic scopes: prohibit in the contested region
Safety principle: better to block than allow incorrectly`,

	PrincipleRejectWithMeasurableAlternative: `Unmeasurable terms must be replaced with objective criteria:
- "urgent" becomes "priority level >= 5" or "within 48 hours of deadline"
- "responsibly" becomes "with proper attribution" or "for non-commercial purposes"
- "when necessary" becomes "when storage exceeds 80% capacity"`,

	PrincipleRequireSpecification: `Overly broad policies must specify:
- Actors: replace "everyone" with "registered researchers"
- Assets: replace "everything" with specific dataset identifiers
- Actions: replace "anything" with an enumerated action list`,

	PrincipleApplyRoleHierarchy: `Role conflicts resolved via organizational hierarchy:
1. Map role containment (managers are contained in administrators)
2. Apply prohibition to all contained roles
3. Flag inconsistent specifications`,

	PrincipleBreakCycleAtWeakestLink: `Circular dependencies broken by:
1. Detecting the cycle via graph traversal
2. Identifying the weakest dependency (least critical approval)
3. Suggesting an alternative approval path`,

	PrincipleFlagAsInactive: `Policies whose validity window has already ended are flagged inactive:
the policy is not evaluated against current requests and its author is
notified to renew or retire it.`,

	PrincipleProhibitOnConflict: `When the same action is simultaneously permitted and prohibited,
directly or through the action hierarchy, the prohibition wins:
exercising the action is blocked until the policy author resolves the
contradiction.`,
}

// Valid returns true if the principle has an explanation entry.
func (p Principle) Valid() bool {
	_, ok := explanations[p]
	return ok
}

// Explanation returns the fixed explanatory text for the principle.
func (p Principle) Explanation() string {
	return explanations[p]
}
