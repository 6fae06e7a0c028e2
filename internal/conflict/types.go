// Package conflict holds the closed taxonomy of policy conflict categories
// and the priority-ordered classification over externally supplied conflict
// signals. The taxonomy is immutable configuration, validated fail-fast at
// construction; classification itself never touches free text.
package conflict

// Family is one of the six top-level conflict groupings.
type Family string

const (
	// FamilyVagueness covers unmeasurable or overly broad policies.
	FamilyVagueness Family = "vagueness"
	// FamilyTemporal covers expired, overlapping, or impossible time windows.
	FamilyTemporal Family = "temporal"
	// FamilySpatial covers geographic hierarchy and overlap contradictions.
	FamilySpatial Family = "spatial"
	// FamilyAction covers action-hierarchy and subsumption contradictions.
	FamilyAction Family = "action"
	// FamilyDependency covers circular approval and workflow cycles.
	FamilyDependency Family = "dependency"
	// FamilyRole covers role-hierarchy and party contradictions.
	FamilyRole Family = "role"
)

// Type is one of the fourteen leaf conflict categories.
type Type string

const (
	// TypeUnmeasurable flags subjective terms with no objective criterion.
	TypeUnmeasurable Type = "unmeasurable_terms"
	// TypeVagueBroad flags universally quantified, unimplementable policies.
	TypeVagueBroad Type = "vague_and_overly_broad"

	// TypeTemporalExpired flags policies whose window already ended.
	TypeTemporalExpired Type = "temporal_expired_policy"
	// TypeTemporalOverlap flags contradictory rules over overlapping windows.
	TypeTemporalOverlap Type = "temporal_overlap_conflict"
	// TypeTemporalImpossible flags sequences that cannot be satisfied.
	TypeTemporalImpossible Type = "temporal_impossible_sequence"

	// TypeSpatialHierarchy flags permission/prohibition contradictions
	// across contained regions.
	TypeSpatialHierarchy Type = "spatial_hierarchy_conflict"
	// TypeSpatialOverlap flags contradictory rules over overlapping regions.
	TypeSpatialOverlap Type = "spatial_overlap_conflict"

	// TypeActionHierarchy flags contradictions across the action hierarchy.
	TypeActionHierarchy Type = "action_hierarchy_conflict"
	// TypeActionSubsumption flags rules contradicted by action subsumption.
	TypeActionSubsumption Type = "action_subsumption_conflict"
	// TypeActionConflict flags the same action both permitted and prohibited.
	TypeActionConflict Type = "action_conflict"

	// TypeCircularDependency flags approval chains that form a cycle.
	TypeCircularDependency Type = "circular_approval_dependency"
	// TypeWorkflowCycle flags workflow graphs containing a cycle.
	TypeWorkflowCycle Type = "workflow_cycle_conflict"

	// TypeRoleHierarchy flags requirement/prohibition contradictions across
	// contained roles.
	TypeRoleHierarchy Type = "role_hierarchy_conflict"
	// TypePartyInconsistency flags inconsistent party specifications.
	TypePartyInconsistency Type = "party_specification_inconsistency"
)

// types lists every conflict type in family order.
var types = []Type{
	TypeUnmeasurable, TypeVagueBroad,
	TypeTemporalExpired, TypeTemporalOverlap, TypeTemporalImpossible,
	TypeSpatialHierarchy, TypeSpatialOverlap,
	TypeActionHierarchy, TypeActionSubsumption, TypeActionConflict,
	TypeCircularDependency, TypeWorkflowCycle,
	TypeRoleHierarchy, TypePartyInconsistency,
}

// families maps each type to its family.
var families = map[Type]Family{
	TypeUnmeasurable:       FamilyVagueness,
	TypeVagueBroad:         FamilyVagueness,
	TypeTemporalExpired:    FamilyTemporal,
	TypeTemporalOverlap:    FamilyTemporal,
	TypeTemporalImpossible: FamilyTemporal,
	TypeSpatialHierarchy:   FamilySpatial,
	TypeSpatialOverlap:     FamilySpatial,
	TypeActionHierarchy:    FamilyAction,
	TypeActionSubsumption:  FamilyAction,
	TypeActionConflict:     FamilyAction,
	TypeCircularDependency: FamilyDependency,
	TypeWorkflowCycle:      FamilyDependency,
	TypeRoleHierarchy:      FamilyRole,
	TypePartyInconsistency: FamilyRole,
}

// Types returns every conflict type in family order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Valid returns true if the type is a known conflict category.
func (t Type) Valid() bool {
	_, ok := families[t]
	return ok
}

// Family returns the type's top-level grouping.
func (t Type) Family() Family {
	return families[t]
}

// Action is the default remediation for a detected conflict.
type Action string

const (
	// ActionReject refuses the policy outright.
	ActionReject Action = "reject"
	// ActionClarify asks the author to disambiguate.
	ActionClarify Action = "clarify"
	// ActionWarn accepts the policy but surfaces the finding.
	ActionWarn Action = "warn"
)

// Valid returns true if the action is a known value.
func (a Action) Valid() bool {
	switch a {
	case ActionReject, ActionClarify, ActionWarn:
		return true
	default:
		return false
	}
}
