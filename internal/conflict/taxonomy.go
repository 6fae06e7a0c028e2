package conflict

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoMatchingStrategy is returned when a signal satisfies no strategy's
// triggers. Callers report this as an unclassified conflict; it is never
// silently mapped to a default category.
var ErrNoMatchingStrategy = errors.New("conflict: no matching detection strategy")

// Taxonomy is the closed, priority-ordered set of detection strategies. It
// is immutable after construction and safe for concurrent reads.
type Taxonomy struct {
	ordered []Strategy
	byType  map[Type]Strategy
}

// NewTaxonomy validates and builds a taxonomy. The strategy set must cover
// every conflict type exactly once with pairwise distinct priorities;
// violations fail here, at process initialization.
func NewTaxonomy(strategies []Strategy) (*Taxonomy, error) {
	byType := make(map[Type]Strategy, len(strategies))
	byPriority := make(map[int]Type, len(strategies))

	for _, s := range strategies {
		if !s.Conflict.Valid() {
			return nil, fmt.Errorf("strategy references unknown conflict type %q", s.Conflict)
		}
		if _, dup := byType[s.Conflict]; dup {
			return nil, fmt.Errorf("duplicate strategy for conflict type %q", s.Conflict)
		}
		if other, dup := byPriority[s.Priority]; dup {
			return nil, fmt.Errorf("strategies %q and %q share priority %d", other, s.Conflict, s.Priority)
		}
		if !s.Principle.Valid() {
			return nil, fmt.Errorf("strategy %q references unknown principle %q", s.Conflict, s.Principle)
		}
		if !s.Default.Valid() {
			return nil, fmt.Errorf("strategy %q has unknown default action %q", s.Conflict, s.Default)
		}
		byType[s.Conflict] = s
		byPriority[s.Priority] = s.Conflict
	}

	for _, t := range Types() {
		if _, ok := byType[t]; !ok {
			return nil, fmt.Errorf("no strategy for conflict type %q", t)
		}
	}

	ordered := make([]Strategy, len(strategies))
	copy(ordered, strategies)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	return &Taxonomy{ordered: ordered, byType: byType}, nil
}

// Classify scans strategies in ascending priority order and returns the
// first whose triggers the signal satisfies. First-match-wins is deliberate:
// an ambiguous conflict resolves toward the higher-priority, more
// conservative category.
func (t *Taxonomy) Classify(sig Signal) (Type, error) {
	for _, s := range t.ordered {
		if s.Matches(sig) {
			return s.Conflict, nil
		}
	}
	return "", ErrNoMatchingStrategy
}

// StrategyFor returns the strategy detecting the given conflict type.
func (t *Taxonomy) StrategyFor(conflictType Type) (Strategy, bool) {
	s, ok := t.byType[conflictType]
	return s, ok
}

// Strategies returns all strategies in ascending priority order.
func (t *Taxonomy) Strategies() []Strategy {
	out := make([]Strategy, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// defaultStrategies is the built-in detection table. Priorities are policy
// choices tuned on production data-space observations; only their relative
// order is meaningful.
var defaultStrategies = []Strategy{
	{
		Conflict: TypeUnmeasurable,
		Priority: 1,
		Keywords: []string{
			"urgent", "soon", "later", "promptly", "quickly",
			"responsibly", "appropriately", "properly",
			"when necessary", "if important", "as needed",
			"everyone", "anyone", "nobody",
		},
		Principle: PrincipleRejectWithMeasurableAlternative,
		Default:   ActionReject,
	},
	{
		Conflict: TypeVagueBroad,
		Priority: 2,
		Keywords: []string{
			"everything", "anything", "all data", "any purpose",
			"everyone can access everything",
			"nobody can do anything",
		},
		Patterns: []Pattern{
			{"actors": "universal_quantifier", "assets": "universal_quantifier"},
			{"actors": "unspecified", "actions": "unspecified"},
		},
		Principle: PrincipleRequireSpecification,
		Default:   ActionReject,
	},
	{
		Conflict: TypeTemporalExpired,
		Priority: 3,
		Patterns: []Pattern{
			{"constraint_type": "temporal", "end_date": "before_current_date"},
		},
		Principle: PrincipleFlagAsInactive,
		Default:   ActionReject,
	},
	{
		Conflict: TypeTemporalOverlap,
		Priority: 4,
		Patterns: []Pattern{
			{"overlapping_intervals": "true", "contradictory_actions": "true"},
		},
		Principle: PrincipleSpecificOverGeneral,
		Default:   ActionReject,
	},
	{
		Conflict: TypeTemporalImpossible,
		Priority: 5,
		Patterns: []Pattern{
			{"start_after_end": "true"},
			{"sequence": "impossible"},
		},
		Principle: PrincipleProhibitOnAmbiguity,
		Default:   ActionReject,
	},
	{
		Conflict:         TypeSpatialHierarchy,
		Priority:         6,
		RequiresOntology: true,
		Patterns: []Pattern{
			{"narrow_scope": "permitted", "broad_scope": "prohibited", "containment": "true"},
		},
		Principle: PrincipleSpecificOverGeneral,
		Default:   ActionReject,
	},
	{
		Conflict:         TypeSpatialOverlap,
		Priority:         7,
		RequiresOntology: true,
		Patterns: []Pattern{
			{"overlapping_regions": "true", "contradictory_actions": "true"},
		},
		Principle: PrincipleProhibitOnAmbiguity,
		Default:   ActionReject,
	},
	{
		Conflict:         TypeActionHierarchy,
		Priority:         8,
		RequiresOntology: true,
		Patterns: []Pattern{
			{"parent_action": "permitted", "child_action": "prohibited"},
		},
		Principle: PrincipleProhibitOnConflict,
		Default:   ActionReject,
	},
	{
		Conflict:         TypeActionSubsumption,
		Priority:         9,
		RequiresOntology: true,
		Patterns: []Pattern{
			{"action_subsumption": "true"},
		},
		Principle: PrincipleProhibitOnConflict,
		Default:   ActionReject,
	},
	{
		Conflict: TypeActionConflict,
		Priority: 10,
		Patterns: []Pattern{
			{"same_action": "true", "permitted": "true", "prohibited": "true"},
		},
		Principle: PrincipleProhibitOnConflict,
		Default:   ActionReject,
	},
	{
		Conflict:         TypeRoleHierarchy,
		Priority:         11,
		RequiresOntology: true,
		Patterns: []Pattern{
			{"broader_role": "required", "narrower_role": "prohibited", "role_containment": "true"},
		},
		Principle: PrincipleApplyRoleHierarchy,
		Default:   ActionReject,
	},
	{
		Conflict: TypePartyInconsistency,
		Priority: 12,
		Patterns: []Pattern{
			{"party_reference": "inconsistent"},
			{"assignee_missing": "true"},
		},
		Principle: PrincipleRequireSpecification,
		Default:   ActionClarify,
	},
	{
		Conflict:              TypeCircularDependency,
		Priority:              13,
		RequiresGraphAnalysis: true,
		Patterns: []Pattern{
			{"dependency_chain": "contains_cycle"},
		},
		Principle: PrincipleBreakCycleAtWeakestLink,
		Default:   ActionReject,
	},
	{
		Conflict:              TypeWorkflowCycle,
		Priority:              14,
		RequiresGraphAnalysis: true,
		Patterns: []Pattern{
			{"workflow_graph": "contains_cycle"},
		},
		Principle: PrincipleBreakCycleAtWeakestLink,
		Default:   ActionWarn,
	},
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := NewTaxonomy(defaultStrategies)
	if err != nil {
		// The built-in table is covered by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("conflict: invalid built-in strategy table: %v", err))
	}
	return t
}
