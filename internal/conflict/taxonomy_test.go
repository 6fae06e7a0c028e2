package conflict

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultTaxonomyCoversAllTypes(t *testing.T) {
	taxonomy := Default()

	for _, conflictType := range Types() {
		if _, ok := taxonomy.StrategyFor(conflictType); !ok {
			t.Errorf("no strategy for %s", conflictType)
		}
	}

	strategies := taxonomy.Strategies()
	if len(strategies) != len(Types()) {
		t.Fatalf("expected %d strategies, got %d", len(Types()), len(strategies))
	}
	for i := 1; i < len(strategies); i++ {
		if strategies[i-1].Priority >= strategies[i].Priority {
			t.Errorf("strategies not in ascending priority order at %d", i)
		}
	}
}

func TestNewTaxonomyValidation(t *testing.T) {
	base := func() []Strategy {
		out := make([]Strategy, len(defaultStrategies))
		copy(out, defaultStrategies)
		return out
	}

	tests := []struct {
		name   string
		mutate func([]Strategy) []Strategy
	}{
		{
			name: "unknown conflict type",
			mutate: func(s []Strategy) []Strategy {
				s[0].Conflict = Type("made_up")
				return s
			},
		},
		{
			name: "duplicate strategy",
			mutate: func(s []Strategy) []Strategy {
				dup := s[0]
				dup.Priority = 99
				return append(s, dup)
			},
		},
		{
			name: "shared priority",
			mutate: func(s []Strategy) []Strategy {
				s[1].Priority = s[0].Priority
				return s
			},
		},
		{
			name: "unknown principle",
			mutate: func(s []Strategy) []Strategy {
				s[0].Principle = Principle("wing_it")
				return s
			},
		},
		{
			name: "unknown action",
			mutate: func(s []Strategy) []Strategy {
				s[0].Default = Action("shrug")
				return s
			},
		},
		{
			name: "missing coverage",
			mutate: func(s []Strategy) []Strategy {
				return s[:len(s)-1]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTaxonomy(tt.mutate(base())); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestClassify(t *testing.T) {
	taxonomy := Default()

	tests := []struct {
		name string
		sig  Signal
		want Type
	}{
		{
			name: "unmeasurable keyword",
			sig:  Signal{Keywords: []string{"urgent"}},
			want: TypeUnmeasurable,
		},
		{
			name: "keyword matching is case-insensitive",
			sig:  Signal{Keywords: []string{"  Urgent "}},
			want: TypeUnmeasurable,
		},
		{
			name: "expired policy pattern",
			sig: Signal{Predicates: map[string]string{
				"constraint_type": "temporal",
				"end_date":        "before_current_date",
			}},
			want: TypeTemporalExpired,
		},
		{
			name: "same action permitted and prohibited",
			sig: Signal{Predicates: map[string]string{
				"same_action": "true",
				"permitted":   "true",
				"prohibited":  "true",
			}},
			want: TypeActionConflict,
		},
		{
			name: "missing assignee clarifies",
			sig: Signal{Predicates: map[string]string{
				"assignee_missing": "true",
			}},
			want: TypePartyInconsistency,
		},
		{
			name: "workflow cycle",
			sig: Signal{Predicates: map[string]string{
				"workflow_graph": "contains_cycle",
			}},
			want: TypeWorkflowCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := taxonomy.Classify(tt.sig)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	taxonomy := Default()

	// A signal carrying both an unmeasurable keyword and a lower-priority
	// structural pattern resolves to the higher-priority type.
	sig := Signal{
		Keywords: []string{"urgent"},
		Predicates: map[string]string{
			"workflow_graph": "contains_cycle",
		},
	}
	got, err := taxonomy.Classify(sig)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != TypeUnmeasurable {
		t.Errorf("expected higher-priority %s, got %s", TypeUnmeasurable, got)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	taxonomy := Default()

	tests := []Signal{
		{},
		{Keywords: []string{"perfectly precise wording"}},
		{Predicates: map[string]string{"constraint_type": "temporal"}}, // partial pattern
	}

	for _, sig := range tests {
		if _, err := taxonomy.Classify(sig); !errors.Is(err, ErrNoMatchingStrategy) {
			t.Errorf("Classify(%+v) error = %v, want ErrNoMatchingStrategy", sig, err)
		}
	}
}

func TestStrategyActionsExercised(t *testing.T) {
	taxonomy := Default()

	seen := map[Action]bool{}
	for _, s := range taxonomy.Strategies() {
		seen[s.Default] = true
	}
	for _, a := range []Action{ActionReject, ActionClarify, ActionWarn} {
		if !seen[a] {
			t.Errorf("default table never uses action %s", a)
		}
	}
}

func TestFamilies(t *testing.T) {
	tests := []struct {
		conflictType Type
		family       Family
	}{
		{TypeUnmeasurable, FamilyVagueness},
		{TypeTemporalOverlap, FamilyTemporal},
		{TypeSpatialHierarchy, FamilySpatial},
		{TypeActionSubsumption, FamilyAction},
		{TypeCircularDependency, FamilyDependency},
		{TypeRoleHierarchy, FamilyRole},
	}

	for _, tt := range tests {
		if got := tt.conflictType.Family(); got != tt.family {
			t.Errorf("%s family = %s, want %s", tt.conflictType, got, tt.family)
		}
	}
}

func TestDetectionPrompt(t *testing.T) {
	taxonomy := Default()

	out, err := taxonomy.DetectionPrompt(TypeUnmeasurable)
	if err != nil {
		t.Fatalf("DetectionPrompt failed: %v", err)
	}
	if !strings.Contains(out, "## Unmeasurable Terms") {
		t.Errorf("missing title in %q", out)
	}
	if !strings.Contains(out, "Priority: CRITICAL") {
		t.Errorf("missing priority band in %q", out)
	}
	if !strings.Contains(out, "urgent") {
		t.Errorf("missing keywords in %q", out)
	}
	if !strings.Contains(out, "**Resolution Principle:**") {
		t.Errorf("missing principle in %q", out)
	}

	if _, err := taxonomy.DetectionPrompt(Type("nope")); err == nil {
		t.Error("expected error for unknown type")
	}
}
