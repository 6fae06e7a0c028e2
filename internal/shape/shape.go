// Package shape defines the declarative structural rules a rights-expression
// document must satisfy. Rules are static configuration: built once,
// read-only during evaluation. The conformance engine interprets them; this
// package holds only the rule data and the built-in ODRL rule set.
package shape

// Kind identifies what a constraint checks.
type Kind string

const (
	// KindProperty checks cardinality, allowed values, and node kind of a
	// single property path.
	KindProperty Kind = "property"
	// KindAnd requires every sub-constraint to hold; all failures are
	// reported.
	KindAnd Kind = "and"
	// KindOr requires at least one sub-constraint to hold; only the
	// OR-level message is reported when every branch fails.
	KindOr Kind = "or"
	// KindXor requires exactly one sub-constraint to hold.
	KindXor Kind = "xor"
	// KindNot requires the sub-constraint to fail.
	KindNot Kind = "not"
	// KindCompatibility checks operand/operator compatibility against the
	// operand registry. Failures are warnings, not hard violations.
	KindCompatibility Kind = "compatibility"
)

// NodeKind restricts the term kind a property value may have.
type NodeKind string

const (
	// NodeAny places no restriction on the value's term kind.
	NodeAny NodeKind = ""
	// NodeIRI requires the value to be an IRI.
	NodeIRI NodeKind = "iri"
	// NodeLiteral requires the value to be a literal.
	NodeLiteral NodeKind = "literal"
)

// Constraint is one node of a rule's constraint tree.
type Constraint struct {
	// Kind selects what this constraint checks.
	Kind Kind
	// Path is the property IRI checked by a property constraint.
	Path string
	// MinCount is the minimum number of values required.
	MinCount int
	// MaxCount is the maximum number of values allowed; -1 means unbounded.
	MaxCount int
	// In restricts values to this IRI set when non-empty.
	In []string
	// NodeKind restricts the term kind of values when set.
	NodeKind NodeKind
	// Message is the human-readable explanation reported on failure.
	Message string
	// Sub holds the operands of a combinator constraint.
	Sub []Constraint
}

// Property builds a property constraint. maxCount of -1 means unbounded.
func Property(path string, minCount, maxCount int, message string) Constraint {
	return Constraint{
		Kind:     KindProperty,
		Path:     path,
		MinCount: minCount,
		MaxCount: maxCount,
		Message:  message,
	}
}

// And combines sub-constraints; all must hold.
func And(sub ...Constraint) Constraint {
	return Constraint{Kind: KindAnd, Sub: sub}
}

// Or combines sub-constraints; at least one must hold.
func Or(message string, sub ...Constraint) Constraint {
	return Constraint{Kind: KindOr, Message: message, Sub: sub}
}

// Xor combines sub-constraints; exactly one must hold.
func Xor(message string, sub ...Constraint) Constraint {
	return Constraint{Kind: KindXor, Message: message, Sub: sub}
}

// Not inverts a sub-constraint.
func Not(message string, sub Constraint) Constraint {
	return Constraint{Kind: KindNot, Message: message, Sub: []Constraint{sub}}
}

// Rule applies a constraint tree to every entity of the target types.
type Rule struct {
	// ID is the stable rule identifier.
	ID string
	// Targets lists the entity type IRIs this rule applies to.
	Targets []string
	// Constraint is the root of the rule's constraint tree.
	Constraint Constraint
}

// RuleSet is an ordered, read-only collection of rules.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds a rule set preserving rule order.
func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Rules returns the rules in declaration order.
func (s *RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int { return len(s.rules) }
