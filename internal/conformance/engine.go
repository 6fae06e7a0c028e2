package conformance

import (
	"fmt"
	"strings"

	"github.com/ShayCichocki/concord/internal/shape"
	"github.com/ShayCichocki/concord/internal/vocab"
	"github.com/ShayCichocki/concord/pkg/policy"
)

// Engine interprets a shape rule set over a document. It holds only
// read-only configuration and is safe for concurrent use.
type Engine struct {
	rules    *shape.RuleSet
	registry *vocab.Registry
}

// NewEngine creates an engine over the given rule set and operand registry.
func NewEngine(rules *shape.RuleSet, registry *vocab.Registry) *Engine {
	return &Engine{rules: rules, registry: registry}
}

// Evaluate checks the document against every rule and returns all
// violations in rule, target, entity order.
func (e *Engine) Evaluate(doc *policy.Document) []Violation {
	var out []Violation
	for _, rule := range e.rules.Rules() {
		for _, target := range rule.Targets {
			for _, entity := range doc.EntitiesOfType(target) {
				_, violations := e.eval(rule.Constraint, entity)
				out = append(out, violations...)
			}
		}
	}
	return out
}

// eval interprets one constraint node against an entity. It returns whether
// the constraint holds along with the violations to report; combinators use
// the conformance flag of their branches, not the branch violations.
func (e *Engine) eval(c shape.Constraint, entity *policy.Entity) (bool, []Violation) {
	switch c.Kind {
	case shape.KindProperty:
		return e.evalProperty(c, entity)

	case shape.KindAnd:
		conforms := true
		var out []Violation
		for _, sub := range c.Sub {
			ok, violations := e.eval(sub, entity)
			if !ok {
				conforms = false
			}
			out = append(out, violations...)
		}
		return conforms, out

	case shape.KindOr:
		for _, sub := range c.Sub {
			if ok, _ := e.eval(sub, entity); ok {
				return true, nil
			}
		}
		return false, []Violation{{
			Category:   IssueStructuralError,
			FocusNode:  entity.ID,
			Path:       orPaths(c),
			Observed:   ObservedNotSpecified,
			Constraint: c.Message,
			Severity:   SeverityViolation,
		}}

	case shape.KindXor:
		holding := 0
		for _, sub := range c.Sub {
			if ok, _ := e.eval(sub, entity); ok {
				holding++
			}
		}
		switch {
		case holding == 1:
			return true, nil
		case holding == 0:
			return false, []Violation{{
				Category:   IssueMissingRequiredField,
				FocusNode:  entity.ID,
				Path:       orPaths(c),
				Observed:   ObservedNotSpecified,
				Constraint: c.Message,
				Severity:   SeverityViolation,
			}}
		default:
			return false, []Violation{{
				Category:   IssueStructuralError,
				FocusNode:  entity.ID,
				Path:       orPaths(c),
				Observed:   fmt.Sprintf("%d alternatives present", holding),
				Constraint: c.Message,
				Severity:   SeverityViolation,
			}}
		}

	case shape.KindNot:
		if len(c.Sub) != 1 {
			return true, nil
		}
		if ok, _ := e.eval(c.Sub[0], entity); ok {
			return false, []Violation{{
				Category:   IssueStructuralError,
				FocusNode:  entity.ID,
				Path:       orPaths(c),
				Observed:   ObservedNotSpecified,
				Constraint: c.Message,
				Severity:   SeverityViolation,
			}}
		}
		return true, nil

	case shape.KindCompatibility:
		violations := e.checkCompatibility(entity)
		return len(violations) == 0, violations

	default:
		return true, nil
	}
}

// evalProperty checks cardinality, allowed values, and node kind of one
// property path.
func (e *Engine) evalProperty(c shape.Constraint, entity *policy.Entity) (bool, []Violation) {
	values := entity.Values(c.Path)
	path := policy.Compact(c.Path)
	var out []Violation

	if len(values) < c.MinCount {
		if len(values) == 0 {
			out = append(out, Violation{
				Category:   IssueMissingRequiredField,
				FocusNode:  entity.ID,
				Path:       path,
				Observed:   ObservedNotSpecified,
				Constraint: messageOr(c, fmt.Sprintf("%s requires at least %d value(s)", path, c.MinCount)),
				Severity:   SeverityViolation,
			})
		} else {
			out = append(out, Violation{
				Category:   IssueCardinalityViolation,
				FocusNode:  entity.ID,
				Path:       path,
				Observed:   fmt.Sprintf("%d value(s)", len(values)),
				Constraint: messageOr(c, fmt.Sprintf("%s requires at least %d value(s)", path, c.MinCount)),
				Severity:   SeverityViolation,
			})
		}
	}
	if c.MaxCount >= 0 && len(values) > c.MaxCount {
		out = append(out, Violation{
			Category:   IssueCardinalityViolation,
			FocusNode:  entity.ID,
			Path:       path,
			Observed:   fmt.Sprintf("%d value(s)", len(values)),
			Constraint: messageOr(c, fmt.Sprintf("%s allows at most %d value(s)", path, c.MaxCount)),
			Severity:   SeverityViolation,
		})
	}

	if len(c.In) > 0 {
		allowed := make(map[string]bool, len(c.In))
		var names []string
		for _, iri := range c.In {
			allowed[iri] = true
			names = append(names, policy.Compact(iri))
		}
		for _, v := range values {
			if !allowed[v.Raw] {
				out = append(out, Violation{
					Category:  IssueInvalidEnumeratedValue,
					FocusNode: entity.ID,
					Path:      path,
					Observed:  policy.Compact(v.Raw),
					Constraint: fmt.Sprintf("'%s' is not a recognized value for %s. Valid: %s",
						policy.Compact(v.Raw), path, strings.Join(names, ", ")),
					Severity: SeverityViolation,
				})
			}
		}
	}

	if c.NodeKind == shape.NodeIRI {
		for _, v := range values {
			if !v.IsIRI() {
				out = append(out, Violation{
					Category:   IssueStructuralError,
					FocusNode:  entity.ID,
					Path:       path,
					Observed:   v.Raw,
					Constraint: messageOr(c, fmt.Sprintf("%s value must be an IRI", path)),
					Severity:   SeverityViolation,
				})
			}
		}
	}
	if c.NodeKind == shape.NodeLiteral {
		for _, v := range values {
			if v.Kind != policy.TermLiteral {
				out = append(out, Violation{
					Category:   IssueStructuralError,
					FocusNode:  entity.ID,
					Path:       path,
					Observed:   v.Raw,
					Constraint: messageOr(c, fmt.Sprintf("%s value must be a literal", path)),
					Severity:   SeverityViolation,
				})
			}
		}
	}

	return len(out) == 0, out
}

// checkCompatibility reports operand/operator pairings outside the
// operand's compatible set. Unknown operands and operators are left to the
// structural rules; pairings the registry does cover but forbids come back
// as warnings, a deliberate precision/recall tradeoff since operand
// metadata may be incomplete.
func (e *Engine) checkCompatibility(entity *policy.Entity) []Violation {
	var out []Violation
	for _, left := range entity.Values(policy.PropLeftOperand) {
		operand, known := e.registry.LookupIRI(left.Raw)
		if !known {
			continue
		}
		for _, opValue := range entity.Values(policy.PropOperator) {
			op, known := vocab.OperatorFromIRI(opValue.Raw)
			if !known {
				continue
			}
			if operand.Compatible(op) {
				continue
			}
			valid := make([]string, 0, len(operand.Operators))
			for _, c := range operand.Operators {
				valid = append(valid, string(c))
			}
			out = append(out, Violation{
				Category:  IssueIncompatibleOperandOperator,
				FocusNode: entity.ID,
				Path:      policy.Compact(policy.PropOperator),
				Observed:  string(op),
				Constraint: fmt.Sprintf("Operator '%s' is not compatible with left operand '%s'. Valid: %s",
					op, operand.Name, strings.Join(valid, ", ")),
				Severity: SeverityWarning,
			})
		}
	}
	return out
}

// messageOr returns the constraint's message, or the fallback when unset.
func messageOr(c shape.Constraint, fallback string) string {
	if c.Message != "" {
		return c.Message
	}
	return fallback
}

// orPaths renders a combinator's member paths for the violation's path
// field, e.g. "odrl:permission|odrl:prohibition|odrl:obligation".
func orPaths(c shape.Constraint) string {
	var parts []string
	for _, sub := range c.Sub {
		if sub.Path != "" {
			parts = append(parts, policy.Compact(sub.Path))
		}
	}
	return strings.Join(parts, "|")
}
