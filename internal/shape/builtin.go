package shape

import (
	"github.com/ShayCichocki/concord/internal/vocab"
	"github.com/ShayCichocki/concord/pkg/policy"
)

// Default builds the built-in ODRL rule set, parameterized with the operand
// registry so the allowed-value lists track whatever operand table is
// loaded.
func Default(reg *vocab.Registry) *RuleSet {
	uid := Property(policy.PropUID, 1, 1,
		"Policy must have exactly one uid with IRI value")
	uid.NodeKind = NodeIRI

	leftOperand := Property(policy.PropLeftOperand, 1, 1,
		"Invalid or missing left operand")
	leftOperand.In = reg.IRIs()

	operator := Property(policy.PropOperator, 1, 1,
		"Invalid or missing operator")
	operator.In = vocab.OperatorIRIs()

	return NewRuleSet(
		Rule{
			ID:      "policy-structure",
			Targets: []string{policy.ClassPolicy},
			Constraint: And(
				uid,
				Or("Policy must contain at least one rule (permission, prohibition, or obligation)",
					Property(policy.PropPermission, 1, -1, ""),
					Property(policy.PropProhibition, 1, -1, ""),
					Property(policy.PropObligation, 1, -1, ""),
				),
			),
		},
		Rule{
			ID: "rule-structure",
			Targets: []string{
				policy.ClassPermission,
				policy.ClassProhibition,
				policy.ClassDuty,
			},
			Constraint: Property(policy.PropAction, 1, -1,
				"Rule must reference at least one action"),
		},
		Rule{
			ID:      "constraint-structure",
			Targets: []string{policy.ClassConstraint},
			Constraint: And(
				leftOperand,
				operator,
				Xor("Constraint must have either rightOperand or rightOperandReference",
					Property(policy.PropRightOperand, 1, -1, ""),
					Property(policy.PropRightOperandReference, 1, -1, ""),
				),
			),
		},
		Rule{
			ID:         "operand-operator-compatibility",
			Targets:    []string{policy.ClassConstraint},
			Constraint: Constraint{Kind: KindCompatibility},
		},
	)
}
