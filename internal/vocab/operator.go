// Package vocab holds the closed ODRL operator enumeration and the operand
// registry the shape rules are parameterized with. Both are read-only after
// construction and safe for unsynchronized concurrent reads.
package vocab

import "github.com/ShayCichocki/concord/pkg/policy"

// Operator is one of the ODRL core constraint operators.
type Operator string

const (
	// OpEq tests equality.
	OpEq Operator = "eq"
	// OpNeq tests inequality.
	OpNeq Operator = "neq"
	// OpLt tests strict less-than ordering.
	OpLt Operator = "lt"
	// OpLteq tests less-than-or-equal ordering.
	OpLteq Operator = "lteq"
	// OpGt tests strict greater-than ordering.
	OpGt Operator = "gt"
	// OpGteq tests greater-than-or-equal ordering.
	OpGteq Operator = "gteq"
	// OpIsA tests class membership.
	OpIsA Operator = "isA"
	// OpHasPart tests that the left operand contains the right operand.
	OpHasPart Operator = "hasPart"
	// OpIsPartOf tests that the left operand is contained in the right operand.
	OpIsPartOf Operator = "isPartOf"
	// OpIsAllOf tests that the left operand equals the whole right-operand set.
	OpIsAllOf Operator = "isAllOf"
	// OpIsAnyOf tests membership in the right-operand set.
	OpIsAnyOf Operator = "isAnyOf"
	// OpIsNoneOf tests absence from the right-operand set.
	OpIsNoneOf Operator = "isNoneOf"
)

// operators lists every operator in declaration order.
var operators = []Operator{
	OpEq, OpNeq, OpLt, OpLteq, OpGt, OpGteq,
	OpIsA, OpHasPart, OpIsPartOf, OpIsAllOf, OpIsAnyOf, OpIsNoneOf,
}

// Operators returns all operators in declaration order.
func Operators() []Operator {
	out := make([]Operator, len(operators))
	copy(out, operators)
	return out
}

// OperatorIRIs returns the full IRIs of all operators in declaration order.
func OperatorIRIs() []string {
	out := make([]string, len(operators))
	for i, op := range operators {
		out[i] = op.IRI()
	}
	return out
}

// Valid returns true if the operator is a known ODRL core operator.
func (o Operator) Valid() bool {
	for _, op := range operators {
		if o == op {
			return true
		}
	}
	return false
}

// IRI returns the operator's full ODRL IRI.
func (o Operator) IRI() string {
	return policy.ODRL + string(o)
}

// OperatorFromIRI resolves a full IRI back to an operator.
func OperatorFromIRI(iri string) (Operator, bool) {
	for _, op := range operators {
		if op.IRI() == iri {
			return op, true
		}
	}
	return "", false
}
