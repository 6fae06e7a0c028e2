package vocab

import (
	"fmt"

	"github.com/ShayCichocki/concord/pkg/policy"
)

// Operand describes one ODRL left operand: its identity, the operators it
// may legally be combined with, and its expected datatype if any.
type Operand struct {
	// Name is the unique short name (e.g. "dateTime").
	Name string
	// IRI is the canonical operand IRI. Derived from Name when empty.
	IRI string
	// Label is the human-readable label.
	Label string
	// Definition describes the operand's meaning.
	Definition string
	// Operators lists the compatible operators. Must be non-empty.
	Operators []Operator
	// Datatype is the expected right-operand datatype IRI, if any.
	Datatype string
}

// Compatible returns true if the operand may be combined with the operator.
func (o Operand) Compatible(op Operator) bool {
	for _, c := range o.Operators {
		if c == op {
			return true
		}
	}
	return false
}

// Registry is the static table of recognized constraint operands. It is
// built once at startup, validated fail-fast, and never mutated afterwards.
type Registry struct {
	names  []string
	byName map[string]Operand
	byIRI  map[string]Operand
}

// NewRegistry builds a registry from the given operands, preserving
// declaration order. Configuration errors (duplicate names, empty or
// unknown operator sets) fail here, before any document is evaluated.
func NewRegistry(operands []Operand) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Operand, len(operands)),
		byIRI:  make(map[string]Operand, len(operands)),
	}
	for _, op := range operands {
		if op.Name == "" {
			return nil, fmt.Errorf("operand with empty name")
		}
		if _, exists := r.byName[op.Name]; exists {
			return nil, fmt.Errorf("duplicate operand %q", op.Name)
		}
		if len(op.Operators) == 0 {
			return nil, fmt.Errorf("operand %q has no compatible operators", op.Name)
		}
		for _, o := range op.Operators {
			if !o.Valid() {
				return nil, fmt.Errorf("operand %q references unknown operator %q", op.Name, o)
			}
		}
		if op.IRI == "" {
			op.IRI = policy.ODRL + op.Name
		}
		r.names = append(r.names, op.Name)
		r.byName[op.Name] = op
		r.byIRI[op.IRI] = op
	}
	return r, nil
}

// Lookup returns the operand with the given short name.
func (r *Registry) Lookup(name string) (Operand, bool) {
	op, ok := r.byName[name]
	return op, ok
}

// LookupIRI returns the operand with the given canonical IRI.
func (r *Registry) LookupIRI(iri string) (Operand, bool) {
	op, ok := r.byIRI[iri]
	return op, ok
}

// Names returns all operand names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Operands returns all operands in declaration order.
func (r *Registry) Operands() []Operand {
	out := make([]Operand, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}

// IRIs returns all operand IRIs in declaration order.
func (r *Registry) IRIs() []string {
	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name].IRI)
	}
	return out
}

// defaultOperands is the ODRL core left-operand table.
var defaultOperands = []Operand{
	{
		Name:       "dateTime",
		Label:      "Datetime",
		Definition: "The date (and optional time) of exercising the action",
		Operators:  []Operator{OpLt, OpLteq, OpGt, OpGteq, OpEq},
		Datatype:   policy.XSD + "date",
	},
	{
		Name:       "count",
		Label:      "Count",
		Definition: "Numeric count of executions",
		Operators:  []Operator{OpLt, OpLteq, OpGt, OpGteq, OpEq},
		Datatype:   policy.XSD + "integer",
	},
	{
		Name:       "elapsedTime",
		Label:      "Elapsed Time",
		Definition: "A continuous elapsed time period",
		Operators:  []Operator{OpEq, OpLt, OpLteq},
		Datatype:   policy.XSD + "duration",
	},
	{
		Name:       "payAmount",
		Label:      "Payment Amount",
		Definition: "The amount of a financial payment",
		Operators:  []Operator{OpEq, OpLt, OpLteq, OpGt, OpGteq},
		Datatype:   policy.XSD + "decimal",
	},
	{
		Name:       "percentage",
		Label:      "Asset Percentage",
		Definition: "A percentage amount of the target Asset",
		Operators:  []Operator{OpEq, OpLt, OpLteq, OpGt, OpGteq},
		Datatype:   policy.XSD + "decimal",
	},
	{
		Name:       "spatial",
		Label:      "Geospatial Named Area",
		Definition: "A named geospatial area",
		Operators:  []Operator{OpEq, OpIsA, OpIsAnyOf, OpIsNoneOf},
	},
	{
		Name:       "purpose",
		Label:      "Purpose",
		Definition: "A defined purpose for exercising the action",
		Operators:  []Operator{OpEq, OpIsA, OpIsAnyOf, OpIsNoneOf},
	},
	{
		Name:       "recipient",
		Label:      "Recipient",
		Definition: "The party receiving the result",
		Operators:  []Operator{OpEq, OpIsA, OpIsAnyOf, OpIsNoneOf},
	},
}

// Default returns the built-in ODRL core operand registry.
func Default() *Registry {
	r, err := NewRegistry(defaultOperands)
	if err != nil {
		// The built-in table is covered by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("vocab: invalid built-in operand table: %v", err))
	}
	return r
}
