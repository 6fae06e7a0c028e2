package vocab

import (
	"testing"

	"github.com/ShayCichocki/concord/pkg/policy"
)

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name     string
		operands []Operand
		wantErr  bool
	}{
		{
			name: "valid single operand",
			operands: []Operand{
				{Name: "dateTime", Operators: []Operator{OpEq}},
			},
		},
		{
			name: "empty name",
			operands: []Operand{
				{Name: "", Operators: []Operator{OpEq}},
			},
			wantErr: true,
		},
		{
			name: "duplicate name",
			operands: []Operand{
				{Name: "count", Operators: []Operator{OpEq}},
				{Name: "count", Operators: []Operator{OpLt}},
			},
			wantErr: true,
		},
		{
			name: "no operators",
			operands: []Operand{
				{Name: "count", Operators: nil},
			},
			wantErr: true,
		},
		{
			name: "unknown operator",
			operands: []Operand{
				{Name: "count", Operators: []Operator{"approximately"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.operands)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryDerivesIRI(t *testing.T) {
	reg, err := NewRegistry([]Operand{
		{Name: "dateTime", Operators: []Operator{OpEq}},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	op, ok := reg.LookupIRI(policy.ODRL + "dateTime")
	if !ok {
		t.Fatal("expected derived IRI lookup to succeed")
	}
	if op.Name != "dateTime" {
		t.Errorf("expected dateTime, got %s", op.Name)
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	wantNames := []string{
		"dateTime", "count", "elapsedTime", "payAmount",
		"percentage", "spatial", "purpose", "recipient",
	}
	names := reg.Names()
	if len(names) != len(wantNames) {
		t.Fatalf("expected %d operands, got %d", len(wantNames), len(names))
	}
	for i, want := range wantNames {
		if names[i] != want {
			t.Errorf("operand %d: expected %s, got %s", i, want, names[i])
		}
	}
}

func TestOperandCompatibility(t *testing.T) {
	reg := Default()

	tests := []struct {
		operand  string
		operator Operator
		want     bool
	}{
		{"count", OpLteq, true},
		{"count", OpIsAnyOf, false},
		{"dateTime", OpGteq, true},
		{"dateTime", OpIsA, false},
		{"purpose", OpEq, true},
		{"purpose", OpLt, false},
		{"spatial", OpIsNoneOf, true},
		{"elapsedTime", OpGt, false},
	}

	for _, tt := range tests {
		op, ok := reg.Lookup(tt.operand)
		if !ok {
			t.Fatalf("operand %s not found", tt.operand)
		}
		if got := op.Compatible(tt.operator); got != tt.want {
			t.Errorf("%s compatible with %s = %v, want %v", tt.operand, tt.operator, got, tt.want)
		}
	}
}

func TestOperatorValidity(t *testing.T) {
	for _, op := range Operators() {
		if !op.Valid() {
			t.Errorf("declared operator %q reported invalid", op)
		}
	}
	if Operator("almost").Valid() {
		t.Error("unknown operator reported valid")
	}
}

func TestOperatorIRIRoundTrip(t *testing.T) {
	for _, op := range Operators() {
		got, ok := OperatorFromIRI(op.IRI())
		if !ok || got != op {
			t.Errorf("OperatorFromIRI(%s) = %v, %v", op.IRI(), got, ok)
		}
	}
	if _, ok := OperatorFromIRI(policy.ODRL + "unknown"); ok {
		t.Error("expected unknown IRI to not resolve")
	}
}
