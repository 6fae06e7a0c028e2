package policy

import (
	"strings"
	"testing"
)

const sampleTurtle = `@prefix odrl: <http://www.w3.org/ns/odrl/2/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <http://example.com/> .

ex:policy_1 a odrl:Policy, odrl:Set ;
    odrl:uid ex:policy_1 ;
    odrl:permission ex:perm_1 .

ex:perm_1 a odrl:Permission ;
    odrl:action odrl:read ;
    odrl:target ex:dataset ;
    odrl:constraint ex:c_1 .

ex:c_1 a odrl:Constraint ;
    odrl:leftOperand odrl:count ;
    odrl:operator odrl:lteq ;
    odrl:rightOperand "30"^^xsd:integer .
`

func TestDecodeTurtle(t *testing.T) {
	doc, err := DecodeTurtle(sampleTurtle)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if doc.Len() != 3 {
		t.Fatalf("expected 3 entities, got %d", doc.Len())
	}

	pol, ok := doc.Entity("http://example.com/policy_1")
	if !ok {
		t.Fatal("policy entity not found")
	}
	if !pol.HasType(ClassPolicy) || !pol.HasType(ClassSet) {
		t.Errorf("policy types incomplete: %v", pol.Types())
	}

	uids := pol.Values(PropUID)
	if len(uids) != 1 || uids[0].Raw != "http://example.com/policy_1" {
		t.Errorf("unexpected uid values: %v", uids)
	}
	if !uids[0].IsIRI() {
		t.Error("uid value should be an IRI")
	}

	c, ok := doc.Entity("http://example.com/c_1")
	if !ok {
		t.Fatal("constraint entity not found")
	}
	rights := c.Values(PropRightOperand)
	if len(rights) != 1 {
		t.Fatalf("expected 1 rightOperand, got %d", len(rights))
	}
	if rights[0].Kind != TermLiteral || rights[0].Raw != "30" {
		t.Errorf("unexpected rightOperand: %+v", rights[0])
	}
	if !strings.HasSuffix(rights[0].Datatype, "integer") {
		t.Errorf("expected integer datatype, got %q", rights[0].Datatype)
	}
}

func TestDecodeTurtleBlankNodes(t *testing.T) {
	src := `@prefix odrl: <http://www.w3.org/ns/odrl/2/> .
@prefix ex: <http://example.com/> .

ex:policy_2 a odrl:Policy ;
    odrl:uid ex:policy_2 ;
    odrl:permission [
        a odrl:Permission ;
        odrl:action odrl:read ;
    ] .
`
	doc, err := DecodeTurtle(src)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	perms := doc.EntitiesOfType(ClassPermission)
	if len(perms) != 1 {
		t.Fatalf("expected 1 permission entity, got %d", len(perms))
	}

	pol, _ := doc.Entity("http://example.com/policy_2")
	permValues := pol.Values(PropPermission)
	if len(permValues) != 1 {
		t.Fatalf("expected 1 permission value, got %d", len(permValues))
	}
	resolved, ok := doc.Resolve(permValues[0])
	if !ok {
		t.Fatal("permission blank node did not resolve")
	}
	if !resolved.HasType(ClassPermission) {
		t.Error("resolved node is not a Permission")
	}
}

func TestDecodeTurtleDeterministic(t *testing.T) {
	first, err := DecodeTurtle(sampleTurtle)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	second, err := DecodeTurtle(sampleTurtle)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	a, b := first.Entities(), second.Entities()
	if len(a) != len(b) {
		t.Fatalf("entity counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("entity %d order differs: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestDecodeTurtleInvalid(t *testing.T) {
	if _, err := DecodeTurtle("this is not turtle {{{"); err == nil {
		t.Error("expected parse error for invalid input")
	}
}
