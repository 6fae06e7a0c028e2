package policy

import (
	"testing"
)

func TestDocumentOrdering(t *testing.T) {
	doc := NewDocument()
	doc.Ensure("http://example.com/c")
	doc.Ensure("http://example.com/a")
	doc.Ensure("http://example.com/b")
	doc.Ensure("http://example.com/a") // repeat must not reorder

	entities := doc.Entities()
	if len(entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(entities))
	}

	want := []string{"http://example.com/c", "http://example.com/a", "http://example.com/b"}
	for i, e := range entities {
		if e.ID != want[i] {
			t.Errorf("entity %d: expected %s, got %s", i, want[i], e.ID)
		}
	}
}

func TestEntityTypesDeduplicated(t *testing.T) {
	doc := NewDocument()
	e := doc.Ensure("http://example.com/p")
	e.AddType(ClassPolicy)
	e.AddType(ClassSet)
	e.AddType(ClassPolicy)

	if got := len(e.Types()); got != 2 {
		t.Fatalf("expected 2 types, got %d", got)
	}
	if !e.HasType(ClassPolicy) || !e.HasType(ClassSet) {
		t.Error("expected both Policy and Set types")
	}
	if e.HasType(ClassOffer) {
		t.Error("did not expect Offer type")
	}
}

func TestEntitiesOfType(t *testing.T) {
	doc := NewDocument()
	doc.Ensure("http://example.com/p1").AddType(ClassPolicy)
	doc.Ensure("http://example.com/x")
	doc.Ensure("http://example.com/p2").AddType(ClassPolicy)

	policies := doc.EntitiesOfType(ClassPolicy)
	if len(policies) != 2 {
		t.Fatalf("expected 2 policies, got %d", len(policies))
	}
	if policies[0].ID != "http://example.com/p1" || policies[1].ID != "http://example.com/p2" {
		t.Errorf("unexpected order: %s, %s", policies[0].ID, policies[1].ID)
	}
}

func TestValuesKeepDocumentOrder(t *testing.T) {
	doc := NewDocument()
	e := doc.Ensure("http://example.com/rule")
	e.AddProperty(PropAction, IRIValue(ODRL+"read"))
	e.AddProperty(PropTarget, IRIValue("http://example.com/data"))
	e.AddProperty(PropAction, IRIValue(ODRL+"use"))

	actions := e.Values(PropAction)
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[0].Raw != ODRL+"read" || actions[1].Raw != ODRL+"use" {
		t.Errorf("unexpected action order: %v", actions)
	}
}

func TestResolve(t *testing.T) {
	doc := NewDocument()
	doc.Ensure("http://example.com/target").AddType(ClassConstraint)

	if _, ok := doc.Resolve(IRIValue("http://example.com/target")); !ok {
		t.Error("expected IRI value to resolve")
	}
	if _, ok := doc.Resolve(IRIValue("http://example.com/missing")); ok {
		t.Error("expected unknown IRI to not resolve")
	}
	if _, ok := doc.Resolve(LiteralValue("target", "")); ok {
		t.Error("expected literal to never resolve")
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{ODRL + "permission", "odrl:permission"},
		{DCT + "title", "dct:title"},
		{RDFType, "rdf:type"},
		{XSD + "date", "xsd:date"},
		{"http://example.com/policy_1", "policy_1"},
		{"http://example.com/ns#frag", "frag"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := Compact(tt.iri); got != tt.want {
			t.Errorf("Compact(%q) = %q, want %q", tt.iri, got, tt.want)
		}
	}
}
