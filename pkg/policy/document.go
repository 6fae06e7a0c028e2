// Package policy provides the rights-expression document model used by the
// conformance engine. A document is a graph of typed entities with ordered
// properties, decoded from ODRL Turtle text.
package policy

// TermKind identifies the kind of RDF term a value holds.
type TermKind string

const (
	// TermIRI is a value naming a resource by IRI.
	TermIRI TermKind = "iri"
	// TermLiteral is a typed or plain literal value.
	TermLiteral TermKind = "literal"
	// TermBlank is an anonymous node reference.
	TermBlank TermKind = "blank"
)

// Value is a single property value on an entity.
type Value struct {
	// Kind is the term kind of this value.
	Kind TermKind
	// Raw is the IRI, literal text, or blank-node label.
	Raw string
	// Datatype is the literal datatype IRI, if any.
	Datatype string
}

// IsIRI returns true if the value names a resource.
func (v Value) IsIRI() bool { return v.Kind == TermIRI }

// String returns the raw value text.
func (v Value) String() string { return v.Raw }

// IRIValue builds an IRI value.
func IRIValue(iri string) Value { return Value{Kind: TermIRI, Raw: iri} }

// LiteralValue builds a literal value with an optional datatype IRI.
func LiteralValue(text, datatype string) Value {
	return Value{Kind: TermLiteral, Raw: text, Datatype: datatype}
}

// BlankValue builds a blank-node reference.
func BlankValue(label string) Value { return Value{Kind: TermBlank, Raw: label} }

// property is one predicate/value pair. Values for the same predicate keep
// their document order so evaluation stays deterministic.
type property struct {
	predicate string
	value     Value
}

// Entity is one node in the document graph: an IRI-named or blank node with
// its rdf:type assertions and properties in document order.
type Entity struct {
	// ID is the entity's IRI or blank-node label.
	ID string

	types      []string
	properties []property
}

// AddType records an rdf:type assertion. Duplicate types are ignored.
func (e *Entity) AddType(t string) {
	for _, existing := range e.types {
		if existing == t {
			return
		}
	}
	e.types = append(e.types, t)
}

// AddProperty appends a predicate/value pair in document order.
func (e *Entity) AddProperty(predicate string, v Value) {
	e.properties = append(e.properties, property{predicate: predicate, value: v})
}

// HasType returns true if the entity carries the given rdf:type.
func (e *Entity) HasType(t string) bool {
	for _, existing := range e.types {
		if existing == t {
			return true
		}
	}
	return false
}

// Types returns the entity's rdf:type assertions in document order.
func (e *Entity) Types() []string {
	out := make([]string, len(e.types))
	copy(out, e.types)
	return out
}

// Values returns all values of the given predicate in document order.
func (e *Entity) Values(predicate string) []Value {
	var out []Value
	for _, p := range e.properties {
		if p.predicate == predicate {
			out = append(out, p.value)
		}
	}
	return out
}

// Document is an ordered entity graph. Entities keep their first-appearance
// order so repeated evaluations of the same document visit nodes identically.
type Document struct {
	order []string
	byID  map[string]*Entity
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{byID: make(map[string]*Entity)}
}

// Ensure returns the entity with the given ID, creating it on first use.
func (d *Document) Ensure(id string) *Entity {
	if e, ok := d.byID[id]; ok {
		return e
	}
	e := &Entity{ID: id}
	d.byID[id] = e
	d.order = append(d.order, id)
	return e
}

// Entity returns the entity with the given ID, if present.
func (d *Document) Entity(id string) (*Entity, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// Entities returns all entities in first-appearance order.
func (d *Document) Entities() []*Entity {
	out := make([]*Entity, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out
}

// EntitiesOfType returns entities carrying the given rdf:type,
// in first-appearance order.
func (d *Document) EntitiesOfType(t string) []*Entity {
	var out []*Entity
	for _, id := range d.order {
		if e := d.byID[id]; e.HasType(t) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entities in the document.
func (d *Document) Len() int { return len(d.order) }

// Resolve follows a value to its entity when the value is an IRI or blank
// node present in the document.
func (d *Document) Resolve(v Value) (*Entity, bool) {
	if v.Kind == TermLiteral {
		return nil, false
	}
	return d.Entity(v.Raw)
}
