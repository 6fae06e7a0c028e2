package policy

import (
	"fmt"
	"strings"

	"github.com/knakk/rdf"
)

// TurtleDecoder decodes Turtle text into a Document. It satisfies the repair
// orchestrator's Decoder collaborator; serialization back to Turtle is the
// text transducer's job, not ours.
type TurtleDecoder struct{}

// Decode parses Turtle text into an entity graph. Entities appear in
// first-subject order; properties keep triple order.
func (TurtleDecoder) Decode(text string) (*Document, error) {
	return DecodeTurtle(text)
}

// DecodeTurtle parses Turtle text into a Document.
func DecodeTurtle(text string) (*Document, error) {
	dec := rdf.NewTripleDecoder(strings.NewReader(text), rdf.Turtle)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("parse turtle: %w", err)
	}

	doc := NewDocument()
	for _, t := range triples {
		subj := termID(t.Subj)
		entity := doc.Ensure(subj)

		pred := t.Pred.String()
		if pred == RDFType {
			entity.AddType(termID(t.Obj))
			continue
		}
		entity.AddProperty(pred, termValue(t.Obj))
	}
	return doc, nil
}

// termID returns the IRI or blank-node label of a subject or object term.
func termID(term rdf.Term) string {
	return term.String()
}

// termValue converts an RDF object term into a document Value.
func termValue(term rdf.Term) Value {
	switch term.Type() {
	case rdf.TermIRI:
		return IRIValue(term.String())
	case rdf.TermBlank:
		return BlankValue(term.String())
	case rdf.TermLiteral:
		lit, ok := term.(rdf.Literal)
		if !ok {
			return LiteralValue(term.String(), "")
		}
		return LiteralValue(lit.String(), lit.DataType.String())
	default:
		return LiteralValue(term.String(), "")
	}
}
