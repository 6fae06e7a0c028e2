package policy

import "strings"

// Namespace IRIs used by rights-expression documents.
const (
	// ODRL is the W3C ODRL 2.2 vocabulary namespace.
	ODRL = "http://www.w3.org/ns/odrl/2/"
	// RDF is the RDF syntax namespace.
	RDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// XSD is the XML Schema datatype namespace.
	XSD = "http://www.w3.org/2001/XMLSchema#"
	// DCT is the Dublin Core terms namespace.
	DCT = "http://purl.org/dc/terms/"
)

// RDFType is the rdf:type predicate.
const RDFType = RDF + "type"

// ODRL entity classes.
const (
	ClassPolicy      = ODRL + "Policy"
	ClassSet         = ODRL + "Set"
	ClassOffer       = ODRL + "Offer"
	ClassAgreement   = ODRL + "Agreement"
	ClassPermission  = ODRL + "Permission"
	ClassProhibition = ODRL + "Prohibition"
	ClassDuty        = ODRL + "Duty"
	ClassConstraint  = ODRL + "Constraint"
)

// ODRL properties.
const (
	PropUID                   = ODRL + "uid"
	PropPermission            = ODRL + "permission"
	PropProhibition           = ODRL + "prohibition"
	PropObligation            = ODRL + "obligation"
	PropAction                = ODRL + "action"
	PropTarget                = ODRL + "target"
	PropAssignee              = ODRL + "assignee"
	PropAssigner              = ODRL + "assigner"
	PropConstraint            = ODRL + "constraint"
	PropLeftOperand           = ODRL + "leftOperand"
	PropOperator              = ODRL + "operator"
	PropRightOperand          = ODRL + "rightOperand"
	PropRightOperandReference = ODRL + "rightOperandReference"
)

// Compact shortens a full IRI to a readable prefixed or local name for
// violation messages: ODRL terms become "odrl:x", other IRIs keep the
// fragment or final path segment.
func Compact(iri string) string {
	switch {
	case strings.HasPrefix(iri, ODRL):
		return "odrl:" + strings.TrimPrefix(iri, ODRL)
	case strings.HasPrefix(iri, DCT):
		return "dct:" + strings.TrimPrefix(iri, DCT)
	case strings.HasPrefix(iri, RDF):
		return "rdf:" + strings.TrimPrefix(iri, RDF)
	case strings.HasPrefix(iri, XSD):
		return "xsd:" + strings.TrimPrefix(iri, XSD)
	}
	if i := strings.LastIndex(iri, "#"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	return iri
}
