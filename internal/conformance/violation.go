// Package conformance evaluates a rights-expression document against the
// shape rule set and produces typed violations. Evaluation is a pure
// function of (rule set, operand registry, document): repeated calls on an
// unchanged document yield identical violation lists, which the repair loop
// and the tests depend on.
package conformance

// IssueCategory is the closed vocabulary of violation categories.
type IssueCategory string

const (
	// IssueMissingRequiredField marks a required property with no value.
	IssueMissingRequiredField IssueCategory = "missing-required-field"
	// IssueInvalidEnumeratedValue marks a value outside the allowed set.
	IssueInvalidEnumeratedValue IssueCategory = "invalid-enumerated-value"
	// IssueCardinalityViolation marks a property with too few or too many values.
	IssueCardinalityViolation IssueCategory = "cardinality-violation"
	// IssueIncompatibleOperandOperator marks an operand/operator pairing
	// outside the operand's compatible set.
	IssueIncompatibleOperandOperator IssueCategory = "incompatible-operand-operator"
	// IssueStructuralError marks any other structural failure.
	IssueStructuralError IssueCategory = "structural-error"
)

// Valid returns true if the category is a known value.
func (c IssueCategory) Valid() bool {
	switch c {
	case IssueMissingRequiredField, IssueInvalidEnumeratedValue,
		IssueCardinalityViolation, IssueIncompatibleOperandOperator,
		IssueStructuralError:
		return true
	default:
		return false
	}
}

// Severity grades a violation.
type Severity string

const (
	// SeverityViolation is the default hard severity.
	SeverityViolation Severity = "Violation"
	// SeverityWarning marks advisory findings, such as operand/operator
	// pairings the registry does not cover.
	SeverityWarning Severity = "Warning"
)

// ObservedNotSpecified is the observed-value placeholder for absent values.
// Missing structural elements are reported with this value rather than
// omitted from the report.
const ObservedNotSpecified = "not specified"

// Violation is a single conformance finding. Violations are value objects:
// created fresh each evaluation pass and never mutated.
type Violation struct {
	// Category is the issue category from the closed vocabulary.
	Category IssueCategory `json:"category"`
	// FocusNode is the entity the violation was found on.
	FocusNode string `json:"focus_node"`
	// Path is the property path involved, in compact form.
	Path string `json:"path"`
	// Observed is the offending value, or "not specified" when absent.
	Observed string `json:"observed"`
	// Constraint is the human-readable explanation of the rule broken.
	Constraint string `json:"constraint"`
	// Severity grades the finding; defaults to Violation.
	Severity Severity `json:"severity"`
}
