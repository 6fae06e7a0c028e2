// Package report aggregates conformance violations into the structured
// feedback payload the repair loop hands to the text transducer.
package report

import (
	"fmt"
	"strings"

	"github.com/ShayCichocki/concord/internal/conformance"
)

// Report is a complete validation result for one candidate document.
// Validity is computed from the violation list, never stored alongside it,
// so the two can never disagree.
type Report struct {
	// UserText is the original policy request being expressed.
	UserText string
	// DocumentText is the candidate document's serialized form.
	DocumentText string
	// Violations are the findings from the conformance engine, in
	// encounter order.
	Violations []conformance.Violation
}

// New creates a report for a candidate document.
func New(userText, documentText string, violations []conformance.Violation) *Report {
	return &Report{
		UserText:     userText,
		DocumentText: documentText,
		Violations:   violations,
	}
}

// IsValid returns true iff the report carries no violations.
func (r *Report) IsValid() bool {
	return len(r.Violations) == 0
}

// Categories returns the issue categories present, in encounter order.
func (r *Report) Categories() []conformance.IssueCategory {
	var order []conformance.IssueCategory
	seen := make(map[conformance.IssueCategory]bool)
	for _, v := range r.Violations {
		if !seen[v.Category] {
			seen[v.Category] = true
			order = append(order, v.Category)
		}
	}
	return order
}

// ByCategory returns the violations for one category, in encounter order.
func (r *Report) ByCategory(c conformance.IssueCategory) []conformance.Violation {
	var out []conformance.Violation
	for _, v := range r.Violations {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

// Summary returns a one-line description for logs and CLI output.
func (r *Report) Summary() string {
	if r.IsValid() {
		return "valid: document conforms to all rules"
	}
	var parts []string
	for _, c := range r.Categories() {
		parts = append(parts, fmt.Sprintf("%d %s", len(r.ByCategory(c)), c))
	}
	return fmt.Sprintf("invalid: %d issue(s) (%s)", len(r.Violations), strings.Join(parts, ", "))
}

// RenderFeedback produces the markdown feedback payload for corrective
// regeneration: the original request, the generated document, and every
// violation grouped by category in encounter order.
func (r *Report) RenderFeedback() string {
	var b strings.Builder

	b.WriteString("# ODRL Knowledge Graph Validation Report\n\n")

	b.WriteString("## Original User Request\n")
	fmt.Fprintf(&b, "%q\n\n", r.UserText)

	b.WriteString("## Generated Knowledge Graph\n")
	b.WriteString("```turtle\n")
	b.WriteString(strings.TrimSpace(r.DocumentText))
	b.WriteString("\n```\n\n")

	b.WriteString("## Validation Results\n")
	if r.IsValid() {
		b.WriteString("**Status**: VALID\n\n")
		b.WriteString("The generated knowledge graph conforms to all ODRL validation rules.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**Status**: INVALID - %d issue(s) detected\n\n", len(r.Violations))

	for _, category := range r.Categories() {
		fmt.Fprintf(&b, "### %s\n", category)
		for i, v := range r.ByCategory(category) {
			fmt.Fprintf(&b, "%d. **Node**: `%s`\n", i+1, v.FocusNode)
			fmt.Fprintf(&b, "   **Property**: `%s`\n", v.Path)
			fmt.Fprintf(&b, "   **Current Value**: `%s`\n", v.Observed)
			fmt.Fprintf(&b, "   **Constraint Violated**: %s\n", v.Constraint)
			if v.Severity != conformance.SeverityViolation {
				fmt.Fprintf(&b, "   **Severity**: %s\n", v.Severity)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Learning Notes\n")
	b.WriteString("The above issues indicate where the knowledge graph doesn't conform to ODRL standards.\n")
	b.WriteString("Review the constraint violations to understand what corrections are needed.\n")

	return b.String()
}
