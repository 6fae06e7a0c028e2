package conflict

import (
	"fmt"
	"strings"
)

// DetectionPrompt renders the prompt section describing how to detect one
// conflict type. The reasoning collaborator embeds these sections in its
// phase prompts; the classifier itself never consumes them.
func (t *Taxonomy) DetectionPrompt(conflictType Type) (string, error) {
	strategy, ok := t.StrategyFor(conflictType)
	if !ok {
		return "", fmt.Errorf("no strategy for conflict type %q", conflictType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", titleOf(conflictType))
	fmt.Fprintf(&b, "**Detection Order:** %d (Priority: %s)\n\n",
		strategy.Priority, priorityBand(strategy.Priority))

	if len(strategy.Keywords) > 0 {
		fmt.Fprintf(&b, "**Keywords to Check:** %s\n\n", strings.Join(strategy.Keywords, ", "))
	} else {
		b.WriteString("**Keywords to Check:** N/A - structural patterns only\n\n")
	}

	fmt.Fprintf(&b, "**Resolution Principle:** %s\n%s\n", strategy.Principle, strategy.Principle.Explanation())

	if example, ok := ExampleFor(conflictType); ok {
		b.WriteString("\n**Example:**\n")
		fmt.Fprintf(&b, "Input: %q\n", example.Input)
		fmt.Fprintf(&b, "Conflict: %s\n", example.Explanation)
		fmt.Fprintf(&b, "Resolution: %s\n", example.Resolution)
	}

	return b.String(), nil
}

// titleOf turns a snake_case conflict type into a title.
func titleOf(t Type) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// priorityBand mirrors the bands used in the detection documentation.
func priorityBand(priority int) string {
	switch {
	case priority <= 2:
		return "CRITICAL"
	case priority <= 5:
		return "High"
	default:
		return "Standard"
	}
}
