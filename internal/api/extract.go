package api

import "strings"

// ExtractTurtle normalizes model output into bare Turtle: markdown code
// fences are stripped, any prose before the first @prefix line is dropped,
// and surrounding whitespace is trimmed. If no @prefix line exists the
// fence-stripped text is returned as-is and left to the parser to reject.
func ExtractTurtle(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```turtle", "")
	cleaned = strings.ReplaceAll(cleaned, "```ttl", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	lines := strings.Split(cleaned, "\n")
	start := 0
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "@prefix") {
			start = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:], "\n"))
}
