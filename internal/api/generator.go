package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator converts approved policy text into a candidate ODRL Turtle
// document with a single model call.
type Generator struct {
	runner *Runner
}

// NewGenerator creates a generator over the given client.
func NewGenerator(client *Client) *Generator {
	return &Generator{runner: NewRunner(client)}
}

// GeneratedPolicy is the result of one generation call.
type GeneratedPolicy struct {
	// Turtle is the cleaned document text.
	Turtle string
	// PolicyID is the short identifier embedded in the policy URI.
	PolicyID string
	// GeneratedAt is the UTC date the document was produced.
	GeneratedAt string
}

// Generate produces an ODRL Turtle document for the given policy text.
// If policyID is empty a short random one is assigned.
func (g *Generator) Generate(ctx context.Context, policyText, policyID string) (*GeneratedPolicy, error) {
	if strings.TrimSpace(policyText) == "" {
		return nil, fmt.Errorf("policy text is empty")
	}
	if policyID == "" {
		policyID = newPolicyID()
	}

	date := time.Now().UTC().Format("2006-01-02")
	prompt := fmt.Sprintf(turtleGenerationPrompt, date, policyID, policyText, policyID, policyID)

	raw, err := g.runner.Run(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate policy %s: %w", policyID, err)
	}

	turtle := ExtractTurtle(raw)
	if turtle == "" {
		return nil, fmt.Errorf("generate policy %s: model returned no document", policyID)
	}

	return &GeneratedPolicy{
		Turtle:      turtle,
		PolicyID:    policyID,
		GeneratedAt: date,
	}, nil
}

// newPolicyID returns a short hex identifier, eight characters of a UUID.
func newPolicyID() string {
	id := uuid.NewString()
	return strings.ReplaceAll(id, "-", "")[:8]
}
