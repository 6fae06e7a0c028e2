package api

import (
	"context"
	"fmt"
	"time"

	"github.com/ShayCichocki/concord/internal/repair"
)

// Fixer asks the model to correct a document given its rendered validation
// feedback. It is the production transducer behind the repair loop.
type Fixer struct {
	runner *Runner
}

// NewFixer creates a fixer over the given client.
func NewFixer(client *Client) *Fixer {
	return &Fixer{runner: NewRunner(client)}
}

// Regenerate returns corrected document text for the given feedback.
func (f *Fixer) Regenerate(ctx context.Context, feedback string) (string, error) {
	date := time.Now().UTC().Format("2006-01-02")
	prompt := fmt.Sprintf(regenerationPrompt, date, feedback)

	raw, err := f.runner.Run(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("regenerate document: %w", err)
	}

	turtle := ExtractTurtle(raw)
	if turtle == "" {
		return "", fmt.Errorf("regenerate document: model returned no document")
	}
	return turtle, nil
}

// Compile-time verification that Fixer implements repair.Transducer.
var _ repair.Transducer = (*Fixer)(nil)
