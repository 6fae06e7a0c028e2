// Package repair drives the bounded validate/regenerate loop over candidate
// rights-expression documents.
//
// One repair session owns an append-only sequence of attempts: the engine
// validates a candidate, and while violations remain and attempts are left,
// the orchestrator hands the rendered violation report to the external text
// transducer and re-validates its corrected output. Sessions terminate in
// Conformant or ExhaustedBudget; the attempt ceiling is never exceeded and
// the transducer is never invoked on the final failing attempt.
//
// Sessions are synchronous and single-threaded: each attempt strictly
// depends on the previous attempt's output. Independent documents may be
// repaired concurrently across sessions since the engine, rule set, and
// registry are read-only configuration.
package repair

import (
	"context"
	"time"

	"github.com/ShayCichocki/concord/internal/conformance"
	"github.com/ShayCichocki/concord/internal/report"
	"github.com/ShayCichocki/concord/pkg/policy"
)

// State is a repair session state.
type State string

const (
	// StateValidating is the working state while a candidate is evaluated.
	StateValidating State = "validating"
	// StateAwaitingRegeneration is the working state while the transducer
	// produces a corrected candidate.
	StateAwaitingRegeneration State = "awaiting_regeneration"
	// StateConformant is the terminal success state.
	StateConformant State = "conformant"
	// StateExhaustedBudget is the terminal failure state: the attempt
	// ceiling was reached, or an external collaborator failed.
	StateExhaustedBudget State = "exhausted_budget"
)

// Terminal returns true for the two terminal states.
func (s State) Terminal() bool {
	return s == StateConformant || s == StateExhaustedBudget
}

// Attempt is one validate pass inside a session. The sequence of attempts
// is append-only; records are never mutated once a later attempt exists.
type Attempt struct {
	// Index is the 1-based attempt number.
	Index int
	// Document is the candidate document snapshot for this attempt.
	Document string
	// Report is the validation result for the candidate.
	Report *report.Report
	// Terminal is true iff the session ended on this attempt.
	Terminal bool
}

// Result is the outcome of a repair session.
type Result struct {
	// Success is true iff the session ended Conformant.
	Success bool
	// State is the terminal state.
	State State
	// FinalDocument is the last candidate document.
	FinalDocument string
	// AttemptsUsed is the number of validation passes performed.
	AttemptsUsed int
	// Attempts is the full attempt trace, in order.
	Attempts []Attempt
	// Unresolved lists the last attempt's violations on failure.
	Unresolved []conformance.Violation
}

// Evaluator validates a parsed document. Implemented by conformance.Engine.
type Evaluator interface {
	Evaluate(doc *policy.Document) []conformance.Violation
}

// Transducer is the external text-generation collaborator. Given the
// rendered violation feedback it returns corrected document text. The
// orchestrator is agnostic to which endpoint backs it.
type Transducer interface {
	Regenerate(ctx context.Context, feedback string) (string, error)
}

// Decoder parses candidate document text into the entity graph. Implemented
// by policy.TurtleDecoder.
type Decoder interface {
	Decode(text string) (*policy.Document, error)
}

// SessionStore persists repair sessions and their attempt traces. All
// methods are best-effort from the orchestrator's point of view; a nil
// store disables persistence.
type SessionStore interface {
	SessionStarted(id, userText string, maxAttempts int) error
	AttemptRecorded(sessionID string, attempt Attempt) error
	SessionFinished(id string, state State, attemptsUsed int) error
}

// Config bounds a repair session.
type Config struct {
	// MaxAttempts is the validation-pass ceiling (default 3).
	MaxAttempts int
	// AttemptTimeout bounds each transducer call; zero disables the
	// timeout. A timeout is treated identically to a transducer failure.
	AttemptTimeout time.Duration
}

// DefaultConfig returns the default session bounds.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		AttemptTimeout: 2 * time.Minute,
	}
}
