package repair

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ShayCichocki/concord/internal/report"
)

// Orchestrator runs repair sessions. It holds only read-only collaborators
// and configuration; per-session state lives in Run's locals, so one
// orchestrator may serve concurrent sessions.
type Orchestrator struct {
	evaluator  Evaluator
	transducer Transducer
	decoder    Decoder
	cfg        Config
	store      SessionStore
	logger     *SessionLogger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithStore enables session persistence.
func WithStore(store SessionStore) Option {
	return func(o *Orchestrator) { o.store = store }
}

// WithLogger enables session debug logging.
func WithLogger(logger *SessionLogger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// NewOrchestrator creates an orchestrator over the given collaborators.
func NewOrchestrator(evaluator Evaluator, transducer Transducer, decoder Decoder, cfg Config, opts ...Option) (*Orchestrator, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("repair: evaluator is required")
	}
	if transducer == nil {
		return nil, fmt.Errorf("repair: transducer is required")
	}
	if decoder == nil {
		return nil, fmt.Errorf("repair: decoder is required")
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("repair: max attempts must be positive, got %d", cfg.MaxAttempts)
	}
	o := &Orchestrator{
		evaluator:  evaluator,
		transducer: transducer,
		decoder:    decoder,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Run executes one repair session over the initial candidate document.
//
// The returned Result always carries the full attempt trace. On external
// collaborator failure (transducer error, timeout, or undecodable
// candidate) the session ends in ExhaustedBudget and the error, annotated
// with the attempt index, is returned alongside the partial result.
func (o *Orchestrator) Run(ctx context.Context, userText, document string) (*Result, error) {
	sessionID := uuid.NewString()
	o.logf("session %s: starting, ceiling %d", sessionID, o.cfg.MaxAttempts)
	o.storeStarted(sessionID, userText)

	res := &Result{State: StateValidating, FinalDocument: document}

	for attempt := 1; ; attempt++ {
		// Cancellation is honored between attempts, never mid-evaluation:
		// evaluation is pure and fast, the transducer call is not.
		if err := ctx.Err(); err != nil {
			res.State = StateExhaustedBudget
			o.markLastTerminal(res)
			o.finish(sessionID, res)
			return res, fmt.Errorf("attempt %d: session canceled: %w", attempt, err)
		}

		res.State = StateValidating
		parsed, err := o.decoder.Decode(document)
		if err != nil {
			res.State = StateExhaustedBudget
			o.markLastTerminal(res)
			o.finish(sessionID, res)
			return res, fmt.Errorf("attempt %d: decode candidate document: %w", attempt, err)
		}

		violations := o.evaluator.Evaluate(parsed)
		rep := report.New(userText, document, violations)
		record := Attempt{Index: attempt, Document: document, Report: rep}
		o.logf("session %s: attempt %d/%d: %s", sessionID, attempt, o.cfg.MaxAttempts, rep.Summary())

		res.FinalDocument = document
		res.AttemptsUsed = attempt

		if rep.IsValid() {
			record.Terminal = true
			o.appendAttempt(sessionID, res, record)
			res.Success = true
			res.State = StateConformant
			o.finish(sessionID, res)
			return res, nil
		}

		if attempt == o.cfg.MaxAttempts {
			// Do not invoke regeneration on the final attempt; its
			// output could never be validated.
			record.Terminal = true
			o.appendAttempt(sessionID, res, record)
			res.State = StateExhaustedBudget
			res.Unresolved = violations
			o.finish(sessionID, res)
			return res, nil
		}

		o.appendAttempt(sessionID, res, record)
		res.State = StateAwaitingRegeneration

		next, err := o.regenerate(ctx, rep)
		if err != nil {
			res.State = StateExhaustedBudget
			res.Unresolved = violations
			o.markLastTerminal(res)
			o.finish(sessionID, res)
			return res, fmt.Errorf("attempt %d: regeneration failed: %w", attempt, err)
		}
		document = next
	}
}

// regenerate invokes the transducer under the configured per-attempt
// timeout.
func (o *Orchestrator) regenerate(ctx context.Context, rep *report.Report) (string, error) {
	if o.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.AttemptTimeout)
		defer cancel()
	}
	return o.transducer.Regenerate(ctx, rep.RenderFeedback())
}

// appendAttempt records an attempt in the result and the store.
func (o *Orchestrator) appendAttempt(sessionID string, res *Result, attempt Attempt) {
	res.Attempts = append(res.Attempts, attempt)
	if o.store != nil {
		if err := o.store.AttemptRecorded(sessionID, attempt); err != nil {
			o.logf("session %s: store attempt %d: %v", sessionID, attempt.Index, err)
		}
	}
}

// markLastTerminal flags the most recent attempt as the session's last.
// The last attempt's terminal flag is true iff the session ended.
func (o *Orchestrator) markLastTerminal(res *Result) {
	if n := len(res.Attempts); n > 0 {
		res.Attempts[n-1].Terminal = true
	}
}

func (o *Orchestrator) storeStarted(sessionID, userText string) {
	if o.store != nil {
		if err := o.store.SessionStarted(sessionID, userText, o.cfg.MaxAttempts); err != nil {
			o.logf("session %s: store start: %v", sessionID, err)
		}
	}
}

func (o *Orchestrator) finish(sessionID string, res *Result) {
	o.logf("session %s: finished %s after %d attempt(s)", sessionID, res.State, res.AttemptsUsed)
	if o.store != nil {
		if err := o.store.SessionFinished(sessionID, res.State, res.AttemptsUsed); err != nil {
			o.logf("session %s: store finish: %v", sessionID, err)
		}
	}
}

func (o *Orchestrator) logf(format string, args ...interface{}) {
	if o.logger != nil {
		o.logger.Log(format, args...)
	}
}
