package repair

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ShayCichocki/concord/internal/conformance"
	"github.com/ShayCichocki/concord/pkg/policy"
)

// scriptedEvaluator returns one violation list per validation pass, in order.
// Passes beyond the script return the last entry.
type scriptedEvaluator struct {
	script [][]conformance.Violation
	calls  int
}

func (s *scriptedEvaluator) Evaluate(doc *policy.Document) []conformance.Violation {
	idx := s.calls
	s.calls++
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	}
	return s.script[idx]
}

type fakeTransducer struct {
	calls  int
	err    error
	output string
	block  bool
}

func (f *fakeTransducer) Regenerate(ctx context.Context, feedback string) (string, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

type fakeDecoder struct {
	err error
}

func (f fakeDecoder) Decode(text string) (*policy.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return policy.NewDocument(), nil
}

type recordingStore struct {
	started  []string
	attempts []Attempt
	finished []State
}

func (r *recordingStore) SessionStarted(id, userText string, maxAttempts int) error {
	r.started = append(r.started, id)
	return nil
}

func (r *recordingStore) AttemptRecorded(sessionID string, attempt Attempt) error {
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *recordingStore) SessionFinished(id string, state State, attemptsUsed int) error {
	r.finished = append(r.finished, state)
	return nil
}

func someViolations() []conformance.Violation {
	return []conformance.Violation{{
		Category:   conformance.IssueMissingRequiredField,
		FocusNode:  "http://example.com/p",
		Path:       "odrl:uid",
		Observed:   conformance.ObservedNotSpecified,
		Constraint: "Policy must have exactly one uid with IRI value",
		Severity:   conformance.SeverityViolation,
	}}
}

func newOrch(t *testing.T, eval Evaluator, trans Transducer, cfg Config, opts ...Option) *Orchestrator {
	t.Helper()
	o, err := NewOrchestrator(eval, trans, fakeDecoder{}, cfg, opts...)
	if err != nil {
		t.Fatalf("NewOrchestrator failed: %v", err)
	}
	return o
}

func TestNewOrchestratorValidation(t *testing.T) {
	eval := &scriptedEvaluator{script: [][]conformance.Violation{nil}}
	trans := &fakeTransducer{}

	tests := []struct {
		name  string
		eval  Evaluator
		trans Transducer
		dec   Decoder
		cfg   Config
	}{
		{"nil evaluator", nil, trans, fakeDecoder{}, DefaultConfig()},
		{"nil transducer", eval, nil, fakeDecoder{}, DefaultConfig()},
		{"nil decoder", eval, trans, nil, DefaultConfig()},
		{"zero attempts", eval, trans, fakeDecoder{}, Config{MaxAttempts: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewOrchestrator(tt.eval, tt.trans, tt.dec, tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunConformantFirstAttempt(t *testing.T) {
	eval := &scriptedEvaluator{script: [][]conformance.Violation{nil}}
	trans := &fakeTransducer{}
	store := &recordingStore{}
	o := newOrch(t, eval, trans, DefaultConfig(), WithStore(store))

	res, err := o.Run(context.Background(), "allow reading", "doc-v1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !res.Success || res.State != StateConformant {
		t.Errorf("expected conformant success, got %+v", res)
	}
	if res.AttemptsUsed != 1 || len(res.Attempts) != 1 {
		t.Errorf("expected exactly one attempt, got %d/%d", res.AttemptsUsed, len(res.Attempts))
	}
	if trans.calls != 0 {
		t.Errorf("transducer should not be called, got %d calls", trans.calls)
	}
	if !res.Attempts[0].Terminal {
		t.Error("sole attempt must be terminal")
	}
	if len(store.started) != 1 || len(store.finished) != 1 || store.finished[0] != StateConformant {
		t.Errorf("store not driven correctly: %+v", store)
	}
}

func TestRunExhaustsBudget(t *testing.T) {
	eval := &scriptedEvaluator{script: [][]conformance.Violation{someViolations()}}
	trans := &fakeTransducer{output: "doc-next"}
	store := &recordingStore{}
	o := newOrch(t, eval, trans, Config{MaxAttempts: 3}, WithStore(store))

	res, err := o.Run(context.Background(), "allow reading", "doc-v1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Success || res.State != StateExhaustedBudget {
		t.Errorf("expected exhausted budget, got %+v", res)
	}
	if eval.calls != 3 {
		t.Errorf("expected 3 validation passes, got %d", eval.calls)
	}
	// No regeneration on the final failing attempt.
	if trans.calls != 2 {
		t.Errorf("expected 2 transducer calls, got %d", trans.calls)
	}
	if len(res.Attempts) != 3 {
		t.Fatalf("expected 3 attempts recorded, got %d", len(res.Attempts))
	}
	for i, a := range res.Attempts {
		if a.Index != i+1 {
			t.Errorf("attempt %d has index %d", i, a.Index)
		}
		wantTerminal := i == len(res.Attempts)-1
		if a.Terminal != wantTerminal {
			t.Errorf("attempt %d terminal = %v, want %v", i, a.Terminal, wantTerminal)
		}
	}
	if len(res.Unresolved) != 1 {
		t.Errorf("expected unresolved violations, got %v", res.Unresolved)
	}
	if res.FinalDocument != "doc-next" {
		t.Errorf("final document should be the last regenerated candidate, got %q", res.FinalDocument)
	}
}

func TestRunRecoversAfterRegeneration(t *testing.T) {
	eval := &scriptedEvaluator{script: [][]conformance.Violation{
		someViolations(),
		nil,
	}}
	trans := &fakeTransducer{output: "doc-v2"}
	o := newOrch(t, eval, trans, DefaultConfig())

	res, err := o.Run(context.Background(), "allow reading", "doc-v1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !res.Success || res.AttemptsUsed != 2 {
		t.Errorf("expected success on attempt 2, got %+v", res)
	}
	if trans.calls != 1 {
		t.Errorf("expected 1 transducer call, got %d", trans.calls)
	}
	if res.FinalDocument != "doc-v2" {
		t.Errorf("expected regenerated document, got %q", res.FinalDocument)
	}
	if res.Attempts[0].Terminal || !res.Attempts[1].Terminal {
		t.Error("only the last attempt may be terminal")
	}
	if res.Attempts[0].Document != "doc-v1" || res.Attempts[1].Document != "doc-v2" {
		t.Errorf("attempt snapshots wrong: %q, %q", res.Attempts[0].Document, res.Attempts[1].Document)
	}
}

func TestRunTransducerFailure(t *testing.T) {
	wantErr := errors.New("model unavailable")
	eval := &scriptedEvaluator{script: [][]conformance.Violation{someViolations()}}
	trans := &fakeTransducer{err: wantErr}
	o := newOrch(t, eval, trans, DefaultConfig())

	res, err := o.Run(context.Background(), "allow reading", "doc-v1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error should wrap the transducer error: %v", err)
	}
	if !strings.Contains(err.Error(), "attempt 1") {
		t.Errorf("error should name the attempt: %v", err)
	}
	if res == nil || res.State != StateExhaustedBudget {
		t.Errorf("expected partial result with exhausted budget, got %+v", res)
	}
	if len(res.Attempts) != 1 || !res.Attempts[0].Terminal {
		t.Errorf("expected one terminal attempt, got %+v", res.Attempts)
	}
	if len(res.Unresolved) != 1 {
		t.Errorf("expected unresolved violations, got %v", res.Unresolved)
	}
}

func TestRunAttemptTimeout(t *testing.T) {
	eval := &scriptedEvaluator{script: [][]conformance.Violation{someViolations()}}
	trans := &fakeTransducer{block: true}
	cfg := Config{MaxAttempts: 3, AttemptTimeout: 10 * time.Millisecond}
	o := newOrch(t, eval, trans, cfg)

	res, err := o.Run(context.Background(), "allow reading", "doc-v1")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if res.State != StateExhaustedBudget {
		t.Errorf("expected exhausted budget, got %s", res.State)
	}
}

func TestRunCancellationBetweenAttempts(t *testing.T) {
	eval := &scriptedEvaluator{script: [][]conformance.Violation{someViolations()}}
	trans := &fakeTransducer{output: "doc-next"}
	o := newOrch(t, eval, trans, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := o.Run(ctx, "allow reading", "doc-v1")
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.State != StateExhaustedBudget {
		t.Errorf("expected exhausted budget, got %s", res.State)
	}
	if eval.calls != 0 {
		t.Errorf("no validation should run after cancellation, got %d", eval.calls)
	}
}

func TestRunDecodeFailure(t *testing.T) {
	eval := &scriptedEvaluator{script: [][]conformance.Violation{nil}}
	trans := &fakeTransducer{}
	o, err := NewOrchestrator(eval, trans, fakeDecoder{err: errors.New("bad turtle")}, DefaultConfig())
	if err != nil {
		t.Fatalf("NewOrchestrator failed: %v", err)
	}

	res, err := o.Run(context.Background(), "allow reading", "not turtle")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "attempt 1") {
		t.Errorf("error should name the attempt: %v", err)
	}
	if res.State != StateExhaustedBudget {
		t.Errorf("expected exhausted budget, got %s", res.State)
	}
}

func TestStateTerminal(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StateValidating, false},
		{StateAwaitingRegeneration, false},
		{StateConformant, true},
		{StateExhaustedBudget, true},
	}
	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.state, got, tt.want)
		}
	}
}
