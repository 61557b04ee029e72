// Package judgetest provides a scripted judge for tests.
package judgetest

import (
	"context"
	"sync"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/judge"
)

type outcome struct {
	result *model.ValidationResult
	err    error
}

// Fake returns queued outcomes in order, falling back to a passing result.
// Hold makes calls block until Release so tests can act while a call is in
// flight; a held call also returns when its context is cancelled.
type Fake struct {
	mu       sync.Mutex
	outcomes []outcome
	calls    []model.ValidationRequest
	gate     chan struct{}

	started chan model.ValidationRequest
}

// Ensure Fake implements Judge
var _ judge.Judge = (*Fake)(nil)

// New creates a Fake
func New() *Fake {
	return &Fake{
		started: make(chan model.ValidationRequest, 64),
	}
}

// Pass returns a result with every check passing
func Pass(score int) *model.ValidationResult {
	return &model.ValidationResult{
		IsValidWord:            true,
		CanBeMadeFromTiles:     true,
		IsGrammaticallyCorrect: true,
		Feedback:               "Excellent!",
		Score:                  score,
	}
}

// QueueResult adds a result to return
func (f *Fake) QueueResult(r *model.ValidationResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome{result: r})
}

// QueueError adds an error to return
func (f *Fake) QueueError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome{err: err})
}

// Hold makes subsequent calls block until Release
func (f *Fake) Hold() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = make(chan struct{})
}

// Release unblocks held calls
func (f *Fake) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gate != nil {
		close(f.gate)
		f.gate = nil
	}
}

// Started receives each request as its call begins
func (f *Fake) Started() <-chan model.ValidationRequest {
	return f.started
}

// CallCount returns how many times Judge was called
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Calls returns a copy of the requests received
func (f *Fake) Calls() []model.ValidationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.ValidationRequest, len(f.calls))
	copy(out, f.calls)
	return out
}

// Judge implements judge.Judge
func (f *Fake) Judge(ctx context.Context, req model.ValidationRequest) (*model.ValidationResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	gate := f.gate
	var next *outcome
	if len(f.outcomes) > 0 {
		next = &f.outcomes[0]
		f.outcomes = f.outcomes[1:]
	}
	f.mu.Unlock()

	select {
	case f.started <- req:
	default:
	}

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if next == nil {
		return Pass(len(req.Word)), nil
	}
	if next.err != nil {
		return nil, next.err
	}
	r := *next.result
	return &r, nil
}
