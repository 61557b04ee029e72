// Package llmtest provides a scripted llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"google.golang.org/genai"

	"github.com/mcoot/wordcoach/internal/llm"
)

// Call records one GenerateJSON invocation
type Call struct {
	Prompt string
	Schema *genai.Schema
}

// Fake returns queued responses in order. Once the queue is exhausted it
// returns Err if set, otherwise llm.ErrEmptyResponse.
type Fake struct {
	mu        sync.Mutex
	responses []response
	calls     []Call

	Err error
}

type response struct {
	body string
	err  error
}

var _ llm.Client = (*Fake)(nil)

// New creates an empty Fake
func New() *Fake {
	return &Fake{}
}

// QueueJSON adds a response body
func (f *Fake) QueueJSON(bodies ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range bodies {
		f.responses = append(f.responses, response{body: b})
	}
}

// QueueError adds a failing response
func (f *Fake) QueueError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, response{err: err})
}

// Calls returns a copy of the recorded calls
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// GenerateJSON implements llm.Client
func (f *Fake) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Prompt: prompt, Schema: schema})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(f.responses) == 0 {
		if f.Err != nil {
			return nil, f.Err
		}
		return nil, llm.ErrEmptyResponse
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	if next.err != nil {
		return nil, next.err
	}
	return []byte(next.body), nil
}
