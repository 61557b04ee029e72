// Package prompts turns typed inputs into model prompts and decodes the
// model's JSON replies back into typed outputs.
package prompts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"

	"google.golang.org/genai"

	"github.com/mcoot/wordcoach/internal/llm"
)

// ErrMalformedOutput is returned when the model's reply does not fit the schema
var ErrMalformedOutput = errors.New("model output does not match schema")

// Flow is one prompt with a typed input and a schema-checked typed output
type Flow[In, Out any] struct {
	name   string
	tmpl   *template.Template
	schema *genai.Schema
	client llm.Client

	// check runs after decoding for rules the schema can't express
	check func(in In, out *Out) error
}

// NewFlow builds a flow from a catalogue entry
func NewFlow[In, Out any](
	catalogue Catalogue,
	name string,
	schema *genai.Schema,
	client llm.Client,
	check func(in In, out *Out) error,
) (*Flow[In, Out], error) {
	tmpl, err := catalogue.Template(name)
	if err != nil {
		return nil, err
	}
	return &Flow[In, Out]{
		name:   name,
		tmpl:   tmpl,
		schema: schema,
		client: client,
		check:  check,
	}, nil
}

// Name returns the flow's catalogue name
func (f *Flow[In, Out]) Name() string {
	return f.name
}

// Render produces the prompt text for in
func (f *Flow[In, Out]) Render(in In) (string, error) {
	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("render prompt %q: %w", f.name, err)
	}
	return buf.String(), nil
}

// Run renders the prompt, calls the model once and decodes the reply
func (f *Flow[In, Out]) Run(ctx context.Context, in In) (*Out, error) {
	prompt, err := f.Render(in)
	if err != nil {
		return nil, err
	}

	raw, err := f.client.GenerateJSON(ctx, prompt, f.schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.name, err)
	}

	if err := checkRequired(raw, f.schema.Required); err != nil {
		return nil, fmt.Errorf("%s: %w", f.name, err)
	}

	var out Out
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", f.name, ErrMalformedOutput, err)
	}

	if f.check != nil {
		if err := f.check(in, &out); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", f.name, ErrMalformedOutput, err)
		}
	}
	return &out, nil
}

// checkRequired verifies raw is a JSON object holding every required key
func checkRequired(raw []byte, required []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	for _, key := range required {
		v, ok := fields[key]
		if !ok || string(v) == "null" {
			return fmt.Errorf("%w: missing %q", ErrMalformedOutput, key)
		}
	}
	return nil
}
