// Package llm is the transport to a hosted language model. Callers hand it a
// rendered prompt and an output schema and get back the raw JSON document.
package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model produced no text
var ErrEmptyResponse = errors.New("model returned an empty response")

// Client generates a JSON document that conforms to schema
type Client interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error)
}
