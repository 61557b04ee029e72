// Package judge decides whether a play is a real word, buildable from the
// player's tiles and used in a grammatical sentence.
package judge

import (
	"context"

	"github.com/mcoot/wordcoach/internal/model"
)

// Judge validates one play. It either returns a complete result or an error,
// never a partial result.
type Judge interface {
	Judge(ctx context.Context, req model.ValidationRequest) (*model.ValidationResult, error)
}

// Providers selectable in config
const (
	ProviderDictionary = "dictionary"
	ProviderGemini     = "gemini"
)

// Feedback messages shared by judges
const (
	feedbackInvalidWord = "Sorry, '%s' is not a valid English word."
	feedbackWrongTiles  = "You don't have the right tiles to make '%s'."
	feedbackExcellent   = "Excellent! '%s' is a valid word and your sentence is grammatically correct."
)
